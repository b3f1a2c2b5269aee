// internal/words/words.go
//
// Dictionary provider for the game.
//
// Responsibilities:
//   - Hold the answer list and the allowed-guess set (answers ∪ allowed).
//   - Answer validity queries for game sessions (IsWordValid).
//   - Supply utility functions like RandomAnswer, IsAnswer and Stats.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Lists come from a Source (see sources.go); a Dictionary that has not been
// loaded reports ErrNotReady instead of pretending every word is invalid.

package words

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// WordLength is the only word length kept by the loaders.
const WordLength = 5

// ErrNotReady is returned when the dictionary is queried before any words are loaded.
var ErrNotReady = errors.New("words: dictionary not loaded")

// Dictionary is an immutable answers/allowed word set.
// The zero value is valid and not ready.
type Dictionary struct {
	answers    []string            // canonical answers
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// New builds a dictionary from raw lists. Entries are normalized and
// anything that is not a 5-letter a–z word is dropped.
func New(answers, allowed []string) *Dictionary {
	ans := clean(answers)
	d := &Dictionary{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(ans),
	}
	for _, w := range clean(allowed) {
		d.allowedSet[w] = struct{}{}
	}
	return d
}

// Load reads both lists from src and builds a Dictionary.
// Returns an error if the answers list ends up empty.
func Load(ctx context.Context, src Source) (*Dictionary, error) {
	answers, allowed, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("words: load: %w", err)
	}
	d := New(answers, allowed)
	if len(d.answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	return d, nil
}

// ready reports whether any words are loaded.
func (d *Dictionary) ready() bool {
	return d != nil && len(d.allowedSet) > 0
}

// IsWordValid reports whether w (after trimming and lower-casing) is an
// allowed guess. It fails with ErrNotReady on an empty dictionary.
func (d *Dictionary) IsWordValid(w string) (bool, error) {
	if !d.ready() {
		return false, ErrNotReady
	}
	_, ok := d.allowedSet[normalize(w)]
	return ok, nil
}

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.answersSet[normalize(w)]
	return ok
}

// Answers returns a copy of the canonical answer list.
func (d *Dictionary) Answers() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.answers...)
}

// RandomAnswer returns a cryptographically random answer from the answers list.
func (d *Dictionary) RandomAnswer() (string, error) {
	if d == nil || len(d.answers) == 0 {
		return "", ErrNotReady
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.answers))))
	if err != nil {
		return "", fmt.Errorf("words: random answer: %w", err)
	}
	return d.answers[nBig.Int64()], nil
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	if d == nil {
		return 0, 0
	}
	return len(d.answers), len(d.allowedSet)
}

// normalize lowercases and trims a single word.
func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// clean normalizes a list, keeping only 5-letter alphabetic words
// and dropping duplicates while preserving order.
func clean(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, raw := range list {
		w := normalize(raw)
		if len(w) != WordLength || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
