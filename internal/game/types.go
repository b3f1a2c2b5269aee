// internal/game/types.go
//
// Core type definitions for the guessing game.
// Defines:
//   - Mark: per-letter feedback for a guess (exact/present/absent).
//   - GuessRow: one evaluated guess on the board.
//   - Outcome: result of a single TakeTurn call.
//   - Dictionary: the validity check a Session consumes.

package game

const (
	// MaxTurns is the number of attempts a player gets per game.
	MaxTurns = 6
	// WordLength is the fixed length of answers and guesses.
	WordLength = 5
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "absent":  letter does not exist in the answer (or, with strict
//     scoring, all of its occurrences are already accounted for).
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// GuessRow is a normalized guess plus its index-aligned marks.
type GuessRow struct {
	Guess string `json:"guess"`
	Marks []Mark `json:"marks"`
}

// Outcome is the result of a TakeTurn call.
type Outcome string

const (
	OutcomeRightAnswer   Outcome = "right_answer"
	OutcomeInvalidAnswer Outcome = "invalid_answer"
	OutcomeWrongAnswer   Outcome = "wrong_answer"
	OutcomeGameOver      Outcome = "game_over"
)

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == OutcomeRightAnswer || o == OutcomeGameOver
}

// Dictionary is the validity check used to accept guesses.
// Implementations return an error when their word set is not loaded yet.
type Dictionary interface {
	IsWordValid(word string) (bool, error)
}

// DictionaryFunc adapts a plain function to Dictionary.
type DictionaryFunc func(word string) (bool, error)

// IsWordValid calls f(word).
func (f DictionaryFunc) IsWordValid(word string) (bool, error) { return f(word) }
