// internal/game/session.go
//
// Turn state machine for a single game.
// Responsibilities:
//   - Create sessions with a normalized five-letter answer.
//   - Validate guesses (length, dictionary) and consume turns.
//   - Record non-terminal guesses and their feedback on the board.
//   - Track the lifecycle: in progress → won/lost.
//
// Notes:
//   - A Session is not safe for concurrent use; callers serialize turns.
//   - The winning guess and the turn-exhausting guess never become board rows.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	// ErrGameSetup is wrapped by every construction failure.
	ErrGameSetup = errors.New("game setup")
	// ErrGameFinished is returned by TakeTurn once a terminal outcome was reached.
	ErrGameFinished = errors.New("game finished")
)

// Session holds the state of a single game.
type Session struct {
	id             string
	answer         string
	turnsRemaining int
	guesses        []string
	board          []GuessRow

	dict     Dictionary
	evaluate Evaluator
	life     *lifecycle
}

// Option configures a Session.
type Option func(*Session)

// WithEvaluator replaces the default membership-based feedback.
func WithEvaluator(e Evaluator) Option {
	return func(s *Session) {
		if e != nil {
			s.evaluate = e
		}
	}
}

// WithID sets the session identifier (a random UUID by default).
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// Normalize trims surrounding whitespace and lower-cases w.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// New constructs a session for answer.
// The answer must be five letters a–z after normalization; dictionary
// membership is the caller's concern (see Setup).
func New(answer string, dict Dictionary, opts ...Option) (*Session, error) {
	if dict == nil {
		return nil, fmt.Errorf("%w: no dictionary", ErrGameSetup)
	}
	a := Normalize(answer)
	if len(a) != WordLength || !isAlpha(a) {
		return nil, fmt.Errorf("%w: answer %q is not a %d-letter word", ErrGameSetup, answer, WordLength)
	}

	s := &Session{
		id:             uuid.NewString(),
		answer:         a,
		turnsRemaining: MaxTurns,
		guesses:        []string{},
		board:          []GuessRow{},
		dict:           dict,
		evaluate:       Evaluate,
	}
	for _, opt := range opts {
		opt(s)
	}

	life, err := newLifecycle(s.id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGameSetup, err)
	}
	s.life = life

	log.Debug().Str("session", s.id).Str("answer", s.answer).Msg("answer set")
	return s, nil
}

// Setup is New plus a dictionary check of the answer.
// A dictionary error (e.g. word set not loaded) is returned unwrapped.
func Setup(answer string, dict Dictionary, opts ...Option) (*Session, error) {
	if dict == nil {
		return nil, fmt.Errorf("%w: no dictionary", ErrGameSetup)
	}
	ok, err := dict.IsWordValid(Normalize(answer))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: answer %q is not a valid word", ErrGameSetup, answer)
	}
	return New(answer, dict, opts...)
}

// TakeTurn validates raw, consumes a turn when it is a valid word and
// reports the outcome.
//
// Rules, in order:
//   - Finished session → OutcomeInvalidAnswer, ErrGameFinished.
//   - Length ≠ WordLength → OutcomeInvalidAnswer (no turn consumed).
//   - Dictionary error → returned as-is (no turn consumed).
//   - Not a word → OutcomeInvalidAnswer (no turn consumed).
//   - Equal to the answer → OutcomeRightAnswer.
//   - Last turn used → OutcomeGameOver.
//   - Otherwise the guess is recorded → OutcomeWrongAnswer.
func (s *Session) TakeTurn(raw string) (Outcome, error) {
	if s.life.done() {
		return OutcomeInvalidAnswer, ErrGameFinished
	}
	g := Normalize(raw)
	if len(g) != WordLength {
		return OutcomeInvalidAnswer, nil
	}
	ok, err := s.dict.IsWordValid(g)
	if err != nil {
		return OutcomeInvalidAnswer, err
	}
	if !ok {
		return OutcomeInvalidAnswer, nil
	}

	s.turnsRemaining--
	if g == s.answer {
		s.life.win(s.TurnsUsed())
		return OutcomeRightAnswer, nil
	}
	if s.turnsRemaining == 0 {
		s.life.lose(s.TurnsUsed())
		return OutcomeGameOver, nil
	}

	s.guesses = append(s.guesses, g)
	s.board = append(s.board, GuessRow{Guess: g, Marks: s.evaluate(g, s.answer)})
	return OutcomeWrongAnswer, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Answer returns the normalized answer, for the end-of-game reveal.
func (s *Session) Answer() string { return s.answer }

// TurnsRemaining reports how many valid guesses are left.
func (s *Session) TurnsRemaining() int { return s.turnsRemaining }

// TurnsUsed reports MaxTurns - TurnsRemaining.
func (s *Session) TurnsUsed() int { return MaxTurns - s.turnsRemaining }

// State reports the lifecycle state.
func (s *Session) State() State { return s.life.state() }

// Finished reports whether a terminal outcome has been returned.
func (s *Session) Finished() bool { return s.life.done() }

// PreviousGuesses returns a copy of the recorded (non-terminal) guesses.
func (s *Session) PreviousGuesses() []string {
	return append([]string(nil), s.guesses...)
}

// Board returns a copy of the board rows in turn order.
func (s *Session) Board() []GuessRow {
	out := make([]GuessRow, len(s.board))
	for i, r := range s.board {
		out[i] = GuessRow{Guess: r.Guess, Marks: append([]Mark(nil), r.Marks...)}
	}
	return out
}

// RenderBoard returns one display line per board row (see RenderRow).
func (s *Session) RenderBoard() []string {
	lines := make([]string, 0, len(s.board))
	for _, r := range s.board {
		lines = append(lines, RenderRow(r))
	}
	return lines
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
