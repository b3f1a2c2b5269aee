package game

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
	"github.com/rs/zerolog/log"
)

// State is the coarse lifecycle state of a Session.
type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

const (
	stateInProgress statekit.StateID = statekit.StateID(StateInProgress)
	stateWon        statekit.StateID = statekit.StateID(StateWon)
	stateLost       statekit.StateID = statekit.StateID(StateLost)

	eventWin  statekit.EventType = "WIN"
	eventLose statekit.EventType = "LOSE"
)

// lifecycleContext is the statechart context.
type lifecycleContext struct {
	sessionID string
}

// lifecycle wraps the statekit interpreter for one session.
type lifecycle struct {
	interp *statekit.Interpreter[*lifecycleContext]
	ctx    *lifecycleContext
}

func newLifecycle(sessionID string) (*lifecycle, error) {
	machine, err := statekit.NewMachine[*lifecycleContext]("session").
		WithInitial(stateInProgress).
		WithContext(&lifecycleContext{}).
		WithAction("recordFinish", recordFinish).
		State(stateInProgress).
		On(eventWin).Target(stateWon).Do("recordFinish").
		On(eventLose).Target(stateLost).Do("recordFinish").
		Done().
		State(stateWon).Final().Done().
		State(stateLost).Final().Done().
		Build()
	if err != nil {
		return nil, fmt.Errorf("build session statechart: %w", err)
	}

	ctx := &lifecycleContext{sessionID: sessionID}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **lifecycleContext) {
		*c = ctx
	})
	interp.Start()
	return &lifecycle{interp: interp, ctx: ctx}, nil
}

// recordFinish logs the turn count carried by a WIN/LOSE event.
func recordFinish(ctx **lifecycleContext, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	n, _ := event.Payload.(int)
	log.Debug().
		Str("session", (*ctx).sessionID).
		Str("event", string(event.Type)).
		Int("turnsUsed", n).
		Msg("session finished")
}

func (l *lifecycle) win(turnsUsed int) {
	l.interp.Send(statekit.Event{Type: eventWin, Payload: turnsUsed})
}

func (l *lifecycle) lose(turnsUsed int) {
	l.interp.Send(statekit.Event{Type: eventLose, Payload: turnsUsed})
}

func (l *lifecycle) state() State {
	return State(l.interp.State().Value)
}

func (l *lifecycle) done() bool {
	return l.interp.Done()
}
