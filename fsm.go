// Package fsm provides a reducer-driven finite state machine whose
// states are first-class values. A state carries an optional entry
// hook, an optional exit hook and a table of named event handlers; the
// machine owns a single current state and changes it only through
// identity-compared transitions. The state graph is not declared
// upfront: it emerges from whatever states the handlers return. The
// package is built with types and utilities from the
// github.com/enetx/g library.
package fsm

import (
	"fmt"
	"log/slog"

	"github.com/enetx/g"
)

// New creates a machine and immediately performs one ordinary
// transition from no state to initial, so initial's entry hook fires
// exactly once before New returns. Transition hooks registered via
// options observe this initial transition as well. A nil initial state
// is allowed and makes the initial transition a no-op.
//
// The only possible construction error is a failing hook on the initial
// transition.
func New(initial *State, opts ...Option) (*StateMachine, error) {
	m := &StateMachine{
		initial: initial,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := m.transition(func(*State) (*State, error) { return initial, nil }, ""); err != nil {
		return nil, err
	}

	return m, nil
}

// MustNew is like New but panics if the initial transition fails.
func MustNew(initial *State, opts ...Option) *StateMachine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("fsm: failed to create state machine: %v", err))
	}

	return m
}

// Current returns the machine's current state. It is nil only if the
// machine was constructed with a nil initial state and has not
// transitioned since.
func (m *StateMachine) Current() *State {
	return m.current
}

// Handle applies reducer to the current state and, if the result is a
// different state by pointer identity, performs one transition: the
// outgoing state's exit hook, then the reassignment, then the
// transition hooks, then the incoming state's entry hook. If the
// reducer returns the current state, nothing happens and no hooks fire.
//
// Errors are never trapped or rolled back. A failing reducer or exit
// hook leaves the current state unchanged; a failing transition or
// entry hook leaves the machine already in the new state with that
// state's setup incomplete. Callers needing stronger guarantees must
// recover from the returned error themselves.
//
// Handle is re-entrant in the sense that a hook or reducer may itself
// call Handle or Invoke; the nested transition runs to completion
// before the outer one resumes. Nothing guards against the overlap.
func (m *StateMachine) Handle(reducer Reducer) error {
	return m.transition(reducer, "")
}

// Invoke dispatches a named event to the current state. If the state
// has a handler for the event, the handler runs with that state as its
// receiver and the forwarded arguments, and the machine transitions to
// whatever it returns. Dispatching an event the current state does not
// handle is not an error: the dispatch is a no-op and no hooks fire.
func (m *StateMachine) Invoke(event g.String, args ...any) error {
	return m.transition(func(current *State) (*State, error) {
		if current == nil {
			return current, nil
		}

		h := current.handler(event)
		if h.IsNone() {
			m.logger.Debug("unhandled event", "state", current.label(), "event", event)
			return current, nil
		}

		next, err := h.Some()(current, args...)
		if err != nil {
			return nil, &ErrHandler{State: current.name, Event: event, Err: err}
		}

		return next, nil
	}, event)
}

// Handles reports whether the current state has a handler for the named
// event, i.e. whether Invoke(event) would do more than a no-op.
func (m *StateMachine) Handles(event g.String) bool {
	return m.current != nil && m.current.Handles(event)
}

// History returns a copy of the completed transitions in order,
// starting with the initial one. A transition is recorded only once its
// entry hook has succeeded.
func (m *StateMachine) History() g.Slice[Transition] {
	return m.history.Clone()
}

// SetState forcefully sets the current state without firing hooks or
// recording history. It is a low-level escape hatch for state
// restoration; for all standard operations use Handle or Invoke.
func (m *StateMachine) SetState(s *State) {
	m.current = s
}

// Reset returns the machine to its initial state and clears the
// history. No hooks fire.
func (m *StateMachine) Reset() {
	m.current = m.initial
	m.history = g.Slice[Transition]{}
}

// transition performs one guarded state change. The ordering invariant
// is exit, then reassignment, then transition hooks, then entry.
func (m *StateMachine) transition(reducer Reducer, event g.String) error {
	next, err := reducer(m.current)
	if err != nil {
		return err
	}

	if next == m.current {
		return nil
	}

	from := m.current

	if from != nil && from.exit != nil {
		if err := from.exit(); err != nil {
			return &ErrHook{Hook: "exit", State: from.name, Err: err}
		}
	}

	m.current = next

	for hook := range m.hooks.Iter() {
		if err := hook(from, next, event); err != nil {
			return &ErrHook{Hook: "transition", Err: err}
		}
	}

	if next != nil && next.entry != nil {
		if err := next.entry(); err != nil {
			return &ErrHook{Hook: "entry", State: next.name, Err: err}
		}
	}

	m.history.Push(Transition{From: from, To: next, Event: event})
	m.logger.Debug("transition",
		"from", from.label(),
		"to", next.label(),
		"event", event,
	)

	return nil
}
