package fsm

import (
	"log/slog"

	"github.com/enetx/g"
)

type (
	// Hook is a lifecycle callback fired when a state becomes current
	// (entry) or is about to be replaced (exit). A non-nil error aborts
	// the remainder of the transition and propagates to the caller.
	Hook func() error

	// Handler reacts to a named event dispatched via Invoke. It receives
	// the state it is attached to, so it can reach that state's sibling
	// members, plus the arguments forwarded by the caller. The returned
	// state becomes the machine's next state; returning the receiver
	// itself makes the dispatch a no-op.
	Handler func(self *State, args ...any) (*State, error)

	// Reducer computes the next state from the current one. Returning
	// the current state unchanged makes the transition a no-op. The
	// argument is nil before the machine's first transition.
	Reducer func(current *State) (*State, error)

	// TransitionHook is a global callback observing every transition.
	// It runs after the outgoing state's exit hook and the reassignment,
	// and before the incoming state's entry hook. The event is empty for
	// transitions not driven by Invoke.
	TransitionHook func(from, to *State, event g.String) error

	// Transition is one recorded state change.
	Transition struct {
		From  *State
		To    *State
		Event g.String
	}

	// State is one mode of the owning system: an optional entry hook, an
	// optional exit hook and a table of named event handlers. Its
	// identity is its pointer: two states are the same state only if
	// they are the same *State value. The name exists for logging,
	// errors and DOT output and is never compared.
	State struct {
		name     g.String
		entry    Hook
		exit     Hook
		handlers g.Map[g.String, Handler]
	}

	// StateMachine owns a single current state and mutates it only
	// through Handle. It is not safe for concurrent use; all operations
	// are synchronous and run to completion before returning.
	StateMachine struct {
		initial *State
		current *State
		history g.Slice[Transition]
		hooks   g.Slice[TransitionHook]
		logger  *slog.Logger
	}

	// Option configures a StateMachine during construction, before the
	// initial transition runs.
	Option func(*StateMachine)
)
