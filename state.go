package fsm

import "github.com/enetx/g"

// NewState creates a state with the given display name and no hooks or
// handlers.
func NewState(name g.String) *State {
	return &State{
		name:     name,
		handlers: g.NewMap[g.String, Handler](),
	}
}

// Name returns the state's display name.
func (s *State) Name() g.String { return s.name }

// OnEntry sets the hook fired when the state becomes current.
// The canonical hook name is "entry"; there is no separate "enter" hook.
func (s *State) OnEntry(h Hook) *State {
	s.entry = h
	return s
}

// OnExit sets the hook fired when the state is about to be replaced.
func (s *State) OnExit(h Hook) *State {
	s.exit = h
	return s
}

// On registers a handler for the named event. Registering the same
// event again replaces the previous handler.
func (s *State) On(event g.String, h Handler) *State {
	s.handlers.Set(event, h)
	return s
}

// Handles reports whether the state has a handler for the named event.
func (s *State) Handles(event g.String) bool {
	return s.handlers.Contains(event)
}

// handler looks up the handler for an event.
func (s *State) handler(event g.String) g.Option[Handler] {
	return s.handlers.Get(event)
}

// label is the name shown in logs, errors and DOT output.
func (s *State) label() g.String {
	if s == nil {
		return "<none>"
	}

	if s.name == "" {
		return "<unnamed>"
	}

	return s.name
}
