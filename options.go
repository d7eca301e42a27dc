package fsm

import "log/slog"

// WithLogger sets the logger used for transition and dispatch debug
// logging. By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(m *StateMachine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithTransitionHook registers a global transition hook. Hooks run in
// registration order and observe the initial transition too.
func WithTransitionHook(hook TransitionHook) Option {
	return func(m *StateMachine) {
		if hook != nil {
			m.hooks.Push(hook)
		}
	}
}
