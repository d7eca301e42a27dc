package fsm

import (
	"errors"
	"fmt"

	"github.com/enetx/g"
)

// ErrHook is returned when an entry hook, exit hook or transition hook
// fails. It wraps the original error, allowing it to be inspected with
// errors.Is and errors.As.
//
// Which state the machine is left in depends on where the failure
// happened: a failing exit hook leaves the machine in the outgoing
// state, while a failing transition or entry hook leaves it already in
// the incoming state with that state's setup incomplete.
type ErrHook struct {
	// Hook is the failing hook: "entry", "exit" or "transition".
	Hook string
	// State is the display name of the state the hook belongs to. It is
	// empty for global transition hooks.
	State g.String
	// Err is the error returned by the hook.
	Err error
}

func (e *ErrHook) Error() string {
	if e.State != "" {
		return fmt.Sprintf("fsm: %s hook for state %q failed: %v", e.Hook, e.State, e.Err)
	}

	return fmt.Sprintf("fsm: %s hook failed: %v", e.Hook, e.Err)
}

// Unwrap provides compatibility with the standard library's errors
// package.
func (e *ErrHook) Unwrap() error { return e.Err }

// ErrHandler is returned when an event handler dispatched via Invoke
// fails. The machine's current state is unchanged.
type ErrHandler struct {
	// State is the display name of the state the handler belongs to.
	State g.String
	// Event is the event that was being dispatched.
	Event g.String
	// Err is the error returned by the handler.
	Err error
}

func (e *ErrHandler) Error() string {
	return fmt.Sprintf("fsm: handler for event %q in state %q failed: %v", e.Event, e.State, e.Err)
}

// Unwrap provides compatibility with the standard library's errors
// package.
func (e *ErrHandler) Unwrap() error { return e.Err }

// IsHookError reports whether err is or wraps an *ErrHook.
func IsHookError(err error) bool {
	var e *ErrHook
	return errors.As(err, &e)
}

// IsHandlerError reports whether err is or wraps an *ErrHandler.
func IsHandlerError(err error) bool {
	var e *ErrHandler
	return errors.As(err, &e)
}
