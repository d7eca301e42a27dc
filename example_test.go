package fsm_test

import (
	"fmt"

	"github.com/statemkit/fsm"
)

func Example() {
	var on, off *fsm.State

	on = fsm.NewState("on").
		OnEntry(func() error { fmt.Println("light is on"); return nil }).
		OnExit(func() error { fmt.Println("light going off"); return nil })

	off = fsm.NewState("off").
		OnEntry(func() error { fmt.Println("light is off"); return nil })

	on.On("toggle", func(*fsm.State, ...any) (*fsm.State, error) { return off, nil })
	off.On("toggle", func(*fsm.State, ...any) (*fsm.State, error) { return on, nil })

	m := fsm.MustNew(off)

	m.Invoke("toggle")
	m.Invoke("toggle")
	m.Invoke("missing") // no handler, no-op

	fmt.Println("current:", m.Current().Name())

	// Output:
	// light is off
	// light is on
	// light going off
	// light is off
	// current: off
}
