package fsm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/statemkit/fsm"
)

func TestToDOT(t *testing.T) {
	var a, b *State
	a = NewState("a")
	b = NewState("b")
	a.On("go", func(*State, ...any) (*State, error) { return b, nil })
	b.On("back", func(*State, ...any) (*State, error) { return a, nil })

	m := MustNew(a)
	require.NoError(t, m.Invoke("go"))
	require.NoError(t, m.Invoke("back"))
	require.NoError(t, m.Invoke("go"))

	dot := string(m.ToDOT())

	require.True(t, strings.HasPrefix(dot, "digraph FSM {"))
	require.Contains(t, dot, `__start -> s0 [label=" initial "];`)
	require.Contains(t, dot, `s0 [label="a"];`)
	require.Contains(t, dot, `s1 [label="b", fillcolor="#90ee90", shape=doublecircle];`)
	require.Contains(t, dot, `s0 -> s1 [label=" go "];`)
	require.Contains(t, dot, `s1 -> s0 [label=" back "];`)

	// Repeated transitions collapse into one edge.
	require.Equal(t, 1, strings.Count(dot, "s0 -> s1"))
}

func TestToDOT_Empty(t *testing.T) {
	m := MustNew(nil)

	dot := string(m.ToDOT())
	require.Contains(t, dot, "digraph FSM {")
	require.NotContains(t, dot, "->")
}

func TestToDOT_UnvisitedCurrent(t *testing.T) {
	m := MustNew(nil)
	m.SetState(NewState("restored"))

	dot := string(m.ToDOT())
	require.Contains(t, dot, `s0 [label="restored", fillcolor="#90ee90", shape=doublecircle];`)
}
