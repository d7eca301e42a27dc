package fsm

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the machine
// for visualization. The state graph is implicit in what the handlers
// return, so the rendering covers the transitions observed so far plus
// the current state, which is highlighted. Edges driven by Invoke are
// labelled with their event; plain Handle transitions are labelled
// "handle".
func (m *StateMachine) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")
	b.WriteString("  __start [shape=point, style=invis];\n")

	ids := g.NewMap[*State, g.String]()
	order := g.Slice[*State]{}

	node := func(s *State) g.String {
		if s == nil {
			return "__start"
		}

		if id := ids.Get(s); id.IsSome() {
			return id.Some()
		}

		id := g.Format("s{}", order.Len())
		ids.Set(s, id)
		order.Push(s)

		return id
	}

	edgeLabels := g.NewMap[g.Pair[g.String, g.String], g.Slice[g.String]]()
	edgeOrder := g.Slice[g.Pair[g.String, g.String]]{}

	for tr := range m.history.Iter() {
		key := g.Pair[g.String, g.String]{Key: node(tr.From), Value: node(tr.To)}

		label := tr.Event
		switch {
		case tr.From == nil:
			label = "initial"
		case label == "":
			label = "handle"
		}

		if !edgeLabels.Contains(key) {
			edgeOrder.Push(key)
		}

		edgeLabels.Entry(key).
			AndModify(func(s *g.Slice[g.String]) {
				if !s.Contains(label) {
					s.Push(label)
				}
			}).
			OrInsert(g.SliceOf(label))
	}

	if m.current != nil {
		node(m.current)
	}

	for state := range order.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state.label()))

		if state == m.current {
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  {} [{}];\n", ids.Get(state).Unwrap(), attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for key := range edgeOrder.Iter() {
		labels := edgeLabels.Get(key).Unwrap()
		b.WriteString(g.Format("  {} -> {} [label=\" {} \"];\n", key.Key, key.Value, labels.Join("\\n")))
	}

	b.WriteString("}\n")

	return b.String()
}
