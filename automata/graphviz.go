package automata

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ToGraphViz exports an NFA to the Graphviz Dot format.
func (nfa *NFA[T]) ToGraphViz(w io.Writer) error {
	return writeGraphViz(w, nfa.States(), nfa.start, nfa.hasStart)
}

// ToGraphViz exports a DFA to the Graphviz Dot format.
func (dfa *DFA[T]) ToGraphViz(w io.Writer) error {
	return writeGraphViz(w, dfa.States(), dfa.start, dfa.hasStart)
}

func writeGraphViz[T constraints.Ordered](w io.Writer, states []State[T], start StateID, hasStart bool) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [rankdir=LR, splines=true, fontname=Helvetica, fontsize=10];
node [shape=circle, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range states {
		b.WriteString(fmt.Sprintf("s%d [fillcolor=%s, shape=%s, label=%s]\n",
			s.id, nodecolor(s, start, hasStart), nodeshape(s), nodelabel(s)))
	}
	for _, s := range states {
		for _, e := range s.edges {
			b.WriteString(fmt.Sprintf("s%d -> s%d [label=%s]\n", s.id, e.Dest, strconv.Quote(e.Label.String())))
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor[T constraints.Ordered](s State[T], start StateID, hasStart bool) string {
	if hasStart && s.id == start {
		return "lightblue"
	}
	if s.accepting {
		return "lightgreen"
	}
	return "white"
}

func nodeshape[T constraints.Ordered](s State[T]) string {
	if s.accepting {
		return "doublecircle"
	}
	return "circle"
}

func nodelabel[T constraints.Ordered](s State[T]) string {
	if s.accepting && s.payload != nil {
		return strconv.Quote(fmt.Sprintf("%d\n%v", s.id, s.payload))
	}
	return strconv.Quote(strconv.Itoa(int(s.id)))
}
