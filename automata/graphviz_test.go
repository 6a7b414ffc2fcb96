package automata

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	nfa := NewNFA[rune]()
	nfa.AddStartState(NewState(1, NewEdge(Exact('a'), 2), EpsilonEdge[rune](3)))
	nfa.AddState(NewAcceptingState[rune](2, "A"))
	nfa.AddState(NewAcceptingState[rune](3, nil))
	var b strings.Builder
	if err := nfa.ToGraphViz(&b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	t.Logf("\n%s", dot)
	for _, expected := range []string{
		"digraph {",
		`s1 -> s2 [label="'a'"]`,
		`s1 -> s3 [label="ε"]`,
		`s2 [fillcolor=lightgreen, shape=doublecircle, label="2\nA"]`,
		`s1 [fillcolor=lightblue, shape=circle, label="1"]`,
	} {
		if !strings.Contains(dot, expected) {
			t.Errorf("expected dot output to contain %s", expected)
		}
	}
	dfa, err := nfa.ToDFA()
	if err != nil {
		t.Fatal(err)
	}
	b.Reset()
	if err := dfa.ToGraphViz(&b); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "ε") {
		t.Errorf("did not expect epsilon edges in DFA")
	}
}
