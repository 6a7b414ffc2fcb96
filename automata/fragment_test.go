package automata

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// chain builds a fragment matching the runes of s, with an accepting last state.
func chain(t testing.TB, s string, payload interface{}) Fragment[rune] {
	ids := NewIDBlock()
	var states []State[rune]
	for _, r := range s {
		id := ids.MustNext()
		states = append(states, NewState(id, NewEdge(Exact(r), id+1)))
	}
	states = append(states, NewAcceptingState[rune](ids.MustNext(), payload))
	f, err := NewFragment(states...)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// accepts runs input through an automaton and returns the accepted object.
func accepts(t testing.TB, fa Automaton[rune], input string) (interface{}, bool) {
	run, err := fa.StartRun()
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range input {
		ok, err := run.Step(r)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			return nil, false
		}
	}
	if !run.IsAcceptable() {
		return nil, false
	}
	obj, err := run.AcceptedObject()
	if err != nil {
		t.Fatal(err)
	}
	return obj, true
}

func TestFragmentParts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	if _, err := NewFragment[rune](); !errors.Is(err, ErrEmptyFragment) {
		t.Errorf("expected empty fragment to be rejected")
	}
	f := chain(t, "abc", "ABC")
	if f.Size() != 4 || len(f.Init()) != 3 || len(f.Tail()) != 3 {
		t.Errorf("expected fragment of 4 states, has %d", f.Size())
	}
	if f.Head().IsAccepting() || !f.Last().IsAccepting() {
		t.Errorf("expected only the last state to accept")
	}
	n := f.AsNonAccepting()
	if n.Last().IsAccepting() || !f.Last().IsAccepting() {
		t.Errorf("expected AsNonAccepting to return a modified copy")
	}
	a := n.AsLastAccepting("X")
	if a.Last().Payload() != "X" {
		t.Errorf("expected last state to accept with X, is %v", a.Last())
	}
}

func TestConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	ab := chain(t, "ab", "AB").AsNonAccepting()
	cd := chain(t, "cd", "ABCD")
	f, err := ConcatAll(ab, cd)
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != 5 {
		t.Errorf("expected concatenation to have 5 states, has %d", f.Size())
	}
	nfa := FromFragment(f)
	if obj, ok := accepts(t, nfa, "abcd"); !ok || obj != "ABCD" {
		t.Errorf("expected abcd to be accepted as ABCD, is %v", obj)
	}
	if _, ok := accepts(t, nfa, "ab"); ok {
		t.Errorf("did not expect ab to be accepted")
	}
	for _, s := range f.States() {
		if s.ID() == cd.Head().ID() {
			t.Errorf("expected head of second fragment to be spliced away")
		}
	}
}

func TestConcatRedirectsBackEdges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	ids := NewIDBlock()
	h, e := ids.MustNext(), ids.MustNext()
	loop, err := NewFragment( // x* y
		NewState(h, NewEdge(Exact('x'), h), NewEdge(Exact('y'), e)),
		NewAcceptingState[rune](e, "XY"),
	)
	if err != nil {
		t.Fatal(err)
	}
	f := chain(t, "a", nil).AsNonAccepting().Concat(loop)
	nfa := FromFragment(f)
	for _, input := range []string{"ay", "axy", "axxxy"} {
		if obj, ok := accepts(t, nfa, input); !ok || obj != "XY" {
			t.Errorf("expected %q to be accepted, is not", input)
		}
	}
	for _, s := range f.States() {
		for _, edge := range s.Edges() {
			if edge.Dest == h {
				t.Errorf("dangling edge to spliced state %d: %v", h, s)
			}
		}
	}
}

func TestMergeAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	if _, err := MergeAll[rune](); !errors.Is(err, ErrEmptyFragmentList) {
		t.Errorf("expected empty list to be rejected, error is %v", err)
	}
	if _, err := ConcatAll[rune](); !errors.Is(err, ErrEmptyFragmentList) {
		t.Errorf("expected empty list to be rejected, error is %v", err)
	}
	f, err := chain(t, "if", "IF").Merge(chain(t, "in", "IN"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != 8 {
		t.Errorf("expected merged fragment to have 8 states, has %d", f.Size())
	}
	if len(f.Head().Edges()) != 2 || !f.Head().HasEpsilonEdge() || f.Last().HasEdges() {
		t.Errorf("unexpected structure of merged fragment: %v … %v", f.Head(), f.Last())
	}
	nfa := FromFragment(f)
	for input, kind := range map[string]string{"if": "IF", "in": "IN"} {
		if obj, ok := accepts(t, nfa, input); !ok || obj != kind {
			t.Errorf("expected %q to be accepted as %s, is %v", input, kind, obj)
		}
	}
	if _, ok := accepts(t, nfa, "i"); ok {
		t.Errorf("did not expect prefix to be accepted")
	}
}
