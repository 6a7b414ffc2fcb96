package automata

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDFARunFailsOnUnknownState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	dfa := NewDFA[rune]()
	dfa.AddStartState(NewState(1, NewEdge(Exact('a'), 7), NewEdge(Exact('b'), 2)))
	dfa.AddState(NewState[rune](2))
	run, err := dfa.NewRun()
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := run.Step('z'); ok || err != nil {
		t.Errorf("expected no transition for 'z', have %v, %v", ok, err)
	}
	if _, err := run.AcceptedObject(); !errors.Is(err, ErrNotAccepting) {
		t.Errorf("expected start state not to accept, error is %v", err)
	}
	if ok, err := run.Step('a'); ok || !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected step to unknown state to fail, have %v, %v", ok, err)
	}
	if _, err := run.Step('b'); !errors.Is(err, ErrRunFailed) {
		t.Errorf("expected failed run to stay failed, error is %v", err)
	}
	if run.IsAcceptable() || run.HasEdges() {
		t.Errorf("expected failed run to be dead")
	}
	if _, err := run.AcceptedObject(); !errors.Is(err, ErrRunFailed) {
		t.Errorf("expected failed run to report failure, error is %v", err)
	}
}

func TestRunsHavePrivateSessions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	dfa := NewDFA[rune]()
	dfa.AddStartState(NewState(1, NewEdge[rune](countingLabel{'x'}, 1)))
	r1, _ := dfa.NewRun()
	r2, _ := dfa.NewRun()
	for i := 0; i < 3; i++ {
		r1.Step('x')
	}
	r2.Step('x')
	if r1.Session()["count"] != 3 || r2.Session()["count"] != 1 {
		t.Errorf("expected sessions to be private, are %v and %v", r1.Session(), r2.Session())
	}
	if !r1.HasEdges() {
		t.Errorf("expected run to have edges")
	}
}

func TestNFARun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	if _, err := NewNFA[rune]().StartRun(); !errors.Is(err, ErrNoStartState) {
		t.Errorf("expected run without start state to fail, error is %v", err)
	}
	f, _ := MergeAll(chain(t, "ab", "AB"), chain(t, "a", "A"))
	run, err := FromFragment(f).NewRun()
	if err != nil {
		t.Fatal(err)
	}
	if len(run.Currents()) != 3 { // merge head and two fragment heads
		t.Errorf("expected 3 current states, have %v", run.Currents())
	}
	if ok, _ := run.Step('a'); !ok || !run.IsAcceptable() || !run.HasEdges() {
		t.Fatalf("expected 'a' to be accepted with further edges")
	}
	if obj, _ := run.AcceptedObject(); obj != "A" {
		t.Errorf("expected A to be accepted, is %v", obj)
	}
	if ok, _ := run.Step('b'); !ok {
		t.Fatalf("expected 'b' to be consumed")
	}
	if objs, _ := run.AcceptedObjects(); len(objs) != 1 || objs[0] != "AB" {
		t.Errorf("expected AB to be accepted, is %v", objs)
	}
	if ok, _ := run.Step('b'); ok || run.HasEdges() {
		t.Errorf("expected run to be stuck")
	}
	if obj, _ := run.AcceptedObject(); obj != "AB" {
		t.Errorf("expected failed step to leave the run untouched, accepts %v", obj)
	}
	empty, _ := NewFragment(NewState[rune](1, NewEdge(Exact('a'), 2)), NewState[rune](2))
	run, _ = FromFragment(empty).NewRun()
	run.Step('a')
	if _, err := run.AcceptedObjects(); !errors.Is(err, ErrNotAccepting) {
		t.Errorf("expected run not to accept, error is %v", err)
	}
}

func TestNFARunHasEdgesIgnoresEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	nfa := NewNFA[rune]()
	nfa.AddStartState(NewState(1, NewEdge(Exact('x'), 2)))
	nfa.AddState(NewAcceptingState(2, "X", EpsilonEdge[rune](3)))
	nfa.AddState(NewState[rune](3))
	run, err := nfa.NewRun()
	if err != nil {
		t.Fatal(err)
	}
	if !run.HasEdges() {
		t.Errorf("expected start state to have a consuming edge")
	}
	if ok, _ := run.Step('x'); !ok || !run.IsAcceptable() {
		t.Fatalf("expected 'x' to be accepted")
	}
	if len(run.Currents()) != 2 {
		t.Errorf("expected states 2 and 3 to be current, have %v", run.Currents())
	}
	if run.HasEdges() {
		t.Errorf("expected epsilon edge not to count as a way to consume more input")
	}
}

// The NFA uses disjoint labels only, so a DFA produced by subset construction
// must accept the same inputs with the same payloads.
func FuzzNFAandDFAAreEquivalent(f *testing.F) {
	for _, seed := range []string{"if", "int", "fi", "xxxy", "ifx", ""} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
		defer teardown()
		//
		nfa, dfa := equivalenceAutomata(t)
		nrun, _ := nfa.NewRun()
		drun, _ := dfa.NewRun()
		for _, r := range input {
			nok, err1 := nrun.Step(r)
			dok, err2 := drun.Step(r)
			if err1 != nil || err2 != nil {
				t.Fatalf("unexpected errors: %v, %v", err1, err2)
			}
			if nok != dok {
				t.Fatalf("NFA and DFA disagree on %q at %q", input, r)
			}
			if !nok {
				return
			}
		}
		if nrun.IsAcceptable() != drun.IsAcceptable() {
			t.Fatalf("NFA and DFA disagree on accepting %q", input)
		}
		if !nrun.IsAcceptable() {
			return
		}
		nobj, _ := nrun.AcceptedObject()
		dobj, _ := drun.AcceptedObject()
		if nobj != dobj {
			t.Errorf("NFA accepts %q as %v, DFA as %v", input, nobj, dobj)
		}
		nobjs, _ := nrun.AcceptedObjects()
		dobjs, _ := drun.AcceptedObjects()
		if len(nobjs) != len(dobjs) {
			t.Errorf("NFA accepts %q as %v, DFA as %v", input, nobjs, dobjs)
		}
	})
}

func equivalenceAutomata(t *testing.T) (*NFA[rune], *DFA[rune]) {
	ids := NewIDBlock()
	h, e := ids.MustNext(), ids.MustNext()
	loop, _ := NewFragment(
		NewState(h, NewEdge(Exact('x'), h), NewEdge(Exact('y'), e)),
		NewAcceptingState[rune](e, "XY"),
	)
	frag, err := MergeAll(chain(t, "if", "IF"), chain(t, "int", "INT"), chain(t, "in", "IN"),
		chain(t, "fi", "FI"), chain(t, "if", "IF2"), loop)
	if err != nil {
		t.Fatal(err)
	}
	nfa := FromFragment(frag)
	dfa, err := nfa.ToDFA()
	if err != nil {
		t.Fatal(err)
	}
	return nfa, dfa
}
