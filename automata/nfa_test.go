package automata

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/exp/slices"
)

func idsOf(states []State[rune]) []StateID {
	r := make([]StateID, len(states))
	for i, s := range states {
		r[i] = s.ID()
	}
	return r
}

func TestEpsilonClosureTerminatesOnCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	nfa := NewNFA[rune]()
	nfa.AddStartState(NewState(1, EpsilonEdge[rune](3)))
	nfa.AddState(NewState(3, EpsilonEdge[rune](2), NewEdge(Exact('a'), 4)))
	nfa.AddState(NewState(2, EpsilonEdge[rune](1)))
	nfa.AddState(NewAcceptingState[rune](4, "A"))
	start, _ := nfa.Start()
	C, err := nfa.EpsilonClosure(start)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(idsOf(C), []StateID{1, 2, 3}) {
		t.Errorf("expected closure to be {1,2,3}, is %v", idsOf(C))
	}
	CC, err := nfa.EpsilonClosure(C...)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(idsOf(C), idsOf(CC)) {
		t.Errorf("expected closure to be idempotent, is %v", idsOf(CC))
	}
	if obj, ok := accepts(t, nfa, "a"); !ok || obj != "A" {
		t.Errorf("expected 'a' to be accepted")
	}
}

func TestEpsilonClosureUnknownState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	nfa := NewNFA[rune]()
	nfa.AddStartState(NewState(1, EpsilonEdge[rune](99)))
	start, _ := nfa.Start()
	if _, err := nfa.EpsilonClosure(start); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected closure to report unknown state, error is %v", err)
	}
}

func TestMoveComparesLabelsStructurally(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	nfa := NewNFA[rune]()
	nfa.AddStartState(NewState(1, NewEdge(Range('a', 'c'), 2), NewEdge(Exact('a'), 3)))
	nfa.AddState(NewState(5, NewEdge(Range('a', 'c'), 4)))
	nfa.AddState(NewState[rune](2))
	nfa.AddState(NewState[rune](3))
	nfa.AddState(NewState[rune](4))
	from := []State[rune]{}
	for _, id := range []StateID{5, 1} {
		s, _ := nfa.State(id)
		from = append(from, s)
	}
	M, err := nfa.Move(from, Range('a', 'c'))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(idsOf(M), []StateID{2, 4}) {
		t.Errorf("expected move to reach {2,4}, reaches %v", idsOf(M))
	}
	if M, _ = nfa.Move(from, OneOfRunes("abc")); len(M) != 0 {
		t.Errorf("expected move on different label to be empty, is %v", idsOf(M))
	}
	labels := nfa.Labels()
	if len(labels) != 2 {
		t.Errorf("expected 2 distinct labels, have %v", labels)
	}
}

func TestEpsilonClosureUsesCurrentStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	nfa := NewNFA[rune]()
	nfa.AddStartState(NewState(1, NewEdge(Exact('a'), 2)))
	nfa.AddState(NewAcceptingState[rune](2, "A"))
	outdated, _ := nfa.Start()
	nfa.AddState(NewAcceptingState[rune](3, "E"))
	nfa.AddStartState(outdated.WithEdges(EpsilonEdge[rune](3)))
	C, err := nfa.EpsilonClosure(outdated)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(idsOf(C), []StateID{1, 3}) {
		t.Errorf("expected closure of replaced state to be {1,3}, is %v", idsOf(C))
	}
	if !C[0].HasEpsilonEdge() {
		t.Errorf("expected closure to contain the replaced version of state 1")
	}
}

func TestNFAAppendFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	nfa := FromFragment(chain(t, "a", "A"))
	start, _ := nfa.Start()
	if err := nfa.AppendFragment(chain(t, "b", "B"), start.ID()); err != nil {
		t.Fatal(err)
	}
	if err := nfa.AppendFragment(chain(t, "c", "C"), 42); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected append to unknown state to fail, error is %v", err)
	}
	for input, kind := range map[string]string{"a": "A", "b": "B"} {
		if obj, ok := accepts(t, nfa, input); !ok || obj != kind {
			t.Errorf("expected %q to be accepted as %s, is %v", input, kind, obj)
		}
	}
	if nfa.Size() != 4 {
		t.Errorf("expected NFA to have 4 states, has %d", nfa.Size())
	}
}
