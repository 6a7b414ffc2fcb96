package automata

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTransitionTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexfa.automata")
	defer teardown()
	//
	f, err := MergeAll(chain(t, "if", "IF"), chain(t, "in", "IN"), chain(t, "int", "INT"))
	if err != nil {
		t.Fatal(err)
	}
	dfa, err := FromFragment(f).ToDFA()
	if err != nil {
		t.Fatal(err)
	}
	tt := dfa.Table()
	if len(tt.States()) != dfa.Size() || len(tt.Labels()) != 4 {
		t.Errorf("expected table of %d×4, is %d×%d", dfa.Size(), len(tt.States()), len(tt.Labels()))
	}
	edges := 0
	for _, s := range dfa.States() {
		edges += len(s.Edges())
		for _, e := range s.Edges() {
			if dest, ok := tt.Dest(s.ID(), e.Label); !ok || dest != e.Dest {
				t.Errorf("expected table entry (%d, %s) = %d, is %d", s.ID(), e.Label, e.Dest, dest)
			}
		}
	}
	if tt.ValueCount() != edges {
		t.Errorf("expected %d table entries, have %d", edges, tt.ValueCount())
	}
	start, _ := dfa.Start()
	if _, ok := tt.Dest(start.ID(), Exact('f')); ok {
		t.Errorf("did not expect a transition for 'f' from the start state")
	}
	if _, ok := tt.Dest(start.ID(), Exact('x')); ok {
		t.Errorf("did not expect a transition for unknown label")
	}
	if _, ok := tt.Dest(-1, Exact('i')); ok {
		t.Errorf("did not expect a transition for unknown state")
	}
}
