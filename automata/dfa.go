package automata

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DFA is a deterministic finite automaton. No state of a DFA has an epsilon
// edge, and no state has two edges with equal labels.
//
// DFAs may be built by hand or by subset construction from an NFA (see
// NFA.ToDFA). Once built, they are read-only and may be shared between
// goroutines.
type DFA[T constraints.Ordered] struct {
	start    StateID
	hasStart bool
	states   map[StateID]State[T]
	payloads map[StateID][]interface{} // states with more than one accepted payload
}

// NewDFA creates an empty DFA.
func NewDFA[T constraints.Ordered]() *DFA[T] {
	return &DFA[T]{
		states:   make(map[StateID]State[T]),
		payloads: make(map[StateID][]interface{}),
	}
}

// AddStartState adds s and makes it the start state.
func (dfa *DFA[T]) AddStartState(s State[T]) error {
	if err := dfa.AddState(s); err != nil {
		return err
	}
	dfa.start = s.ID()
	dfa.hasStart = true
	return nil
}

// AddState adds s. A state previously added with the same ID is replaced.
// States with epsilon edges or duplicate edges are rejected.
func (dfa *DFA[T]) AddState(s State[T]) error {
	if err := checkDeterministic(s); err != nil {
		return err
	}
	dfa.states[s.ID()] = s
	delete(dfa.payloads, s.ID())
	return nil
}

// AppendFragment splices f into the state with ID at: the edges of f's head
// are appended to state at, and the remaining states of f are added. Edges
// pointing to f's head are redirected to at. f must not contain epsilon edges.
func (dfa *DFA[T]) AppendFragment(f Fragment[T], at StateID) error {
	s, ok := dfa.states[at]
	if !ok {
		return fmt.Errorf("cannot append fragment to state %d: %w", at, ErrUnknownState)
	}
	if f.IsEmpty() {
		return ErrEmptyFragment
	}
	from := f.Head().ID()
	spliced := s.WithEdges(f.Head().edges...).Redirect(from, at)
	tail := f.Tail()
	for i, t := range tail {
		tail[i] = t.Redirect(from, at)
		if err := checkDeterministic(tail[i]); err != nil {
			return err
		}
	}
	if err := dfa.AddState(spliced); err != nil {
		return err
	}
	for _, t := range tail {
		dfa.states[t.ID()] = t
		delete(dfa.payloads, t.ID())
	}
	return nil
}

func checkDeterministic[T constraints.Ordered](s State[T]) error {
	if s.HasEpsilonEdge() {
		return fmt.Errorf("state %d: %w", s.ID(), ErrEpsilonEdge)
	}
	if s.HasDuplicateEdge() {
		return fmt.Errorf("state %d: %w", s.ID(), ErrDuplicateEdge)
	}
	return nil
}

// Start returns the start state.
func (dfa *DFA[T]) Start() (State[T], bool) {
	if !dfa.hasStart {
		return State[T]{}, false
	}
	s, ok := dfa.states[dfa.start]
	return s, ok
}

// State returns the state with ID id.
func (dfa *DFA[T]) State(id StateID) (State[T], bool) {
	s, ok := dfa.states[id]
	return s, ok
}

// Size returns the number of states.
func (dfa *DFA[T]) Size() int {
	return len(dfa.states)
}

// States returns all states, sorted by ID.
func (dfa *DFA[T]) States() []State[T] {
	ids := maps.Keys(dfa.states)
	slices.Sort(ids)
	states := make([]State[T], len(ids))
	for i, id := range ids {
		states[i] = dfa.states[id]
	}
	return states
}

// AcceptedPayloads returns all the payloads a state accepts with. For states
// created by subset construction, this may be more than one payload, ordered
// by the IDs of the originating NFA states. The first payload is the one
// reported by the state itself.
func (dfa *DFA[T]) AcceptedPayloads(id StateID) []interface{} {
	if p, ok := dfa.payloads[id]; ok {
		return slices.Clone(p)
	}
	if s, ok := dfa.states[id]; ok && s.IsAccepting() {
		return []interface{}{s.Payload()}
	}
	return nil
}

// Dump is a debugging helper
func (dfa *DFA[T]) Dump() {
	tracer().Debugf("--- DFA with %d states -----------", dfa.Size())
	for _, s := range dfa.States() {
		if dfa.hasStart && s.ID() == dfa.start {
			tracer().Debugf("→ %v", s)
		} else {
			tracer().Debugf("  %v", s)
		}
	}
	tracer().Debugf("----------------------------------")
}

// --- Runs ------------------------------------------------------------------

// NewRun starts a run at the start state.
func (dfa *DFA[T]) NewRun() (*DFARun[T], error) {
	start, ok := dfa.Start()
	if !ok {
		return nil, ErrNoStartState
	}
	return &DFARun[T]{dfa: dfa, current: start, session: make(Session)}, nil
}

// StartRun is part of interface Automaton.
func (dfa *DFA[T]) StartRun() (Run[T], error) {
	run, err := dfa.NewRun()
	if err != nil {
		return nil, err
	}
	return run, nil
}

var _ Automaton[rune] = (*DFA[rune])(nil)
