package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NFA is a non-deterministic finite automaton, which may contain epsilon edges.
//
// NFAs are built incrementally. Once built, they are read-only and may be
// shared between goroutines.
type NFA[T constraints.Ordered] struct {
	start    StateID
	hasStart bool
	states   map[StateID]State[T]
	index    map[StateID]uint // dense index of every state, for bitsets
}

// NewNFA creates an empty NFA.
func NewNFA[T constraints.Ordered]() *NFA[T] {
	return &NFA[T]{
		states: make(map[StateID]State[T]),
		index:  make(map[StateID]uint),
	}
}

// FromFragment creates an NFA containing all the states of f, with the head
// of f as its start state.
func FromFragment[T constraints.Ordered](f Fragment[T]) *NFA[T] {
	nfa := NewNFA[T]()
	if f.IsEmpty() {
		return nfa
	}
	nfa.AddFragment(f)
	nfa.AddStartState(f.Head())
	return nfa
}

// AddStartState adds s and makes it the start state.
func (nfa *NFA[T]) AddStartState(s State[T]) {
	nfa.AddState(s)
	nfa.start = s.ID()
	nfa.hasStart = true
}

// AddState adds s. A state previously added with the same ID is replaced.
func (nfa *NFA[T]) AddState(s State[T]) {
	if _, ok := nfa.index[s.ID()]; !ok {
		nfa.index[s.ID()] = uint(len(nfa.index))
	}
	nfa.states[s.ID()] = s
}

// AddFragment adds all states of f, without connecting them.
func (nfa *NFA[T]) AddFragment(f Fragment[T]) {
	for _, s := range f.states {
		nfa.AddState(s)
	}
}

// AppendFragment connects f to the state with ID at: an epsilon edge from
// at to the head of f is added, together with all the states of f.
func (nfa *NFA[T]) AppendFragment(f Fragment[T], at StateID) error {
	s, ok := nfa.states[at]
	if !ok {
		return fmt.Errorf("cannot append fragment to state %d: %w", at, ErrUnknownState)
	}
	if f.IsEmpty() {
		return ErrEmptyFragment
	}
	nfa.AddFragment(f)
	nfa.AddState(s.WithEdges(EpsilonEdge[T](f.Head().ID())))
	return nil
}

// Start returns the start state.
func (nfa *NFA[T]) Start() (State[T], bool) {
	if !nfa.hasStart {
		return State[T]{}, false
	}
	s, ok := nfa.states[nfa.start]
	return s, ok
}

// State returns the state with ID id.
func (nfa *NFA[T]) State(id StateID) (State[T], bool) {
	s, ok := nfa.states[id]
	return s, ok
}

// Size returns the number of states.
func (nfa *NFA[T]) Size() int {
	return len(nfa.states)
}

// States returns all states, sorted by ID.
func (nfa *NFA[T]) States() []State[T] {
	ids := maps.Keys(nfa.states)
	slices.Sort(ids)
	states := make([]State[T], len(ids))
	for i, id := range ids {
		states[i] = nfa.states[id]
	}
	return states
}

// lookup finds the destination of an edge leaving state from.
func (nfa *NFA[T]) lookup(dest, from StateID) (State[T], error) {
	s, ok := nfa.states[dest]
	if !ok {
		return s, integrityError(fmt.Errorf("state %d (linked from %d): %w", dest, from, ErrUnknownState))
	}
	return s, nil
}

// Labels returns all the labels in the NFA, except epsilon. Structurally equal
// labels are reported once. Labels are collected from states in ID order.
func (nfa *NFA[T]) Labels() []Label[T] {
	ls := newLabelSet[T]()
	for _, s := range nfa.States() {
		for _, e := range s.edges {
			if !e.IsEpsilon() {
				ls.add(e.Label)
			}
		}
	}
	return ls.labels
}

// === Closure and Move ======================================================

// EpsilonClosure returns all the states reachable from states by epsilon edges,
// including states themselves. The result is sorted by ID and free of duplicates.
// States are identified by ID only: the NFA's current version of each state is
// used. Epsilon cycles are fine.
func (nfa *NFA[T]) EpsilonClosure(states ...State[T]) ([]State[T], error) {
	C := treeset.NewWith(stateComparator[T])
	visited := bitset.New(uint(len(nfa.index)))
	stack := slices.Clone(states)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		inx, ok := nfa.index[s.id]
		if !ok {
			return nil, integrityError(fmt.Errorf("state %d is not part of the NFA: %w", s.id, ErrUnknownState))
		}
		if visited.Test(inx) {
			continue
		}
		visited.Set(inx)
		s = nfa.states[s.id] // callers may hold an outdated copy
		C.Add(s)
		for _, e := range s.edges {
			if !e.IsEpsilon() {
				continue
			}
			next, err := nfa.lookup(e.Dest, s.id)
			if err != nil {
				return nil, err
			}
			stack = append(stack, next)
		}
	}
	return stateValues[T](C), nil
}

// Move returns all the states reachable from states by exactly one edge
// carrying a label equal to label. Labels are compared structurally, not by
// matching symbols. The result is sorted by ID.
func (nfa *NFA[T]) Move(states []State[T], label Label[T]) ([]State[T], error) {
	M := treeset.NewWith(stateComparator[T])
	for _, s := range states {
		for _, e := range s.edges {
			if !e.Label.Equals(label) {
				continue
			}
			next, err := nfa.lookup(e.Dest, s.id)
			if err != nil {
				return nil, err
			}
			M.Add(next)
		}
	}
	return stateValues[T](M), nil
}

// Dump is a debugging helper
func (nfa *NFA[T]) Dump() {
	tracer().Debugf("--- NFA with %d states -----------", nfa.Size())
	for _, s := range nfa.States() {
		if nfa.hasStart && s.ID() == nfa.start {
			tracer().Debugf("→ %v", s)
		} else {
			tracer().Debugf("  %v", s)
		}
	}
	tracer().Debugf("----------------------------------")
}

// --- Runs ------------------------------------------------------------------

// NewRun starts a run at the start state.
func (nfa *NFA[T]) NewRun() (*NFARun[T], error) {
	start, ok := nfa.Start()
	if !ok {
		return nil, ErrNoStartState
	}
	currents, err := nfa.EpsilonClosure(start)
	if err != nil {
		return nil, err
	}
	return &NFARun[T]{nfa: nfa, currents: currents, session: make(Session)}, nil
}

// StartRun is part of interface Automaton.
func (nfa *NFA[T]) StartRun() (Run[T], error) {
	run, err := nfa.NewRun()
	if err != nil {
		return nil, err
	}
	return run, nil
}

var _ Automaton[rune] = (*NFA[rune])(nil)

// ---------------------------------------------------------------------------

func stateValues[T constraints.Ordered](set *treeset.Set) []State[T] {
	states := make([]State[T], 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		states = append(states, it.Value().(State[T]))
	}
	return states
}
