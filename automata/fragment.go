package automata

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Fragment is a partial automaton with a single entry state (its head).
// The edges of the last state are the fragment's dangling exits, where
// other fragments get attached.
//
// Fragments are immutable. Concatenation and alternation always create a
// new fragment.
type Fragment[T constraints.Ordered] struct {
	states []State[T]
}

// NewFragment creates a fragment from a non-empty list of states. The
// first state will be the entry, the last state will carry the exits.
func NewFragment[T constraints.Ordered](states ...State[T]) (Fragment[T], error) {
	if len(states) == 0 {
		return Fragment[T]{}, ErrEmptyFragment
	}
	return Fragment[T]{states: slices.Clone(states)}, nil
}

// IsEmpty is true for the zero fragment.
func (f Fragment[T]) IsEmpty() bool {
	return len(f.states) == 0
}

// States returns all the states of f in order.
func (f Fragment[T]) States() []State[T] {
	return slices.Clone(f.states)
}

// Size returns the number of states in f.
func (f Fragment[T]) Size() int {
	return len(f.states)
}

// Head returns the entry state.
func (f Fragment[T]) Head() State[T] {
	return f.states[0]
}

// Last returns the last state.
func (f Fragment[T]) Last() State[T] {
	return f.states[len(f.states)-1]
}

// Tail returns all states except the head.
func (f Fragment[T]) Tail() []State[T] {
	return slices.Clone(f.states[1:])
}

// Init returns all states except the last one.
func (f Fragment[T]) Init() []State[T] {
	return slices.Clone(f.states[:len(f.states)-1])
}

// Concat creates a fragment which matches f, followed by o.
//
// The head of o is not copied into the new fragment. Instead, its edges are
// appended to the last state of f. Edges of o pointing back to its head are
// redirected to f's last state.
func (f Fragment[T]) Concat(o Fragment[T]) Fragment[T] {
	if f.IsEmpty() {
		return o
	} else if o.IsEmpty() {
		return f
	}
	from, to := o.Head().ID(), f.Last().ID()
	states := make([]State[T], 0, len(f.states)+len(o.states)-1)
	states = append(states, f.states[:len(f.states)-1]...)
	states = append(states, f.Last().WithEdges(o.Head().edges...).Redirect(from, to))
	for _, s := range o.states[1:] {
		states = append(states, s.Redirect(from, to))
	}
	tracer().Debugf("concat fragments: splice %d into %d", from, to)
	return Fragment[T]{states: states}
}

// Merge creates a fragment which matches either f or o.
// See MergeAll.
func (f Fragment[T]) Merge(o Fragment[T]) (Fragment[T], error) {
	return MergeAll(f, o)
}

// AsNonAccepting returns a copy of f where no state is accepting.
func (f Fragment[T]) AsNonAccepting() Fragment[T] {
	states := make([]State[T], len(f.states))
	for i, s := range f.states {
		states[i] = s.AsNonAccepting()
	}
	return Fragment[T]{states: states}
}

// AsLastAccepting returns a copy of f where the last state accepts with payload.
func (f Fragment[T]) AsLastAccepting(payload interface{}) Fragment[T] {
	states := slices.Clone(f.states)
	states[len(states)-1] = f.Last().AsAccepting(payload)
	return Fragment[T]{states: states}
}

// ConcatAll concatenates fragments, from left to right.
func ConcatAll[T constraints.Ordered](fragments ...Fragment[T]) (Fragment[T], error) {
	if len(fragments) == 0 {
		return Fragment[T]{}, ErrEmptyFragmentList
	}
	result := fragments[0]
	for _, f := range fragments[1:] {
		result = result.Concat(f)
	}
	if result.IsEmpty() {
		return result, ErrEmptyFragment
	}
	return result, nil
}

// MergeAll creates a fragment matching any of the given fragments (alternation).
//
// Two new states are created, using a fresh IDBlock: a head with epsilon
// edges to the heads of all fragments, and a last state without any edges.
// The last state of every fragment gets an additional epsilon edge to the new
// last state:
//
//        ε  ┌──────┐  ε
//      ┌───▶│ f1 … │───┐
//   (head)  └──────┘   ▼
//      │ ε  ┌──────┐  (last)
//      └───▶│ f2 … │───▲
//           └──────┘  ε
//
func MergeAll[T constraints.Ordered](fragments ...Fragment[T]) (Fragment[T], error) {
	if len(fragments) == 0 {
		return Fragment[T]{}, ErrEmptyFragmentList
	}
	for _, f := range fragments {
		if f.IsEmpty() {
			return Fragment[T]{}, ErrEmptyFragment
		}
	}
	ids := NewIDBlock()
	headID, err := ids.Next()
	if err != nil {
		return Fragment[T]{}, err
	}
	lastID, err := ids.Next()
	if err != nil {
		return Fragment[T]{}, err
	}
	size := 2
	edges := make([]Edge[T], len(fragments))
	for i, f := range fragments {
		edges[i] = EpsilonEdge[T](f.Head().ID())
		size += f.Size()
	}
	states := make([]State[T], 0, size)
	states = append(states, NewState(headID, edges...))
	for _, f := range fragments {
		states = append(states, f.states[:len(f.states)-1]...)
		states = append(states, f.Last().WithEdges(EpsilonEdge[T](lastID)))
	}
	states = append(states, NewState[T](lastID))
	tracer().Debugf("merged %d fragments: head=%d, last=%d", len(fragments), headID, lastID)
	return Fragment[T]{states: states}, nil
}
