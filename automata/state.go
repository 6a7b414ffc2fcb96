package automata

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --- Edges -----------------------------------------------------------------

// Edge is a labeled transition to a destination state. Destinations are
// referenced by ID, not by pointer. This way states may be re-linked while
// composing automata, without copying whole graphs.
type Edge[T constraints.Ordered] struct {
	Label Label[T]
	Dest  StateID
}

// NewEdge creates an edge to state dest.
func NewEdge[T constraints.Ordered](label Label[T], dest StateID) Edge[T] {
	return Edge[T]{Label: label, Dest: dest}
}

// EpsilonEdge creates a non-consuming edge to state dest.
func EpsilonEdge[T constraints.Ordered](dest StateID) Edge[T] {
	return Edge[T]{Label: Epsilon[T](), Dest: dest}
}

// Try returns the destination of e if e's label matches sym.
func (e Edge[T]) Try(sym T, session Session) (StateID, bool) {
	if e.Label.Match(sym, session) {
		return e.Dest, true
	}
	return 0, false
}

// IsEpsilon is true for non-consuming edges.
func (e Edge[T]) IsEpsilon() bool {
	return IsEpsilon(e.Label)
}

// SameLabel is true if e and other have structurally equal labels.
func (e Edge[T]) SameLabel(other Edge[T]) bool {
	return e.Label.Equals(other.Label)
}

func (e Edge[T]) String() string {
	return fmt.Sprintf("--%s--> %d", e.Label, e.Dest)
}

// --- States ----------------------------------------------------------------

// State is a state of an automaton. States are immutable: all the
// modifying methods return a new state, leaving the receiver untouched.
//
// The order of edges is significant. When stepping a run, the first edge
// matching an input symbol wins.
type State[T constraints.Ordered] struct {
	id        StateID
	edges     []Edge[T]
	accepting bool
	payload   interface{}
	attrs     map[string]interface{}
}

// NewState creates a non-accepting state.
func NewState[T constraints.Ordered](id StateID, edges ...Edge[T]) State[T] {
	return State[T]{
		id:    id,
		edges: slices.Clone(edges),
	}
}

// NewAcceptingState creates an accepting state, which will report payload
// as its accepted object. A payload may be nil.
func NewAcceptingState[T constraints.Ordered](id StateID, payload interface{}, edges ...Edge[T]) State[T] {
	s := NewState(id, edges...)
	s.accepting = true
	s.payload = payload
	return s
}

// ID returns the state's ID.
func (s State[T]) ID() StateID {
	return s.id
}

// Edges returns the outgoing edges in order.
func (s State[T]) Edges() []Edge[T] {
	return slices.Clone(s.edges)
}

// IsAccepting is true for accepting states.
func (s State[T]) IsAccepting() bool {
	return s.accepting
}

// Payload returns the accepted object of an accepting state and nil otherwise.
func (s State[T]) Payload() interface{} {
	return s.payload
}

// Attr returns a client-defined attribute.
func (s State[T]) Attr(key string) (interface{}, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// Attrs returns a copy of all client-defined attributes.
func (s State[T]) Attrs() map[string]interface{} {
	return maps.Clone(s.attrs)
}

// HasEdges is true if any edge leaves s.
func (s State[T]) HasEdges() bool {
	return len(s.edges) > 0
}

// HasEpsilonEdge is true if any edge leaving s is an epsilon edge.
func (s State[T]) HasEpsilonEdge() bool {
	for _, e := range s.edges {
		if e.IsEpsilon() {
			return true
		}
	}
	return false
}

// HasDuplicateEdge is true if two edges leaving s carry equal labels.
func (s State[T]) HasDuplicateEdge() bool {
	ls := newLabelSet[T]()
	for _, e := range s.edges {
		if !ls.add(e.Label) {
			return true
		}
	}
	return false
}

// WithEdges returns a copy of s with edges appended.
func (s State[T]) WithEdges(edges ...Edge[T]) State[T] {
	s.edges = append(slices.Clone(s.edges), edges...)
	return s
}

// AsAccepting returns an accepting copy of s with the given payload.
func (s State[T]) AsAccepting(payload interface{}) State[T] {
	s.accepting = true
	s.payload = payload
	return s
}

// AsNonAccepting returns a non-accepting copy of s.
func (s State[T]) AsNonAccepting() State[T] {
	s.accepting = false
	s.payload = nil
	return s
}

// WithAttr returns a copy of s with an attribute set.
func (s State[T]) WithAttr(key string, value interface{}) State[T] {
	attrs := maps.Clone(s.attrs)
	if attrs == nil {
		attrs = make(map[string]interface{})
	}
	attrs[key] = value
	s.attrs = attrs
	return s
}

// Redirect returns a copy of s where all edges pointing to state from will
// point to state to instead. If no edge points to from, s is returned.
func (s State[T]) Redirect(from, to StateID) State[T] {
	i := slices.IndexFunc(s.edges, func(e Edge[T]) bool { return e.Dest == from })
	if i < 0 {
		return s
	}
	edges := slices.Clone(s.edges)
	for j := i; j < len(edges); j++ {
		if edges[j].Dest == from {
			edges[j].Dest = to
		}
	}
	s.edges = edges
	return s
}

func (s State[T]) String() string {
	var b strings.Builder
	if s.accepting {
		b.WriteString(fmt.Sprintf("(state %d | accept %v", s.id, s.payload))
	} else {
		b.WriteString(fmt.Sprintf("(state %d", s.id))
	}
	for _, e := range s.edges {
		b.WriteString(" | ")
		b.WriteString(e.String())
	}
	b.WriteString(")")
	return b.String()
}

// ---------------------------------------------------------------------------

// stateComparator sorts states by ID. We need this for gods' sets.
func stateComparator[T constraints.Ordered](s1, s2 interface{}) int {
	return utils.IntComparator(int(s1.(State[T]).id), int(s2.(State[T]).id))
}
