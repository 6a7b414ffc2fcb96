package automata

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/exp/constraints"
)

// Run is a single pass of input symbols through an automaton. Runs are
// not safe for concurrent use, but many runs may share one automaton.
type Run[T constraints.Ordered] interface {
	// Step consumes sym. It returns false if no edge matched, which is
	// not an error. Errors signal a broken automaton.
	Step(sym T) (bool, error)
	IsAcceptable() bool // is the run in an accepting state?
	HasEdges() bool     // may the run consume more symbols?
	AcceptedObject() (interface{}, error)
	AcceptedObjects() ([]interface{}, error)
}

// Automaton is anything a run may be started on. Both NFA and DFA are automata.
type Automaton[T constraints.Ordered] interface {
	StartRun() (Run[T], error)
}

// --- DFA runs --------------------------------------------------------------

// DFARun is a run on a DFA. It keeps a single current state.
type DFARun[T constraints.Ordered] struct {
	dfa     *DFA[T]
	current State[T]
	failed  bool
	session Session
}

// Step follows the first edge of the current state which matches sym.
// If the edge points to a state unknown to the DFA, the run fails and will
// not accept any more symbols.
func (r *DFARun[T]) Step(sym T) (bool, error) {
	if r.failed {
		return false, ErrRunFailed
	}
	for _, e := range r.current.edges {
		dest, ok := e.Try(sym, r.session)
		if !ok {
			continue
		}
		next, found := r.dfa.states[dest]
		if !found {
			r.failed = true
			return false, integrityError(fmt.Errorf("state %d (linked from %d): %w",
				dest, r.current.id, ErrUnknownState))
		}
		r.current = next
		return true, nil
	}
	return false, nil
}

// IsAcceptable is true if the current state is accepting.
func (r *DFARun[T]) IsAcceptable() bool {
	return !r.failed && r.current.accepting
}

// HasEdges is true if the current state has outgoing edges.
func (r *DFARun[T]) HasEdges() bool {
	return !r.failed && r.current.HasEdges()
}

// AcceptedObject returns the payload of the current state.
func (r *DFARun[T]) AcceptedObject() (interface{}, error) {
	if r.failed {
		return nil, ErrRunFailed
	}
	if !r.current.accepting {
		return nil, ErrNotAccepting
	}
	return r.current.payload, nil
}

// AcceptedObjects returns all payloads of the current state, see
// DFA.AcceptedPayloads.
func (r *DFARun[T]) AcceptedObjects() ([]interface{}, error) {
	if r.failed {
		return nil, ErrRunFailed
	}
	if !r.current.accepting {
		return nil, ErrNotAccepting
	}
	return r.dfa.AcceptedPayloads(r.current.id), nil
}

// Current returns the current state.
func (r *DFARun[T]) Current() State[T] {
	return r.current
}

// Session returns the run's session.
func (r *DFARun[T]) Session() Session {
	return r.session
}

// --- NFA runs --------------------------------------------------------------

// NFARun is a run on an NFA. It keeps an epsilon-closed set of current states.
// Other than a DFARun, every matching edge is followed.
type NFARun[T constraints.Ordered] struct {
	nfa      *NFA[T]
	currents []State[T]
	session  Session
}

// Step moves every current state along all the edges matching sym, then
// closes the resulting set over epsilon edges. If no edge matches, the
// current states are left untouched, as is the case for DFA runs.
func (r *NFARun[T]) Step(sym T) (bool, error) {
	next := treeset.NewWith(stateComparator[T])
	for _, s := range r.currents {
		for _, e := range s.edges {
			dest, ok := e.Try(sym, r.session)
			if !ok {
				continue
			}
			st, err := r.nfa.lookup(dest, s.id)
			if err != nil {
				return false, err
			}
			next.Add(st)
		}
	}
	if next.Empty() {
		return false, nil
	}
	currents, err := r.nfa.EpsilonClosure(stateValues[T](next)...)
	if err != nil {
		return false, err
	}
	r.currents = currents
	return true, nil
}

// IsAcceptable is true if any current state is accepting.
func (r *NFARun[T]) IsAcceptable() bool {
	for _, s := range r.currents {
		if s.accepting {
			return true
		}
	}
	return false
}

// HasEdges is true if any current state has an outgoing edge which consumes
// a symbol. Epsilon edges do not count, as currents are already closed over them.
func (r *NFARun[T]) HasEdges() bool {
	for _, s := range r.currents {
		for _, e := range s.edges {
			if !e.IsEpsilon() {
				return true
			}
		}
	}
	return false
}

// AcceptedObject returns the payload of the accepting current state with the
// lowest ID, which is the same payload a DFA built by subset construction
// would report.
func (r *NFARun[T]) AcceptedObject() (interface{}, error) {
	for _, s := range r.currents {
		if s.accepting {
			return s.payload, nil
		}
	}
	return nil, ErrNotAccepting
}

// AcceptedObjects returns the payloads of all accepting current states,
// ordered by state ID.
func (r *NFARun[T]) AcceptedObjects() ([]interface{}, error) {
	var objs []interface{}
	for _, s := range r.currents {
		if s.accepting {
			objs = append(objs, s.payload)
		}
	}
	if len(objs) == 0 {
		return nil, ErrNotAccepting
	}
	return objs, nil
}

// Currents returns the current states, sorted by ID.
func (r *NFARun[T]) Currents() []State[T] {
	c := make([]State[T], len(r.currents))
	copy(c, r.currents)
	return c
}

// Session returns the run's session.
func (r *NFARun[T]) Session() Session {
	return r.session
}
