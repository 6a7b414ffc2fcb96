package automata

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// === Subset Construction ===================================================

// Refer to "Compilers: Principles, Techniques, and Tools" by Aho, Lam, Sethi
// & Ullman, Section 3.7.1 Conversion of an NFA to a DFA

// dtransRecord is a row of the DFA transition table under construction. It
// represents an epsilon-closed set of NFA states, sorted by ID.
type dtransRecord[T constraints.Ordered] struct {
	id     StateID
	states []State[T]
	edges  []Edge[T]
}

// subsetKey identifies a set of NFA states. As sets are sorted by ID, equal
// sets always produce equal keys, regardless of the order of discovery.
func subsetKey[T constraints.Ordered](states []State[T]) string {
	var b strings.Builder
	for i, s := range states {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s.id)))
	}
	return b.String()
}

// ToDFA creates a DFA equivalent to nfa, using subset construction.
//
// DFA states get fresh IDs from a new IDBlock. If more than one NFA state
// of a subset is accepting, the resulting DFA state will accept with the
// payload of the NFA state with the lowest ID. All the payloads are available
// from DFA.AcceptedPayloads. Attributes of NFA states are collected into
// lists, ordered by NFA state ID.
//
// The DFA is partial: symbols without a transition lead nowhere.
func (nfa *NFA[T]) ToDFA() (*DFA[T], error) {
	tracer().Debugf("=== subset construction =========================================")
	start, ok := nfa.Start()
	if !ok {
		return nil, ErrNoStartState
	}
	labels := nfa.Labels()
	tracer().Debugf("NFA has %d states and %d distinct labels", nfa.Size(), len(labels))
	ids := NewIDBlock()
	S0, err := nfa.EpsilonClosure(start)
	if err != nil {
		return nil, err
	}
	id, err := ids.Next()
	if err != nil {
		return nil, err
	}
	rec0 := &dtransRecord[T]{id: id, states: S0}
	table := map[string]*dtransRecord[T]{subsetKey(S0): rec0}
	records := []*dtransRecord[T]{rec0}
	worklist := []*dtransRecord[T]{rec0}
	for len(worklist) > 0 {
		rec := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, label := range labels {
			moved, err := nfa.Move(rec.states, label)
			if err != nil {
				return nil, err
			}
			if len(moved) == 0 {
				continue
			}
			dest, err := nfa.EpsilonClosure(moved...)
			if err != nil {
				return nil, err
			}
			key := subsetKey(dest)
			target, found := table[key]
			if !found {
				id, err := ids.Next()
				if err != nil {
					return nil, fmt.Errorf("too many DFA states: %w", err)
				}
				target = &dtransRecord[T]{id: id, states: dest}
				table[key] = target
				records = append(records, target)
				worklist = append(worklist, target)
				tracer().Debugf("new DFA state %d = {%s}", id, key)
			}
			tracer().Debugf("Dtran[%d, %s] = %d", rec.id, label, target.id)
			rec.edges = append(rec.edges, NewEdge(label, target.id))
		}
	}
	dfa := NewDFA[T]()
	for _, rec := range records {
		state, payloads := rec.materialize()
		var err error
		if rec == rec0 {
			err = dfa.AddStartState(state)
		} else {
			err = dfa.AddState(state)
		}
		if err != nil { // subset construction must never produce these
			return nil, integrityError(fmt.Errorf("subset construction produced illegal state %d: %w",
				state.id, err))
		}
		if len(payloads) > 1 {
			dfa.payloads[state.id] = payloads
		}
	}
	tracer().Debugf("DFA has %d states", dfa.Size())
	return dfa, nil
}

// materialize creates a DFA state from a record. The payload of the first
// accepting NFA state wins; all accepted payloads are returned as well.
func (rec *dtransRecord[T]) materialize() (State[T], []interface{}) {
	state := NewState(rec.id, rec.edges...)
	var payloads []interface{}
	var attrs map[string][]interface{}
	for _, s := range rec.states {
		if s.IsAccepting() {
			if len(payloads) == 0 {
				state = state.AsAccepting(s.Payload())
			}
			payloads = append(payloads, s.Payload())
		}
		for k, v := range s.attrs {
			if attrs == nil {
				attrs = make(map[string][]interface{})
			}
			attrs[k] = append(attrs[k], v)
		}
	}
	for k, v := range attrs {
		state = state.WithAttr(k, v)
	}
	return state, payloads
}
