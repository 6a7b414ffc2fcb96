package literal

import (
	"fmt"

	"github.com/npillmayer/lexfa/automata"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Sequence compiles a sequence of symbols into a fragment, which accepts
// exactly this sequence, reporting payload. An empty sequence results in a
// fragment accepting the empty input.
func Sequence[T constraints.Ordered](syms []T, payload interface{}) (automata.Fragment[T], error) {
	ids := automata.NewIDBlock()
	states := make([]automata.State[T], 0, len(syms)+2)
	for _, sym := range syms {
		id, err := ids.Next()
		if err != nil {
			return automata.Fragment[T]{}, fmt.Errorf("literal too long: %w", err)
		}
		next, _ := ids.Peek()
		states = append(states, automata.NewState(id, automata.NewEdge(automata.Exact(sym), next)))
	}
	pre, err := ids.Next()
	if err != nil {
		return automata.Fragment[T]{}, fmt.Errorf("literal too long: %w", err)
	}
	last, err := ids.Next()
	if err != nil {
		return automata.Fragment[T]{}, fmt.Errorf("literal too long: %w", err)
	}
	states = append(states, automata.NewState(pre, automata.EpsilonEdge[T](last)))
	states = append(states, automata.NewAcceptingState[T](last, payload))
	tracer().Debugf("literal %v compiled to states %d…%d", syms, states[0].ID(), last)
	return automata.NewFragment(states...)
}

// String compiles the runes of s into a fragment. See Sequence.
func String(s string, payload interface{}) (automata.Fragment[rune], error) {
	return Sequence([]rune(s), payload)
}

// Strings compiles each of the literals into a fragment, reporting the
// corresponding payload, and merges all of them into one.
func Strings(literals map[string]interface{}) (automata.Fragment[rune], error) {
	if len(literals) == 0 {
		return automata.Fragment[rune]{}, automata.ErrEmptyFragmentList
	}
	keys := maps.Keys(literals)
	slices.Sort(keys) // deterministic state IDs
	fragments := make([]automata.Fragment[rune], len(keys))
	for i, k := range keys {
		f, err := String(k, literals[k])
		if err != nil {
			return automata.Fragment[rune]{}, err
		}
		fragments[i] = f
	}
	return automata.MergeAll(fragments...)
}
