package automata

import "errors"

// Construction errors.
var (
	ErrEmptyFragmentList = errors.New("non-empty list of fragments required")
	ErrEmptyFragment     = errors.New("fragment must contain at least one state")
	ErrIDSpaceExhausted  = errors.New("state ID block exhausted")
	ErrEpsilonEdge       = errors.New("DFA state has an epsilon edge")
	ErrDuplicateEdge     = errors.New("DFA state has duplicate edges")
	ErrNoStartState      = errors.New("start state is not set")
)

// ErrUnknownState flags an edge pointing to a state which is not part
// of the automaton.
var ErrUnknownState = errors.New("state not found")

// Run-usage errors.
var (
	ErrRunFailed    = errors.New("run has already failed due to an illegal structure of the automaton")
	ErrNotAccepting = errors.New("current state is not acceptable")
)
