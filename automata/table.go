package automata

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// TransitionTable is the transition function of a DFA as a sparse matrix.
// Rows are DFA states, ordered by ID, and columns are the distinct labels of
// the DFA. Most cells of a scanner's table are empty, therefore only
// non-empty cells are stored (COO, a.k.a. triplet-encoding).
//
//   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
//
// If a state has more than one edge with overlapping labels, the table
// nevertheless has entries for all of them. Runs use the first matching edge.
type TransitionTable[T constraints.Ordered] struct {
	states []StateID
	labels []Label[T]
	cells  []triplet // sorted by (row, col)
}

type triplet struct {
	row, col int
	dest     StateID
}

// Table creates the transition table of dfa.
func (dfa *DFA[T]) Table() *TransitionTable[T] {
	tt := &TransitionTable[T]{}
	ls := newLabelSet[T]()
	states := dfa.States()
	for _, s := range states {
		for _, e := range s.edges {
			ls.add(e.Label)
		}
	}
	tt.labels = ls.labels
	tt.states = make([]StateID, len(states))
	for row, s := range states {
		tt.states[row] = s.id
		for _, e := range s.edges {
			tt.set(row, tt.column(e.Label), e.Dest)
		}
	}
	return tt
}

// States returns the row headers.
func (tt *TransitionTable[T]) States() []StateID {
	return append([]StateID(nil), tt.states...)
}

// Labels returns the column headers.
func (tt *TransitionTable[T]) Labels() []Label[T] {
	return append([]Label[T](nil), tt.labels...)
}

// ValueCount returns the number of non-empty cells.
func (tt *TransitionTable[T]) ValueCount() int {
	return len(tt.cells)
}

// Value returns the destination at position (row, col), if any.
func (tt *TransitionTable[T]) Value(row, col int) (StateID, bool) {
	k := tt.search(row, col)
	if k < len(tt.cells) && tt.cells[k].row == row && tt.cells[k].col == col {
		return tt.cells[k].dest, true
	}
	return 0, false
}

// Dest returns the destination of the edge leaving state from with label.
func (tt *TransitionTable[T]) Dest(from StateID, label Label[T]) (StateID, bool) {
	row := sort.Search(len(tt.states), func(i int) bool { return tt.states[i] >= from })
	if row == len(tt.states) || tt.states[row] != from {
		return 0, false
	}
	col := tt.column(label)
	if col < 0 {
		return 0, false
	}
	return tt.Value(row, col)
}

func (tt *TransitionTable[T]) column(label Label[T]) int {
	for col, l := range tt.labels {
		if l.Equals(label) {
			return col
		}
	}
	return -1
}

// search finds the position of cell (row, col) or the position where it
// would have to be inserted.
func (tt *TransitionTable[T]) search(row, col int) int {
	return sort.Search(len(tt.cells), func(k int) bool {
		c := tt.cells[k]
		return c.row > row || c.row == row && c.col >= col
	})
}

// set keeps the first destination, if a cell is set more than once.
func (tt *TransitionTable[T]) set(row, col int, dest StateID) {
	at := tt.search(row, col)
	if at < len(tt.cells) && tt.cells[at].row == row && tt.cells[at].col == col {
		return
	}
	t := triplet{row: row, col: col, dest: dest}
	tt.cells = append(tt.cells, t)       // make room
	copy(tt.cells[at+1:], tt.cells[at:]) // copy remainder one index to the right
	tt.cells[at] = t
}
