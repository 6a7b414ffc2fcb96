package scanner

import (
	"github.com/npillmayer/lexfa"
	"golang.org/x/exp/constraints"
)

// Source is a source of input symbols for scanners.
type Source[T constraints.Ordered] interface {
	// HasNext is true if Get will return another symbol.
	HasNext() bool
	// Get returns the next symbol. At the end of input it returns false.
	Get() (T, bool)
	// Unget pushes back the symbol returned by the most recent call to Get.
	// It fails with ErrNoPushback if there was no Get since the last Unget
	// or Extract.
	Unget() error
	// Extract returns all the symbols handed out since the previous call to
	// Extract, and clears them. A pending pushback is no longer possible.
	Extract() []T
}

// SpanReporter is implemented by sources which are able to tell the position
// of the symbols returned by the most recent call to Extract.
type SpanReporter interface {
	LastSpan() lexfa.Span
}

// SliceSource is a Source reading from a slice of symbols. Spans are indices
// into the slice.
type SliceSource[T constraints.Ordered] struct {
	syms     []T
	pos      int  // forwarding pointer
	mark     int  // start of current lexeme
	canUnget bool // has Get been called since Unget/Extract?
	last     lexfa.Span
}

var _ Source[rune] = (*SliceSource[rune])(nil)
var _ SpanReporter = (*SliceSource[rune])(nil)

// NewSliceSource creates a source for syms. syms must not be modified while
// the source is in use.
func NewSliceSource[T constraints.Ordered](syms []T) *SliceSource[T] {
	return &SliceSource[T]{syms: syms}
}

// HasNext is part of interface Source.
func (src *SliceSource[T]) HasNext() bool {
	return src.pos < len(src.syms)
}

// Get is part of interface Source.
func (src *SliceSource[T]) Get() (T, bool) {
	if !src.HasNext() {
		var zero T
		return zero, false
	}
	sym := src.syms[src.pos]
	src.pos++
	src.canUnget = true
	return sym, true
}

// Unget is part of interface Source.
func (src *SliceSource[T]) Unget() error {
	if !src.canUnget {
		return ErrNoPushback
	}
	src.canUnget = false
	src.pos--
	return nil
}

// Extract is part of interface Source.
func (src *SliceSource[T]) Extract() []T {
	src.canUnget = false
	lexeme := make([]T, src.pos-src.mark)
	copy(lexeme, src.syms[src.mark:src.pos])
	src.last = lexfa.Span{uint64(src.mark), uint64(src.pos)}
	src.mark = src.pos
	return lexeme
}

// LastSpan is part of interface SpanReporter.
func (src *SliceSource[T]) LastSpan() lexfa.Span {
	return src.last
}
