package automata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cnf/structhash"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Session is a per-run scratch area handed to labels on every match. Labels with
// state-dependent matching may read and write to it. A session is never shared
// between runs.
type Session map[string]interface{}

// Label is a predicate over input symbols. Labels are attached to edges and
// decide whether an edge may be taken for a given input symbol.
//
// Equals tests for structural equality, which is needed for subset construction.
// It is not the same as matching the same set of symbols: Range('a','c') and
// OneOf('a','b','c') are different labels.
type Label[T constraints.Ordered] interface {
	Match(sym T, session Session) bool
	Equals(other Label[T]) bool
	String() string
}

// --- Epsilon ---------------------------------------------------------------

type epsilonLabel[T constraints.Ordered] struct{}

// Epsilon returns the label for non-consuming transitions. It never matches
// a symbol and is equal only to itself.
func Epsilon[T constraints.Ordered]() Label[T] {
	return epsilonLabel[T]{}
}

// IsEpsilon is true if l is the epsilon label.
func IsEpsilon[T constraints.Ordered](l Label[T]) bool {
	_, ok := l.(epsilonLabel[T])
	return ok
}

func (epsilonLabel[T]) Match(T, Session) bool { return false }

func (epsilonLabel[T]) Equals(other Label[T]) bool {
	return IsEpsilon(other)
}

func (epsilonLabel[T]) String() string { return "ε" }

// --- Exact -----------------------------------------------------------------

type exactLabel[T constraints.Ordered] struct {
	V T
}

// Exact returns a label matching exactly symbol v.
func Exact[T constraints.Ordered](v T) Label[T] {
	return exactLabel[T]{V: v}
}

func (l exactLabel[T]) Match(sym T, _ Session) bool {
	return sym == l.V
}

func (l exactLabel[T]) Equals(other Label[T]) bool {
	o, ok := other.(exactLabel[T])
	return ok && o.V == l.V
}

func (l exactLabel[T]) String() string {
	return symString(l.V)
}

// --- Range -----------------------------------------------------------------

type rangeLabel[T constraints.Ordered] struct {
	Lo, Hi T
}

// Range returns a label matching every symbol s with lo ≤ s ≤ hi.
func Range[T constraints.Ordered](lo, hi T) Label[T] {
	return rangeLabel[T]{Lo: lo, Hi: hi}
}

func (l rangeLabel[T]) Match(sym T, _ Session) bool {
	return l.Lo <= sym && sym <= l.Hi
}

func (l rangeLabel[T]) Equals(other Label[T]) bool {
	o, ok := other.(rangeLabel[T])
	return ok && o.Lo == l.Lo && o.Hi == l.Hi
}

func (l rangeLabel[T]) String() string {
	return fmt.Sprintf("[%s-%s]", symString(l.Lo), symString(l.Hi))
}

// --- Sets ------------------------------------------------------------------

type oneOfLabel[T constraints.Ordered] struct {
	Members []T
}

// OneOf returns a label matching any of the given symbols.
func OneOf[T constraints.Ordered](members ...T) Label[T] {
	return oneOfLabel[T]{Members: normalize(members)}
}

// OneOfRunes is a shortcut for OneOf([]rune(s)...).
func OneOfRunes(s string) Label[rune] {
	return OneOf([]rune(s)...)
}

func (l oneOfLabel[T]) Match(sym T, _ Session) bool {
	return slices.Contains(l.Members, sym)
}

func (l oneOfLabel[T]) Equals(other Label[T]) bool {
	o, ok := other.(oneOfLabel[T])
	return ok && slices.Equal(o.Members, l.Members)
}

func (l oneOfLabel[T]) String() string {
	return "{" + setString(l.Members) + "}"
}

type noneOfLabel[T constraints.Ordered] struct {
	Members []T
}

// NoneOf returns a label matching every symbol except the given ones.
func NoneOf[T constraints.Ordered](members ...T) Label[T] {
	return noneOfLabel[T]{Members: normalize(members)}
}

// NoneOfRunes is a shortcut for NoneOf([]rune(s)...).
func NoneOfRunes(s string) Label[rune] {
	return NoneOf([]rune(s)...)
}

func (l noneOfLabel[T]) Match(sym T, _ Session) bool {
	return !slices.Contains(l.Members, sym)
}

func (l noneOfLabel[T]) Equals(other Label[T]) bool {
	o, ok := other.(noneOfLabel[T])
	return ok && slices.Equal(o.Members, l.Members)
}

func (l noneOfLabel[T]) String() string {
	return "{^" + setString(l.Members) + "}"
}

// sets are kept sorted and free of duplicates, which makes equality structural
func normalize[T constraints.Ordered](members []T) []T {
	m := slices.Clone(members)
	slices.Sort(m)
	return slices.Compact(m)
}

// --- Any -------------------------------------------------------------------

type anyLabel[T constraints.Ordered] struct {
	Labels []Label[T]
}

// Any returns a label matching if any of the given labels matches. Labels are
// tried in order and the first match wins.
func Any[T constraints.Ordered](labels ...Label[T]) Label[T] {
	return anyLabel[T]{Labels: slices.Clone(labels)}
}

func (l anyLabel[T]) Match(sym T, session Session) bool {
	for _, child := range l.Labels {
		if child.Match(sym, session) {
			return true
		}
	}
	return false
}

func (l anyLabel[T]) Equals(other Label[T]) bool {
	o, ok := other.(anyLabel[T])
	if !ok || len(o.Labels) != len(l.Labels) {
		return false
	}
	for i, child := range l.Labels {
		if !child.Equals(o.Labels[i]) {
			return false
		}
	}
	return true
}

func (l anyLabel[T]) String() string {
	s := make([]string, len(l.Labels))
	for i, child := range l.Labels {
		s[i] = child.String()
	}
	return "(" + strings.Join(s, "|") + ")"
}

// --- Label sets ------------------------------------------------------------

// labelSet collects structurally distinct labels in order of insertion.
// Labels are indexed by a structural hash; hash collisions are resolved
// by Equals.
type labelSet[T constraints.Ordered] struct {
	labels []Label[T]
	index  map[string][]Label[T]
}

func newLabelSet[T constraints.Ordered]() *labelSet[T] {
	return &labelSet[T]{index: make(map[string][]Label[T])}
}

func (ls *labelSet[T]) add(l Label[T]) bool {
	key := labelKey(l)
	for _, x := range ls.index[key] {
		if x.Equals(l) {
			return false
		}
	}
	ls.index[key] = append(ls.index[key], l)
	ls.labels = append(ls.labels, l)
	return true
}

// labelKey hashes built-in labels structurally. Client-defined labels share
// a single bucket, as we know nothing about their notion of equality. The
// same holds for Any-labels, which may contain client-defined labels.
func labelKey[T constraints.Ordered](l Label[T]) (key string) {
	switch l.(type) {
	case exactLabel[T], rangeLabel[T], oneOfLabel[T], noneOfLabel[T]:
	case anyLabel[T]:
		return fmt.Sprintf("%T", l)
	default:
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			key = fmt.Sprintf("%T", l)
		}
	}()
	h, err := structhash.Hash(l, 1)
	if err != nil {
		return fmt.Sprintf("%T", l)
	}
	return fmt.Sprintf("%T:%s", l, h)
}

// ---------------------------------------------------------------------------

func symString[T constraints.Ordered](v T) string {
	switch x := interface{}(v).(type) {
	case rune:
		return strconv.QuoteRune(x)
	case string:
		return strconv.Quote(x)
	}
	return fmt.Sprintf("%v", v)
}

func setString[T constraints.Ordered](members []T) string {
	s := make([]string, len(members))
	for i, m := range members {
		s[i] = symString(m)
	}
	return strings.Join(s, ",")
}
