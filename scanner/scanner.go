package scanner

import (
	"fmt"
	"io"
	"reflect"

	"github.com/npillmayer/lexfa"
	"github.com/npillmayer/lexfa/automata"
	"golang.org/x/exp/constraints"
)

// Tokenizer is a scanner interface.
type Tokenizer[T constraints.Ordered] interface {
	// HasNext is true if another token is available. It returns lexical
	// errors, but never io.EOF.
	HasNext() (bool, error)
	// Next returns the next token. At the end of input it returns io.EOF.
	Next() (Token[T], error)
}

// Token is a lexeme recognized by a scanner, together with the payload of
// the accepting automaton state.
type Token[T constraints.Ordered] struct {
	Lexeme  []T
	Payload interface{}
	Span    lexfa.Span
}

func (t Token[T]) String() string {
	return fmt.Sprintf("%v %q %s", t.Payload, Lexeme(t.Lexeme), t.Span)
}

// Scanner is a longest-match scanner driving an automaton over a source.
// Create one with New.
type Scanner[T constraints.Ordered] struct {
	fa   automata.Automaton[T]
	src  Source[T]
	next *Token[T] // buffered token
	err  error     // scanners stop at the first error
	skip []interface{}
}

var _ Tokenizer[rune] = (*Scanner[rune])(nil)

// New creates a scanner for a source. fa may be a DFA or an NFA. For
// automata built by subset construction the payload of a token will be the
// one the DFA reports, see automata.NFA.ToDFA.
func New[T constraints.Ordered](fa automata.Automaton[T], src Source[T], opts ...Option) *Scanner[T] {
	s := &Scanner[T]{fa: fa, src: src}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	s.skip = cfg.skip
	return s
}

// HasNext is part of interface Tokenizer.
func (s *Scanner[T]) HasNext() (bool, error) {
	for {
		if s.next != nil {
			return true, nil
		}
		if s.err != nil {
			return false, s.err
		}
		if !s.src.HasNext() {
			return false, nil
		}
		token, err := s.scan()
		if err != nil {
			s.err = err
			return false, err
		}
		if s.skips(token.Payload) {
			tracer().Debugf("skipping %v", token)
			continue
		}
		s.next = &token
	}
}

// Next is part of interface Tokenizer.
func (s *Scanner[T]) Next() (Token[T], error) {
	ok, err := s.HasNext()
	if err != nil {
		return Token[T]{}, err
	}
	if !ok {
		return Token[T]{}, io.EOF
	}
	token := *s.next
	s.next = nil
	return token, nil
}

// All reads all the remaining tokens. It stops at the first error.
func (s *Scanner[T]) All() ([]Token[T], error) {
	var tokens []Token[T]
	for {
		token, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		} else if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
}

// scan recognizes the longest prefix of the remaining input the automaton
// accepts.
func (s *Scanner[T]) scan() (Token[T], error) {
	run, err := s.fa.StartRun()
	if err != nil {
		return Token[T]{}, err
	}
	for {
		sym, ok := s.src.Get()
		if !ok {
			break
		}
		moved, err := run.Step(sym)
		if err != nil {
			return Token[T]{}, err
		}
		if moved {
			continue
		}
		if !run.IsAcceptable() {
			return Token[T]{}, s.lexicalError()
		}
		if err := s.src.Unget(); err != nil {
			return Token[T]{}, err
		}
		token, err := s.token(run)
		if err == nil && len(token.Lexeme) == 0 {
			// an empty match would not advance the input
			s.src.Get()
			return Token[T]{}, s.lexicalError()
		}
		return token, err
	}
	if !run.IsAcceptable() {
		return Token[T]{}, s.lexicalError()
	}
	return s.token(run)
}

func (s *Scanner[T]) token(run automata.Run[T]) (Token[T], error) {
	payload, err := run.AcceptedObject()
	if err != nil {
		return Token[T]{}, err
	}
	token := Token[T]{
		Lexeme:  s.src.Extract(),
		Payload: payload,
		Span:    s.span(),
	}
	tracer().Debugf("token %v", token)
	return token, nil
}

func (s *Scanner[T]) lexicalError() error {
	lexeme := s.src.Extract()
	return &LexicalError{Lexeme: Lexeme(lexeme), Span: s.span()}
}

func (s *Scanner[T]) span() lexfa.Span {
	if sr, ok := s.src.(SpanReporter); ok {
		return sr.LastSpan()
	}
	return lexfa.Span{}
}

// skips compares payloads with ==, or with reflect.DeepEqual for types which
// are not comparable (slices, maps, funcs), where == would panic.
func (s *Scanner[T]) skips(payload interface{}) bool {
	pt := reflect.TypeOf(payload)
	for _, p := range s.skip {
		if reflect.TypeOf(p) != pt {
			continue
		}
		if pt == nil || pt.Comparable() {
			if p == payload {
				return true
			}
		} else if reflect.DeepEqual(p, payload) {
			return true
		}
	}
	return false
}

// --- Scanner options -------------------------------------------------------

type config struct {
	skip []interface{}
}

// Option configures a scanner.
type Option func(*config)

// Skip makes the scanner drop tokens with one of the given payloads, e.g.
// whitespace or comments.
func Skip(payloads ...interface{}) Option {
	return func(cfg *config) {
		cfg.skip = append(cfg.skip, payloads...)
	}
}

// Lexeme is a helper function to receive a string from a lexeme.
func Lexeme(lexeme interface{}) string {
	switch l := lexeme.(type) {
	case string:
		return l
	case []rune:
		return string(l)
	case []byte:
		return string(l)
	default:
		return fmt.Sprintf("%v", l)
	}
}
