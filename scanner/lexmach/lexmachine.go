package lexmach

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/lexfa"
	"github.com/npillmayer/lexfa/scanner"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lexfa.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexfa.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an initializer
// for regular expressions and a map of literals ("(", "+", "if", …) to their
// payloads. Literals are added after the regular expressions of init.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals map[string]interface{}) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	lits := maps.Keys(literals)
	slices.Sort(lits)
	for _, lit := range lits {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(literals[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// scanner.Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	text := []byte(input)
	s, err := lm.Lexer.Scanner(text)
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, text: text}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// scanner.Tokenizer interface. Like the scanners of package scanner, it stops
// at the first error.
type LMScanner struct {
	scanner *lexmachine.Scanner
	text    []byte
	next    *scanner.Token[rune]
	eof     bool
	err     error
}

var _ scanner.Tokenizer[rune] = (*LMScanner)(nil)

// HasNext is part of the Tokenizer interface.
func (lms *LMScanner) HasNext() (bool, error) {
	if lms.next != nil {
		return true, nil
	}
	if lms.err != nil {
		return false, lms.err
	}
	if lms.eof || lms.scanner == nil {
		return false, nil
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.err = lms.convert(err)
		return false, lms.err
	}
	if eof {
		lms.eof = true
		return false, nil
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	lms.next = &scanner.Token[rune]{
		Lexeme:  []rune(string(token.Lexeme)),
		Payload: token.Value,
		Span:    lexfa.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
	return true, nil
}

// Next is part of the Tokenizer interface.
func (lms *LMScanner) Next() (scanner.Token[rune], error) {
	ok, err := lms.HasNext()
	if err != nil {
		return scanner.Token[rune]{}, err
	}
	if !ok {
		return scanner.Token[rune]{}, io.EOF
	}
	token := *lms.next
	lms.next = nil
	return token, nil
}

// All reads all the remaining tokens. It stops at the first error.
func (lms *LMScanner) All() ([]scanner.Token[rune], error) {
	var tokens []scanner.Token[rune]
	for {
		token, err := lms.Next()
		if err == io.EOF {
			return tokens, nil
		} else if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
}

// convert makes unconsumed input a lexical error.
func (lms *LMScanner) convert(err error) error {
	var ui *machines.UnconsumedInput
	if !errors.As(err, &ui) {
		return err
	}
	start, end := ui.StartTC, ui.FailTC
	if end <= start && start < len(lms.text) {
		_, size := utf8.DecodeRune(lms.text[start:])
		end = start + size
	}
	if end > len(lms.text) {
		end = len(lms.text)
	}
	if start > end {
		start = end
	}
	return &scanner.LexicalError{
		Lexeme: string(lms.text[start:end]),
		Span:   lexfa.Span{uint64(start), uint64(end)},
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token,
// carrying payload.
func MakeToken(payload interface{}) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(0, payload, m), nil
	}
}
