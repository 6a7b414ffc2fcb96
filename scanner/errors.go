package scanner

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lexfa"
)

// ErrNoPushback is returned by Unget if no symbol may be pushed back, i.e.
// if Get has not been called since the last Unget or Extract.
var ErrNoPushback = errors.New("call Get before Unget")

// ErrLexical matches every LexicalError with errors.Is.
var ErrLexical = errors.New("lexical error")

// LexicalError is returned by scanners if the input does not form a token.
type LexicalError struct {
	Lexeme string     // the symbols consumed in the failed attempt
	Span   lexfa.Span // position of the lexeme, if known
}

func (e *LexicalError) Error() string {
	if e.Span.IsNull() {
		return fmt.Sprintf("lexical error near %q", e.Lexeme)
	}
	return fmt.Sprintf("lexical error near %q at %s", e.Lexeme, e.Span)
}

// Is makes LexicalError match ErrLexical.
func (e *LexicalError) Is(target error) bool {
	return target == ErrLexical
}
