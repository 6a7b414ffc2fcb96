package arith

import (
	"io"
	"sync"

	"github.com/npillmayer/lexfa/automata"
	"github.com/npillmayer/lexfa/automata/literal"
	"github.com/npillmayer/lexfa/scanner"
)

// Kind is the type of an arithmetic token. Kinds are the payloads of
// accepting states.
type Kind string

// Token kinds
const (
	OpAdd        Kind = "OP_ADD"
	OpSubtract   Kind = "OP_SUBTRACT"
	OpMultiply   Kind = "OP_MULTIPLY"
	OpDivide     Kind = "OP_DIVIDE"
	BracketOpen  Kind = "BRACKET_OPEN"
	BracketClose Kind = "BRACKET_CLOSE"
	Number       Kind = "NUMBER"
	Identifier   Kind = "IDENTIFIER"
	Whitespace   Kind = "WHITE_SPACE"
)

func (k Kind) String() string {
	return string(k)
}

// Literals maps operators and brackets to their kinds.
var Literals = map[string]interface{}{
	"+": OpAdd,
	"-": OpSubtract,
	"*": OpMultiply,
	"/": OpDivide,
	"(": BracketOpen,
	")": BracketClose,
}

var (
	space          = automata.OneOfRunes(" \t\r\n")
	digit          = automata.Range('0', '9')
	lower          = automata.Range('a', 'z')
	upper          = automata.Range('A', 'Z')
	letter         = automata.Any(lower, upper)
	letterAndDigit = automata.Any(lower, upper, digit)
	exp            = automata.OneOfRunes("Ee")
	sign           = automata.OneOfRunes("+-")
)

// DFA builds the lexer as a hand-made DFA.
func DFA() (*automata.DFA[rune], error) {
	edge := automata.NewEdge[rune]
	exact := automata.Exact[rune]
	states := []automata.State[rune]{
		automata.NewState(1,
			edge(exact('+'), 10), edge(exact('-'), 20), edge(exact('*'), 30), edge(exact('/'), 40),
			edge(exact('('), 50), edge(exact(')'), 60),
			edge(digit, 70), edge(letter, 80), edge(space, 90)),
		// operators and brackets
		automata.NewAcceptingState[rune](10, OpAdd),
		automata.NewAcceptingState[rune](20, OpSubtract),
		automata.NewAcceptingState[rune](30, OpMultiply),
		automata.NewAcceptingState[rune](40, OpDivide),
		automata.NewAcceptingState[rune](50, BracketOpen),
		automata.NewAcceptingState[rune](60, BracketClose),
		// number literal /\d+(\.\d*)?((e|E)(+|-)?\d+)?/
		automata.NewAcceptingState(70, Number, edge(digit, 70), edge(exact('.'), 71), edge(exp, 72)),
		automata.NewAcceptingState(71, Number, edge(digit, 71), edge(exp, 72)),
		automata.NewState(72, edge(sign, 73), edge(digit, 74)),
		automata.NewState(73, edge(digit, 74)),
		automata.NewAcceptingState(74, Number, edge(digit, 74)),
		// identifier /[A-Za-z][A-Za-z0-9]*/
		automata.NewAcceptingState(80, Identifier, edge(letterAndDigit, 80)),
		// white space /\s+/
		automata.NewAcceptingState(90, Whitespace, edge(space, 90)),
	}
	dfa := automata.NewDFA[rune]()
	if err := dfa.AddStartState(states[0]); err != nil {
		return nil, err
	}
	for _, s := range states[1:] {
		if err := dfa.AddState(s); err != nil {
			return nil, err
		}
	}
	return dfa, nil
}

// NFA builds the lexer by merging fragments for literals, numbers, identifiers
// and white space.
func NFA() (*automata.NFA[rune], error) {
	literals, err := literal.Strings(Literals)
	if err != nil {
		return nil, err
	}
	number, err := numberFragment()
	if err != nil {
		return nil, err
	}
	ident, err := loopFragment(letter, letterAndDigit, Identifier)
	if err != nil {
		return nil, err
	}
	blanks, err := loopFragment(space, space, Whitespace)
	if err != nil {
		return nil, err
	}
	f, err := automata.MergeAll(literals, number, ident, blanks)
	if err != nil {
		return nil, err
	}
	return automata.FromFragment(f), nil
}

func numberFragment() (automata.Fragment[rune], error) {
	ids := automata.NewIDBlock()
	edge := automata.NewEdge[rune]
	n := make([]automata.StateID, 6)
	for i := range n {
		n[i] = ids.MustNext()
	}
	return automata.NewFragment(
		automata.NewState(n[0], edge(digit, n[1])),
		automata.NewAcceptingState(n[1], Number, edge(digit, n[1]), edge(automata.Exact('.'), n[2]), edge(exp, n[3])),
		automata.NewAcceptingState(n[2], Number, edge(digit, n[2]), edge(exp, n[3])),
		automata.NewState(n[3], edge(sign, n[4]), edge(digit, n[5])),
		automata.NewState(n[4], edge(digit, n[5])),
		automata.NewAcceptingState(n[5], Number, edge(digit, n[5])),
	)
}

// loopFragment creates a fragment for first loop*.
func loopFragment(first, loop automata.Label[rune], kind Kind) (automata.Fragment[rune], error) {
	ids := automata.NewIDBlock()
	s0, s1 := ids.MustNext(), ids.MustNext()
	return automata.NewFragment(
		automata.NewState(s0, automata.NewEdge(first, s1)),
		automata.NewAcceptingState(s1, kind, automata.NewEdge(loop, s1)),
	)
}

// --- Scanning --------------------------------------------------------------

var lexer struct {
	once sync.Once
	dfa  *automata.DFA[rune]
	err  error
}

// Lexer returns the hand-built DFA, creating it on first use. The DFA is
// read-only and may be shared.
func Lexer() (*automata.DFA[rune], error) {
	lexer.once.Do(func() {
		lexer.dfa, lexer.err = DFA()
	})
	return lexer.dfa, lexer.err
}

// NewScanner creates a scanner for arithmetic expressions, skipping white space.
func NewScanner(r io.Reader, opts ...scanner.SourceOption) (*scanner.Scanner[rune], error) {
	dfa, err := Lexer()
	if err != nil {
		return nil, err
	}
	return scanner.New[rune](dfa, scanner.NewRuneSource(r, opts...), scanner.Skip(Whitespace)), nil
}

// Tokenize splits an expression into tokens, skipping white space.
func Tokenize(input string) ([]scanner.Token[rune], error) {
	dfa, err := Lexer()
	if err != nil {
		return nil, err
	}
	return scanner.New[rune](dfa, scanner.StringSource(input), scanner.Skip(Whitespace)).All()
}
