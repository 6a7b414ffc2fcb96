/*
Package scanner implements longest-match scanners on top of finite automata.

A scanner pulls symbols from a Source and drives an automaton (usually a DFA)
over them. It consumes symbols for as long as the automaton is able to make
a transition. When it gets stuck, the longest match seen so far is reported
as a token, provided the automaton is in an accepting state, and the symbol
which got the automaton stuck is pushed back to the source. This is what
is called "maximal munch" lexing.

Scanners do not recover from lexical errors. If no token can be recognized,
a LexicalError reports the offending lexeme, and the scanner stops.

Sources

Sources hand out symbols one by one. A source remembers the symbols handed
out since the last call to Extract, which returns them as a lexeme. At most
one symbol may be pushed back with Unget.

Two sources are provided: SliceSource reads from a slice of arbitrary
symbols, RuneSource reads runes from an io.Reader.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexfa.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexfa.scanner")
}
