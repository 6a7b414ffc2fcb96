/*
Command lexrepl provides an interactive command line tool for tokenizing
arithmetic expressions. It serves as a sandbox for experiments with the
automata of package lexfa: every line entered is split into tokens by a
longest-match scanner, and the tokens are displayed as a table.

    lexrepl [-trace Debug] [-nfa] [-dot file.dot] [expression]

With flag -nfa the scanner runs directly on the NFA composed from fragments
instead of on the DFA derived from it. Flag -dot exports the automaton in
Graphviz format.

Within the REPL, lines starting with a colon are commands:

    :dump     trace the automaton's states (visible at trace level Debug)
    :nfa      switch to the NFA
    :dfa      switch to the DFA
    :table    print the transition table of the DFA
    :quit     leave the REPL

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexfa.repl'
func tracer() tracing.Trace {
	return tracing.Select("lexfa.repl")
}
