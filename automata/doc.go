/*
Package automata implements finite automata for lexical scanning.

Building Automata

Automata are graphs of states. States are immutable values, identified by an
integer ID, and carry an ordered list of edges. An edge consists of a label
and the ID of its destination state. Labels are predicates over input symbols:

    digit  := automata.Range('0', '9')
    sign   := automata.OneOf('+', '-')
    letter := automata.Any(automata.Range('a', 'z'), automata.Range('A', 'Z'))

Epsilon labels mark edges which are taken without consuming a symbol. They may
only be used within NFAs.

States are usually not created one by one, but are composed from fragments.
A fragment is a partial automaton with a single entry state. Its last state
carries the dangling exits. Fragments are concatenated and merged (alternation)
as in Thompson's construction:

    ids := automata.NewIDBlock()        // fresh block of 65536 state IDs
    s0 := automata.NewState(ids.MustNext())
    …
    f, err := automata.MergeAll(f1, f2, f3)
    nfa := automata.FromFragment(f)

Every independently built fragment should draw its state IDs from a fresh
IDBlock. Blocks never overlap, so fragments may be spliced together without
renumbering. IDs below 65536 are never handed out by IDBlocks and are free for
hand-built automata.

Subset Construction

An NFA is converted to an equivalent DFA by subset construction:

    dfa, err := nfa.ToDFA()

Every DFA state represents the epsilon-closure of a set of NFA states. If more
than one of these NFA states is accepting, the DFA state accepts with the payload
of the NFA state with the lowest ID. All of the payloads remain available with
DFA.AcceptedPayloads.

Subset construction considers labels as opaque symbols: two edges are combined
if their labels are structurally equal. Labels leaving one set of NFA states
should therefore not overlap, otherwise the first matching DFA edge wins.

Runs

A run steps through an automaton, one symbol at a time. Runs are cheap and
hold all the mutable state of a scan, which allows clients to use a single
automaton from many goroutines concurrently.

    run, err := dfa.NewRun()
    ok, err := run.Step('a')

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automata

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexfa.automata'.
func tracer() tracing.Trace {
	return tracing.Select("lexfa.automata")
}

// integrityError is called for references to unknown states. Integrity errors
// are caused by bugs in the construction of an automaton, not by user input.
// Setting configuration flag panic-on-integrity-error turns them into panics.
func integrityError(err error) error {
	if gconf.GetBool("panic-on-integrity-error") {
		panic(fmt.Sprintf(`Automaton graph is broken.

Configuration flag panic-on-integrity-error is set to true. It is aimed at helping
to debug the construction of automata. If you did not expect this to panic,
please unset panic-on-integrity-error to its default (false).

%v`, err))
	}
	return err
}
