/*
Package literal compiles literal sequences of symbols into automaton fragments.

A literal "if" compiles to

    (s0) --'i'--> (s1) --'f'--> (s2) --ε--> ((s3))

where s3 accepts with a client-supplied payload. The epsilon edge keeps the
accepting state free of incoming symbol edges, which makes the fragment safe
to merge with others (see automata.MergeAll). Every fragment draws its state
IDs from a fresh automata.IDBlock.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package literal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexfa.automata'.
func tracer() tracing.Trace {
	return tracing.Select("lexfa.automata")
}
