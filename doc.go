/*
Package lexfa is a finite-automaton toolbox for building lexical scanners.

Clients assemble non-deterministic finite automata (NFAs) from small
fragments, derive deterministic automata (DFAs) by subset construction, and
drive either kind of automaton over a stream of symbols to produce tokens
by longest match. Package structure is as follows:

■ automata: Package automata implements labels, states, fragments, NFAs, DFAs
and the runs which step through them.

■ automata/literal: Package literal compiles literal symbol sequences to fragments.

■ scanner: Package scanner implements symbol sources and a longest-match
scanner on top of an automaton.

■ arith: Package arith is a small lexer for arithmetic expressions, serving as an
example and as a test bed.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexfa
