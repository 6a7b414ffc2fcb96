/*
Package arith is a lexer for arithmetic expressions like

    (12.3e+45 * x) / (67 + 89)

It recognizes operators, brackets, decimal numbers with optional fraction and
exponent, identifiers and white space. Tokens carry a Kind as their payload.

The lexer is available in two flavours: a hand-built DFA, and an NFA which is
composed from fragments. A DFA derived from the NFA by subset construction
recognizes the same tokens as the hand-built one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arith
