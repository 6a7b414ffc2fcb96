/*
Package lexmach provides an adapter to use the lexmachine scanner generator
as a scanner.Tokenizer.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine compiles regular expressions to a DFA of its own. It is not
needed for scanning with the automata of this module, but serves as a
reference implementation: token streams of both kinds of scanners should be
identical for identical languages. Other than the scanners of package
scanner, lexmachine backtracks to the longest accepting prefix, so
differences may occur for inputs which end in the middle of a token.

Lexmachine has to be initialized by providing literals and regular expressions.
Please refer to the lexmachine documentation on how to instruct lexmachine.

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   token with a payload
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Tokenizer.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := NewLMAdapter(init, literals)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}
	tokens, err := scan.All()

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
