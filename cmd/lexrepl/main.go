package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/lexfa/arith"
	"github.com/npillmayer/lexfa/automata"
	"github.com/npillmayer/lexfa/scanner"
)

// main() starts an interactive CLI, where users may enter arithmetic
// expressions. Every expression is tokenized and the tokens are printed
// as a table.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	useNFA := flag.Bool("nfa", false, "Scan with the NFA instead of the DFA")
	nfc := flag.Bool("nfc", false, "Normalize input to Unicode NFC")
	dotfile := flag.String("dot", "", "Export the automaton to a Graphviz file")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LEXREPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up automata
	nfa, err := arith.NFA()
	if err != nil {
		tracer().Errorf("cannot create NFA: %v", err)
		os.Exit(2)
	}
	dfa, err := nfa.ToDFA()
	if err != nil {
		tracer().Errorf("cannot create DFA: %v", err)
		os.Exit(2)
	}
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	intp := &Intp{nfa: nfa, dfa: dfa, useNFA: *useNFA, nfc: *nfc}
	if *dotfile != "" {
		if err := intp.exportDot(*dotfile); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Tokenize(input)
	}
	//
	// set up REPL
	repl, err := readline.New("lexrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	nfa    *automata.NFA[rune]
	dfa    *automata.DFA[rune]
	useNFA bool
	nfc    bool
	repl   *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.Execute(line[1:]); quit {
				break
			}
			continue
		}
		intp.Tokenize(line)
	}
	println("Good bye!")
}

// Execute runs a REPL command. It returns true if the REPL should quit.
func (intp *Intp) Execute(cmd string) bool {
	switch cmd {
	case "quit", "q":
		return true
	case "nfa":
		intp.useNFA = true
		pterm.Info.Println("scanning with NFA")
	case "dfa":
		intp.useNFA = false
		pterm.Info.Println("scanning with DFA")
	case "dump":
		if intp.useNFA {
			intp.nfa.Dump()
		} else {
			intp.dfa.Dump()
		}
	case "table":
		intp.printTable()
	default:
		pterm.Error.Printf("unknown command: %s\n", cmd)
	}
	return false
}

// Tokenize scans a line of input and prints the tokens.
func (intp *Intp) Tokenize(input string) {
	var fa automata.Automaton[rune] = intp.dfa
	if intp.useNFA {
		fa = intp.nfa
	}
	src := scanner.StringSource(input, scanner.NFC(intp.nfc))
	tokens, err := scanner.New[rune](fa, src, scanner.Skip(arith.Whitespace)).All()
	if len(tokens) > 0 {
		data := pterm.TableData{{"Kind", "Lexeme", "Span"}}
		for _, token := range tokens {
			data = append(data, []string{
				fmt.Sprintf("%v", token.Payload),
				string(token.Lexeme),
				token.Span.String(),
			})
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
}

// printTable prints the transition table of the DFA.
func (intp *Intp) printTable() {
	tt := intp.dfa.Table()
	header := []string{"State"}
	for _, l := range tt.Labels() {
		header = append(header, l.String())
	}
	data := pterm.TableData{header}
	for row, id := range tt.States() {
		line := []string{fmt.Sprintf("%d", id)}
		if s, ok := intp.dfa.State(id); ok && s.IsAccepting() {
			line[0] = fmt.Sprintf("%d [%v]", id, s.Payload())
		}
		for col := range tt.Labels() {
			cell := ""
			if dest, ok := tt.Value(row, col); ok {
				cell = fmt.Sprintf("%d", dest)
			}
			line = append(line, cell)
		}
		data = append(data, line)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) exportDot(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("file open error: %w", err)
	}
	defer f.Close()
	if intp.useNFA {
		err = intp.nfa.ToGraphViz(f)
	} else {
		err = intp.dfa.ToGraphViz(f)
	}
	if err == nil {
		tracer().Infof("automaton exported to %s", filename)
	}
	return err
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
