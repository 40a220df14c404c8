/*
Command baa-repl is an interactive tokenizer/parser inspector for Baa
snippets: type a line, see its tokens and the AST of the declaration or
statement it parses to, with colored diagnostics for anything that
fails to lex or parse cleanly.

Not one of the two CLI tools spec.md §6 requires (baa_lexer_tester,
baa_ast_tester); it is additive tooling in the teacher's own idiom —
the teacher ships repl/repl.go for exactly this kind of fast
interactive feedback during frontend development. Adapted from the
teacher's REPL banner/color/readline wiring (repl/repl.go), replaced
top to bottom: the teacher drives a tree-walking evaluator over its own
scripting language, this drives only the lexer and parser over Baa
source and prints their output instead of evaluating anything.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/baa-lang/baa/ast"
	"github.com/baa-lang/baa/diag"
	"github.com/baa-lang/baa/lexer"
	"github.com/baa-lang/baa/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = `  ____                      ____ _     ___
 | __ )  __ _  __ _        / ___| |   |_ _|
 |  _ \ / _  |/ _  | ____  | |   | |    | |
 | |_) | (_| | (_| ||____| | |___| |___ | |
 |____/ \__,_|\__,_|        \____|_____|___|
`
	line    = "----------------------------------------------------------------"
	prompt  = "baa> "
	version = "v0.1.0"
)

func main() {
	printBanner(os.Stdout)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	run(rl, os.Stdout)
}

// printBanner writes the startup banner and the short usage hint to w.
func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, "Baa frontend REPL "+version+" - lexer/parser inspector")
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type a Baa snippet and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit, '.tokens' or '.ast' to pick what gets shown (default: both).")
	blueColor.Fprintf(w, "%s\n", line)
}

// run drives the read-eval-print loop until the user types '.exit' or
// sends EOF. '.tokens' and '.ast' switch which inspector runs on the
// following lines; both run by default.
func run(rl *readline.Instance, w io.Writer) {
	showTokens, showAST := true, true

	for {
		input, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good Bye!")
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		rl.SaveHistory(input)

		switch input {
		case ".exit":
			fmt.Fprintln(w, "Good Bye!")
			return
		case ".tokens":
			showTokens, showAST = true, false
			continue
		case ".ast":
			showTokens, showAST = false, true
			continue
		}

		inspect(w, input, showTokens, showAST)
	}
}

// inspect runs the requested inspectors over one line of input.
func inspect(w io.Writer, src string, showTokens, showAST bool) {
	if showTokens {
		printTokens(w, src)
	}
	if showAST {
		printAST(w, src)
	}
}

// printTokens tokenizes src and prints one line per token, skipping
// horizontal space and newlines so the listing stays readable; a lexer
// ERROR token is flagged in red instead of printed as an ordinary kind.
func printTokens(w io.Writer, src string) {
	lx := lexer.New([]rune(src), "<repl>")
	for {
		tok := lx.NextToken()
		if tok.Kind == lexer.HSpace || tok.Kind == lexer.Newline {
			continue
		}
		if tok.Kind == lexer.ERROR {
			redColor.Fprintf(w, "  lex error: %s\n", tok.Lexeme)
		} else {
			yellowColor.Fprintf(w, "  %-14s %q\n", tok.Kind, tok.Lexeme)
		}
		if tok.Kind == lexer.EOF {
			break
		}
	}
}

// printAST parses src as a program and prints any diagnostics in red,
// followed by the parsed declarations rendered through ast.PrintVisitor.
func printAST(w io.Writer, src string) {
	dx := diag.NewContext()
	lx := lexer.New([]rune(src), "<repl>")
	prog := parser.ParseProgram(lx, dx)

	for _, d := range dx.Diagnostics() {
		redColor.Fprintf(w, "  %s\n", d.Format(true))
	}
	if len(prog.Declarations) == 0 {
		cyanColor.Fprintln(w, "  (no declarations parsed)")
		return
	}

	pv := ast.NewPrintVisitor()
	prog.Accept(pv)
	fmt.Fprint(w, pv.String())
}
