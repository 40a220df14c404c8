// Command baa-ast is the baa_ast_tester CLI tool (spec.md §6): it parses
// a source file, or a built-in demo snippet when no file is given, and
// prints the resulting AST as an indented tree. Diagnostics, if any, are
// printed to stderr in the "<file>:<line>:<column>: <severity>: <message>"
// form spec.md §7 requires.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/baa-lang/baa/ast"
	"github.com/baa-lang/baa/config"
	"github.com/baa-lang/baa/diag"
	"github.com/baa-lang/baa/lexer"
	"github.com/baa-lang/baa/parser"
	"github.com/baa-lang/baa/source"
)

const demoSource = `دالة مربع(عدد_صحيح س) عدد_صحيح {
    إرجع س * س.
}
`

func main() {
	cfg := loadConfig()

	var file *source.File
	var name string

	if len(os.Args) > 1 {
		name = os.Args[1]
		f, err := source.Load(name)
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "%s: %v\n", name, err)
			os.Exit(1)
		}
		file = f
	} else {
		name = "<demo>"
		file = source.FromString(name, cfg.DemoSourceOr(demoSource))
	}

	dx := diag.NewContext()
	lx := lexer.New(file.Text, name)
	prog := parser.ParseProgram(lx, dx)

	useColor := cfg.ColorEnabled(color.NoColor == false)
	for _, d := range dx.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.Format(useColor))
	}

	pv := ast.NewPrintVisitor()
	prog.Accept(pv)
	fmt.Print(pv.String())

	if dx.HadError() {
		os.Exit(1)
	}
}

// loadConfig reads the YAML config named by BAA_CONFIG, if set.
func loadConfig() config.Config {
	path := os.Getenv("BAA_CONFIG")
	if path == "" {
		return config.Config{}
	}
	cfg, err := config.Load(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "loading %s: %v\n", path, err)
		return config.Config{}
	}
	return cfg
}
