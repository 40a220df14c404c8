// Command baa-lexer is the baa_lexer_tester CLI tool (spec.md §6): it
// tokenizes a source file, or a built-in demo snippet when no file is
// given, and prints one line per token to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/baa-lang/baa/config"
	"github.com/baa-lang/baa/lexer"
	"github.com/baa-lang/baa/source"
)

// demoSource is tokenized when no file argument is given, exercising
// identifiers, keywords, Arabic-Indic digits, and the statement
// terminator in one short snippet. BAA_CONFIG can point at a YAML file
// overriding it (config.Config.DemoSource).
const demoSource = `دالة مربع(عدد_صحيح س) عدد_صحيح {
    إرجع س * س.
}
`

var (
	errorColor = color.New(color.FgRed)
)

func main() {
	cfg := loadConfig()

	var file *source.File
	var name string

	if len(os.Args) > 1 {
		name = os.Args[1]
		f, err := source.Load(name)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "%s: %v\n", name, err)
			os.Exit(1)
		}
		file = f
	} else {
		name = "<demo>"
		file = source.FromString(name, cfg.DemoSourceOr(demoSource))
	}

	lx := lexer.New(file.Text, name)
	index := 0
	for {
		tok := lx.NextToken()
		fmt.Printf("[%03d] %-14s (L%d C%d Len%d) '%s'\n",
			index, tok.Kind, tok.Span.Start.Line, tok.Span.Start.Column, runeLen(tok.Lexeme), tok.Lexeme)
		index++
		if tok.Kind == lexer.EOF {
			break
		}
	}
}

func runeLen(s string) int { return len([]rune(s)) }

// loadConfig reads the YAML config named by BAA_CONFIG, if set. A
// missing or unset path yields a zero config, which callers treat as
// "use the built-in defaults".
func loadConfig() config.Config {
	path := os.Getenv("BAA_CONFIG")
	if path == "" {
		return config.Config{}
	}
	cfg, err := config.Load(path)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "loading %s: %v\n", path, err)
		return config.Config{}
	}
	return cfg
}
