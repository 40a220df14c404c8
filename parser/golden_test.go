package parser_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/baa-lang/baa/diag"
	"github.com/baa-lang/baa/lexer"
	"github.com/baa-lang/baa/parser"
)

// scenario mirrors the end-to-end lexer/parser scenarios spec.md §8
// enumerates. check_parse is false for the two scenarios that are bare
// literal tokens with no statement terminator (raw_string, hex_float):
// parsing them as a full program would spuriously report a missing '.'.
type scenario struct {
	Name            string   `yaml:"name"`
	Source          string   `yaml:"source"`
	TokenKinds      []string `yaml:"token_kinds"`
	CheckParse      bool     `yaml:"check_parse"`
	HadError        bool     `yaml:"had_error"`
	DeclCount       int      `yaml:"decl_count"`
	DiagCount       int      `yaml:"diag_count"`
	MessageContains string   `yaml:"message_contains"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)
	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	require.NotEmpty(t, scenarios)
	return scenarios
}

// significantKinds filters whitespace, newlines, and comments, mirroring what
// the parser itself discards before the grammar ever sees a token.
func significantKinds(toks []lexer.Token) []string {
	var out []string
	for _, tk := range toks {
		switch tk.Kind {
		case lexer.HSpace, lexer.Newline, lexer.LineComment, lexer.BlockComment, lexer.DocComment:
			continue
		}
		out = append(out, string(tk.Kind))
	}
	return out
}

func TestEndToEndScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			lx := lexer.New([]rune(sc.Source), "<golden>")
			toks := lx.ConsumeAll()
			require.NotEmpty(t, toks)
			assert.Equal(t, sc.TokenKinds, significantKinds(toks))

			if !sc.CheckParse {
				return
			}

			dx := diag.NewContext()
			prog := parser.ParseProgram(lexer.New([]rune(sc.Source), "<golden>"), dx)
			assert.Equal(t, sc.HadError, dx.HadError(), "diagnostics: %v", dx.Diagnostics())
			assert.Len(t, prog.Declarations, sc.DeclCount)
			if sc.DiagCount > 0 {
				require.Len(t, dx.Diagnostics(), sc.DiagCount)
			}
			if sc.MessageContains != "" {
				assert.Contains(t, dx.Diagnostics()[0].Message, sc.MessageContains)
			}
		})
	}
}
