package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	l := New([]rune(src), "<test>")
	toks := l.ConsumeAll()
	require.NotEmpty(t, toks)
	require.Equal(t, EOF, toks[len(toks)-1].Kind)
	return toks
}

// significant filters out whitespace/comment tokens, mirroring what the
// parser does before it ever sees a token.
func significant(toks []Token) []Token {
	var out []Token
	for _, t := range toks {
		switch t.Kind {
		case HSpace, Newline, LineComment, BlockComment:
			continue
		}
		out = append(out, t)
	}
	return out
}

func TestEmptyProgram(t *testing.T) {
	toks := tokenize(t, "")
	assert.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
}

func TestArabicIntegerLiteral(t *testing.T) {
	toks := significant(tokenize(t, "١٢٣."))
	require.Len(t, toks, 3)
	assert.Equal(t, IntLit, toks[0].Kind)
	assert.EqualValues(t, 123, toks[0].Value)
	assert.Equal(t, Dot, toks[1].Kind)
	assert.Equal(t, EOF, toks[2].Kind)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := significant(tokenize(t, "دالة مربع"))
	require.Len(t, toks, 3)
	assert.Equal(t, KwFunc, toks[0].Kind)
	assert.Equal(t, Identifier, toks[1].Kind)
	assert.Equal(t, "مربع", toks[1].Lexeme)
}

func TestFunctionWithReturnZero(t *testing.T) {
	toks := significant(tokenize(t, "دالة مربع() { إرجع ٠. }"))
	kinds := make([]Kind, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Kind
	}
	assert.Equal(t, []Kind{
		KwFunc, Identifier, LParen, RParen, LBrace,
		KwReturn, IntLit, Dot, RBrace, EOF,
	}, kinds)
}

func TestRawString(t *testing.T) {
	toks := significant(tokenize(t, `خ"C:\Users\name"`))
	require.Len(t, toks, 2)
	require.Equal(t, StringLit, toks[0].Kind)
	assert.Equal(t, `C:\Users\name`, toks[0].Value)
}

func TestRawMultilineString(t *testing.T) {
	src := "خ\"\"\"line1\\nline2\"\"\""
	toks := significant(tokenize(t, src))
	require.Equal(t, StringLit, toks[0].Kind)
	assert.Equal(t, `line1\nline2`, toks[0].Value)
}

func TestMultilineStringPreservesNewlines(t *testing.T) {
	src := "\"\"\"a\nb\"\"\""
	toks := significant(tokenize(t, src))
	require.Equal(t, StringLit, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Value)
}

func TestHexFloat(t *testing.T) {
	toks := significant(tokenize(t, "0x1.8p1"))
	require.Len(t, toks, 2)
	require.Equal(t, FloatLit, toks[0].Kind)
	assert.Equal(t, 3.0, toks[0].Value)
}

func TestHexBinOctIntegers(t *testing.T) {
	cases := map[string]int64{
		"0x1A": 26,
		"0b101": 5,
		"0o17":  15,
	}
	for src, want := range cases {
		toks := significant(tokenize(t, src))
		require.Equal(t, IntLit, toks[0].Kind)
		assert.EqualValues(t, want, toks[0].Value)
	}
}

func TestArabicDecimalSeparator(t *testing.T) {
	toks := significant(tokenize(t, "١٢٫٥"))
	require.Equal(t, FloatLit, toks[0].Kind)
	assert.InDelta(t, 12.5, toks[0].Value, 1e-9)
}

func TestScientificNotation(t *testing.T) {
	toks := significant(tokenize(t, "1.4e2"))
	require.Equal(t, FloatLit, toks[0].Kind)
	assert.InDelta(t, 140.0, toks[0].Value, 1e-9)
}

func TestIntegerOverflowWidensToFloatWithWarning(t *testing.T) {
	toks := significant(tokenize(t, "99999999999999999999"))
	require.Equal(t, FloatLit, toks[0].Kind)
	assert.NotEmpty(t, toks[0].Warning)
}

func TestArabicEscapes(t *testing.T) {
	toks := significant(tokenize(t, `"\س\م\ر"`))
	require.Equal(t, StringLit, toks[0].Kind)
	assert.Equal(t, "\n\t\r", toks[0].Value)
}

func TestUnicodeEscape(t *testing.T) {
	toks := significant(tokenize(t, `"\ي0041"`))
	require.Equal(t, StringLit, toks[0].Kind)
	assert.Equal(t, "A", toks[0].Value)
}

func TestByteEscape(t *testing.T) {
	toks := significant(tokenize(t, `"\هـ41"`))
	require.Equal(t, StringLit, toks[0].Kind)
	assert.Equal(t, "A", toks[0].Value)
}

func TestUnterminatedBlockComment(t *testing.T) {
	toks := tokenize(t, "/* open only")
	require.Len(t, toks, 2)
	assert.Equal(t, ERROR, toks[0].Kind)
	assert.Contains(t, toks[0].Lexeme, "unterminated")
}

func TestCharLiteral(t *testing.T) {
	toks := significant(tokenize(t, `'a'`))
	require.Equal(t, CharLit, toks[0].Kind)
	assert.Equal(t, 'a', toks[0].Value)
}

func TestEmptyCharLiteralIsError(t *testing.T) {
	toks := significant(tokenize(t, `''`))
	assert.Equal(t, ERROR, toks[0].Kind)
}

func TestMultiCharLiteralIsError(t *testing.T) {
	toks := significant(tokenize(t, `'ab'`))
	assert.Equal(t, ERROR, toks[0].Kind)
}

func TestMaximalMunchOperators(t *testing.T) {
	toks := significant(tokenize(t, "<= == != >= && || << >> ++ -- += -="))
	kinds := make([]Kind, len(toks)-1)
	for i := 0; i < len(toks)-1; i++ {
		kinds[i] = toks[i].Kind
	}
	assert.Equal(t, []Kind{Le, Eq, Neq, Ge, AndAnd, OrOr, Shl, Shr, Inc, Dec, PlusAssign, MinusAssign}, kinds)
}

func TestDotIsNotDecimalPointWithoutDigits(t *testing.T) {
	toks := significant(tokenize(t, "١٢٣."))
	assert.Equal(t, IntLit, toks[0].Kind)
	assert.Equal(t, Dot, toks[1].Kind)
}

func TestBooleanLiterals(t *testing.T) {
	toks := significant(tokenize(t, "صحيح خطأ"))
	require.Len(t, toks, 3)
	assert.Equal(t, BoolLit, toks[0].Kind)
	assert.Equal(t, true, toks[0].Value)
	assert.Equal(t, BoolLit, toks[1].Kind)
	assert.Equal(t, false, toks[1].Value)
}

// TestLexemeFidelity verifies that concatenating every token's lexeme,
// including whitespace and newline tokens, reproduces the source
// exactly (spec.md §8, "lexeme fidelity").
func TestLexemeFidelity(t *testing.T) {
	src := "دالة مربع(س) {\n  إرجع س * س.\n}\n"
	l := New([]rune(src), "<test>")
	var rebuilt string
	for {
		tok := l.NextToken()
		if tok.Kind == EOF {
			break
		}
		rebuilt += tok.Lexeme
	}
	assert.Equal(t, src, rebuilt)
}

// TestSpanMonotonicity verifies consecutive tokens never overlap
// (spec.md §8).
func TestSpanMonotonicity(t *testing.T) {
	toks := tokenize(t, "دالة مربع(س) { إرجع س. }")
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		prevEndsBeforeOrAtCurStart := prev.Span.End.Line < cur.Span.Start.Line ||
			(prev.Span.End.Line == cur.Span.Start.Line && prev.Span.End.Column <= cur.Span.Start.Column)
		assert.True(t, prevEndsBeforeOrAtCurStart, "token %d (%s) overlaps token %d (%s)", i-1, prev.Lexeme, i, cur.Lexeme)
	}
}

// TestLexerTotality verifies NextToken eventually reaches EOF on a
// pathological input without looping.
func TestLexerTotality(t *testing.T) {
	src := strRepeat("ؤ؟$@", 50)
	l := New([]rune(src), "<test>")
	count := 0
	for {
		tok := l.NextToken()
		count++
		require.Less(t, count, 10000, "lexer did not reach EOF")
		if tok.Kind == EOF {
			break
		}
	}
}

func strRepeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
