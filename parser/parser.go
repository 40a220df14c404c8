// Package parser implements a recursive-descent parser with Pratt
// (precedence-climbing) expression parsing, converting a Baa token
// stream into the ast package's tagged-union tree. Parse errors never
// panic the program: every syntax problem becomes a diag.Diagnostic,
// and the parser resynchronizes in panic mode rather than aborting.
package parser

import (
	"github.com/baa-lang/baa/ast"
	"github.com/baa-lang/baa/diag"
	"github.com/baa-lang/baa/lexer"
	"github.com/baa-lang/baa/span"
)

// prefixParseFunc parses an expression that begins with the current
// token (literals, identifiers, unary operators, grouping).
type prefixParseFunc func(p *Parser) ast.Expr

// infixParseFunc parses the continuation of an expression given the
// already-parsed left operand and the infix operator token now current.
type infixParseFunc func(p *Parser, left ast.Expr) ast.Expr

// Parser holds all state needed to turn a token stream into an AST.
type Parser struct {
	lex *lexer.Lexer
	dx  *diag.Context

	cur  lexer.Token
	next lexer.Token

	// pendingDoc accumulates immediately-preceding DOC_COMMENT text so
	// the next declaration parsed can claim it (SPEC_FULL §5: doc
	// comments attach to the following declaration).
	pendingDoc string

	prefixFuncs map[lexer.Kind]prefixParseFunc
	infixFuncs  map[lexer.Kind]infixParseFunc
}

// New constructs a Parser reading from lex and reporting into dx.
func New(lex *lexer.Lexer, dx *diag.Context) *Parser {
	p := &Parser{lex: lex, dx: dx}

	p.prefixFuncs = map[lexer.Kind]prefixParseFunc{
		lexer.IntLit:     parseLiteral,
		lexer.FloatLit:   parseLiteral,
		lexer.BoolLit:    parseLiteral,
		lexer.CharLit:    parseLiteral,
		lexer.StringLit:  parseLiteral,
		lexer.Identifier: parseIdentifier,
		lexer.LParen:     parseGrouping,
		lexer.Not:        parseUnary,
		lexer.BitNot:     parseUnary,
		lexer.Minus:      parseUnary,
		lexer.Plus:       parseUnary,
		lexer.Inc:        parseUnary,
		lexer.Dec:        parseUnary,
	}

	p.infixFuncs = map[lexer.Kind]infixParseFunc{
		lexer.Plus:        parseBinary,
		lexer.Minus:       parseBinary,
		lexer.Star:        parseBinary,
		lexer.Slash:       parseBinary,
		lexer.Percent:     parseBinary,
		lexer.Eq:          parseBinary,
		lexer.Neq:         parseBinary,
		lexer.Lt:          parseBinary,
		lexer.Le:          parseBinary,
		lexer.Gt:          parseBinary,
		lexer.Ge:          parseBinary,
		lexer.AndAnd:      parseBinary,
		lexer.OrOr:        parseBinary,
		lexer.BitAnd:      parseBinary,
		lexer.BitOr:       parseBinary,
		lexer.BitXor:      parseBinary,
		lexer.Shl:         parseBinary,
		lexer.Shr:         parseBinary,
		lexer.Assign:      parseAssignment,
		lexer.PlusAssign:  parseAssignment,
		lexer.MinusAssign: parseAssignment,
		lexer.StarAssign:  parseAssignment,
		lexer.SlashAssign: parseAssignment,
		lexer.PctAssign:   parseAssignment,
		lexer.LParen:      parseCall,
		lexer.LBracket:    parseIndex,
		lexer.Inc:         parsePostfix,
		lexer.Dec:         parsePostfix,
	}

	p.advance()
	p.advance()
	return p
}

// filtered reports whether kind is whitespace, a newline, or a plain
// comment — tokens the lexer emits for lexeme-fidelity that the parser's
// grammar never consumes.
func filtered(kind lexer.Kind) bool {
	switch kind {
	case lexer.HSpace, lexer.Newline, lexer.LineComment, lexer.BlockComment:
		return true
	}
	return false
}

func (p *Parser) advance() {
	p.cur = p.next
	for {
		t := p.lex.NextToken()
		if t.Kind == lexer.DocComment {
			p.pendingDoc += t.Lexeme
			continue
		}
		if filtered(t.Kind) {
			continue
		}
		p.next = t
		break
	}
}

// takeDoc returns and clears the accumulated pending doc comment.
func (p *Parser) takeDoc() string {
	d := p.pendingDoc
	p.pendingDoc = ""
	return d
}

func (p *Parser) curSpan() span.Span { return p.cur.Span }

func (p *Parser) check(kind lexer.Kind) bool { return p.cur.Kind == kind }

func (p *Parser) checkNext(kind lexer.Kind) bool { return p.next.Kind == kind }

func (p *Parser) match(kind lexer.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind, otherwise reports a
// syntax error and enters panic-mode recovery.
func (p *Parser) expect(kind lexer.Kind, what string) lexer.Token {
	if p.check(kind) {
		t := p.cur
		p.advance()
		return t
	}
	p.dx.Errorf(p.curSpan(), "expected %s, found %q", what, p.cur.Lexeme)
	p.synchronize()
	return p.cur
}

// consumeLiteralWarning promotes a lexer-attached Token.Warning (e.g.
// integer overflow widened to float) into a parser-level diagnostic.
func (p *Parser) consumeLiteralWarning(t lexer.Token) {
	if t.Warning != "" {
		p.dx.Warnf(t.Span, "%s", t.Warning)
	}
}

// ParseProgram parses an entire source file into a Program node. It
// never returns a Go error: syntax problems are reported to the
// parser's diag.Context and recovered from in place so that parsing
// always reaches EOF (spec.md §7/§8, "error resilience").
func ParseProgram(lex *lexer.Lexer, dx *diag.Context) *ast.Program {
	p := New(lex, dx)
	start := p.curSpan()
	var stmts []ast.Stmt
	for !p.check(lexer.EOF) {
		before := p.cur.Span
		s := p.parseStatement()
		if s != nil {
			stmts = append(stmts, s)
		}
		if p.cur.Span == before {
			// Nothing was consumed (e.g. a stray top-level '}'); skip it.
			p.advance()
		}
	}
	end := p.curSpan()
	return ast.NewProgram(span.Merge(start, end), stmts)
}

// synchronize discards tokens in panic mode until it reaches a likely
// statement boundary: a '.' terminator, a closing brace, or a
// statement-start keyword, matching spec.md §4.3.5.
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) {
		if p.cur.Kind == lexer.Dot {
			p.advance()
			return
		}
		switch p.cur.Kind {
		case lexer.RBrace,
			lexer.KwFunc, lexer.KwIf, lexer.KwWhile, lexer.KwFor, lexer.KwReturn,
			lexer.KwSwitch, lexer.KwBreak, lexer.KwContinue, lexer.KwImport,
			lexer.TyInt, lexer.TyFloat, lexer.TyChar, lexer.TyVoid, lexer.TyBool, lexer.TyString, lexer.TyByte:
			return
		}
		p.advance()
	}
}
