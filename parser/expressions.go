package parser

import (
	"github.com/baa-lang/baa/ast"
	"github.com/baa-lang/baa/diag"
	"github.com/baa-lang/baa/lexer"
	"github.com/baa-lang/baa/span"
)

// errorExprName marks the placeholder parseExpression substitutes when
// no prefix parse function applies to the current token. Arabic and
// ASCII identifiers can never contain '<'/'>', so this text can't
// collide with a real identifier; parseExprStatement uses it to tell a
// genuine expression from a recovered one and skip the now-redundant
// terminator check.
const errorExprName = "<error>"

// isErrorExpr reports whether x is the parseExpression error placeholder.
func isErrorExpr(x ast.Expr) bool {
	id, ok := x.(*ast.Identifier)
	return ok && id.Name == errorExprName
}

// parseExpression runs the Pratt loop: parse one prefix expression,
// then keep extending it with infix operators whose precedence exceeds
// minPrec. A token with no prefix parse function — including a lexer
// ERROR token — reports a diagnostic and enters panic-mode recovery
// (spec.md §4.3.5), the same as an unexpected token anywhere else in
// the grammar; it does not silently keep parsing as though nothing
// happened.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	if p.cur.Kind == lexer.ERROR {
		p.dx.Errorf(p.curSpan(), "%s", p.cur.Lexeme)
		p.synchronize()
		return ast.NewIdentifier(p.curSpan(), errorExprName)
	}

	prefix, ok := p.prefixFuncs[p.cur.Kind]
	if !ok {
		p.dx.Errorf(p.curSpan(), "expected an expression, found %q", p.cur.Lexeme)
		p.synchronize()
		return ast.NewIdentifier(p.curSpan(), errorExprName)
	}
	left := prefix(p)

	for {
		prec := precedenceOf(p.cur.Kind)
		if prec <= minPrec {
			break
		}
		infix, ok := p.infixFuncs[p.cur.Kind]
		if !ok {
			break
		}
		left = infix(p, left)
	}
	return left
}

// ParseExpression is the public entry point for parsing a single
// expression in isolation.
func ParseExpression(lex *lexer.Lexer, dx *diag.Context) ast.Expr {
	p := New(lex, dx)
	return p.parseExpression(lowest)
}

func binOpFor(kind lexer.Kind) ast.BinaryOp {
	switch kind {
	case lexer.Plus:
		return ast.BinAdd
	case lexer.Minus:
		return ast.BinSub
	case lexer.Star:
		return ast.BinMul
	case lexer.Slash:
		return ast.BinDiv
	case lexer.Percent:
		return ast.BinMod
	case lexer.Eq:
		return ast.BinEq
	case lexer.Neq:
		return ast.BinNeq
	case lexer.Lt:
		return ast.BinLt
	case lexer.Le:
		return ast.BinLe
	case lexer.Gt:
		return ast.BinGt
	case lexer.Ge:
		return ast.BinGe
	case lexer.AndAnd:
		return ast.BinAnd
	case lexer.OrOr:
		return ast.BinOr
	case lexer.BitAnd:
		return ast.BinBitAnd
	case lexer.BitOr:
		return ast.BinBitOr
	case lexer.BitXor:
		return ast.BinBitXor
	case lexer.Shl:
		return ast.BinShl
	case lexer.Shr:
		return ast.BinShr
	}
	return ast.BinAdd
}

func compoundOpFor(kind lexer.Kind) ast.BinaryOp {
	switch kind {
	case lexer.PlusAssign:
		return ast.BinAdd
	case lexer.MinusAssign:
		return ast.BinSub
	case lexer.StarAssign:
		return ast.BinMul
	case lexer.SlashAssign:
		return ast.BinDiv
	case lexer.PctAssign:
		return ast.BinMod
	}
	return ast.BinAdd
}

func parseLiteral(p *Parser) ast.Expr {
	t := p.cur
	p.consumeLiteralWarning(t)
	p.advance()

	switch t.Kind {
	case lexer.IntLit:
		typ := ast.NewPrimitiveType(t.Span, "عدد_صحيح")
		n := ast.NewLiteral(t.Span, ast.LiteralInt, t.Value, typ)
		return n
	case lexer.FloatLit:
		typ := ast.NewPrimitiveType(t.Span, "عدد_حقيقي")
		return ast.NewLiteral(t.Span, ast.LiteralFloat, t.Value, typ)
	case lexer.BoolLit:
		typ := ast.NewPrimitiveType(t.Span, "منطقي")
		return ast.NewLiteral(t.Span, ast.LiteralBool, t.Value, typ)
	case lexer.CharLit:
		typ := ast.NewPrimitiveType(t.Span, "حرف")
		return ast.NewLiteral(t.Span, ast.LiteralChar, t.Value, typ)
	case lexer.StringLit:
		typ := ast.NewPrimitiveType(t.Span, "نص")
		return ast.NewLiteral(t.Span, ast.LiteralString, t.Value, typ)
	}
	return ast.NewLiteral(t.Span, ast.LiteralInt, int64(0), nil)
}

func parseIdentifier(p *Parser) ast.Expr {
	t := p.cur
	p.advance()
	return ast.NewIdentifier(t.Span, t.Lexeme)
}

func parseGrouping(p *Parser) ast.Expr {
	start := p.curSpan()
	p.advance() // '('
	inner := p.parseExpression(lowest)
	end := p.expect(lexer.RParen, "')'").Span
	return ast.NewGrouping(span.Merge(start, end), inner)
}

func parseUnary(p *Parser) ast.Expr {
	t := p.cur
	p.advance()
	operand := p.parseExpression(prefixPriority)
	op := unaryOpFor(t.Kind)
	return ast.NewUnary(span.Merge(t.Span, operand.NodeSpan()), op, operand, false)
}

func unaryOpFor(kind lexer.Kind) ast.UnaryOp {
	switch kind {
	case lexer.Not:
		return ast.UnaryNot
	case lexer.BitNot:
		return ast.UnaryBitNot
	case lexer.Minus:
		return ast.UnaryNeg
	case lexer.Plus:
		return ast.UnaryPos
	case lexer.Inc:
		return ast.UnaryInc
	case lexer.Dec:
		return ast.UnaryDec
	}
	return ast.UnaryPos
}

func parseBinary(p *Parser, left ast.Expr) ast.Expr {
	t := p.cur
	prec := precedenceOf(t.Kind)
	p.advance()
	right := p.parseExpression(prec)
	return ast.NewBinary(span.Merge(left.NodeSpan(), right.NodeSpan()), binOpFor(t.Kind), left, right)
}

func parseAssignment(p *Parser, left ast.Expr) ast.Expr {
	t := p.cur
	p.advance()
	value := p.parseExpression(assignPriority - 1) // right-associative
	sp := span.Merge(left.NodeSpan(), value.NodeSpan())
	if t.Kind == lexer.Assign {
		return ast.NewAssignment(sp, left, value)
	}
	return ast.NewCompoundAssignment(sp, left, value, compoundOpFor(t.Kind))
}

func parsePostfix(p *Parser, left ast.Expr) ast.Expr {
	t := p.cur
	p.advance()
	op := unaryOpFor(t.Kind)
	return ast.NewUnary(span.Merge(left.NodeSpan(), t.Span), op, left, true)
}

func parseCall(p *Parser, callee ast.Expr) ast.Expr {
	p.advance() // '('
	var args []ast.Arg
	for !p.check(lexer.RParen) && !p.check(lexer.EOF) {
		name := ""
		if p.check(lexer.Identifier) && p.checkNext(lexer.Colon) {
			name = p.cur.Lexeme
			p.advance() // name
			p.advance() // ':'
		}
		args = append(args, ast.Arg{Name: name, Value: p.parseExpression(lowest)})
		if !p.match(lexer.Comma) {
			break
		}
	}
	end := p.expect(lexer.RParen, "')'").Span
	return ast.NewCall(span.Merge(callee.NodeSpan(), end), callee, args)
}

func parseIndex(p *Parser, array ast.Expr) ast.Expr {
	p.advance() // '['
	at := p.parseExpression(lowest)
	end := p.expect(lexer.RBracket, "']'").Span
	return ast.NewIndex(span.Merge(array.NodeSpan(), end), array, at)
}

// parseMember is retained for a future member-access syntax (the '.'
// code point is already claimed as the statement terminator, so this
// grammar has no operator to reach ast.Member from today); it stays
// unwired until such an operator is added.
func parseMember(object ast.Expr, name lexer.Token) ast.Expr {
	return ast.NewMember(span.Merge(object.NodeSpan(), name.Span), object, name.Lexeme)
}
