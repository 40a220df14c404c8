package parser

import (
	"github.com/baa-lang/baa/ast"
	"github.com/baa-lang/baa/lexer"
	"github.com/baa-lang/baa/span"
)

// parseStatement parses one statement: a block, a control-flow form, or
// an expression statement terminated by '.'.
func (p *Parser) parseStatement() ast.Stmt {
	if !isDeclStart(p.cur.Kind) {
		// A doc comment attaches only to a declaration that directly follows it.
		p.takeDoc()
	}
	switch p.cur.Kind {
	case lexer.LBrace:
		return p.parseBlock()
	case lexer.KwIf:
		return p.parseIf()
	case lexer.KwWhile:
		return p.parseWhile()
	case lexer.KwFor:
		return p.parseFor()
	case lexer.KwReturn:
		return p.parseReturn()
	case lexer.KwBreak:
		sp := p.curSpan()
		p.advance()
		p.consumeTerminator()
		return ast.NewBreak(sp)
	case lexer.KwContinue:
		sp := p.curSpan()
		p.advance()
		p.consumeTerminator()
		return ast.NewContinue(sp)
	case lexer.KwSwitch:
		return p.parseSwitch()
	case lexer.KwImport:
		return p.parseDeclaration()
	default:
		if isDeclStart(p.cur.Kind) {
			return p.parseDeclaration()
		}
		return p.parseExprStatement()
	}
}

// consumeTerminator expects the statement-terminating '.'; a missing
// terminator is reported but does not abort parsing of the enclosing
// block (panic-mode recovery picks it up at the next synchronization
// point).
func (p *Parser) consumeTerminator() {
	if !p.match(lexer.Dot) {
		p.dx.Errorf(p.curSpan(), "expected '.' to end statement, found %q", p.cur.Lexeme)
		p.synchronize()
	}
}

func (p *Parser) parseExprStatement() ast.Stmt {
	start := p.curSpan()
	x := p.parseExpression(lowest)
	// parseExpression already resynchronized and reported a diagnostic
	// for its own error placeholder; requiring '.' here too would report
	// a second, redundant diagnostic for the same malformed statement.
	if !isErrorExpr(x) {
		p.consumeTerminator()
	}
	return ast.NewExprStmt(span.Merge(start, p.curSpan()), x)
}

func (p *Parser) parseBlock() *ast.Block {
	start := p.curSpan()
	p.expect(lexer.LBrace, "'{'")
	var stmts []ast.Stmt
	for !p.check(lexer.RBrace) && !p.check(lexer.EOF) {
		s := p.parseStatement()
		if s != nil {
			stmts = append(stmts, s)
		} else {
			p.synchronize()
		}
	}
	end := p.expect(lexer.RBrace, "'}'").Span
	return ast.NewBlock(span.Merge(start, end), stmts)
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.curSpan()
	p.advance() // 'إذا'
	p.expect(lexer.LParen, "'('")
	cond := p.parseExpression(lowest)
	p.expect(lexer.RParen, "')'")
	then := p.parseBlock()
	var els ast.Stmt
	if p.match(lexer.KwElse) {
		if p.check(lexer.KwIf) {
			els = p.parseIf()
		} else {
			els = p.parseBlock()
		}
	}
	end := p.curSpan()
	if els != nil {
		end = els.NodeSpan()
	} else {
		end = then.NodeSpan()
	}
	return ast.NewIf(span.Merge(start, end), cond, then, els)
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.curSpan()
	p.advance() // 'طالما'
	p.expect(lexer.LParen, "'('")
	cond := p.parseExpression(lowest)
	p.expect(lexer.RParen, "')'")
	body := p.parseBlock()
	return ast.NewWhile(span.Merge(start, body.NodeSpan()), cond, body)
}

// parseFor parses 'لكل' '(' [init] '.' [condition] '.' [increment] ')'
// followed by a block: the for-clause separator is the same '.' used as
// the statement terminator everywhere else, not ';' — the
// lexically-recognized ';'/'؛' tokens play no grammatical role. The loop
// body must be a '{' block; a single unbraced statement is not accepted.
func (p *Parser) parseFor() ast.Stmt {
	start := p.curSpan()
	p.advance() // 'لكل'
	p.expect(lexer.LParen, "'('")

	var init ast.Stmt
	if !p.check(lexer.Dot) {
		if isDeclStart(p.cur.Kind) {
			init = p.parseDeclarationNoTerminator()
		} else {
			x := p.parseExpression(lowest)
			init = ast.NewExprStmt(x.NodeSpan(), x)
		}
	}
	p.expect(lexer.Dot, "'.'")

	var cond ast.Expr
	if !p.check(lexer.Dot) {
		cond = p.parseExpression(lowest)
	}
	p.expect(lexer.Dot, "'.'")

	var inc ast.Expr
	if !p.check(lexer.RParen) {
		inc = p.parseExpression(lowest)
	}
	p.expect(lexer.RParen, "')'")

	body := p.parseBlock()
	return ast.NewFor(span.Merge(start, body.NodeSpan()), init, cond, inc, body)
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.curSpan()
	p.advance() // 'إرجع'
	var value ast.Expr
	if !p.check(lexer.Dot) {
		value = p.parseExpression(lowest)
	}
	end := p.curSpan()
	if !isErrorExpr(value) {
		p.consumeTerminator()
	}
	return ast.NewReturn(span.Merge(start, end), value)
}

func (p *Parser) parseSwitch() ast.Stmt {
	start := p.curSpan()
	p.advance() // 'اختر'
	p.expect(lexer.LParen, "'('")
	subject := p.parseExpression(lowest)
	p.expect(lexer.RParen, "')'")
	p.expect(lexer.LBrace, "'{'")

	var cases []*ast.Case
	var def []ast.Stmt
	sawDefault := false
	for !p.check(lexer.RBrace) && !p.check(lexer.EOF) {
		switch p.cur.Kind {
		case lexer.KwCase:
			caseStart := p.curSpan()
			p.advance()
			label := p.parseExpression(lowest)
			p.expect(lexer.Colon, "':'")
			stmts := p.parseCaseBody()
			cases = append(cases, ast.NewCase(span.Merge(caseStart, p.curSpan()), label, stmts))
		case lexer.KwDefault:
			defStart := p.curSpan()
			p.advance()
			p.expect(lexer.Colon, "':'")
			body := p.parseCaseBody()
			if sawDefault {
				p.dx.Errorf(defStart, "duplicate 'افتراضي' case in switch, ignoring")
				continue
			}
			if body == nil {
				body = []ast.Stmt{}
			}
			def = body
			sawDefault = true
		default:
			p.dx.Errorf(p.curSpan(), "expected 'حالة' or 'افتراضي' in switch body, found %q", p.cur.Lexeme)
			before := p.cur.Span
			p.synchronize()
			if p.cur.Span == before {
				// Already at a synchronization point; skip it to make progress.
				p.advance()
			}
		}
	}
	end := p.expect(lexer.RBrace, "'}'").Span
	return ast.NewSwitch(span.Merge(start, end), subject, cases, def)
}

// parseCaseBody reads statements up to the next case/default/closing
// brace, matching the fallthrough-free switch bodies the grammar uses.
func (p *Parser) parseCaseBody() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.KwCase) && !p.check(lexer.KwDefault) && !p.check(lexer.RBrace) && !p.check(lexer.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	return stmts
}

func isDeclStart(kind lexer.Kind) bool {
	if lexer.IsModifier(kind) {
		return true
	}
	switch kind {
	case lexer.TyInt, lexer.TyFloat, lexer.TyChar, lexer.TyVoid, lexer.TyBool, lexer.TyString, lexer.TyByte:
		return true
	case lexer.KwFunc:
		return true
	}
	return false
}
