package parser

import (
	"github.com/baa-lang/baa/ast"
	"github.com/baa-lang/baa/lexer"
	"github.com/baa-lang/baa/span"
)

var primitiveTypeNames = map[lexer.Kind]string{
	lexer.TyInt:    "عدد_صحيح",
	lexer.TyFloat:  "عدد_حقيقي",
	lexer.TyChar:   "حرف",
	lexer.TyVoid:   "فراغ",
	lexer.TyBool:   "منطقي",
	lexer.TyString: "نص",
	lexer.TyByte:   "بايت",
}

// parseDeclaration parses a (possibly modifier-prefixed) declaration:
// an import or a variable, each terminated by '.', or a function, which
// ends with its body block. Any pending doc comment is attached to a
// resulting function or variable node; an import drops it.
func (p *Parser) parseDeclaration() ast.Decl {
	doc := p.takeDoc()

	if p.check(lexer.KwImport) {
		return p.parseImport()
	}

	start := p.curSpan()
	var mods ast.Modifiers
	for lexer.IsModifier(p.cur.Kind) {
		mods |= modifierFor(p.cur.Kind)
		p.advance()
	}

	if p.check(lexer.KwFunc) {
		fn := p.parseFuncDecl(start, mods)
		fn.Doc = doc
		return fn
	}

	typ := p.parseType()

	if !p.check(lexer.Identifier) {
		p.dx.Errorf(p.curSpan(), "expected a declaration name, found %q", p.cur.Lexeme)
		p.synchronize()
		return nil
	}
	name := p.cur.Lexeme
	p.advance()

	var init ast.Expr
	if p.match(lexer.Assign) {
		init = p.parseExpression(lowest)
	}
	end := p.curSpan()
	if !isErrorExpr(init) {
		p.consumeTerminator()
	}
	v := ast.NewVarDecl(span.Merge(start, end), name, mods, typ, init)
	v.Doc = doc
	return v
}

// parseDeclarationNoTerminator parses a variable declaration without
// consuming a trailing '.', used for a for-loop's init clause, where
// parseFor itself consumes the '.' clause separator that follows.
func (p *Parser) parseDeclarationNoTerminator() ast.Stmt {
	start := p.curSpan()
	var mods ast.Modifiers
	for lexer.IsModifier(p.cur.Kind) {
		mods |= modifierFor(p.cur.Kind)
		p.advance()
	}
	typ := p.parseType()
	name := p.expect(lexer.Identifier, "a declaration name").Lexeme
	var init ast.Expr
	if p.match(lexer.Assign) {
		init = p.parseExpression(lowest)
	}
	return ast.NewVarDecl(span.Merge(start, p.curSpan()), name, mods, typ, init)
}

// parseFuncDecl parses a function definition: 'دالة' identifier '('
// parameters ')', an optional return type, then a body block (spec.md
// §4.3.4). The return type trails the parameter list here instead of
// leading the declaration the way a variable's type does.
func (p *Parser) parseFuncDecl(start span.Span, mods ast.Modifiers) *ast.FuncDecl {
	p.advance() // 'دالة'
	name := p.expect(lexer.Identifier, "a function name").Lexeme
	p.expect(lexer.LParen, "'('")
	var params []*ast.Param
	for !p.check(lexer.RParen) && !p.check(lexer.EOF) {
		pStart := p.curSpan()
		ptyp := p.parseType()
		pname := p.expect(lexer.Identifier, "a parameter name").Lexeme
		params = append(params, ast.NewParam(span.Merge(pStart, p.curSpan()), pname, ptyp))
		if !p.match(lexer.Comma) {
			break
		}
	}
	p.expect(lexer.RParen, "')'")

	var ret *ast.TypeNode
	if _, ok := primitiveTypeNames[p.cur.Kind]; ok {
		ret = p.parseType()
	}

	body := p.parseBlock()
	return ast.NewFuncDecl(span.Merge(start, body.NodeSpan()), name, mods, ret, params, body)
}

func (p *Parser) parseImport() ast.Decl {
	start := p.curSpan()
	p.advance() // '#تضمين'

	pathStr := p.parseImportPath()

	alias := ""
	if p.match(lexer.KwAs) {
		alias = p.expect(lexer.Identifier, "an import alias").Lexeme
	}
	end := p.curSpan()
	p.consumeTerminator()
	return ast.NewImport(span.Merge(start, end), pathStr, alias)
}

// parseImportPath parses either of the two import path forms spec.md
// §4.3.4 allows: a quoted string literal, or an angle-bracketed system
// path '<'...'>' built from raw token lexemes (the lexer has no
// dedicated angled-path literal, so the path is reassembled token by
// token, which is exact for the identifier/dot/slash vocabulary a path
// is made of).
func (p *Parser) parseImportPath() string {
	if p.check(lexer.StringLit) {
		t := p.cur
		p.advance()
		s, _ := t.Value.(string)
		return s
	}
	if !p.check(lexer.Lt) {
		p.dx.Errorf(p.curSpan(), "expected an import path, found %q", p.cur.Lexeme)
		return ""
	}
	p.advance() // '<'
	var path string
	for !p.check(lexer.Gt) && !p.check(lexer.EOF) {
		path += p.cur.Lexeme
		p.advance()
	}
	p.expect(lexer.Gt, "'>'")
	return path
}

// parseType parses a type reference: a primitive type name, optionally
// followed by one or more '[' ']' or '[' size ']' array suffixes.
func (p *Parser) parseType() *ast.TypeNode {
	start := p.curSpan()
	name, ok := primitiveTypeNames[p.cur.Kind]
	if !ok {
		p.dx.Errorf(start, "expected a type name, found %q", p.cur.Lexeme)
		p.advance()
		return ast.NewPrimitiveType(start, "?")
	}
	p.advance()
	typ := ast.NewPrimitiveType(start, name)

	for p.check(lexer.LBracket) {
		p.advance()
		var size ast.Expr
		if !p.check(lexer.RBracket) {
			size = p.parseExpression(lowest)
		}
		end := p.expect(lexer.RBracket, "']'").Span
		typ = ast.NewArrayType(span.Merge(start, end), typ, size)
	}
	return typ
}

func modifierFor(kind lexer.Kind) ast.Modifiers {
	switch kind {
	case lexer.KwConst:
		return ast.ModConst
	case lexer.KwStatic:
		return ast.ModStatic
	case lexer.KwExtern:
		return ast.ModExtern
	case lexer.KwInline:
		return ast.ModInline
	case lexer.KwRestrict:
		return ast.ModRestrict
	case lexer.KwAuto:
		return ast.ModAuto
	case lexer.KwRegister:
		return ast.ModRegister
	}
	return 0
}
