package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baa-lang/baa/ast"
	"github.com/baa-lang/baa/span"
)

func sp() span.Span {
	loc := span.Location{Filename: "<test>", Line: 1, Column: 1}
	return span.Span{Start: loc, End: loc}
}

func TestPrintVisitorProgram(t *testing.T) {
	lit := ast.NewLiteral(sp(), ast.LiteralInt, int64(42), ast.NewPrimitiveType(sp(), "عدد_صحيح"))
	stmt := ast.NewExprStmt(sp(), lit)
	prog := ast.NewProgram(sp(), []ast.Stmt{stmt})

	pv := ast.NewPrintVisitor()
	prog.Accept(pv)
	out := pv.String()

	require.NotEmpty(t, out)
	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "decls=1")
	assert.Contains(t, out, "ExprStmt")
	assert.Contains(t, out, "Literal")
	assert.Contains(t, out, "value=42")
}

// A function with no explicit return type must print without panicking:
// FuncDecl.ReturnType is nil whenever the source omits it.
func TestPrintVisitorFuncDeclWithoutReturnType(t *testing.T) {
	body := ast.NewBlock(sp(), nil)
	fn := ast.NewFuncDecl(sp(), "مربع", 0, nil, nil, body)
	prog := ast.NewProgram(sp(), []ast.Stmt{fn})

	pv := ast.NewPrintVisitor()
	assert.NotPanics(t, func() { prog.Accept(pv) })
	assert.Contains(t, pv.String(), "name=مربع")
}

func TestPrintVisitorBinaryOperatorSymbol(t *testing.T) {
	left := ast.NewLiteral(sp(), ast.LiteralInt, int64(1), nil)
	right := ast.NewLiteral(sp(), ast.LiteralInt, int64(2), nil)
	bin := ast.NewBinary(sp(), ast.BinAdd, left, right)

	pv := ast.NewPrintVisitor()
	bin.Accept(pv)
	assert.True(t, strings.Contains(pv.String(), "op=+"))
}

func TestBinOpAndUnaryOpSymbols(t *testing.T) {
	assert.Equal(t, "+", ast.BinOpSymbol(ast.BinAdd))
	assert.Equal(t, "==", ast.BinOpSymbol(ast.BinEq))
	assert.Equal(t, "!", ast.UnaryOpSymbol(ast.UnaryNot))
	assert.Equal(t, "++", ast.UnaryOpSymbol(ast.UnaryInc))
}
