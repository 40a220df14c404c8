package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baa-lang/baa/ast"
	"github.com/baa-lang/baa/diag"
	"github.com/baa-lang/baa/lexer"
	"github.com/baa-lang/baa/parser"
)

func parse(t *testing.T, src string) (*ast.Program, *diag.Context) {
	t.Helper()
	dx := diag.NewContext()
	lx := lexer.New([]rune(src), "<test>")
	prog := parser.ParseProgram(lx, dx)
	require.NotNil(t, prog)
	return prog, dx
}

func TestParseVarDeclWithInitializer(t *testing.T) {
	prog, dx := parse(t, "عدد_صحيح س = ٥.")
	require.False(t, dx.HadError())
	require.Len(t, prog.Declarations, 1)

	v, ok := prog.Declarations[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "س", v.Name)
	assert.Equal(t, "عدد_صحيح", v.Type.Name)
	require.NotNil(t, v.Initializer)
	lit, ok := v.Initializer.(*ast.Literal)
	require.True(t, ok)
	assert.EqualValues(t, 5, lit.Value)
}

func TestParseVarDeclWithoutInitializer(t *testing.T) {
	prog, dx := parse(t, "عدد_حقيقي ص.")
	require.False(t, dx.HadError())
	require.Len(t, prog.Declarations, 1)
	v := prog.Declarations[0].(*ast.VarDecl)
	assert.Nil(t, v.Initializer)
}

// Function declarations lead with 'دالة', not a return type: the
// parameter list comes first, and the return type, if present, trails
// it rather than prefixing the declaration the way a variable's does.
func TestParseFuncDeclWithParamsAndReturnType(t *testing.T) {
	prog, dx := parse(t, "دالة مربع(عدد_صحيح س) عدد_صحيح {\n إرجع س * س.\n}")
	require.False(t, dx.HadError())
	require.Len(t, prog.Declarations, 1)

	fn, ok := prog.Declarations[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.Equal(t, "مربع", fn.Name)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "س", fn.Params[0].Name)
	assert.Equal(t, "عدد_صحيح", fn.Params[0].Type.Name)
	require.NotNil(t, fn.ReturnType)
	assert.Equal(t, "عدد_صحيح", fn.ReturnType.Name)
	require.Len(t, fn.Body.Statements, 1)
}

func TestParseFuncDeclWithoutReturnType(t *testing.T) {
	prog, dx := parse(t, "دالة مربع() {\n إرجع ٠.\n}")
	require.False(t, dx.HadError())
	require.Len(t, prog.Declarations, 1)

	fn := prog.Declarations[0].(*ast.FuncDecl)
	assert.Nil(t, fn.ReturnType)
	assert.Empty(t, fn.Params)
}

func TestParseFuncDeclMultipleParams(t *testing.T) {
	prog, dx := parse(t, "دالة جمع(عدد_صحيح أ, عدد_صحيح ب) عدد_صحيح {\n إرجع أ + ب.\n}")
	require.False(t, dx.HadError())
	fn := prog.Declarations[0].(*ast.FuncDecl)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "أ", fn.Params[0].Name)
	assert.Equal(t, "ب", fn.Params[1].Name)
}

func TestParseIfElseChain(t *testing.T) {
	src := `دالة اختبار() {
    إذا (صحيح) {
        إرجع ١.
    } وإلا إذا (خطأ) {
        إرجع ٢.
    } وإلا {
        إرجع ٣.
    }
}`
	prog, dx := parse(t, src)
	require.False(t, dx.HadError())
	fn := prog.Declarations[0].(*ast.FuncDecl)
	require.Len(t, fn.Body.Statements, 1)

	ifStmt, ok := fn.Body.Statements[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Else)
	elseIf, ok := ifStmt.Else.(*ast.If)
	require.True(t, ok, "dangling else must bind to the nearest 'إذا'")
	require.NotNil(t, elseIf.Else)
	_, ok = elseIf.Else.(*ast.Block)
	assert.True(t, ok)
}

func TestParseWhileLoop(t *testing.T) {
	prog, dx := parse(t, "دالة ع() {\n طالما (صحيح) {\n توقف.\n }\n}")
	require.False(t, dx.HadError())
	fn := prog.Declarations[0].(*ast.FuncDecl)
	w, ok := fn.Body.Statements[0].(*ast.While)
	require.True(t, ok)
	require.Len(t, w.Body.Statements, 1)
	_, ok = w.Body.Statements[0].(*ast.Break)
	assert.True(t, ok)
}

func TestParseForLoop(t *testing.T) {
	// The for-clause separator is '.', matching the statement terminator
	// used everywhere else in the grammar (spec.md §4.3.4).
	src := "دالة ع() {\n لكل (عدد_صحيح ن = ٠. ن < ١٠. ن++) {\n استمر.\n }\n}"
	prog, dx := parse(t, src)
	require.False(t, dx.HadError())
	fn := prog.Declarations[0].(*ast.FuncDecl)
	f, ok := fn.Body.Statements[0].(*ast.For)
	require.True(t, ok)
	require.NotNil(t, f.Init)
	require.NotNil(t, f.Cond)
	require.NotNil(t, f.Increment)
}

func TestParseSwitchDuplicateDefault(t *testing.T) {
	src := `دالة ع() {
    اختر (١) {
        حالة ١: توقف.
        افتراضي: توقف.
        افتراضي: استمر.
    }
}`
	prog, dx := parse(t, src)
	require.True(t, dx.HadError(), "a duplicate default must be reported")
	fn := prog.Declarations[0].(*ast.FuncDecl)
	sw, ok := fn.Body.Statements[0].(*ast.Switch)
	require.True(t, ok)
	require.Len(t, sw.Cases, 1)
	require.Len(t, sw.Default, 1, "the first default arm wins, the duplicate is ignored")
}

func TestParseImportQuotedPath(t *testing.T) {
	prog, dx := parse(t, `#تضمين "نظام/قياسي".`)
	require.False(t, dx.HadError())
	require.Len(t, prog.Declarations, 1)
	imp, ok := prog.Declarations[0].(*ast.Import)
	require.True(t, ok)
	assert.Equal(t, "نظام/قياسي", imp.Path)
}

func TestParseImportAngledPath(t *testing.T) {
	prog, dx := parse(t, "#تضمين <قياسي.دخل_خرج>.")
	require.False(t, dx.HadError())
	imp := prog.Declarations[0].(*ast.Import)
	assert.Equal(t, "قياسي.دخل_خرج", imp.Path)
}

func TestParseImportWithAlias(t *testing.T) {
	prog, dx := parse(t, `#تضمين "نظام/قياسي" as ق.`)
	require.False(t, dx.HadError())
	imp := prog.Declarations[0].(*ast.Import)
	assert.Equal(t, "ق", imp.Alias)
}

func TestParseExpressionPrecedence(t *testing.T) {
	prog, dx := parse(t, "١ + ٢ * ٣.")
	require.False(t, dx.HadError())
	stmt := prog.Declarations[0].(*ast.ExprStmt)
	bin, ok := stmt.X.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.BinAdd, bin.Op)
	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok, "multiplication must bind tighter than addition")
	assert.Equal(t, ast.BinMul, rhs.Op)
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	prog, dx := parse(t, "أ = ب = ١.")
	require.False(t, dx.HadError())
	stmt := prog.Declarations[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Assignment)
	require.True(t, ok)
	_, ok = outer.Value.(*ast.Assignment)
	assert.True(t, ok, "assignment must be right-associative")
}

func TestParseCompoundAssignment(t *testing.T) {
	prog, dx := parse(t, "أ += ١.")
	require.False(t, dx.HadError())
	stmt := prog.Declarations[0].(*ast.ExprStmt)
	asn := stmt.X.(*ast.Assignment)
	assert.True(t, asn.HasCompound)
	assert.Equal(t, ast.BinAdd, asn.CompoundOp)
}

func TestParseCallWithNamedArgument(t *testing.T) {
	prog, dx := parse(t, "جمع(أ: ١, ٢).")
	require.False(t, dx.HadError())
	stmt := prog.Declarations[0].(*ast.ExprStmt)
	call, ok := stmt.X.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "أ", call.Args[0].Name)
	assert.Empty(t, call.Args[1].Name)
}

func TestParseIndexExpression(t *testing.T) {
	prog, dx := parse(t, "م[٠].")
	require.False(t, dx.HadError())
	stmt := prog.Declarations[0].(*ast.ExprStmt)
	idx, ok := stmt.X.(*ast.Index)
	require.True(t, ok)
	_, ok = idx.Array.(*ast.Identifier)
	assert.True(t, ok)
}

func TestParseArrayType(t *testing.T) {
	// The array suffix attaches to the type name, before the declared
	// identifier: 'typename[size] name', not a trailing C declarator.
	prog, dx := parse(t, "عدد_صحيح[١٠] م.")
	require.False(t, dx.HadError())
	v := prog.Declarations[0].(*ast.VarDecl)
	require.Equal(t, ast.TypeArrayKind, v.Type.TypeKind)
	assert.Equal(t, "عدد_صحيح", v.Type.Element.Name)
	require.NotNil(t, v.Type.Size)
}

func TestParseBareLiteralTopLevel(t *testing.T) {
	// spec.md §8 scenario 2: a minimal program with no declaration
	// wrapper at all, just an expression statement.
	prog, dx := parse(t, "١٢٣.")
	require.False(t, dx.HadError())
	require.Len(t, prog.Declarations, 1)
	stmt, ok := prog.Declarations[0].(*ast.ExprStmt)
	require.True(t, ok)
	lit, ok := stmt.X.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.LiteralInt, lit.LiteralKind)
}

func TestParseMissingTerminatorRecovers(t *testing.T) {
	prog, dx := parse(t, "عدد_صحيح س = ١\nعدد_صحيح ص = ٢.")
	assert.True(t, dx.HadError())
	// parsing still reaches EOF and recovers the second declaration.
	require.Len(t, prog.Declarations, 2)
}
