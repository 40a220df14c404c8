package ast

import "github.com/baa-lang/baa/span"

// LiteralKind distinguishes the five literal value shapes.
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralBool
	LiteralChar
	LiteralString
)

// Literal is an int/float/bool/char/string literal expression. Its
// determined_type is resolved at construction time (spec.md §3.3
// invariant), unlike every other expression kind.
type Literal struct {
	exprBase
	LiteralKind LiteralKind
	Value       any // int64, float64, bool, rune, or string
}

func NewLiteral(sp span.Span, kind LiteralKind, value any, typ *TypeNode) *Literal {
	n := &Literal{LiteralKind: kind, Value: value}
	n.base = base{kind: KindLiteral, span: sp}
	n.determinedType = typ
	return n
}
func (n *Literal) Accept(v Visitor) { v.VisitLiteral(n) }

// Identifier is a name reference. Its determined_type is left
// unresolved until a later, out-of-scope pass fills it in.
type Identifier struct {
	exprBase
	Name string
}

func NewIdentifier(sp span.Span, name string) *Identifier {
	n := &Identifier{Name: name}
	n.base = base{kind: KindIdentifier, span: sp}
	return n
}
func (n *Identifier) Accept(v Visitor) { v.VisitIdentifier(n) }

// BinaryOp is the closed set of binary operator kinds the parser
// produces; it mirrors the lexer token kinds that can appear as an
// infix operator but is kept distinct so the AST does not depend on the
// lexer's full token enumeration.
type BinaryOp int

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinEq
	BinNeq
	BinLt
	BinLe
	BinGt
	BinGe
	BinAnd
	BinOr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
)

// Binary is a binary expression: operator, left operand, right operand.
type Binary struct {
	exprBase
	Op          BinaryOp
	Left, Right Expr
}

func NewBinary(sp span.Span, op BinaryOp, left, right Expr) *Binary {
	n := &Binary{Op: op, Left: left, Right: right}
	n.base = base{kind: KindBinary, span: sp}
	return n
}
func (n *Binary) Accept(v Visitor) { v.VisitBinary(n) }

// UnaryOp is the closed set of unary/prefix operator kinds plus the two
// increment/decrement operators, which may appear prefix or postfix
// (distinguished by Unary.Postfix).
type UnaryOp int

const (
	UnaryNot UnaryOp = iota
	UnaryBitNot
	UnaryNeg
	UnaryPos
	UnaryInc
	UnaryDec
)

// Unary is a unary expression: operator, operand, and whether the
// operator applies prefix or postfix (relevant only for Inc/Dec).
type Unary struct {
	exprBase
	Op      UnaryOp
	Operand Expr
	Postfix bool
}

func NewUnary(sp span.Span, op UnaryOp, operand Expr, postfix bool) *Unary {
	n := &Unary{Op: op, Operand: operand, Postfix: postfix}
	n.base = base{kind: KindUnary, span: sp}
	return n
}
func (n *Unary) Accept(v Visitor) { v.VisitUnary(n) }

// Assignment is `target = value` or a compound-operator form, recorded
// via CompoundOp (the BinaryOp the compound form folds in, e.g. BinAdd
// for '+='); HasCompound is false for plain '='.
type Assignment struct {
	exprBase
	Target      Expr
	Value       Expr
	HasCompound bool
	CompoundOp  BinaryOp
}

func NewAssignment(sp span.Span, target, value Expr) *Assignment {
	n := &Assignment{Target: target, Value: value}
	n.base = base{kind: KindAssignment, span: sp}
	return n
}

func NewCompoundAssignment(sp span.Span, target, value Expr, op BinaryOp) *Assignment {
	n := NewAssignment(sp, target, value)
	n.HasCompound = true
	n.CompoundOp = op
	return n
}
func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }

// Arg is one call argument, optionally tagged with a parameter name for
// named-argument call syntax.
type Arg struct {
	Name  string // empty for positional arguments
	Value Expr
}

// Call is a function call: callee expression and ordered argument list.
type Call struct {
	exprBase
	Callee Expr
	Args   []Arg
}

func NewCall(sp span.Span, callee Expr, args []Arg) *Call {
	n := &Call{Callee: callee, Args: args}
	n.base = base{kind: KindCall, span: sp}
	return n
}
func (n *Call) Accept(v Visitor) { v.VisitCall(n) }

// Index is array/element indexing: `array[index]`.
type Index struct {
	exprBase
	Array Expr
	At    Expr
}

func NewIndex(sp span.Span, array, at Expr) *Index {
	n := &Index{Array: array, At: at}
	n.base = base{kind: KindIndex, span: sp}
	return n
}
func (n *Index) Accept(v Visitor) { v.VisitIndex(n) }

// Member is field/method access: `object.member`.
type Member struct {
	exprBase
	Object Expr
	Name   string
}

func NewMember(sp span.Span, object Expr, name string) *Member {
	n := &Member{Object: object, Name: name}
	n.base = base{kind: KindMember, span: sp}
	return n
}
func (n *Member) Accept(v Visitor) { v.VisitMember(n) }

// Cast is an explicit type conversion: `(type) operand` in the concrete
// syntax.
type Cast struct {
	exprBase
	Operand    Expr
	TargetType *TypeNode
}

func NewCast(sp span.Span, operand Expr, target *TypeNode) *Cast {
	n := &Cast{Operand: operand, TargetType: target}
	n.base = base{kind: KindCast, span: sp}
	return n
}
func (n *Cast) Accept(v Visitor) { v.VisitCast(n) }

// Grouping is a parenthesized expression, retained as its own node so
// the AST can round-trip source fidelity (spec.md §3.3) rather than
// being collapsed into its inner expression.
type Grouping struct {
	exprBase
	Inner Expr
}

func NewGrouping(sp span.Span, inner Expr) *Grouping {
	n := &Grouping{Inner: inner}
	n.base = base{kind: KindGrouping, span: sp}
	return n
}
func (n *Grouping) Accept(v Visitor) { v.VisitGrouping(n) }
