// Package ast defines the tagged-union Abstract Syntax Tree produced by
// the parser. Every node kind has exactly one payload shape; there are
// no parent back-pointers (spec.md §9) — traversal is by explicit
// Visitor walker.
package ast

import "github.com/baa-lang/baa/span"

// Kind discriminates the node variants. Each Node implementation reports
// exactly one Kind and carries exactly one payload shape.
type Kind int

const (
	KindProgram Kind = iota
	KindVarDecl
	KindFuncDecl
	KindParam
	KindTypePrimitive
	KindTypeArray
	KindExprStmt
	KindBlock
	KindIf
	KindWhile
	KindFor
	KindReturn
	KindBreak
	KindContinue
	KindSwitch
	KindCase
	KindImport
	KindLiteral
	KindIdentifier
	KindBinary
	KindUnary
	KindAssignment
	KindCall
	KindIndex
	KindMember
	KindCast
	KindGrouping
)

//go:generate stringer -type=Kind
func (k Kind) String() string {
	names := [...]string{
		"Program", "VarDecl", "FuncDecl", "Param", "TypePrimitive", "TypeArray",
		"ExprStmt", "Block", "If", "While", "For", "Return", "Break", "Continue",
		"Switch", "Case", "Import", "Literal", "Identifier", "Binary", "Unary",
		"Assignment", "Call", "Index", "Member", "Cast", "Grouping",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// Node is the base interface every AST node satisfies: an identifying
// Kind, a source Span, and the ability to accept a Visitor. Children are
// reached through each node's own typed fields, never through a generic
// "children" accessor — the payload shape is the contract.
type Node interface {
	Kind() Kind
	NodeSpan() span.Span
	Accept(v Visitor)
}

// Stmt is satisfied by every statement-shaped node. Expressions are also
// statements (an ExprStmt wraps them explicitly; Expr itself does not
// implement Stmt), matching spec.md's grammar where an
// expression followed by '.' is one of the statement forms.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is satisfied by every expression-shaped node.
type Expr interface {
	Node
	exprNode()
	// Type returns the node's determined_type: resolved at construction
	// time for literals, and left nil ("unresolved", spec.md §3.3) for
	// identifiers and compound expressions. A later pass outside this
	// frontend's scope is responsible for filling it in.
	Type() *TypeNode
	setType(*TypeNode)
}

// Decl is satisfied by top-level and block-scoped declarations.
type Decl interface {
	Stmt
	declNode()
}

// base is embedded by every concrete node to supply Kind/NodeSpan.
type base struct {
	kind Kind
	span span.Span
}

func (b base) Kind() Kind            { return b.kind }
func (b base) NodeSpan() span.Span   { return b.span }

// exprBase adds the determined_type slot shared by every expression.
type exprBase struct {
	base
	determinedType *TypeNode
}

func (e *exprBase) exprNode()                {}
func (e *exprBase) Type() *TypeNode          { return e.determinedType }
func (e *exprBase) setType(t *TypeNode)       { e.determinedType = t }

// Modifiers is a bit-set over the declaration modifier keywords.
type Modifiers uint8

const (
	ModConst Modifiers = 1 << iota
	ModStatic
	ModExtern
	ModInline
	ModRestrict
	ModAuto
	ModRegister
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

// Program is the AST root: an ordered list of top-level declarations.
// The overwhelming majority of real entries are Decl (VarDecl, FuncDecl,
// Import); the field is typed as the wider Stmt so a bare top-level
// expression or control-flow statement — the shape a minimal test
// snippet like a lone literal parses to (spec.md §8 scenario 2) — has
// somewhere to live without forcing a synthetic declaration around it.
type Program struct {
	base
	Declarations []Stmt
}

func NewProgram(sp span.Span, decls []Stmt) *Program {
	return &Program{base: base{kind: KindProgram, span: sp}, Declarations: decls}
}
func (n *Program) Accept(v Visitor) { v.VisitProgram(n) }

// TypeKind distinguishes the two type-representation node shapes.
type TypeKind int

const (
	TypePrimitiveKind TypeKind = iota
	TypeArrayKind
)

// TypeNode represents a type reference: either a primitive named type
// or an array of some element type with an optional size expression.
type TypeNode struct {
	base
	TypeKind TypeKind
	Name     string   // set when TypeKind == TypePrimitiveKind
	Element  *TypeNode // set when TypeKind == TypeArrayKind
	Size     Expr      // optional, set when TypeKind == TypeArrayKind
}

func NewPrimitiveType(sp span.Span, name string) *TypeNode {
	return &TypeNode{base: base{kind: KindTypePrimitive, span: sp}, TypeKind: TypePrimitiveKind, Name: name}
}

func NewArrayType(sp span.Span, element *TypeNode, size Expr) *TypeNode {
	return &TypeNode{base: base{kind: KindTypeArray, span: sp}, TypeKind: TypeArrayKind, Element: element, Size: size}
}

func (n *TypeNode) Accept(v Visitor) {
	if n.TypeKind == TypePrimitiveKind {
		v.VisitTypePrimitive(n)
	} else {
		v.VisitTypeArray(n)
	}
}

// VarDecl is a variable declaration: name, modifiers, type node, and an
// optional initializer expression.
type VarDecl struct {
	base
	Name        string
	Modifiers   Modifiers
	Type        *TypeNode
	Initializer Expr // nil if absent
	Doc         string
}

func NewVarDecl(sp span.Span, name string, mods Modifiers, typ *TypeNode, init Expr) *VarDecl {
	return &VarDecl{base: base{kind: KindVarDecl, span: sp}, Name: name, Modifiers: mods, Type: typ, Initializer: init}
}
func (n *VarDecl) Accept(v Visitor) { v.VisitVarDecl(n) }
func (n *VarDecl) stmtNode()        {}
func (n *VarDecl) declNode()        {}

// Param is a single function parameter: name and type node.
type Param struct {
	base
	Name string
	Type *TypeNode
}

func NewParam(sp span.Span, name string, typ *TypeNode) *Param {
	return &Param{base: base{kind: KindParam, span: sp}, Name: name, Type: typ}
}
func (n *Param) Accept(v Visitor) { v.VisitParam(n) }

// FuncDecl is a function definition: name, modifiers, return type node,
// ordered parameter list, and body block.
type FuncDecl struct {
	base
	Name       string
	Modifiers  Modifiers
	ReturnType *TypeNode
	Params     []*Param
	Body       *Block
	Doc        string
}

func NewFuncDecl(sp span.Span, name string, mods Modifiers, ret *TypeNode, params []*Param, body *Block) *FuncDecl {
	return &FuncDecl{base: base{kind: KindFuncDecl, span: sp}, Name: name, Modifiers: mods, ReturnType: ret, Params: params, Body: body}
}
func (n *FuncDecl) Accept(v Visitor) { v.VisitFuncDecl(n) }
func (n *FuncDecl) stmtNode()        {}
func (n *FuncDecl) declNode()        {}
