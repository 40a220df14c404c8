package ast

import (
	"fmt"
	"strings"
)

const printIndentSize = 2

// binOpSymbols and unaryOpSymbols render operator kinds back to their
// concrete-syntax symbol for the printing visitor and for diagnostics
// that want to name an operator.
var binOpSymbols = map[BinaryOp]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinMod: "%",
	BinEq: "==", BinNeq: "!=", BinLt: "<", BinLe: "<=", BinGt: ">", BinGe: ">=",
	BinAnd: "&&", BinOr: "||", BinBitAnd: "&", BinBitOr: "|", BinBitXor: "^",
	BinShl: "<<", BinShr: ">>",
}

var unaryOpSymbols = map[UnaryOp]string{
	UnaryNot: "!", UnaryBitNot: "~", UnaryNeg: "-", UnaryPos: "+",
	UnaryInc: "++", UnaryDec: "--",
}

// BinOpSymbol renders a BinaryOp as its concrete-syntax operator text.
func BinOpSymbol(op BinaryOp) string { return binOpSymbols[op] }

// UnaryOpSymbol renders a UnaryOp as its concrete-syntax operator text.
func UnaryOpSymbol(op UnaryOp) string { return unaryOpSymbols[op] }

// PrintVisitor renders an AST as an indented tree, one node per line,
// each line naming the node's kind, its span, and a one-line rendering
// of the node's distinguishing attribute (operator symbol, literal
// value, identifier name) — the shape spec.md §6 requires of the
// baa_ast_tester tool. Grounded on the teacher's PrintingVisitor
// (print_visitor.go), generalized from its hardcoded arithmetic-node
// set to this package's full closed node set.
type PrintVisitor struct {
	buf    strings.Builder
	indent int
}

// NewPrintVisitor returns an empty printing visitor.
func NewPrintVisitor() *PrintVisitor { return &PrintVisitor{} }

// String returns everything written so far.
func (p *PrintVisitor) String() string { return p.buf.String() }

func (p *PrintVisitor) writeIndent() {
	p.buf.WriteString(strings.Repeat(" ", p.indent*printIndentSize))
}

// line writes one tree line: indentation, kind, span, then attr if
// non-empty, e.g. "Binary (L1 C1-L1 C6) op=+".
func (p *PrintVisitor) line(n Node, attr string) {
	p.writeIndent()
	sp := n.NodeSpan()
	if attr != "" {
		fmt.Fprintf(&p.buf, "%s (L%d C%d-L%d C%d) %s\n", n.Kind(), sp.Start.Line, sp.Start.Column, sp.End.Line, sp.End.Column, attr)
	} else {
		fmt.Fprintf(&p.buf, "%s (L%d C%d-L%d C%d)\n", n.Kind(), sp.Start.Line, sp.Start.Column, sp.End.Line, sp.End.Column)
	}
}

func (p *PrintVisitor) nested(f func()) {
	p.indent++
	f()
	p.indent--
}

func (p *PrintVisitor) VisitProgram(n *Program) {
	p.line(n, fmt.Sprintf("decls=%d", len(n.Declarations)))
	p.nested(func() {
		for _, d := range n.Declarations {
			d.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitVarDecl(n *VarDecl) {
	p.line(n, fmt.Sprintf("name=%s mods=%#x", n.Name, uint8(n.Modifiers)))
	p.nested(func() {
		n.Type.Accept(p)
		if n.Initializer != nil {
			n.Initializer.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitParam(n *Param) {
	p.line(n, fmt.Sprintf("name=%s", n.Name))
	p.nested(func() { n.Type.Accept(p) })
}

func (p *PrintVisitor) VisitFuncDecl(n *FuncDecl) {
	p.line(n, fmt.Sprintf("name=%s params=%d", n.Name, len(n.Params)))
	p.nested(func() {
		if n.ReturnType != nil {
			n.ReturnType.Accept(p)
		}
		for _, prm := range n.Params {
			prm.Accept(p)
		}
		n.Body.Accept(p)
	})
}

func (p *PrintVisitor) VisitImport(n *Import) {
	attr := fmt.Sprintf("path=%q", n.Path)
	if n.Alias != "" {
		attr += fmt.Sprintf(" alias=%s", n.Alias)
	}
	p.line(n, attr)
}

func (p *PrintVisitor) VisitTypePrimitive(n *TypeNode) {
	p.line(n, fmt.Sprintf("name=%s", n.Name))
}

func (p *PrintVisitor) VisitTypeArray(n *TypeNode) {
	p.line(n, "")
	p.nested(func() {
		n.Element.Accept(p)
		if n.Size != nil {
			n.Size.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitExprStmt(n *ExprStmt) {
	p.line(n, "")
	p.nested(func() { n.X.Accept(p) })
}

func (p *PrintVisitor) VisitBlock(n *Block) {
	p.line(n, fmt.Sprintf("stmts=%d", len(n.Statements)))
	p.nested(func() {
		for _, s := range n.Statements {
			s.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitIf(n *If) {
	p.line(n, "")
	p.nested(func() {
		n.Cond.Accept(p)
		n.Then.Accept(p)
		if n.Else != nil {
			n.Else.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitWhile(n *While) {
	p.line(n, "")
	p.nested(func() {
		n.Cond.Accept(p)
		n.Body.Accept(p)
	})
}

func (p *PrintVisitor) VisitFor(n *For) {
	p.line(n, "")
	p.nested(func() {
		if n.Init != nil {
			n.Init.Accept(p)
		}
		if n.Cond != nil {
			n.Cond.Accept(p)
		}
		if n.Increment != nil {
			n.Increment.Accept(p)
		}
		n.Body.Accept(p)
	})
}

func (p *PrintVisitor) VisitReturn(n *Return) {
	p.line(n, "")
	if n.Value != nil {
		p.nested(func() { n.Value.Accept(p) })
	}
}

func (p *PrintVisitor) VisitBreak(n *Break)       { p.line(n, "") }
func (p *PrintVisitor) VisitContinue(n *Continue) { p.line(n, "") }

func (p *PrintVisitor) VisitCase(n *Case) {
	p.line(n, "")
	p.nested(func() {
		n.Label.Accept(p)
		for _, s := range n.Statements {
			s.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitSwitch(n *Switch) {
	p.line(n, fmt.Sprintf("cases=%d default=%t", len(n.Cases), n.Default != nil))
	p.nested(func() {
		n.Subject.Accept(p)
		for _, c := range n.Cases {
			c.Accept(p)
		}
		for _, s := range n.Default {
			s.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitLiteral(n *Literal) {
	p.line(n, fmt.Sprintf("value=%v", n.Value))
}

func (p *PrintVisitor) VisitIdentifier(n *Identifier) {
	p.line(n, fmt.Sprintf("name=%s", n.Name))
}

func (p *PrintVisitor) VisitBinary(n *Binary) {
	p.line(n, fmt.Sprintf("op=%s", BinOpSymbol(n.Op)))
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *PrintVisitor) VisitUnary(n *Unary) {
	p.line(n, fmt.Sprintf("op=%s postfix=%t", UnaryOpSymbol(n.Op), n.Postfix))
	p.nested(func() { n.Operand.Accept(p) })
}

func (p *PrintVisitor) VisitAssignment(n *Assignment) {
	attr := "op=="
	if n.HasCompound {
		attr = fmt.Sprintf("op=%s=", BinOpSymbol(n.CompoundOp))
	}
	p.line(n, attr)
	p.nested(func() {
		n.Target.Accept(p)
		n.Value.Accept(p)
	})
}

func (p *PrintVisitor) VisitCall(n *Call) {
	p.line(n, fmt.Sprintf("args=%d", len(n.Args)))
	p.nested(func() {
		n.Callee.Accept(p)
		for _, a := range n.Args {
			if a.Name != "" {
				p.writeIndent()
				fmt.Fprintf(&p.buf, "Arg name=%s\n", a.Name)
			}
			a.Value.Accept(p)
		}
	})
}

func (p *PrintVisitor) VisitIndex(n *Index) {
	p.line(n, "")
	p.nested(func() {
		n.Array.Accept(p)
		n.At.Accept(p)
	})
}

func (p *PrintVisitor) VisitMember(n *Member) {
	p.line(n, fmt.Sprintf("name=%s", n.Name))
	p.nested(func() { n.Object.Accept(p) })
}

func (p *PrintVisitor) VisitCast(n *Cast) {
	p.line(n, "")
	p.nested(func() {
		n.TargetType.Accept(p)
		n.Operand.Accept(p)
	})
}

func (p *PrintVisitor) VisitGrouping(n *Grouping) {
	p.line(n, "")
	p.nested(func() { n.Inner.Accept(p) })
}
