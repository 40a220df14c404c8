package parser

import "github.com/baa-lang/baa/lexer"

// Operator precedence constants, following C-based language standards.
// Higher number binds tighter.
//
// Precedence Hierarchy (lowest to highest):
//  1. Assignment operators (right-to-left associativity)
//  2. Logical OR
//  3. Logical AND
//  4. Bitwise OR
//  5. Bitwise XOR
//  6. Bitwise AND
//  7. Equality operators
//  8. Relational operators
//  9. Shift operators
//  10. Additive operators
//  11. Multiplicative operators
//  12. Unary/prefix operators
//  13. Postfix (call/index/member) operators
const (
	lowest = iota
	assignPriority
	orPriority
	andPriority
	bitOrPriority
	bitXorPriority
	bitAndPriority
	equalityPriority
	relationalPriority
	shiftPriority
	addPriority
	mulPriority
	prefixPriority
	postfixPriority
)

// precedenceOf returns the infix binding power of tok, or lowest if tok
// is not an infix operator.
func precedenceOf(kind lexer.Kind) int {
	switch kind {
	case lexer.Assign, lexer.PlusAssign, lexer.MinusAssign, lexer.StarAssign, lexer.SlashAssign, lexer.PctAssign:
		return assignPriority
	case lexer.OrOr:
		return orPriority
	case lexer.AndAnd:
		return andPriority
	case lexer.BitOr:
		return bitOrPriority
	case lexer.BitXor:
		return bitXorPriority
	case lexer.BitAnd:
		return bitAndPriority
	case lexer.Eq, lexer.Neq:
		return equalityPriority
	case lexer.Lt, lexer.Le, lexer.Gt, lexer.Ge:
		return relationalPriority
	case lexer.Shl, lexer.Shr:
		return shiftPriority
	case lexer.Plus, lexer.Minus:
		return addPriority
	case lexer.Star, lexer.Slash, lexer.Percent:
		return mulPriority
	case lexer.LParen, lexer.LBracket, lexer.Inc, lexer.Dec:
		return postfixPriority
	}
	return lowest
}
