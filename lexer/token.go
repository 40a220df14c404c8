// Package lexer implements the pull-based tokenizer for Baa source text:
// a bidirectional mix of Arabic keywords, Arabic-Indic digits, and ASCII
// operators/identifiers. The lexer owns no AST; it hands the parser a
// stream of self-contained Token values.
package lexer

import "github.com/baa-lang/baa/span"

// Kind is a closed enumeration of token kinds, grouped the same way
// spec.md partitions them: special, keywords, types, literals,
// operators, delimiters, comments, whitespace.
type Kind string

const (
	// Special
	EOF     Kind = "EOF"
	ERROR   Kind = "ERROR"
	UNKNOWN Kind = "UNKNOWN"

	// Keywords
	KwFunc     Kind = "KW_FUNC"
	KwReturn   Kind = "KW_RETURN"
	KwIf       Kind = "KW_IF"
	KwElse     Kind = "KW_ELSE"
	KwWhile    Kind = "KW_WHILE"
	KwFor      Kind = "KW_FOR"
	KwDo       Kind = "KW_DO"
	KwSwitch   Kind = "KW_SWITCH"
	KwCase     Kind = "KW_CASE"
	KwDefault  Kind = "KW_DEFAULT"
	KwBreak    Kind = "KW_BREAK"
	KwContinue Kind = "KW_CONTINUE"
	KwConst    Kind = "KW_CONST"
	KwStatic   Kind = "KW_STATIC"
	KwExtern   Kind = "KW_EXTERN"
	KwInline   Kind = "KW_INLINE"
	KwRestrict Kind = "KW_RESTRICT"
	KwAuto     Kind = "KW_AUTO"
	KwRegister Kind = "KW_REGISTER"
	KwImport   Kind = "KW_IMPORT" // '#تضمين'
	KwAs       Kind = "KW_AS"     // 'as'

	// Types (7 primitive type names)
	TyInt    Kind = "TY_INT"    // عدد_صحيح
	TyFloat  Kind = "TY_FLOAT"  // عدد_حقيقي
	TyChar   Kind = "TY_CHAR"   // حرف
	TyVoid   Kind = "TY_VOID"   // فراغ
	TyBool   Kind = "TY_BOOL"   // منطقي
	TyString Kind = "TY_STRING" // نص
	TyByte   Kind = "TY_BYTE"   // بايت

	// Literals
	IntLit    Kind = "INT_LIT"
	FloatLit  Kind = "FLOAT_LIT"
	BoolLit   Kind = "BOOL_LIT"
	CharLit   Kind = "CHAR_LIT"
	StringLit Kind = "STRING_LIT"
	NullLit   Kind = "NULL_LIT"

	// Identifier
	Identifier Kind = "IDENTIFIER"

	// Operators
	Plus        Kind = "+"
	Minus       Kind = "-"
	Star        Kind = "*"
	Slash       Kind = "/"
	Percent     Kind = "%"
	Assign      Kind = "="
	PlusAssign  Kind = "+="
	MinusAssign Kind = "-="
	StarAssign  Kind = "*="
	SlashAssign Kind = "/="
	PctAssign   Kind = "%="
	Eq          Kind = "=="
	Neq         Kind = "!="
	Lt          Kind = "<"
	Le          Kind = "<="
	Gt          Kind = ">"
	Ge          Kind = ">="
	AndAnd      Kind = "&&"
	OrOr        Kind = "||"
	Not         Kind = "!"
	BitAnd      Kind = "&"
	BitOr       Kind = "|"
	BitXor      Kind = "^"
	BitNot      Kind = "~"
	Shl         Kind = "<<"
	Shr         Kind = ">>"
	Inc         Kind = "++"
	Dec         Kind = "--"

	// Delimiters
	LParen    Kind = "("
	RParen    Kind = ")"
	LBrace    Kind = "{"
	RBrace    Kind = "}"
	LBracket  Kind = "["
	RBracket  Kind = "]"
	Comma     Kind = ","
	Colon     Kind = ":"
	Dot       Kind = "." // statement terminator
	Semicolon Kind = ";"

	// Comments
	LineComment  Kind = "LINE_COMMENT"
	BlockComment Kind = "BLOCK_COMMENT"
	DocComment   Kind = "DOC_COMMENT"

	// Whitespace
	HSpace  Kind = "HSPACE"
	Newline Kind = "NEWLINE"
)

// keywords maps the exact Arabic/ASCII lexeme to its keyword token kind.
// Checked once an identifier-shaped run has been fully scanned.
var keywords = map[string]Kind{
	"دالة":    KwFunc,
	"إرجع":    KwReturn,
	"إذا":     KwIf,
	"وإلا":    KwElse,
	"طالما":   KwWhile,
	"لكل":     KwFor,
	"افعل":    KwDo,
	"اختر":    KwSwitch,
	"حالة":    KwCase,
	"افتراضي": KwDefault,
	"توقف":    KwBreak,
	"استمر":   KwContinue,
	"ثابت":    KwConst,
	"ساكن":    KwStatic,
	"خارجي":   KwExtern,
	"مضمن":    KwInline,
	"مقيد":    KwRestrict,
	"تلقائي":  KwAuto,
	"سجل":     KwRegister,
	"صحيح":    BoolLit, // true
	"خطأ":     BoolLit, // false
	"فارغ":    NullLit,
	"as":      KwAs,

	"عدد_صحيح":  TyInt,
	"عدد_حقيقي": TyFloat,
	"حرف":       TyChar,
	"فراغ2":     TyVoid, // placeholder key, replaced by the real فراغ entry in init below
	"منطقي":     TyBool,
	"نص":        TyString,
	"بايت":      TyByte,
}

func init() {
	// فراغ is reused as both the "void" type name and could clash with
	// the نil literal lexeme if they were spelled the same; they are not
	// (فارغ vs فراغ), so bind the real void keyword here explicitly.
	keywords["فراغ"] = TyVoid
	delete(keywords, "فراغ2")
}

// boolValues resolves the two boolean keyword lexemes to their Go bool.
var boolValues = map[string]bool{
	"صحيح": true,
	"خطأ":  false,
}

// modifierKeywords is the storage-class/modifier keyword set recognized
// by the declaration parser.
var modifierKeywords = map[Kind]bool{
	KwConst:    true,
	KwStatic:   true,
	KwExtern:   true,
	KwInline:   true,
	KwRestrict: true,
	KwAuto:     true,
	KwRegister: true,
}

// IsModifier reports whether k is one of the declaration modifier
// keywords (const/static/extern/inline/restrict/auto/register).
func IsModifier(k Kind) bool { return modifierKeywords[k] }

// lookupIdentifier classifies a scanned identifier-shaped run as a
// keyword or a plain identifier.
func lookupIdentifier(lexeme string) Kind {
	if k, ok := keywords[lexeme]; ok {
		return k
	}
	return Identifier
}

// Token is a single lexical token: its kind, the exact source text it
// was scanned from, its span, and — for literal tokens — the value the
// lexer already decoded from that text.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   span.Span
	// Value carries the parsed literal payload for INT_LIT (int64),
	// FLOAT_LIT (float64), BOOL_LIT (bool), CHAR_LIT (rune), and
	// STRING_LIT (string, already escape-resolved). Nil for every other
	// kind. Downstream stages must not re-parse Lexeme.
	Value any
	// Warning carries a non-fatal diagnostic message for an otherwise
	// successfully-scanned token (currently: integer literals that
	// overflowed 64-bit signed range and were widened to float). Empty
	// for the overwhelming majority of tokens. The parser promotes this
	// into a warning-severity diagnostic when consuming the token.
	Warning string
}
