package lexer

import (
	"fmt"

	"github.com/baa-lang/baa/span"
)

// Lexer is a cursor over a shared, immutable source buffer. start marks
// the beginning of the in-progress token; current is the scan position.
// Both are rune (code point) indices, not byte offsets, so that Arabic
// and ASCII text share one addressing scheme.
type Lexer struct {
	source   []rune
	filename string

	start         int
	current       int
	line          int
	column        int
	startLocation span.Location

	hadError bool
}

// New constructs a lexer positioned at the origin of source, attributing
// every span it produces to sourceName.
func New(source []rune, sourceName string) *Lexer {
	return &Lexer{
		source:   source,
		filename: sourceName,
		start:    0,
		current:  0,
		line:     1,
		column:   1,
	}
}

// HadError reports whether any call to NextToken has produced an ERROR
// token so far. The flag is sticky for the lifetime of the lexer.
func (l *Lexer) HadError() bool { return l.hadError }

func (l *Lexer) atEnd() bool { return l.current >= len(l.source) }

func (l *Lexer) peek() rune {
	if l.current >= len(l.source) {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekAt(offset int) rune {
	idx := l.current + offset
	if idx < 0 || idx >= len(l.source) {
		return 0
	}
	return l.source[idx]
}

func (l *Lexer) advance() rune {
	if l.atEnd() {
		return 0
	}
	c := l.source[l.current]
	l.current++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *Lexer) match(want rune) bool {
	if l.peek() != want {
		return false
	}
	l.advance()
	return true
}

// here returns the location of the current cursor position.
func (l *Lexer) here() span.Location {
	return span.Location{Filename: l.filename, Line: l.line, Column: l.column}
}

func (l *Lexer) beginToken() {
	l.start = l.current
	l.startLocation = l.here()
}

func (l *Lexer) make(kind Kind) Token {
	return Token{
		Kind:   kind,
		Lexeme: string(l.source[l.start:l.current]),
		Span:   span.Span{Start: l.startLocation, End: l.here()},
	}
}

func (l *Lexer) makeValue(kind Kind, value any) Token {
	t := l.make(kind)
	t.Value = value
	return t
}

func (l *Lexer) errorToken(message string) Token {
	l.hadError = true
	return Token{
		Kind:   ERROR,
		Lexeme: message,
		Span:   span.Span{Start: l.startLocation, End: l.here()},
	}
}

// NextToken scans and returns the next token. It always returns a
// token — EOF is a token kind, not end-of-sequence — and an internal
// error produces a token of kind ERROR whose lexeme carries a
// human-readable diagnostic message.
func (l *Lexer) NextToken() Token {
	l.beginToken()

	if l.atEnd() {
		return l.make(EOF)
	}

	c := l.peek()

	switch {
	case c == ' ' || c == '\t':
		return l.scanHorizontalWhitespace()
	case c == '\n' || c == '\r':
		return l.scanNewline()
	case c == '/' && l.peekAt(1) == '/':
		return l.scanLineComment()
	case c == '/' && l.peekAt(1) == '*':
		return l.scanBlockComment()
	case c == '"':
		return l.scanString(false)
	case c == '\'':
		return l.scanCharLiteral()
	case c == 'خ' && l.peekAt(1) == '"':
		return l.scanString(true)
	case isIdentifierStart(c):
		return l.scanIdentifier()
	case isDecimalDigit(c):
		return l.scanNumber()
	case c == '.' && isDecimalDigit(l.peekAt(1)):
		return l.scanNumber()
	default:
		return l.scanOperatorOrDelimiter()
	}
}

func (l *Lexer) scanHorizontalWhitespace() Token {
	for l.peek() == ' ' || l.peek() == '\t' {
		l.advance()
	}
	return l.make(HSpace)
}

func (l *Lexer) scanNewline() Token {
	if l.peek() == '\r' {
		l.advance()
		if l.peek() == '\n' {
			l.advance()
		}
	} else {
		l.advance()
	}
	return l.make(Newline)
}

func (l *Lexer) scanLineComment() Token {
	doc := l.peekAt(2) == '/'
	l.advance() // '/'
	l.advance() // '/'
	for !l.atEnd() && l.peek() != '\n' && l.peek() != '\r' {
		l.advance()
	}
	if doc {
		return l.make(DocComment)
	}
	return l.make(LineComment)
}

// scanBlockComment scans a '/*' or '/**' comment. Block comments do not
// nest: the first '*/' closes the comment, whatever '/*' came before it.
func (l *Lexer) scanBlockComment() Token {
	doc := l.peekAt(2) == '*'
	l.advance() // '/'
	l.advance() // '*'
	for {
		if l.atEnd() {
			return l.errorToken(fmt.Sprintf("unterminated block comment starting at %s", l.startLocation))
		}
		if l.peek() == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}
	if doc {
		return l.make(DocComment)
	}
	return l.make(BlockComment)
}

func (l *Lexer) scanIdentifier() Token {
	for isIdentifierPart(l.peek()) {
		l.advance()
	}
	lexeme := string(l.source[l.start:l.current])
	kind := lookupIdentifier(lexeme)
	if kind == BoolLit {
		return l.makeValue(BoolLit, boolValues[lexeme])
	}
	return l.make(kind)
}

// scanOperatorOrDelimiter performs maximal-munch matching of the
// operator and delimiter token set.
func (l *Lexer) scanOperatorOrDelimiter() Token {
	c := l.advance()
	switch c {
	case '+':
		if l.match('+') {
			return l.make(Inc)
		}
		if l.match('=') {
			return l.make(PlusAssign)
		}
		return l.make(Plus)
	case '-':
		if l.match('-') {
			return l.make(Dec)
		}
		if l.match('=') {
			return l.make(MinusAssign)
		}
		return l.make(Minus)
	case '*':
		if l.match('=') {
			return l.make(StarAssign)
		}
		return l.make(Star)
	case '/':
		if l.match('=') {
			return l.make(SlashAssign)
		}
		return l.make(Slash)
	case '%':
		if l.match('=') {
			return l.make(PctAssign)
		}
		return l.make(Percent)
	case '=':
		if l.match('=') {
			return l.make(Eq)
		}
		return l.make(Assign)
	case '!':
		if l.match('=') {
			return l.make(Neq)
		}
		return l.make(Not)
	case '<':
		if l.match('=') {
			return l.make(Le)
		}
		if l.match('<') {
			return l.make(Shl)
		}
		return l.make(Lt)
	case '>':
		if l.match('=') {
			return l.make(Ge)
		}
		if l.match('>') {
			return l.make(Shr)
		}
		return l.make(Gt)
	case '&':
		if l.match('&') {
			return l.make(AndAnd)
		}
		return l.make(BitAnd)
	case '|':
		if l.match('|') {
			return l.make(OrOr)
		}
		return l.make(BitOr)
	case '^':
		return l.make(BitXor)
	case '~':
		return l.make(BitNot)
	case '(':
		return l.make(LParen)
	case ')':
		return l.make(RParen)
	case '{':
		return l.make(LBrace)
	case '}':
		return l.make(RBrace)
	case '[':
		return l.make(LBracket)
	case ']':
		return l.make(RBracket)
	case ',', '،': // ASCII comma and Arabic comma (U+060C) are aliases
		return l.make(Comma)
	case ';', '؛': // ASCII semicolon and Arabic semicolon (U+061B) are aliases
		return l.make(Semicolon)
	case ':':
		return l.make(Colon)
	case '.':
		return l.make(Dot)
	case '#':
		return l.scanImportHash()
	default:
		return l.errorToken(fmt.Sprintf("unrecognized character %q", c))
	}
}

// scanImportHash scans the '#تضمين' import-introducer token as a single
// unit so the parser sees one KW_IMPORT token rather than '#' followed
// by an identifier.
func (l *Lexer) scanImportHash() Token {
	const want = "تضمين"
	for _, r := range want {
		if l.peek() != r {
			return l.errorToken("expected 'تضمين' after '#'")
		}
		l.advance()
	}
	return l.make(KwImport)
}

// isIdentifierStart reports whether r may begin an identifier: an ASCII
// letter, underscore, or an Arabic letter. The Arabic range follows the
// source implementation's wider interpretation (basic Arabic plus the
// presentation-form blocks), resolving spec.md's open question in favor
// of the broader range.
func isIdentifierStart(r rune) bool {
	if isArabicPunctuation(r) || isArabicIndicDigit(r) {
		return false
	}
	switch {
	case r == '_':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0x0600 && r <= 0x06FF:
		return true
	case r >= 0xFB50 && r <= 0xFDFF:
		return true
	case r >= 0xFE70 && r <= 0xFEFF:
		return true
	}
	return false
}

// isArabicPunctuation reports whether r is one of the Arabic punctuation
// marks that fall inside the basic Arabic block (U+0600-U+06FF) but are
// lexically delimiters, not identifier characters: Arabic comma, Arabic
// semicolon, Arabic question mark, Arabic five-pointed star.
func isArabicPunctuation(r rune) bool {
	switch r {
	case 0x060C, 0x061B, 0x061F, 0x066D:
		return true
	}
	return false
}

// isIdentifierPart reports whether r may continue an identifier after
// its first code point: everything isIdentifierStart allows, plus ASCII
// and Arabic-Indic digits.
func isIdentifierPart(r rune) bool {
	if isIdentifierStart(r) {
		return true
	}
	return isASCIIDigit(r) || isArabicIndicDigit(r)
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isArabicIndicDigit(r rune) bool { return r >= 0x0660 && r <= 0x0669 }

func isDecimalDigit(r rune) bool { return isASCIIDigit(r) || isArabicIndicDigit(r) }

func isHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// digitValue converts an ASCII or Arabic-Indic decimal digit rune to its
// 0-9 value. Callers must only pass runes that satisfy isDecimalDigit.
func digitValue(r rune) int {
	if isArabicIndicDigit(r) {
		return int(r - 0x0660)
	}
	return int(r - '0')
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 0
}

// ConsumeAll tokenizes the entire source, returning every token
// including EOF as the final element. Convenience used by tests; the
// CLI tools and the parser call NextToken on demand.
func (l *Lexer) ConsumeAll() []Token {
	var toks []Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Kind == EOF {
			return toks
		}
	}
}

// Filename returns the source name this lexer attributes spans to.
func (l *Lexer) Filename() string { return l.filename }
