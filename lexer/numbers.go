package lexer

import (
	"strconv"
	"strings"
)

// scanNumber dispatches to the right numeric-literal scanner based on
// the leading characters, per spec.md §4.2.3 item 4: hex (0x/0X), binary
// (0b/0B), octal (0o/0O), or decimal (with optional Arabic-Indic digits,
// Arabic decimal separator, and scientific exponent).
func (l *Lexer) scanNumber() Token {
	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') && isHexDigit(l.peekAt(2)) {
		return l.scanHexNumber()
	}
	if l.peek() == '0' && (l.peekAt(1) == 'b' || l.peekAt(1) == 'B') && isBinDigit(l.peekAt(2)) {
		return l.scanRadixInt("0b", isBinDigit)
	}
	if l.peek() == '0' && (l.peekAt(1) == 'o' || l.peekAt(1) == 'O') && isOctDigit(l.peekAt(2)) {
		return l.scanRadixInt("0o", isOctDigit)
	}
	return l.scanDecimalNumber()
}

func isBinDigit(r rune) bool { return r == '0' || r == '1' }
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }

// scanHexNumber scans a hexadecimal integer, or — if a '.' is followed
// by at least one more hex digit — a hex float requiring a mandatory
// p/P exponent.
func (l *Lexer) scanHexNumber() Token {
	l.advance() // '0'
	l.advance() // x/X
	var digits strings.Builder
	for isHexDigit(l.peek()) {
		digits.WriteRune(l.advance())
	}

	if l.peek() == '.' && isHexDigit(l.peekAt(1)) {
		digits.WriteRune(l.advance()) // '.'
		for isHexDigit(l.peek()) {
			digits.WriteRune(l.advance())
		}
		if l.peek() != 'p' && l.peek() != 'P' {
			return l.errorToken("hex float literal requires a 'p' exponent")
		}
		digits.WriteRune(l.advance()) // p/P
		if l.peek() == '+' || l.peek() == '-' {
			digits.WriteRune(l.advance())
		}
		if !isASCIIDigit(l.peek()) {
			return l.errorToken("hex float literal has malformed exponent")
		}
		for isASCIIDigit(l.peek()) {
			digits.WriteRune(l.advance())
		}
		text := "0x" + digits.String()
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.errorToken("unrepresentable hex float literal")
		}
		return l.makeValue(FloatLit, value)
	}

	text := "0x" + digits.String()
	value, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		// strconv only accepts hex floats with an exponent, so add 'p0'.
		f, ferr := strconv.ParseFloat(text+"p0", 64)
		if ferr != nil {
			return l.errorToken("unrepresentable hex integer literal")
		}
		t := l.makeValue(FloatLit, f)
		t.Warning = "hexadecimal integer literal overflows 64-bit signed range, widened to float"
		return t
	}
	return l.makeValue(IntLit, value)
}

// scanRadixInt scans a binary or octal integer literal given its prefix
// and digit predicate.
func (l *Lexer) scanRadixInt(prefix string, isDigit func(rune) bool) Token {
	l.advance() // '0'
	l.advance() // b/B or o/O
	var digits strings.Builder
	for isDigit(l.peek()) {
		digits.WriteRune(l.advance())
	}
	text := prefix + digits.String()
	value, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(normalizeRadixForFloat(prefix, digits.String()), 64)
		if ferr != nil {
			return l.errorToken("unrepresentable integer literal")
		}
		t := l.makeValue(FloatLit, f)
		t.Warning = "integer literal overflows 64-bit signed range, widened to float"
		return t
	}
	return l.makeValue(IntLit, value)
}

// normalizeRadixForFloat is the fallback for a binary/octal literal that
// overflows the 64-bit signed range; strconv has no binary/octal float
// syntax, so this widens by reinterpreting the digit run in the given
// base using big-free repeated multiplication and returns the result as
// decimal text.
func normalizeRadixForFloat(prefix, digits string) string {
	base := 8.0
	if prefix == "0b" {
		base = 2.0
	}
	var acc float64
	for _, d := range digits {
		acc = acc*base + float64(d-'0')
	}
	return strconv.FormatFloat(acc, 'f', -1, 64)
}

// scanDecimalNumber scans a decimal integer or float literal built from
// either ASCII or Arabic-Indic digits, with an optional '.'/Arabic
// decimal separator fractional part and an optional e/E exponent.
func (l *Lexer) scanDecimalNumber() Token {
	var norm strings.Builder
	isFloat := false

	for isDecimalDigit(l.peek()) {
		norm.WriteByte(byte('0' + digitValue(l.advance())))
	}

	if (l.peek() == '.' || l.peek() == '٫') && isDecimalDigit(l.peekAt(1)) {
		isFloat = true
		l.advance() // consume '.' or '٫'
		norm.WriteByte('.')
		for isDecimalDigit(l.peek()) {
			norm.WriteByte(byte('0' + digitValue(l.advance())))
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		save := l.current
		saveLine, saveCol := l.line, l.column
		exp := l.peek()
		l.advance()
		sign := rune(0)
		if l.peek() == '+' || l.peek() == '-' {
			sign = l.peek()
			l.advance()
		}
		if isDecimalDigit(l.peek()) {
			isFloat = true
			norm.WriteRune(exp)
			if sign != 0 {
				norm.WriteRune(sign)
			}
			for isDecimalDigit(l.peek()) {
				norm.WriteByte(byte('0' + digitValue(l.advance())))
			}
		} else {
			// Not actually an exponent; back out.
			l.current, l.line, l.column = save, saveLine, saveCol
		}
	}

	text := norm.String()
	if isFloat {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.errorToken("unrepresentable float literal")
		}
		return l.makeValue(FloatLit, value)
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return l.errorToken("unrepresentable integer literal")
		}
		t := l.makeValue(FloatLit, f)
		t.Warning = "decimal integer literal overflows 64-bit signed range, widened to float"
		return t
	}
	return l.makeValue(IntLit, value)
}
