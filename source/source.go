// Package source loads Baa source files into the rune buffer the lexer
// scans over, detecting and transcoding the two encodings the frontend
// accepts: UTF-8 and UTF-16LE-with-BOM.
package source

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf16"
	"unicode/utf8"
)

// Error kinds returned by Load. Callers distinguish them with errors.Is.
var (
	ErrNotFound        = errors.New("source file not found")
	ErrEmpty           = errors.New("source file is empty")
	ErrInvalidEncoding = errors.New("source file is not valid UTF-8 or UTF-16LE")
)

var utf16LEBOM = [2]byte{0xFF, 0xFE}
var utf8BOM = [3]byte{0xEF, 0xBB, 0xBF}

// File is a loaded source file: its name (for diagnostics) and decoded
// text as a code-point slice, the addressing unit the lexer uses.
type File struct {
	Name string
	Text []rune
}

// Load reads path from disk and decodes it into a File. It is the only
// point in the frontend that returns a Go error rather than a
// diag.Diagnostic (spec.md §7): loading happens before any lexer or
// parser state exists to report into.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Name: path, Text: text}, nil
}

// FromString wraps an in-memory snippet as a File, used by the CLI
// tools' built-in demo source and by tests that don't need disk I/O.
func FromString(name, text string) *File {
	return &File{Name: name, Text: []rune(text)}
}

func decode(raw []byte) ([]rune, error) {
	if len(raw) >= 2 && raw[0] == utf16LEBOM[0] && raw[1] == utf16LEBOM[1] {
		return decodeUTF16LE(raw[2:])
	}
	if len(raw) >= 3 && raw[0] == utf8BOM[0] && raw[1] == utf8BOM[1] && raw[2] == utf8BOM[2] {
		raw = raw[3:]
	}
	if !utf8.Valid(raw) {
		return nil, ErrInvalidEncoding
	}
	return []rune(string(raw)), nil
}

func decodeUTF16LE(raw []byte) ([]rune, error) {
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: odd byte length for UTF-16LE content", ErrInvalidEncoding)
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}
	return utf16.Decode(units), nil
}
