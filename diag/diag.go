// Package diag holds the structured diagnostics the lexer and parser
// report in place of Go errors: every recoverable lexical or syntax
// problem becomes a Diagnostic appended to a Context, never a returned
// error (spec.md §7) — only the source reader's fatal, unrecoverable
// conditions use Go's error type.
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/baa-lang/baa/span"
)

// Severity classifies how serious a diagnostic is.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Hint:
		return "hint"
	}
	return "unknown"
}

// Category groups a diagnostic by the stage or concern that raised it.
// Only Syntax is produced by this frontend today; the rest are carried
// so a downstream pass (out of this repository's scope) can reuse the
// same diagnostic shape without inventing a new one.
type Category int

const (
	Syntax Category = iota
	Type
	Semantic
	Flow
	Memory
	System
)

func (c Category) String() string {
	switch c {
	case Syntax:
		return "syntax"
	case Type:
		return "type"
	case Semantic:
		return "semantic"
	case Flow:
		return "flow"
	case Memory:
		return "memory"
	case System:
		return "system"
	}
	return "unknown"
}

// Diagnostic is one reported problem or observation.
type Diagnostic struct {
	Severity      Severity
	Category      Category
	Span          span.Span
	Message       string
	FixHint       string // optional, empty if none
	SourceSnippet string // optional, the offending source line
}

// Format renders a diagnostic as "<file>:<line>:<column>: <severity>:
// <message>", optionally followed by the source snippet and a caret
// line, matching spec.md §7's required CLI output shape.
func (d Diagnostic) Format(useColor bool) string {
	var b strings.Builder
	header := fmt.Sprintf("%s: %s: %s", d.Span.Start, d.Severity, d.Message)
	if useColor {
		header = fmt.Sprintf("%s: %s: %s", d.Span.Start, colorize(d.Severity, d.Severity.String()), d.Message)
	}
	b.WriteString(header)
	if d.SourceSnippet != "" {
		b.WriteByte('\n')
		b.WriteString(d.SourceSnippet)
		b.WriteByte('\n')
		col := d.Span.Start.Column
		if col < 1 {
			col = 1
		}
		b.WriteString(strings.Repeat(" ", col-1))
		b.WriteString("^")
	}
	if d.FixHint != "" {
		b.WriteByte('\n')
		b.WriteString("help: ")
		b.WriteString(d.FixHint)
	}
	return b.String()
}

func colorize(sev Severity, text string) string {
	switch sev {
	case Error:
		return color.RedString(text)
	case Warning:
		return color.YellowString(text)
	case Note, Hint:
		return color.CyanString(text)
	}
	return text
}

// Context accumulates diagnostics across a lexing/parsing run.
// Append-only: nothing is ever removed once reported, matching the
// "diagnostics never roll back" assumption the parser's panic-mode
// recovery depends on.
type Context struct {
	diags    []Diagnostic
	hadError bool
}

// NewContext returns an empty diagnostic context.
func NewContext() *Context { return &Context{} }

// Report appends d to the context, updating HadError if d is an Error.
func (c *Context) Report(d Diagnostic) {
	c.diags = append(c.diags, d)
	if d.Severity == Error {
		c.hadError = true
	}
}

// Errorf is a convenience for reporting a Syntax-category error.
func (c *Context) Errorf(sp span.Span, format string, args ...any) {
	c.Report(Diagnostic{Severity: Error, Category: Syntax, Span: sp, Message: fmt.Sprintf(format, args...)})
}

// Warnf is a convenience for reporting a Syntax-category warning.
func (c *Context) Warnf(sp span.Span, format string, args ...any) {
	c.Report(Diagnostic{Severity: Warning, Category: Syntax, Span: sp, Message: fmt.Sprintf(format, args...)})
}

// HadError reports whether any Error-severity diagnostic has ever been
// reported to this context. Sticky for the context's lifetime.
func (c *Context) HadError() bool { return c.hadError }

// Diagnostics returns every diagnostic reported so far, in report order.
func (c *Context) Diagnostics() []Diagnostic { return c.diags }

// Len reports how many diagnostics have been reported.
func (c *Context) Len() int { return len(c.diags) }
