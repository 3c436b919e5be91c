// Package diag formats lexical and syntactic diagnostics the way the rest
// of the compiler reports them: "Line <n> Error: <message>". It mirrors the
// teacher's internal/errors package in shape (a position-carrying error
// value plus a batch formatter) but keeps the wire format the spec
// mandates rather than the teacher's caret-and-source-context rendering.
package diag

import (
	"fmt"
	"strings"
)

// Kind distinguishes the two diagnostic taxonomies named in the spec.
type Kind int

const (
	Lexical Kind = iota
	Syntactic
)

// Diagnostic is a single reported error, lexical or syntactic.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Message string
}

// New creates a diagnostic.
func New(kind Kind, line int, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface so a *Diagnostic can be returned or
// wrapped like any other Go error.
func (d *Diagnostic) Error() string {
	return d.Format()
}

// Format renders the diagnostic as "Line <n> Error: <message>".
func (d *Diagnostic) Format() string {
	return fmt.Sprintf("Line %d Error: %s", d.Line, d.Message)
}

// FormatAll renders a batch of diagnostics one per line, in the order
// given. Used by the CLI layer's parse output (mode 3) to append the
// diagnostic listing after the parse tree.
func FormatAll(diags []*Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, d := range diags {
		sb.WriteString(d.Format())
		if i < len(diags)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
