// Package diag collects structured parse/lex diagnostics and renders them in
// the GCC/Clang "file:line:column: severity: message" style.
package diag

import (
	"fmt"
	"io"

	"github.com/asthra-lang/asthra-frontend/internal/token"
)

// Severity classifies a Diagnostic (spec.md §6).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported problem: a location, a severity, a stable kind
// string tests can match by substring, and a human-readable message.
type Diagnostic struct {
	Pos      token.Position
	Severity Severity
	Kind     string
	Message  string
}

// String renders "file:line:column: severity: message", the format every
// diagnostic in the sink uses on standard error.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos.String(), d.Severity, d.Message)
}

// Sink accumulates diagnostics during a parse. In Strict mode, Report panics
// with a StopParsing value on the first error so the parser can unwind to its
// top-level recovery point without attempting further recovery.
type Sink struct {
	Strict      bool
	MaxReported int // 0 means unlimited
	diagnostics []Diagnostic
}

// NewSink creates an empty diagnostics sink.
func NewSink(strict bool, maxReported int) *Sink {
	return &Sink{Strict: strict, MaxReported: maxReported}
}

// StopParsing is panicked by Report in strict mode, or once MaxReported has
// been hit, to unwind out of the parser without further recovery attempts.
type StopParsing struct{}

func (StopParsing) Error() string { return "stopped after diagnostic limit" }

// Report records d. In strict mode, or once MaxReported non-zero is reached,
// it panics with StopParsing after recording the diagnostic.
func (s *Sink) Report(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
	if s.Strict || (s.MaxReported > 0 && len(s.diagnostics) >= s.MaxReported) {
		panic(StopParsing{})
	}
}

// Errorf records an error-severity diagnostic at pos with the given stable
// kind and a formatted message.
func (s *Sink) Errorf(pos token.Position, kind, format string, args ...any) {
	s.Report(Diagnostic{Pos: pos, Severity: SeverityError, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning-severity diagnostic; warnings never trigger
// strict-mode unwinding.
func (s *Sink) Warnf(pos token.Position, kind, format string, args ...any) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Pos: pos, Severity: SeverityWarning, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Diagnostics returns every diagnostic recorded so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// WriteTo prints every diagnostic to w, one per line, uncolored. Callers
// wanting colorized terminal output should use Render instead.
func (s *Sink) WriteTo(w io.Writer) {
	for _, d := range s.diagnostics {
		fmt.Fprintln(w, d.String())
	}
}
