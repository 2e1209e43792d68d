package diag

import (
	"bytes"
	"testing"

	"github.com/asthra-lang/asthra-frontend/internal/token"
)

func testPos() token.Position {
	return token.Position{Filename: "t.asthra", Line: 3, Column: 5, Offset: 20}
}

func TestSink_AccumulatesDiagnostics(t *testing.T) {
	s := NewSink(false, 0)
	s.Errorf(testPos(), "expected-visibility", "expected visibility modifier")
	s.Errorf(testPos(), "missing-semicolon", "expected ';'")

	if len(s.Diagnostics()) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(s.Diagnostics()))
	}
	if !s.HasErrors() {
		t.Error("expected HasErrors to be true")
	}
}

func TestSink_StrictModePanicsOnFirstError(t *testing.T) {
	s := NewSink(true, 0)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected strict mode to panic on the first error")
		}
		if _, ok := r.(StopParsing); !ok {
			t.Fatalf("expected panic value StopParsing, got %T", r)
		}
	}()

	s.Errorf(testPos(), "expected-visibility", "expected visibility modifier")
}

func TestSink_MaxReportedStopsAfterLimit(t *testing.T) {
	s := NewSink(false, 2)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic after hitting MaxReported")
		}
		if len(s.Diagnostics()) != 2 {
			t.Errorf("expected exactly 2 diagnostics recorded, got %d", len(s.Diagnostics()))
		}
	}()

	s.Errorf(testPos(), "a", "first")
	s.Errorf(testPos(), "b", "second")
}

func TestSink_WarningsNeverPanic(t *testing.T) {
	s := NewSink(true, 0)
	s.Warnf(testPos(), "unused", "unused import")

	if s.HasErrors() {
		t.Error("a warning must not count as an error")
	}
	if len(s.Diagnostics()) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(s.Diagnostics()))
	}
}

func TestDiagnostic_StringFormat(t *testing.T) {
	d := Diagnostic{Pos: testPos(), Severity: SeverityError, Kind: "expected-visibility", Message: "expected visibility modifier"}
	want := "t.asthra:3:5: error: expected visibility modifier"
	if d.String() != want {
		t.Errorf("expected %q, got %q", want, d.String())
	}
}

func TestRender_PlainMode(t *testing.T) {
	var buf bytes.Buffer
	diags := []Diagnostic{
		{Pos: testPos(), Severity: SeverityError, Kind: "k", Message: "boom"},
	}
	Render(&buf, diags, false)

	want := "t.asthra:3:5: error: boom\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestRender_ColorModeContainsMessage(t *testing.T) {
	var buf bytes.Buffer
	diags := []Diagnostic{
		{Pos: testPos(), Severity: SeverityWarning, Kind: "k", Message: "heads up"},
	}
	Render(&buf, diags, true)

	if !bytes.Contains(buf.Bytes(), []byte("heads up")) {
		t.Errorf("expected rendered output to contain the message, got %q", buf.String())
	}
}
