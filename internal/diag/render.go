package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var (
	errorColor    = color.New(color.FgRed, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	locationColor = color.New(color.Bold)
)

// Render writes every diagnostic to w, colorizing the severity and location
// the way GCC/Clang do, when colorsEnabled is true. Callers pick
// colorsEnabled once per run (spec_full's --color flag / asthra.toml,
// defaulting to an isatty check) rather than have Render probe the stream
// itself, since w is frequently wrapped (colorable, a test buffer, a file).
func Render(w io.Writer, diags []Diagnostic, colorsEnabled bool) {
	if !colorsEnabled {
		for _, d := range diags {
			fmt.Fprintln(w, d.String())
		}
		return
	}

	for _, d := range diags {
		sev := errorColor
		if d.Severity == SeverityWarning {
			sev = warningColor
		}
		fmt.Fprintf(w, "%s: %s: %s\n",
			locationColor.Sprint(d.Pos.String()),
			sev.Sprint(d.Severity.String()),
			d.Message)
	}
}

// StderrWriter returns an io.Writer over os.Stderr suitable for colorized
// output on Windows consoles as well as ANSI terminals, and reports whether
// that stream looks like an interactive terminal (the default for
// colorsEnabled when --color is left at "auto").
func StderrWriter() (io.Writer, bool) {
	isTTY := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return colorable.NewColorableStderr(), isTTY
}
