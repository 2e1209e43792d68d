// Command asthrac is the Asthra front-end driver: it reads one source file,
// lexes and parses it, and prints either a parse summary or the accumulated
// diagnostics. It never type-checks, generates IR, or emits code.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/asthra-lang/asthra-frontend/internal/ast"
	"github.com/asthra-lang/asthra-frontend/internal/config"
	"github.com/asthra-lang/asthra-frontend/internal/diag"
	"github.com/asthra-lang/asthra-frontend/internal/lexer"
	"github.com/asthra-lang/asthra-frontend/internal/parser"
)

var log = logrus.New()

var (
	flagStrict    bool
	flagMaxErrors int
	flagColor     string
	flagConfig    string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asthrac [source]",
		Short: "Lex and parse an Asthra source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	flags := cmd.Flags()
	flags.BoolVar(&flagStrict, "strict", false, "stop at the first diagnostic instead of recovering")
	flags.IntVar(&flagMaxErrors, "max-errors", 0, "stop after this many diagnostics (0 = unlimited)")
	flags.StringVar(&flagColor, "color", "auto", "colorize diagnostics: auto, always, never")
	flags.StringVar(&flagConfig, "config", "", "path to an asthra.toml config file (default: look beside the source file)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	log.SetOutput(os.Stderr)

	cfg, err := loadConfig(sourcePath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sourcePath, err)
	}
	log.WithField("path", sourcePath).Debug("parsing source file")

	lex := lexer.New(string(source), sourcePath)
	sink := diag.NewSink(cfg.Strict, cfg.MaxErrors)
	p := parser.New(lex, sink)
	p.Strict = cfg.Strict

	prog, parseErr := p.ParseProgram()
	renderDiagnostics(sink, cfg)

	if parseErr != nil || sink.HasErrors() {
		log.WithField("diagnostics", len(sink.Diagnostics())).Debug("parse failed")
		os.Exit(1)
	}

	printSummary(prog)
	return nil
}

func loadConfig(sourcePath string) (config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	return config.LoadNear(sourcePath)
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = flagStrict
	}
	if flags.Changed("max-errors") {
		cfg.MaxErrors = flagMaxErrors
	}
}

func renderDiagnostics(sink *diag.Sink, cfg config.Config) {
	if len(sink.Diagnostics()) == 0 {
		return
	}
	w, isTTY := diag.StderrWriter()
	colorsEnabled := isTTY
	if cfg.ColorOutput != nil {
		colorsEnabled = *cfg.ColorOutput
	}
	switch flagColor {
	case "always":
		colorsEnabled = true
	case "never":
		colorsEnabled = false
	}
	diag.Render(w, sink.Diagnostics(), colorsEnabled)
}

func printSummary(prog *ast.Program) {
	fmt.Printf("parsed package %q: %d top-level declaration(s)\n", prog.Package.Name, len(prog.Declarations))
}
