// Package config loads the optional asthra.toml file that carries
// compiler-invocation options for the asthrac CLI. The lexer, parser, and
// AST packages never import this package; they take their knobs as plain
// constructor arguments so they stay usable as a library independent of any
// configuration file format.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI-level invocation options, overridable by flags.
type Config struct {
	Strict      bool  `toml:"strict"`
	MaxErrors   int   `toml:"max_errors"`
	ColorOutput *bool `toml:"color_output"`
}

// Default returns the configuration used when no asthra.toml is found.
func Default() Config {
	return Config{Strict: false, MaxErrors: 0}
}

// Load reads path if it exists, falling back to Default when it does not.
// A present-but-malformed file is a hard error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadNear looks for asthra.toml in the same directory as sourcePath.
func LoadNear(sourcePath string) (Config, error) {
	return Load(filepath.Join(filepath.Dir(sourcePath), "asthra.toml"))
}
