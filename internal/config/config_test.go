package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_ParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asthra.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
strict = true
max_errors = 5
color_output = false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Strict)
	require.Equal(t, 5, cfg.MaxErrors)
	require.NotNil(t, cfg.ColorOutput)
	require.False(t, *cfg.ColorOutput)
}

func TestLoad_MalformedFileIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asthra.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadNear_FindsSiblingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "asthra.toml"), []byte("strict = true\n"), 0o644))

	cfg, err := LoadNear(filepath.Join(dir, "main.asthra"))
	require.NoError(t, err)
	require.True(t, cfg.Strict)
}
