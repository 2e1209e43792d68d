package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunParse_ValidSourceProducesSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.asthra")
	require.NoError(t, os.WriteFile(path, []byte(`package test; pub fn main(none) -> i32 { return 0; }`), 0o644))

	flagStrict, flagMaxErrors, flagColor, flagConfig = false, 0, "never", ""
	cmd := newRootCmd()
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
}

func TestNewRootCmd_RequiresExactlyOneArg(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	require.Error(t, cmd.Execute())
}
