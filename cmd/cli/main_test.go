package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllExamplesSucceed(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	code, err := run(&out, io.Discard, []string{"run", "--all"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "SUCCESS\tstrategy\t")
	assert.Contains(t, out.String(), "TOTAL=16 SUCCESS=16 FAILED=0 ERRORED=0")
}

func TestRun_SingleExample(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	code, err := run(&out, io.Discard, []string{"run", "--name", "singleton"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "SUCCESS\tsingleton\t")
}

func TestRun_UnknownNameExitsWithTwo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	code, err := run(&out, io.Discard, []string{"run", "--name", "NoSuchPattern"})

	require.Error(t, err)
	assert.Equal(t, 2, code)
	assert.Contains(t, err.Error(), `"NoSuchPattern"`)
}

func TestRun_UsageErrorExitsWithTwo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	code, err := run(&out, io.Discard, []string{"run"})

	require.Error(t, err)
	assert.Equal(t, 2, code)
	assert.Contains(t, err.Error(), "exactly one of --all or --name")
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	code, err := run(&out, io.Discard, []string{"list"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 16)
	assert.Equal(t, "singleton\tcreational", lines[0])
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A catalog file with a syntax error is guaranteed to make app.NewApp
	// panic during the loading phase.
	invalidHCL := `
		pattern "singleton" {
			category = "creational"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	var out bytes.Buffer

	// --- Act ---
	code, err := run(&out, io.Discard, []string{"run", "--all", "-catalog", tempDir})

	// --- Assert ---
	require.Error(t, err, "run() should have returned an error after recovering from a panic")
	assert.Equal(t, 1, code)
	assert.Contains(t, err.Error(), "application startup panicked")
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" flag should cause cli.Parse to return shouldExit=true.
	var out bytes.Buffer

	code, err := run(&out, io.Discard, []string{"-h"})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Usage:", "expected help text on the output buffer")
}
