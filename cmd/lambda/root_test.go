package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/co-dan/plzoo/session"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errw)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errw.String(), err
}

func writeScript(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCmd(t, "-v")
	require.NoError(t, err)
	assert.Equal(t, "lambda "+version+"\n", out)
}

func TestPreloadFiles(t *testing.T) {
	one := writeScript(t, "one.lam", `#constant a;`)
	two := writeScript(t, "two.lam", `id := ^x . x a;`)

	_, _, err := runCmd(t, "-n", "-l", one, "-l", two)
	assert.NoError(t, err)
}

func TestPreloadFailurePropagates(t *testing.T) {
	bad := writeScript(t, "bad.lam", `#constant a a;`)

	_, _, err := runCmd(t, "-n", "-l", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	var halt session.Halt
	assert.False(t, errors.As(err, &halt), "a load failure is not a #quit")
}

func TestBareFilePrintsResults(t *testing.T) {
	// a bare file argument prints like a session transcript and exits
	// without entering the loop
	f := writeScript(t, "run.lam", `#constant a; (^x . x) a;`)
	out, _, err := runCmd(t, f)
	require.NoError(t, err)
	assert.Contains(t, out, "a is a constant.\n")
	assert.Contains(t, out, "a\n")
}

func TestLoadFlagStaysQuiet(t *testing.T) {
	f := writeScript(t, "lib.lam", `#constant a; (^x . x) a;`)
	out, _, err := runCmd(t, "-n", "-l", f)
	require.NoError(t, err)
	assert.Empty(t, out, "-l preloads are silent")
}

func TestLoadOrderMatters(t *testing.T) {
	// two defines a in terms of one's constant; reversed order fails
	one := writeScript(t, "one.lam", `#constant c;`)
	two := writeScript(t, "two.lam", `d := c;`)

	_, _, err := runCmd(t, "-n", "-l", one, "-l", two)
	assert.NoError(t, err)

	_, _, err = runCmd(t, "-n", "-l", two, "-l", one)
	assert.Error(t, err)
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := runCmd(t, "--frobnicate")
	assert.Error(t, err)
}
