package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewGenerateCommand(t *testing.T) {
	cmd := NewGenerateCommand()

	if cmd.Use != "generate [paths...]" {
		t.Errorf("unexpected Use: %s", cmd.Use)
	}

	// Check aliases
	found := false
	for _, alias := range cmd.Aliases {
		if alias == "g" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected alias 'g' to be registered")
	}
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()
	src := "package app\n\n//sha1:hex ConfigHash \"this is a test\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.go"), []byte(src), 0o644))

	out, err := runCommand(t, "generate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 1 file(s)")

	generated, err := os.ReadFile(filepath.Join(dir, "app_sha1gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(generated), `const ConfigHash = "fa26be19de6bff93f70bc2308434e4a440bbad02"`)
}

func TestGenerateCheckFailsOnStaleOutput(t *testing.T) {
	dir := t.TempDir()
	src := "package app\n\n//sha1:hex ConfigHash \"this is a test\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.go"), []byte(src), 0o644))

	_, err := runCommand(t, "generate", "--check", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")

	_, err = runCommand(t, "generate", dir)
	require.NoError(t, err)

	out, err := runCommand(t, "generate", "--check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestGenerateReportsDirectiveErrors(t *testing.T) {
	dir := t.TempDir()
	src := "package app\n\n//sha1:hex ConfigHash 42\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.go"), []byte(src), 0o644))

	_, err := runCommand(t, "generate", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a string or byte literal")
}

func TestGenerateWarnsWhenNothingFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.go"), []byte("package app\n"), 0o644))

	out, err := runCommand(t, "generate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "no //sha1: directives found")
}

func TestGenerateCustomSuffixFlag(t *testing.T) {
	dir := t.TempDir()
	src := "package app\n\n//sha1:hex A \"a\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.go"), []byte(src), 0o644))

	_, err := runCommand(t, "generate", "--suffix", "_hashes", dir)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "app_hashes.go"))
	assert.NoError(t, statErr)
}
