package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load reads sha1gen.yml from the working directory, so the tests chdir
// into a temp dir.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "_sha1gen", cfg.Generate.Suffix)
	assert.Equal(t, []string{"."}, cfg.Generate.Paths)
	assert.Equal(t, "hex", cfg.Hash.Encoding)
}

func TestLoadFromFile(t *testing.T) {
	dir := inTempDir(t)

	content := `generate:
  suffix: _hashes
  paths:
    - ./cmd
    - ./internal
hash:
  encoding: base64
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sha1gen.yml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "_hashes", cfg.Generate.Suffix)
	assert.Equal(t, []string{"./cmd", "./internal"}, cfg.Generate.Paths)
	assert.Equal(t, "base64", cfg.Hash.Encoding)
}

func TestLoadRejectsInvalidEncoding(t *testing.T) {
	dir := inTempDir(t)

	content := "hash:\n  encoding: md5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sha1gen.yml"), []byte(content), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash.encoding")
}

func TestLoadRejectsInvalidSuffix(t *testing.T) {
	dir := inTempDir(t)

	content := "generate:\n  suffix: \"-bad suffix\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sha1gen.yml"), []byte(content), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate.suffix")
}
