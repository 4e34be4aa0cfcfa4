package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	diagerrors "github.com/sha1gen/sha1gen/directive/errors"
	"github.com/sha1gen/sha1gen/directive/literal"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanFileFindsDirectives(t *testing.T) {
	src := `package app

//sha1:hex ConfigHash "this is a test"

func main() {
	//sha1:base64 TokenHash b"\x01\x02"
}

//sha1:bytes BlobDigest ` + "`raw`" + `
`
	dir := t.TempDir()
	path := writeFile(t, dir, "app.go", src)

	f, err := ScanFile(path)
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "app", f.Package)
	require.Len(t, f.Directives, 3)

	assert.Equal(t, EncodingHex, f.Directives[0].Encoding)
	assert.Equal(t, "ConfigHash", f.Directives[0].Name)
	assert.Equal(t, []byte("this is a test"), f.Directives[0].Value.Data)
	assert.Equal(t, 3, f.Directives[0].Location.Line)
	assert.Equal(t, 1, f.Directives[0].Location.Column)

	assert.Equal(t, EncodingBase64, f.Directives[1].Encoding)
	assert.Equal(t, []byte{0x01, 0x02}, f.Directives[1].Value.Data)
	assert.Equal(t, literal.KindBytes, f.Directives[1].Value.Kind)
	assert.Equal(t, 6, f.Directives[1].Location.Line)
	assert.Equal(t, 2, f.Directives[1].Location.Column)

	assert.Equal(t, EncodingBytes, f.Directives[2].Encoding)
	assert.Equal(t, []byte("raw"), f.Directives[2].Value.Data)
}

func TestScanFileNoDirectives(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plain.go", "package plain\n\n// just a comment\n")

	f, err := ScanFile(path)
	require.NoError(t, err)
	assert.Nil(t, f)
}

// A //sha1: marker inside trailing comment position is not a directive,
// matching how //go:generate only fires at the start of a line.
func TestScanIgnoresTrailingComments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.go", "package app\n\nvar x = 1 //sha1:hex NotADirective \"nope\"\n")

	f, err := ScanFile(path)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestScanFileMalformedDirectives(t *testing.T) {
	tests := []struct {
		name string
		line string
		code string
	}{
		{"no encoding", "//sha1:", diagerrors.ErrMalformedDirective},
		{"unknown encoding", `//sha1:md5 Name "x"`, diagerrors.ErrUnknownEncoding},
		{"missing name", "//sha1:hex", diagerrors.ErrMalformedDirective},
		{"invalid name", `//sha1:hex 2fast "x"`, diagerrors.ErrInvalidName},
		{"keyword name", `//sha1:hex func "x"`, diagerrors.ErrInvalidName},
		{"missing literal", "//sha1:hex ConfigHash", diagerrors.ErrMissingLiteral},
		{"bad literal", "//sha1:hex ConfigHash 42", diagerrors.ErrExpectedLiteral},
		{"unterminated literal", `//sha1:hex ConfigHash "abc`, diagerrors.ErrUnterminatedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, "app.go", "package app\n\n"+tt.line+"\n")

			_, err := ScanFile(path)
			require.Error(t, err)

			var derr diagerrors.DirectiveError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, tt.code, derr.Code)
			assert.Equal(t, 3, derr.Location.Line)
		})
	}
}

func TestScanDirSkipsGeneratedAndSpecialDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.go", "package app\n\n//sha1:hex A \"a\"\n")
	writeFile(t, dir, "app_sha1gen.go", "package app\n\n//sha1:hex Stale \"stale\"\n")
	writeFile(t, dir, "vendor/dep/dep.go", "package dep\n\n//sha1:hex V \"v\"\n")
	writeFile(t, dir, "testdata/fixture.go", "package fixture\n\n//sha1:hex T \"t\"\n")
	writeFile(t, dir, "_ignored/x.go", "package x\n\n//sha1:hex U \"u\"\n")
	writeFile(t, dir, "sub/sub.go", "package sub\n\n//sha1:hex B \"b\"\n")

	files, err := ScanDir(dir, "_sha1gen")
	require.NoError(t, err)
	require.Len(t, files, 2)

	var names []string
	for _, f := range files {
		for _, d := range f.Directives {
			names = append(names, d.Name)
		}
	}
	assert.ElementsMatch(t, []string{"A", "B"}, names)
}

func TestParseEncoding(t *testing.T) {
	for spelling, want := range map[string]Encoding{
		"hex":    EncodingHex,
		"base64": EncodingBase64,
		"bytes":  EncodingBytes,
	} {
		enc, err := ParseEncoding(spelling)
		require.NoError(t, err)
		assert.Equal(t, want, enc)
		assert.Equal(t, spelling, enc.String())
	}

	_, err := ParseEncoding("md5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected hex, base64, or bytes")
}
