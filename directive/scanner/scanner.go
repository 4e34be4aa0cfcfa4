// Package scanner finds sha1gen directives in Go source files.
//
// A directive is a comment line of the form
//
//	//sha1:hex ConfigHash "this is a test"
//	//sha1:base64 TokenHash `raw bytes`
//	//sha1:bytes BlobDigest b"\x01\x02\x03"
//
// standing alone on its line, in the style of //go:generate. The scanner
// records each directive's position so later phases can report precise
// diagnostics, and resolves the literal argument through the literal
// package.
package scanner

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sha1gen/sha1gen/directive/errors"
	"github.com/sha1gen/sha1gen/directive/literal"
)

// Prefix is the comment prefix that marks a sha1gen directive.
const Prefix = "//sha1:"

// Encoding selects the output form of a directive's digest
type Encoding int

const (
	EncodingHex Encoding = iota
	EncodingBase64
	EncodingBytes
)

// String returns the directive spelling of the encoding
func (e Encoding) String() string {
	switch e {
	case EncodingHex:
		return "hex"
	case EncodingBase64:
		return "base64"
	case EncodingBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// ParseEncoding parses the directive spelling of an encoding
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "hex":
		return EncodingHex, nil
	case "base64":
		return EncodingBase64, nil
	case "bytes":
		return EncodingBytes, nil
	}
	return 0, fmt.Errorf("unknown encoding %q (expected hex, base64, or bytes)", s)
}

// Directive is one parsed sha1gen directive.
type Directive struct {
	Location errors.SourceLocation
	Encoding Encoding
	Name     string
	Value    literal.Value
}

// File is the scan result for one Go source file that contains at least
// one directive.
type File struct {
	Path       string
	Package    string
	Directives []Directive
}

// ScanFile scans one Go source file for directives. It returns nil (and no
// error) when the file contains none.
func ScanFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return scanSource(path, src)
}

func scanSource(path string, src []byte) (*File, error) {
	var directives []Directive

	sc := bufio.NewScanner(strings.NewReader(string(src)))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		d, ok, err := parseDirectiveLine(path, lineNo, sc.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			directives = append(directives, d)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}

	if len(directives) == 0 {
		return nil, nil
	}

	pkg, err := packageName(path, src)
	if err != nil {
		return nil, err
	}

	return &File{Path: path, Package: pkg, Directives: directives}, nil
}

// parseDirectiveLine parses a single source line. ok is false when the
// line is not a directive at all; err is set when it is a directive but a
// malformed one.
func parseDirectiveLine(file string, lineNo int, line string) (d Directive, ok bool, err error) {
	idx := strings.Index(line, Prefix)
	if idx < 0 || strings.TrimSpace(line[:idx]) != "" {
		return Directive{}, false, nil
	}

	loc := func(byteOff int) errors.SourceLocation {
		return errors.SourceLocation{
			File:   file,
			Line:   lineNo,
			Column: utf8.RuneCountInString(line[:byteOff]) + 1,
		}
	}

	rest := line[idx+len(Prefix):]
	off := idx + len(Prefix)

	// Encoding word runs to the first space or tab.
	encEnd := strings.IndexAny(rest, " \t")
	if encEnd < 0 {
		encEnd = len(rest)
	}
	encWord := rest[:encEnd]
	if encWord == "" {
		return Directive{}, false, errors.New("scanner", errors.ErrMalformedDirective,
			"directive requires an encoding, a name, and a literal: //sha1:<hex|base64|bytes> Name <literal>",
			loc(idx))
	}
	enc, encErr := ParseEncoding(encWord)
	if encErr != nil {
		return Directive{}, false, errors.New("scanner", errors.ErrUnknownEncoding,
			encErr.Error(), loc(off))
	}
	rest = rest[encEnd:]
	off += encEnd

	// Name.
	skip := len(rest) - len(strings.TrimLeft(rest, " \t"))
	rest, off = rest[skip:], off+skip
	nameEnd := strings.IndexAny(rest, " \t")
	if nameEnd < 0 {
		nameEnd = len(rest)
	}
	name := rest[:nameEnd]
	if name == "" {
		return Directive{}, false, errors.New("scanner", errors.ErrMalformedDirective,
			"directive requires a constant name after the encoding", loc(off))
	}
	if !token.IsIdentifier(name) {
		return Directive{}, false, errors.New("scanner", errors.ErrInvalidName,
			fmt.Sprintf("%q is not a valid Go identifier", name), loc(off))
	}
	rest = rest[nameEnd:]
	off += nameEnd

	// Literal argument.
	if strings.TrimSpace(rest) == "" {
		return Directive{}, false, errors.New("scanner", errors.ErrMissingLiteral,
			`directive requires a string or byte literal after the name: "...", `+"`...`"+`, or b"..."`,
			loc(off))
	}
	argLoc := loc(off)
	val, lerr := literal.Parse(rest, file, argLoc.Line, argLoc.Column)
	if lerr != nil {
		return Directive{}, false, lerr
	}

	return Directive{
		Location: loc(idx),
		Encoding: enc,
		Name:     name,
		Value:    val,
	}, true, nil
}

func packageName(path string, src []byte) (string, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.PackageClauseOnly)
	if err != nil {
		return "", fmt.Errorf("failed to parse package clause of %s: %w", path, err)
	}
	return f.Name.Name, nil
}

// ScanDir walks root and scans every Go file, skipping hidden and
// underscore-prefixed directories, vendor, testdata, and files the
// generator itself wrote (identified by suffix, e.g. "_sha1gen").
func ScanDir(root, suffix string) ([]*File, error) {
	var files []*File

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := entry.Name()
		if entry.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == "testdata" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, suffix+".go") {
			return nil
		}

		f, err := ScanFile(path)
		if err != nil {
			return err
		}
		if f != nil {
			files = append(files, f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
