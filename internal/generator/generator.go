// Package generator turns scanned sha1gen directives into generated Go
// source files. For every source file containing directives it emits a
// sibling file (suffix "_sha1gen" by default) whose constants hold the
// precomputed SHA-1 digests, so the digests exist as source-level literals
// exactly like a compile-time macro expansion would produce.
package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sha1gen/sha1gen/directive/errors"
	"github.com/sha1gen/sha1gen/directive/scanner"
	"github.com/sha1gen/sha1gen/sha1"
)

// Options configures a generator run.
type Options struct {
	// Suffix is appended to the source file's base name to form the
	// generated file name, e.g. app.go -> app_sha1gen.go.
	Suffix string

	// Check verifies generated files are up to date instead of writing
	// them. Stale or missing files are reported in Result.Stale.
	Check bool

	Logger *zap.Logger
}

// Result summarizes a generator run.
type Result struct {
	Directives int      // total directives found
	Written    []string // generated files written (or rewritten)
	Unchanged  []string // generated files already up to date
	Stale      []string // check mode only: out-of-date or missing files
}

// Run scans each path (directories are walked recursively, .go files are
// scanned directly) and generates output for every file with directives.
func Run(paths []string, opts Options) (*Result, error) {
	if opts.Suffix == "" {
		opts.Suffix = "_sha1gen"
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var files []*scanner.File
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := scanner.ScanDir(path, opts.Suffix)
			if err != nil {
				return nil, err
			}
			log.Debug("scanned directory", zap.String("path", path), zap.Int("files_with_directives", len(found)))
			files = append(files, found...)
		} else {
			f, err := scanner.ScanFile(path)
			if err != nil {
				return nil, err
			}
			if f != nil {
				files = append(files, f)
			}
		}
	}

	if err := checkDuplicateNames(files); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, f := range files {
		result.Directives += len(f.Directives)

		code, err := render(f)
		if err != nil {
			return nil, err
		}

		outPath := outputPath(f.Path, opts.Suffix)
		existing, readErr := os.ReadFile(outPath)
		upToDate := readErr == nil && bytes.Equal(existing, code)

		switch {
		case opts.Check && !upToDate:
			result.Stale = append(result.Stale, outPath)
			log.Debug("generated file is stale", zap.String("path", outPath))
		case opts.Check:
			result.Unchanged = append(result.Unchanged, outPath)
		case upToDate:
			result.Unchanged = append(result.Unchanged, outPath)
			log.Debug("generated file unchanged", zap.String("path", outPath))
		default:
			if err := os.WriteFile(outPath, code, 0o644); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			result.Written = append(result.Written, outPath)
			log.Debug("wrote generated file",
				zap.String("path", outPath),
				zap.Int("directives", len(f.Directives)))
		}
	}

	return result, nil
}

// outputPath derives the generated file path for a source file.
func outputPath(srcPath, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(srcPath), ".go")
	return filepath.Join(filepath.Dir(srcPath), base+suffix+".go")
}

// checkDuplicateNames rejects two directives declaring the same name in
// the same package directory, which would generate conflicting constants.
func checkDuplicateNames(files []*scanner.File) error {
	seen := make(map[string]errors.SourceLocation)
	for _, f := range files {
		dir := filepath.Dir(f.Path)
		for _, d := range f.Directives {
			key := dir + "\x00" + d.Name
			if prev, ok := seen[key]; ok {
				return errors.New("generator", errors.ErrDuplicateName,
					fmt.Sprintf("duplicate directive name %q (first declared at %s:%d)",
						d.Name, prev.File, prev.Line),
					d.Location)
			}
			seen[key] = d.Location
		}
	}
	return nil
}

// emitter builds one generated file, in the style of a code generator
// writing into a buffer and gofmt-ing the result.
type emitter struct {
	buf bytes.Buffer
}

func (e *emitter) printf(format string, args ...interface{}) {
	fmt.Fprintf(&e.buf, format, args...)
}

// render produces the formatted generated file for one scanned source file.
func render(f *scanner.File) ([]byte, error) {
	var e emitter

	e.printf("// Code generated by sha1gen. DO NOT EDIT.\n")
	e.printf("//\n")
	e.printf("// Source: %s\n\n", filepath.Base(f.Path))
	e.printf("package %s\n\n", f.Package)

	for _, d := range f.Directives {
		sum := sha1.Sum(d.Value.Data)

		switch d.Encoding {
		case scanner.EncodingHex:
			e.printf("// %s is the hex-encoded SHA-1 digest declared at %s:%d.\n",
				d.Name, filepath.Base(d.Location.File), d.Location.Line)
			e.printf("const %s = %q\n\n", d.Name, sha1.EncodeHex(sum))
		case scanner.EncodingBase64:
			e.printf("// %s is the unpadded base64 SHA-1 digest declared at %s:%d.\n",
				d.Name, filepath.Base(d.Location.File), d.Location.Line)
			e.printf("const %s = %q\n\n", d.Name, sha1.EncodeBase64(sum))
		case scanner.EncodingBytes:
			e.printf("// %s is the raw SHA-1 digest declared at %s:%d.\n",
				d.Name, filepath.Base(d.Location.File), d.Location.Line)
			e.printf("var %s = [%d]byte{%s}\n\n", d.Name, sha1.Size, byteList(sum))
		default:
			return nil, fmt.Errorf("unknown encoding %v for directive %s", d.Encoding, d.Name)
		}
	}

	formatted, err := format.Source(e.buf.Bytes())
	if err != nil {
		// A formatting failure means the emitter produced invalid Go,
		// which is a bug here, not in the user's directives.
		return nil, fmt.Errorf("generated code for %s does not parse: %w", f.Path, err)
	}
	return formatted, nil
}

func byteList(sum [sha1.Size]byte) string {
	parts := make([]string, len(sum))
	for i, b := range sum {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return strings.Join(parts, ", ")
}
