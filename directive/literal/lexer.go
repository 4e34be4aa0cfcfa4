package literal

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/sha1gen/sha1gen/directive/errors"
)

// Lexer scans a single literal out of a directive argument
type Lexer struct {
	source  []rune
	current int
	line    int
	column  int
	file    string
}

// New creates a Lexer for src. file, line and column locate src in the
// enclosing Go source file so diagnostics point at the directive itself.
func New(src, file string, line, column int) *Lexer {
	return &Lexer{
		source:  []rune(src),
		current: 0,
		line:    line,
		column:  column,
		file:    file,
	}
}

// Parse is the convenience entry point: lex exactly one literal from src
// and reject trailing characters.
func Parse(src, file string, line, column int) (Value, error) {
	return New(src, file, line, column).Scan()
}

// Scan scans one literal and verifies nothing but whitespace follows it.
func (l *Lexer) Scan() (Value, error) {
	l.skipSpaces()

	if l.isAtEnd() {
		return Value{}, l.errorf(errors.ErrExpectedLiteral,
			`expected a string or byte literal: "...", `+"`...`"+`, or b"..."`)
	}

	var (
		val Value
		err error
	)

	switch {
	case l.peek() == '"':
		val, err = l.scanString()
	case l.peek() == '`':
		val, err = l.scanRawString()
	case l.peek() == 'b' && l.peekNext() == '"':
		val, err = l.scanByteString()
	default:
		return Value{}, l.errorf(errors.ErrExpectedLiteral,
			`expected a string or byte literal: "...", `+"`...`"+`, or b"..." (got %q)`, l.remainder())
	}
	if err != nil {
		return Value{}, err
	}

	l.skipSpaces()
	if !l.isAtEnd() {
		return Value{}, l.errorf(errors.ErrTrailingCharacters,
			"unexpected characters after literal: %q", l.remainder())
	}

	return val, nil
}

// scanString scans an interpreted string literal. The value is the UTF-8
// encoding of the literal's characters, with escape sequences resolved.
func (l *Lexer) scanString() (Value, error) {
	l.advance() // opening quote

	var buf bytes.Buffer
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			return Value{}, l.errorf(errors.ErrUnterminatedString, "newline in string literal")
		}

		if l.peek() == '\\' {
			if err := l.scanEscape(&buf, false); err != nil {
				return Value{}, err
			}
			continue
		}

		buf.WriteRune(l.advance())
	}

	if l.isAtEnd() {
		return Value{}, l.errorf(errors.ErrUnterminatedString, "unterminated string literal")
	}
	l.advance() // closing quote

	return Value{Kind: KindString, Data: buf.Bytes()}, nil
}

// scanRawString scans a backquoted literal. Bytes are taken verbatim and
// no escape sequences exist, matching Go raw string semantics.
func (l *Lexer) scanRawString() (Value, error) {
	l.advance() // opening backquote

	var buf bytes.Buffer
	for !l.isAtEnd() && l.peek() != '`' {
		buf.WriteRune(l.advance())
	}

	if l.isAtEnd() {
		return Value{}, l.errorf(errors.ErrUnterminatedRaw, "unterminated raw string literal")
	}
	l.advance() // closing backquote

	return Value{Kind: KindRawString, Data: buf.Bytes()}, nil
}

// scanByteString scans b"...". Every character or escape denotes exactly
// one byte, so non-ASCII characters are rejected rather than silently
// encoded as UTF-8.
func (l *Lexer) scanByteString() (Value, error) {
	l.advance() // 'b'
	l.advance() // opening quote

	var buf bytes.Buffer
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			return Value{}, l.errorf(errors.ErrUnterminatedString, "newline in byte-string literal")
		}

		if l.peek() == '\\' {
			if err := l.scanEscape(&buf, true); err != nil {
				return Value{}, err
			}
			continue
		}

		r := l.advance()
		if r > 0x7F {
			return Value{}, l.errorf(errors.ErrNonASCIIByte,
				"non-ASCII character %q in byte-string literal; use \\x escapes for raw bytes", r)
		}
		buf.WriteByte(byte(r))
	}

	if l.isAtEnd() {
		return Value{}, l.errorf(errors.ErrUnterminatedString, "unterminated byte-string literal")
	}
	l.advance() // closing quote

	return Value{Kind: KindBytes, Data: buf.Bytes()}, nil
}

// scanEscape resolves one escape sequence into buf. In byte mode every
// escape yields a single byte and \u is rejected.
func (l *Lexer) scanEscape(buf *bytes.Buffer, byteMode bool) error {
	l.advance() // backslash
	if l.isAtEnd() {
		return l.errorf(errors.ErrUnterminatedString, "unterminated escape sequence")
	}

	switch c := l.advance(); c {
	case 'n':
		buf.WriteByte('\n')
	case 't':
		buf.WriteByte('\t')
	case 'r':
		buf.WriteByte('\r')
	case '0':
		buf.WriteByte(0)
	case '\\':
		buf.WriteByte('\\')
	case '"':
		buf.WriteByte('"')
	case '\'':
		buf.WriteByte('\'')
	case 'x':
		hi, ok1 := l.hexDigit()
		lo, ok2 := l.hexDigit()
		if !ok1 || !ok2 {
			return l.errorf(errors.ErrInvalidHexEscape, `\x escape requires exactly two hex digits`)
		}
		buf.WriteByte(byte(hi<<4 | lo))
	case 'u':
		if byteMode {
			return l.errorf(errors.ErrInvalidEscape, `\u escapes are not allowed in byte-string literals`)
		}
		var r rune
		for i := 0; i < 4; i++ {
			d, ok := l.hexDigit()
			if !ok {
				return l.errorf(errors.ErrInvalidUnicodeEscape, `\u escape requires exactly four hex digits`)
			}
			r = r<<4 | rune(d)
		}
		if !utf8.ValidRune(r) {
			return l.errorf(errors.ErrInvalidUnicodeEscape, `\u escape is not a valid rune`)
		}
		buf.WriteRune(r)
	default:
		return l.errorf(errors.ErrInvalidEscape, "invalid escape sequence \\%c", c)
	}
	return nil
}

func (l *Lexer) hexDigit() (int, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	c := l.peek()
	switch {
	case c >= '0' && c <= '9':
		l.advance()
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		l.advance()
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		l.advance()
		return int(c-'A') + 10, true
	}
	return 0, false
}

func (l *Lexer) skipSpaces() {
	for !l.isAtEnd() && (l.peek() == ' ' || l.peek() == '\t') {
		l.advance()
	}
}

func (l *Lexer) advance() rune {
	r := l.source[l.current]
	l.current++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) remainder() string {
	return string(l.source[l.current:])
}

func (l *Lexer) errorf(code, format string, args ...interface{}) error {
	return errors.New("literal", code, fmt.Sprintf(format, args...), errors.SourceLocation{
		File:   l.file,
		Line:   l.line,
		Column: l.column,
	})
}
