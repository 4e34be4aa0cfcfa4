// Package literal parses the argument of a sha1gen directive. The accepted
// forms are an interpreted string literal ("..."), a raw string literal
// (`...`), or a byte-string literal (b"..."). String literals are converted
// to bytes as UTF-8; byte-string literals denote one byte per character or
// escape and reject anything outside ASCII.
package literal

// Kind identifies which literal form was parsed
type Kind int

const (
	KindString Kind = iota
	KindRawString
	KindBytes
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindRawString:
		return "raw string"
	case KindBytes:
		return "byte string"
	default:
		return "unknown"
	}
}

// Value is the result of parsing a directive argument.
type Value struct {
	Kind Kind
	Data []byte
}
