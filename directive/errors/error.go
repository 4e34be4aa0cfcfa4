// Package errors defines positional diagnostics for sha1gen's directive
// front end: literal lexing, directive scanning, and code generation all
// report errors as values carrying a source location and a stable code.
package errors

import "fmt"

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// SourceLocation represents a location in source code
type SourceLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// DirectiveError represents an error produced while processing a sha1gen
// directive or its literal argument.
type DirectiveError struct {
	Phase    string         // "literal", "scanner", "generator"
	Code     string         // "E001", "E100", ...
	Message  string         // Human-readable message
	Location SourceLocation // File, line, column
	Severity Severity
}

// Error implements the error interface
func (e DirectiveError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		e.Location.File,
		e.Location.Line,
		e.Location.Column,
		e.Code,
		e.Message)
}

// New creates a new DirectiveError with Error severity
func New(phase, code, message string, location SourceLocation) DirectiveError {
	return DirectiveError{
		Phase:    phase,
		Code:     code,
		Message:  message,
		Location: location,
		Severity: Error,
	}
}
