package errors

// Error code constants organized by phase
// E001-E099: literal lexer errors
// E100-E199: directive scanner errors
// E200-E299: generator errors

const (
	// Literal lexer errors (E001-E099)
	ErrExpectedLiteral      = "E001"
	ErrUnterminatedString   = "E002"
	ErrUnterminatedRaw      = "E003"
	ErrInvalidEscape        = "E004"
	ErrInvalidHexEscape     = "E005"
	ErrNonASCIIByte         = "E006"
	ErrTrailingCharacters   = "E007"
	ErrInvalidUnicodeEscape = "E008"

	// Directive scanner errors (E100-E199)
	ErrMalformedDirective = "E100"
	ErrUnknownEncoding    = "E101"
	ErrInvalidName        = "E102"
	ErrMissingLiteral     = "E103"

	// Generator errors (E200-E299)
	ErrDuplicateName = "E200"
	ErrStaleOutput   = "E201"
)
