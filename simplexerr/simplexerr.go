// Package simplexerr defines the error-kind taxonomy surfaced by parsing a
// rig definition document: a single ParseError record plus the sentinel
// errors it wraps, grounded on the same per-package sentinel-set convention
// the rest of this module uses.
package simplexerr

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument means the definition string is not parseable JSON.
	ErrMalformedDocument = errors.New("simplexerr: document is not valid JSON")

	// ErrSchemaViolation means the document parsed as JSON but a required
	// field was missing, of the wrong type, or a referenced index was out
	// of range.
	ErrSchemaViolation = errors.New("simplexerr: schema violation")

	// ErrUnsupportedEncoding means encodingVersion named an unknown schema
	// version. Observably identical to ErrSchemaViolation.
	ErrUnsupportedEncoding = errors.New("simplexerr: unsupported encodingVersion")
)

// ParseError is the single parse-failure record a Simplex captures: a
// human-readable message and the byte offset into the definition string
// where the failure was detected. It wraps one of this package's sentinels
// so callers can classify the failure with errors.Is.
type ParseError struct {
	Message string
	Offset  uint64

	cause error
}

// New builds a ParseError wrapping cause, formatting Message from msg and
// the trailing args the way fmt.Sprintf would.
func New(cause error, offset uint64, msg string, args ...any) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(msg, args...),
		Offset:  offset,
		cause:   cause,
	}
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}

// Unwrap exposes the wrapped sentinel to errors.Is/errors.As.
func (e *ParseError) Unwrap() error { return e.cause }
