package invoice

import (
	"errors"
	"fmt"
)

// Common document errors
var (
	// ErrMalformedDocument is returned when the JSON structure of an
	// invoice document cannot be decoded at all.
	ErrMalformedDocument = errors.New("malformed invoice document")

	// ErrBadDecimalText is returned when a decimal-text field of a
	// document does not parse as an exact decimal.
	ErrBadDecimalText = errors.New("invalid decimal text")

	// ErrBadDateText is returned when a date field of a document is not
	// a YYYY-MM-DD calendar date.
	ErrBadDateText = errors.New("invalid date text")
)

// DecodeError reports a load-fatal failure while decoding an invoice
// document, carrying the path of the offending field. Decoding is
// all-or-nothing: no partial invoice is ever produced.
type DecodeError struct {
	// Field is the document path that failed (e.g. "items[2].quantity").
	Field string

	// Value is the offending raw text, when available.
	Value string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invoice: decode %s: %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invoice: decode %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *DecodeError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewDecodeError creates a DecodeError for the given document field.
func NewDecodeError(field, value string, err error) *DecodeError {
	return &DecodeError{Field: field, Value: value, Err: err}
}

// ValidationError reports a required field left blank or otherwise
// unacceptable at the point of interactive entry.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
