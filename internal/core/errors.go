package core

import (
	"errors"
	"fmt"
)

// ErrDocumentNotFound reports an absent document. Callers substitute
// the documented default rather than treating absence as a failure.
var ErrDocumentNotFound = errors.New("document not found")

// ValidationError reports caller-supplied data that violates a
// documented precondition. It is never partially applied.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
