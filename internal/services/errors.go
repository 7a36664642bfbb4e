package services

import "errors"

// ErrForbidden is returned when the caller is neither the owner of the
// resource nor an operator.
var ErrForbidden = errors.New("not authorized to access this resource")

// ValidationError carries a human-readable message plus the full list of
// per-item problems, so a caller can correct every line at once instead of
// retrying one at a time.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string, details ...string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}
