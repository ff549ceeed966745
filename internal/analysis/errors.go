package analysis

import "errors"

// ErrInsufficientSample means the batch was valid but below the
// style-classification floor. Callers must treat it as "no profile yet", not
// as a failure to retry.
var ErrInsufficientSample = errors.New("insufficient sample for style classification")

// ValidationError reports a bad batch before any computation runs. Always
// recoverable by the caller adjusting the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
