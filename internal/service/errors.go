package service

import "errors"

// Error taxonomy shared by all services. Handlers map these onto HTTP
// statuses and business codes; anything else is a server error.
var (
	// ErrNotFound covers both a missing entity and one owned by another
	// user, so existence is never leaked across accounts.
	ErrNotFound = errors.New("record not found")

	// ErrConflict marks a duplicate that the domain forbids, e.g. a second
	// budget for the same (category, month, year).
	ErrConflict = errors.New("record already exists")
)

// ValidationError reports malformed input with a field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
