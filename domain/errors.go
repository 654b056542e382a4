package domain

import "errors"

// ErrUnauthorized is returned when a read arrives without a usable session
// cookie. It maps to 401 before any store access happens.
var ErrUnauthorized = errors.New("missing or invalid session")

// ValidationError carries the issues found in a malformed request. It maps
// to 400 with the issue list in the body.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "validation failed: " + e.Issues[0].Field + ": " + e.Issues[0].Message
	}
	return "validation failed"
}

// AppError is a domain-level failure raised intentionally by business logic,
// surfaced with its declared status code.
type AppError struct {
	StatusCode int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates an AppError with the given status and message.
func NewAppError(statusCode int, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message}
}
