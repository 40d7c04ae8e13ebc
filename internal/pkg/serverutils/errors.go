package serverutils

import "fmt"

// AppError is the error type services return to controllers. The error
// handler middleware maps Code to the HTTP status.
type AppError struct {
	Code    int
	Message string
	Err     error // wrapped cause, logged server-side, never sent to clients
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewUnauthorized covers missing/invalid tokens (401).
func NewUnauthorized(message string) *AppError {
	return &AppError{Code: 401, Message: message}
}

// NewValidation covers missing/malformed input (400).
func NewValidation(message string) *AppError {
	return &AppError{Code: 400, Message: message}
}

// NewForbidden covers authenticated callers without the right role (403).
func NewForbidden(message string) *AppError {
	return &AppError{Code: 403, Message: message}
}

// NewNotFound covers lookups on absent rows (404).
func NewNotFound(message string) *AppError {
	return &AppError{Code: 404, Message: message}
}

// NewDependency covers store or downstream failures (500). The wrapped
// cause stays server-side; the caller sees only Message.
func NewDependency(message string, err error) *AppError {
	return &AppError{Code: 500, Message: message, Err: err}
}
