package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates supported application error categories.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindValidation Kind = "validation"
	KindInternal   Kind = "internal"
)

// Error carries an error category across layers so the HTTP boundary can
// pick a status code without string matching.
type Error struct {
	kind    Kind
	message string
	field   string
	cause   error
}

// NotFound constructs a not-found error.
func NotFound(message string) *Error {
	return &Error{kind: KindNotFound, message: message}
}

// Conflict constructs a duplicate-value error.
func Conflict(message string) *Error {
	return &Error{kind: KindConflict, message: message}
}

// Validation constructs a per-field validation error.
func Validation(field, message string) *Error {
	return &Error{kind: KindValidation, message: message, field: field}
}

// Internal wraps an unexpected failure.
func Internal(message string, cause error) *Error {
	return &Error{kind: KindInternal, message: message, cause: cause}
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Kind returns the error category.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindInternal
	}
	return e.kind
}

// Message returns the human-readable message.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Field names the offending field for validation errors, or is empty.
func (e *Error) Field() string {
	if e == nil {
		return ""
	}
	return e.field
}

// StatusCode resolves the HTTP status for the error kind. Conflicts map to
// 400 rather than 409: duplicate unique fields have always surfaced as
// 400 "already registered" on this API.
func (e *Error) StatusCode() int {
	if e == nil {
		return http.StatusInternalServerError
	}
	switch e.kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// From returns an *Error for any error input, wrapping unexpected values as
// internal errors.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("internal error", err)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.kind == KindNotFound
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.kind == KindConflict
}
