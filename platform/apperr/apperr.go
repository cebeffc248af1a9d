// Package apperr provides standardized domain error types for the application.
// Domain services return these typed errors, and the HTTP layer maps them to
// status codes. Every error carries two messages: the internal diagnostic
// (logged, never sent to clients) and the public message (sent to clients).
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// FallbackPublicMessage is what clients see when an untyped error reaches
// the HTTP boundary.
const FallbackPublicMessage = "Something went wrong"

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindUnauthorized indicates authentication is required or failed.
	KindUnauthorized
	// KindBadRequest indicates a malformed or invalid request.
	KindBadRequest
	// KindNotFound indicates a resource was not found.
	KindNotFound
	// KindInternal indicates an unexpected internal error.
	KindInternal
)

// Error is a domain error with a typed Kind for HTTP mapping.
type Error struct {
	Kind    Kind
	Message string // internal diagnostic, for logs
	Public  string // client-safe message
	Op      string // operation that failed (optional)
	Err     error  // underlying error (optional)
}

// Error implements the error interface. It reports the internal message;
// the public message is only read at the HTTP boundary.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-safe message, falling back to the
// generic one when unset.
func (e *Error) PublicMessage() string {
	if e.Public != "" {
		return e.Public
	}
	return FallbackPublicMessage
}

// New creates a new domain error with the given kind and messages.
func New(kind Kind, message, public string) *Error {
	return &Error{Kind: kind, Message: message, Public: public}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message, public string, err error) *Error {
	return &Error{Kind: kind, Message: message, Public: public, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// Convenience constructors for common error types.

// Unauthorized creates an authentication failure error.
func Unauthorized(message, public string) *Error {
	return New(KindUnauthorized, message, public)
}

// BadRequest creates a bad request error.
func BadRequest(message, public string) *Error {
	return New(KindBadRequest, message, public)
}

// NotFound creates a not found error.
func NotFound(message, public string) *Error {
	return New(KindNotFound, message, public)
}

// Internal creates an internal server error.
func Internal(message, public string) *Error {
	return New(KindInternal, message, public)
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
