// Package apperr defines the error taxonomy shared by all services:
// validation, auth, precondition and storage failures. Handlers translate
// these to HTTP status codes through a single mapping.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a service failure.
type Kind int

const (
	// KindValidation covers malformed or missing input.
	KindValidation Kind = iota
	// KindAuth covers bad credentials and missing/invalid/expired tokens.
	KindAuth
	// KindPrecondition covers operations invoked out of order (seed ordering).
	KindPrecondition
	// KindStorage covers unexpected database failures.
	KindStorage
)

// Error carries the failure kind, an optional field tag for validation
// errors, and a human-readable message that is safe to return to clients.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a field-tagged validation error. field may be empty
// when no single input is at fault.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// Auth returns an authentication error. Callers must keep the message
// generic so it does not leak which check failed.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// Precondition returns an ordering-violation error.
func Precondition(message string) *Error {
	return &Error{Kind: KindPrecondition, Message: message}
}

// Storage wraps an unexpected database error behind a fixed client message.
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// Status maps an error to its HTTP status code. Anything that is not an
// *Error is treated as a storage failure.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindPrecondition:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// FieldOf returns the field tag of a validation error, or "" if none.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// MessageOf returns the client-safe message for err. Non-*Error values get
// a generic message so internal details never reach the client.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Server error"
}
