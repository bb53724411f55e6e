// Package apperr carries HTTP-aware application errors from services to the
// terminal error handler.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors returned by repositories and services. The error handler maps
// them to HTTP statuses when no explicit *Error wraps them.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error is an error with an HTTP status and a stable machine-readable code.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with the given status, code and message.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Wrap attaches status, code and message to an underlying error.
func Wrap(err error, status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: err}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, "bad_request", message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, "unauthorized", message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, "forbidden", message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, "not_found", message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, "conflict", message)
}

func TooManyRequests(message string) *Error {
	return New(http.StatusTooManyRequests, "too_many_requests", message)
}

func Internal(err error) *Error {
	return Wrap(err, http.StatusInternalServerError, "internal_error", "Internal server error")
}

// From converts any error into an *Error. Sentinels keep their message; anything
// unrecognised becomes a 500.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return Wrap(err, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ErrConflict):
		return Wrap(err, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, ErrInvalid):
		return Wrap(err, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ErrUnauthorized):
		return Wrap(err, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, ErrForbidden):
		return Wrap(err, http.StatusForbidden, "forbidden", err.Error())
	default:
		return Internal(err)
	}
}
