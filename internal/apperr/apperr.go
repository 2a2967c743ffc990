// Package apperr defines the error taxonomy shared by services and handlers.
// Services return a typed *Error for every foreseeable rule violation; the
// handler boundary maps its kind to an HTTP status. Anything else surfaces as
// a generic 500 with the detail logged, never exposed.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	Validation   Kind = iota // malformed or out-of-range input
	NotFound                 // referenced id absent
	Conflict                 // uniqueness violation
	BusinessRule             // dispatch/lifecycle precondition failed
	Unauthorized             // credential check failed
	Internal                 // unexpected failure
)

// Error carries a user-facing message and a classification.
type Error struct {
	Kind    Kind
	Message string
	Err     error // optional underlying cause, for logs only
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an application error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to an internal error.
func Wrap(message string, err error) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}

// HTTPStatus maps an error to its response status code. Unknown errors are
// treated as internal failures.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case Validation, BusinessRule:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
