// Package apperr classifies every failure that crosses a service boundary.
// Controllers translate a Kind to an HTTP status; anything unclassified
// surfaces as a generic 500 with the detail kept in logs only.
package apperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type Kind int

const (
	KindUnclassified Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
	KindUnauthorized
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func BadRequest(msg string) *Error   { return New(KindBadRequest, msg) }
func NotFound(msg string) *Error     { return New(KindNotFound, msg) }
func Conflict(msg string) *Error     { return New(KindConflict, msg) }
func Unauthorized(msg string) *Error { return New(KindUnauthorized, msg) }

// KindOf reports the taxonomy kind of err, unwrapping as needed.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnclassified
}

// FromStore maps storage-layer failures to the taxonomy. Requires the
// gorm connection to run with TranslateError so duplicate keys are
// recognizable across drivers.
func FromStore(err error, notFoundMsg, conflictMsg string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(KindNotFound, notFoundMsg, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(KindConflict, conflictMsg, err)
	default:
		return Wrap(KindUnclassified, "storage failure", err)
	}
}

// HTTPStatus maps a Kind to the response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is what the client sees. Unclassified failures never leak
// internal detail.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindUnclassified {
		return appErr.Msg
	}
	return "internal server error"
}
