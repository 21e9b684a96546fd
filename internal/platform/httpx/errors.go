package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the service layer.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrDuplicate  = errors.New("duplicate entry")
	ErrConflict   = errors.New("conflicting reference")
	ErrValidation = errors.New("validation failed")
)

const genericMessage = "Có lỗi xảy ra trên server"

type kindError struct {
	kind error
	msg  string
}

func (e kindError) Error() string { return e.msg }

func (e kindError) Unwrap() error { return e.kind }

// Validation builds a 400-mapped error carrying a user-facing message.
func Validation(msg string) error { return kindError{kind: ErrValidation, msg: msg} }

// NotFound builds a 404-mapped error carrying a user-facing message.
func NotFound(msg string) error { return kindError{kind: ErrNotFound, msg: msg} }

// Duplicate builds a 409-mapped error carrying a user-facing message.
func Duplicate(msg string) error { return kindError{kind: ErrDuplicate, msg: msg} }

// Conflict builds a 409-mapped error carrying a user-facing message.
func Conflict(msg string) error { return kindError{kind: ErrConflict, msg: msg} }

// RespondError maps service errors to HTTP responses. Recognised kinds keep
// their user-facing message; anything else becomes a generic 500 so storage
// detail never leaks to the client.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict):
		Error(w, http.StatusConflict, err.Error())
	default:
		Error(w, http.StatusInternalServerError, genericMessage)
	}
}
