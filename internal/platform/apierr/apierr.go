package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure with a client-visible status and machine code. Services
// return it; handlers translate it into the JSON error envelope.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func BadRequest(code, msg string) *Error {
	return New(http.StatusBadRequest, code, errors.New(msg))
}

func NotFound(code, msg string) *Error {
	return New(http.StatusNotFound, code, errors.New(msg))
}

func Conflict(code, msg string) *Error {
	return New(http.StatusConflict, code, errors.New(msg))
}

func Unauthorized(code, msg string) *Error {
	return New(http.StatusUnauthorized, code, errors.New(msg))
}

// Internal keeps err for logging but reports msg to the client.
func Internal(code, msg string, err error) *Error {
	if err == nil {
		err = errors.New(msg)
	}
	return &Error{Status: http.StatusInternalServerError, Code: code, Err: &publicError{msg: msg, cause: err}}
}

type publicError struct {
	msg   string
	cause error
}

func (p *publicError) Error() string { return p.msg }
func (p *publicError) Unwrap() error { return p.cause }

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae, true
	}
	return nil, false
}

// Cause returns the underlying error for logging, skipping the public message.
func Cause(err error) error {
	var pe *publicError
	if errors.As(err, &pe) {
		return pe.cause
	}
	return err
}
