// Package apperr is the application error taxonomy. Services return *Error
// values; the HTTP layer maps Code to a status and never echoes the wrapped
// cause to the client.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Code string

const (
	CodeValidation       Code = "VALIDATION"
	CodeConflict         Code = "CONFLICT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAuth             Code = "AUTH"
	CodeEmptyCart        Code = "EMPTY_CART"
	CodeDanglingRef      Code = "DANGLING_REF"
	CodeAlreadyCancelled Code = "ALREADY_CANCELLED"
	CodeInternal         Code = "INTERNAL"
)

type Error struct {
	Code Code
	Msg  string // client-safe message
	Err  error  // underlying cause, log-only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func New(code Code, msg string) *Error { return &Error{Code: code, Msg: msg} }

// Wrap classifies an underlying failure without exposing its text.
func Wrap(code Code, msg string, err error) *Error { return &Error{Code: code, Msg: msg, Err: err} }

func Validation(msg string) *Error       { return New(CodeValidation, msg) }
func Conflict(msg string) *Error         { return New(CodeConflict, msg) }
func NotFound(msg string) *Error         { return New(CodeNotFound, msg) }
func Auth(msg string) *Error             { return New(CodeAuth, msg) }
func EmptyCart(msg string) *Error        { return New(CodeEmptyCart, msg) }
func DanglingRef(msg string) *Error      { return New(CodeDanglingRef, msg) }
func AlreadyCancelled(msg string) *Error { return New(CodeAlreadyCancelled, msg) }
func Internal(err error) *Error {
	return Wrap(CodeInternal, "Server error, please try again later.", err)
}

// CodeOf extracts the taxonomy code, defaulting to Internal for plain errors.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// Status maps a code to its HTTP status.
func Status(code Code) int {
	switch code {
	case CodeValidation, CodeEmptyCart, CodeDanglingRef, CodeAlreadyCancelled:
		return fiber.StatusBadRequest
	case CodeConflict:
		return fiber.StatusConflict
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeAuth:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
