package hatenadl

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are machine-readable codes attached to domain errors so that
// callers can branch on the kind of failure without string matching.
const (
	EINTERNAL    = "internal"    // unexpected internal error
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity or route not found
	EPARSE       = "parse"       // required markup is missing or malformed
	EUNAVAILABLE = "unavailable" // external system is unavailable
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("hatenadl error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
