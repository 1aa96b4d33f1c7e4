package flashgen

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to transport-level errors
// (HTTP status codes, CLI exit messages). Stage-specific meaning lives in
// the error message.
const (
	EINVALID     = "invalid"     // unclassifiable URL, bad input
	ENOTFOUND    = "not_found"   // missing resource (e.g. no transcript)
	EUNAVAILABLE = "unavailable" // upstream fetch or model call failed
	EINTERNAL    = "internal"    // unexpected internal failure
)

// Error represents an application-specific error. Application errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface. Not user friendly; use ErrorMessage
// for messages intended for end users.
func (e *Error) Error() string {
	return fmt.Sprintf("flashgen error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
