// Package errors carries coded errors through rbedit. Every failure that
// leaves a package is an *EditorError so callers and tests can branch on
// Code instead of message text.
package errors

import (
	"errors"
	"fmt"
)

// EditorError is an error with a stable code, a message and optional
// key/value details (paths, keywords, format codes).
type EditorError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func build(err error, code ErrorCode, msg string) *EditorError {
	return &EditorError{
		Code:    code,
		Message: msg,
		Details: map[string]interface{}{},
		Wrapped: err,
	}
}

func (e *EditorError) Error() string {
	s := "[" + string(e.Code) + "] " + e.Message
	if e.Wrapped == nil {
		return s
	}
	return s + ": " + e.Wrapped.Error()
}

func (e *EditorError) Unwrap() error { return e.Wrapped }

// Is reports a match when target is an *EditorError with the same code, so
// errors.Is(err, errors.New(ErrFileRead, "")) works as a code check.
func (e *EditorError) Is(target error) bool {
	var other *EditorError
	return errors.As(target, &other) && other.Code == e.Code
}

// WithDetail records key=value on the error and returns it for chaining.
func (e *EditorError) WithDetail(key string, value interface{}) *EditorError {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	e.Details[key] = value
	return e
}

func New(code ErrorCode, message string) *EditorError {
	return build(nil, code, message)
}

func Newf(code ErrorCode, format string, args ...interface{}) *EditorError {
	return build(nil, code, fmt.Sprintf(format, args...))
}

// Wrap attaches code and message to err. Wrapping nil yields nil.
func Wrap(err error, code ErrorCode, message string) *EditorError {
	if err == nil {
		return nil
	}
	return build(err, code, message)
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EditorError {
	if err == nil {
		return nil
	}
	return build(err, code, fmt.Sprintf(format, args...))
}

func asEditor(err error) (*EditorError, bool) {
	var e *EditorError
	ok := errors.As(err, &e)
	return e, ok
}

// IsErrorCode reports whether any *EditorError in err's chain carries code.
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := asEditor(err)
	return ok && e.Code == code
}

// GetErrorCode returns the outermost code in err's chain, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	if e, ok := asEditor(err); ok {
		return e.Code
	}
	return ErrUnknown
}

func GetErrorDetails(err error) map[string]interface{} {
	if e, ok := asEditor(err); ok {
		return e.Details
	}
	return nil
}
