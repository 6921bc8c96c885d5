package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	ErrNotFound            = errors.New("not found")
	ErrBadRequest          = errors.New("bad request")
	ErrMissingConfig       = errors.New("missing configuration")
	ErrInternalServer      = errors.New("internal server error")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// UpstreamError carries the status and message of a failed upstream API call
// so handlers can surface them in the error envelope.
type UpstreamError struct {
	StatusCode int
	StatusText string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamUnavailable
}

// NewUpstream creates an UpstreamError for a non-success upstream status.
func NewUpstream(statusCode int, message string) error {
	if message == "" {
		message = fmt.Sprintf("Unexpected status %d", statusCode)
	}
	return &UpstreamError{
		StatusCode: statusCode,
		StatusText: http.StatusText(statusCode),
		Message:    message,
	}
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// AsUpstream returns the UpstreamError in err's chain, if any.
func AsUpstream(err error) (*UpstreamError, bool) {
	var e *UpstreamError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsMissingConfig returns true if the error is a missing configuration error
func IsMissingConfig(err error) bool {
	return errors.Is(err, ErrMissingConfig)
}

// IsUpstreamUnavailable returns true if the error is an upstream unavailable error
func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}
