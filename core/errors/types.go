// ABOUTME: Custom error types for the core business logic
// ABOUTME: NetworkError is the closed taxonomy returned by the recipe repository

package errors

import (
	"errors"
	"fmt"
)

// NetworkErrorKind classifies a failed fetch
type NetworkErrorKind string

const (
	// KindInvalidURL means the request could not be built; no I/O happened
	KindInvalidURL NetworkErrorKind = "invalid_url"

	// KindInvalidResponse means the transport failed or the reply was not HTTP
	KindInvalidResponse NetworkErrorKind = "invalid_response"

	// KindServerError means a well-formed HTTP reply with a non-2xx status
	KindServerError NetworkErrorKind = "server_error"

	// KindDecoding means a 2xx body that does not match the recipe schema
	KindDecoding NetworkErrorKind = "decoding_error"
)

// NetworkError is the only error type the recipe repository returns
type NetworkError struct {
	Kind NetworkErrorKind

	// StatusCode is set for KindServerError only
	StatusCode int

	Cause error
}

// Sentinels for errors.Is. ErrServerError matches any status code.
var (
	ErrInvalidURL      = &NetworkError{Kind: KindInvalidURL}
	ErrInvalidResponse = &NetworkError{Kind: KindInvalidResponse}
	ErrServerError     = &NetworkError{Kind: KindServerError}
	ErrDecoding        = &NetworkError{Kind: KindDecoding}
)

// NewInvalidURLError builds an invalid_url error
func NewInvalidURLError(cause error) *NetworkError {
	return &NetworkError{Kind: KindInvalidURL, Cause: cause}
}

// NewInvalidResponseError builds an invalid_response error
func NewInvalidResponseError(cause error) *NetworkError {
	return &NetworkError{Kind: KindInvalidResponse, Cause: cause}
}

// NewServerError builds a server_error carrying the literal status code
func NewServerError(statusCode int) *NetworkError {
	return &NetworkError{Kind: KindServerError, StatusCode: statusCode}
}

// NewDecodingError builds a decoding_error
func NewDecodingError(cause error) *NetworkError {
	return &NetworkError{Kind: KindDecoding, Cause: cause}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	var msg string
	switch e.Kind {
	case KindInvalidURL:
		msg = "invalid URL"
	case KindInvalidResponse:
		msg = "invalid response"
	case KindServerError:
		msg = fmt.Sprintf("server error: %d", e.StatusCode)
	case KindDecoding:
		msg = "decoding error"
	default:
		msg = string(e.Kind)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// Is matches on kind. A target with a zero StatusCode matches any status.
func (e *NetworkError) Is(target error) bool {
	t, ok := target.(*NetworkError)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// AsNetworkError extracts a NetworkError from err
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or "" when err is not a NetworkError
func KindOf(err error) NetworkErrorKind {
	if netErr, ok := AsNetworkError(err); ok {
		return netErr.Kind
	}
	return ""
}

// StatusCodeOf returns the status carried by a server_error, or 0
func StatusCodeOf(err error) int {
	if netErr, ok := AsNetworkError(err); ok && netErr.Kind == KindServerError {
		return netErr.StatusCode
	}
	return 0
}

// IsInvalidURL checks if err is an invalid_url NetworkError
func IsInvalidURL(err error) bool {
	return KindOf(err) == KindInvalidURL
}

// IsInvalidResponse checks if err is an invalid_response NetworkError
func IsInvalidResponse(err error) bool {
	return KindOf(err) == KindInvalidResponse
}

// IsServerError checks if err is a server_error NetworkError
func IsServerError(err error) bool {
	return KindOf(err) == KindServerError
}

// IsDecoding checks if err is a decoding_error NetworkError
func IsDecoding(err error) bool {
	return KindOf(err) == KindDecoding
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
