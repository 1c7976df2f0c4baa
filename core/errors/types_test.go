package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNetworkError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NetworkError
		expected string
	}{
		{"invalid url", NewInvalidURLError(nil), "invalid URL"},
		{"invalid url with cause", NewInvalidURLError(errors.New("missing host")), "invalid URL: missing host"},
		{"invalid response", NewInvalidResponseError(errors.New("malformed HTTP response")), "invalid response: malformed HTTP response"},
		{"server error", NewServerError(503), "server error: 503"},
		{"decoding", NewDecodingError(nil), "decoding error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNetworkError_KindsDoNotOverlap(t *testing.T) {
	all := []*NetworkError{
		NewInvalidURLError(nil),
		NewInvalidResponseError(nil),
		NewServerError(500),
		NewDecodingError(nil),
	}
	checks := []func(error) bool{IsInvalidURL, IsInvalidResponse, IsServerError, IsDecoding}

	for i, err := range all {
		for j, check := range checks {
			if got := check(err); got != (i == j) {
				t.Errorf("check %d on %v = %v, want %v", j, err, got, i == j)
			}
		}
	}
}

func TestNetworkError_IsSentinels(t *testing.T) {
	err := fmt.Errorf("load failed: %w", NewServerError(404))

	if !errors.Is(err, ErrServerError) {
		t.Error("server error should match ErrServerError regardless of status")
	}
	if !errors.Is(err, NewServerError(404)) {
		t.Error("server error should match the same status")
	}
	if errors.Is(err, NewServerError(500)) {
		t.Error("server error should not match a different status")
	}
	if errors.Is(err, ErrDecoding) {
		t.Error("server error should not match ErrDecoding")
	}
}

func TestNetworkError_UnwrapsCause(t *testing.T) {
	err := NewInvalidResponseError(context.Canceled)

	if !errors.Is(err, context.Canceled) {
		t.Error("invalid response should unwrap to its cause")
	}
}

func TestStatusCodeOf(t *testing.T) {
	if got := StatusCodeOf(NewServerError(418)); got != 418 {
		t.Errorf("StatusCodeOf = %d, want 418", got)
	}
	if got := StatusCodeOf(NewDecodingError(nil)); got != 0 {
		t.Errorf("StatusCodeOf(decoding) = %d, want 0", got)
	}
	if got := StatusCodeOf(errors.New("plain")); got != 0 {
		t.Errorf("StatusCodeOf(plain) = %d, want 0", got)
	}
}

func TestKindOf_PlainError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
}

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "recipe",
		ID:       "123",
	}

	expected := "recipe not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "endpoint",
		Message: "must be an absolute URL",
	}

	expected := "validation error on field 'endpoint': must be an absolute URL"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsNotFound_WrappedError(t *testing.T) {
	notFound := &NotFoundError{
		Resource: "recipe",
		ID:       "123",
	}
	wrapped := fmt.Errorf("failed to get recipe: %w", notFound)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
	if IsNotFound(errors.New("some other error")) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "port", Message: "empty"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(errors.New("some other error")) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &NotFoundError{Resource: "recipe", ID: "abc"}
	wrappedErr := WrapError(originalErr, "failed to fetch recipe")

	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	expectedMsg := "failed to fetch recipe: recipe not found: abc"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	if !IsNotFound(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as NotFoundError")
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	if WrapError(nil, "this should not happen") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid url", NewInvalidURLError(nil), "The recipe source address is not valid."},
		{"invalid response", NewInvalidResponseError(errors.New("reset")), "The recipe source could not be reached."},
		{"server error", NewServerError(503), "The recipe source returned an error (503)."},
		{"decoding", NewDecodingError(nil), "The recipe data could not be read."},
		{"wrapped decoding", WrapError(NewDecodingError(nil), "load"), "The recipe data could not be read."},
		{"other", errors.New("boom"), "Something went wrong."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
