package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestTransportError_Error(t *testing.T) {
	err := &TransportError{
		URL: "http://localhost:3000/api/users/me",
		Err: errors.New("connection refused"),
	}

	expected := "transport failure calling http://localhost:3000/api/users/me: connection refused"
	if err.Error() != expected {
		t.Errorf("TransportError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	inner := errors.New("dial tcp: lookup failed")
	err := &TransportError{URL: "http://backend", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("TransportError should unwrap to the underlying error")
	}
}

func TestAuthorizationError_Error(t *testing.T) {
	err := &AuthorizationError{Message: "token expired"}

	expected := "authorization failed: token expired"
	if err.Error() != expected {
		t.Errorf("AuthorizationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestAuthorizationError_EmptyMessage(t *testing.T) {
	err := &AuthorizationError{}

	if err.Error() != "authorization failed" {
		t.Errorf("AuthorizationError.Error() = %v, want %v", err.Error(), "authorization failed")
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "email",
		Message: "invalid email format",
	}

	expected := "validation error on field 'email': invalid email format"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestConflictError_Error(t *testing.T) {
	err := &ConflictError{
		Resource: "article",
		Message:  "already exists",
	}

	expected := "conflict on article: already exists"
	if err.Error() != expected {
		t.Errorf("ConflictError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestServerError_Error(t *testing.T) {
	err := &ServerError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "backend",
	}

	expected := "server error from backend: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ServerError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsTransport_True(t *testing.T) {
	err := &TransportError{URL: "http://backend", Err: errors.New("timeout")}

	if !IsTransport(err) {
		t.Error("IsTransport should return true for TransportError")
	}
}

func TestIsTransport_False(t *testing.T) {
	err := errors.New("some other error")

	if IsTransport(err) {
		t.Error("IsTransport should return false for non-TransportError")
	}
}

func TestIsAuthorization_WrappedError(t *testing.T) {
	authErr := &AuthorizationError{Message: "invalid token"}
	wrapped := fmt.Errorf("revalidation failed: %w", authErr)

	if !IsAuthorization(wrapped) {
		t.Error("IsAuthorization should return true for wrapped AuthorizationError")
	}
}

func TestIsValidation_True(t *testing.T) {
	err := &ValidationError{Field: "password", Message: "too weak"}

	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestIsValidation_False(t *testing.T) {
	err := &ServerError{StatusCode: 500, Message: "boom", API: "backend"}

	if IsValidation(err) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsConflict_True(t *testing.T) {
	err := &ConflictError{Resource: "article", Message: "exists"}

	if !IsConflict(err) {
		t.Error("IsConflict should return true for ConflictError")
	}
}

func TestIsServer_WrappedError(t *testing.T) {
	srvErr := &ServerError{StatusCode: 500, Message: "internal", API: "backend"}
	wrapped := WrapError(srvErr, "failed to load articles")

	if !IsServer(wrapped) {
		t.Error("IsServer should return true for wrapped ServerError")
	}
}

func TestWrapError_NilError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError should return nil for nil error")
	}
}

func TestWrapError_AddsContext(t *testing.T) {
	inner := errors.New("boom")
	wrapped := WrapError(inner, "loading articles")

	expected := "loading articles: boom"
	if wrapped.Error() != expected {
		t.Errorf("WrapError() = %v, want %v", wrapped.Error(), expected)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("WrapError should preserve the error chain")
	}
}
