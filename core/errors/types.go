// ABOUTME: Custom error types for the core client logic
// ABOUTME: Classifies remote failures so callers can react without string matching

package errors

import (
	"errors"
	"fmt"
)

// TransportError represents a failure with no HTTP response (network, DNS).
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure calling %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As chains
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthorizationError represents a rejected or missing credential.
type AuthorizationError struct {
	Message string
}

// Error implements the error interface
func (e *AuthorizationError) Error() string {
	if e.Message == "" {
		return "authorization failed"
	}
	return fmt.Sprintf("authorization failed: %s", e.Message)
}

// ValidationError represents malformed input caught before any network call.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ConflictError represents a business conflict reported by the backend,
// such as an article that already exists for this user.
type ConflictError struct {
	Resource string
	Message  string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %s", e.Resource, e.Message)
}

// ServerError represents a structured error payload from a remote API.
type ServerError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authErr *AuthorizationError
	return errors.As(err, &authErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsServer checks if an error is a ServerError
func IsServer(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
