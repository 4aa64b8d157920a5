// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
)

// ErrNoCredential is returned by CredentialStore.Get when no credential
// is currently stored.
var ErrNoCredential = errors.New("credentials: no credential stored")

// CredentialStore owns the single persisted bearer credential. Exactly one
// credential may be active at a time: Set overwrites unconditionally (last
// writer wins). The store holds no expiry metadata; an expired credential
// is only discovered by a rejected request.
//
// Implementations can be durable (SQLite) or in-memory for tests.
type CredentialStore interface {
	// Set stores the bearer token, replacing any previous one.
	Set(ctx context.Context, token string) error

	// Get returns the stored token, or ErrNoCredential if none is stored.
	Get(ctx context.Context) (string, error)

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
