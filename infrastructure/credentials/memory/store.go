// ABOUTME: In-memory credential store built on patrickmn/go-cache
// ABOUTME: Holds the bearer token for the process lifetime only, used by tests and ephemeral runs

package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"openwiki-client/core/interfaces"
)

const credentialKey = "token"

// Store implements the CredentialStore interface using an in-memory cache.
// Nothing survives the process; a restart always starts unauthenticated.
type Store struct {
	cache *gocache.Cache
}

// NewStore creates a new in-memory credential store
func NewStore() *Store {
	return &Store{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Set stores the bearer token, replacing any previous one
func (s *Store) Set(ctx context.Context, token string) error {
	s.cache.Set(credentialKey, token, gocache.NoExpiration)
	return nil
}

// Get returns the stored token, or ErrNoCredential if none is stored
func (s *Store) Get(ctx context.Context) (string, error) {
	value, found := s.cache.Get(credentialKey)
	if !found {
		return "", interfaces.ErrNoCredential
	}

	token, ok := value.(string)
	if !ok || token == "" {
		return "", interfaces.ErrNoCredential
	}

	return token, nil
}

// Clear removes the stored token
func (s *Store) Clear(ctx context.Context) error {
	s.cache.Delete(credentialKey)
	return nil
}
