// ABOUTME: Session store holding the current identity resolved from the stored credential
// ABOUTME: Revalidation clears both session and credential when the backend rejects the token

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"openwiki-client/core/domain"
	apperrors "openwiki-client/core/errors"
	"openwiki-client/core/interfaces"
	"openwiki-client/core/rest"
)

// Service owns the in-memory session state. The identity is present only
// when a "who am I" call succeeded for the currently stored credential.
// Concurrent revalidations are tolerated: the last response to resolve wins.
type Service struct {
	deps       interfaces.Dependencies
	backendURL string

	mu      sync.Mutex
	current domain.Session
}

// NewService creates a new session service instance
func NewService(deps interfaces.Dependencies, backendURL string) *Service {
	return &Service{
		deps:       deps,
		backendURL: backendURL,
	}
}

// Current returns the session state synchronously.
func (s *Service) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Replace overwrites the in-memory identity. It does not touch the
// stored credential.
func (s *Service) Replace(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domain.Session{User: user}
}

// Revalidate refreshes the identity from the backend. With no stored
// credential the session is emptied without any network call. With a
// credential, any failure of the who-am-I call erases the stored
// credential and empties the session: a rejected token must never
// remain stored.
func (s *Service) Revalidate(ctx context.Context) error {
	_, err := s.deps.Credentials.Get(ctx)
	if err != nil {
		s.Replace(nil)
		if errors.Is(err, interfaces.ErrNoCredential) {
			return nil
		}
		return apperrors.WrapError(err, "failed to read stored credential")
	}

	user, err := s.fetchIdentity(ctx)
	if err != nil {
		s.clearAll(ctx)
		return err
	}

	s.Replace(user)
	s.deps.Logger.Debug("session revalidated", map[string]interface{}{
		"user": user.Username,
	})
	return nil
}

// fetchIdentity resolves the profile for the stored credential.
func (s *Service) fetchIdentity(ctx context.Context) (*domain.User, error) {
	url := fmt.Sprintf("%s/api/users/me", s.backendURL)

	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	if !rest.Success(resp) {
		return nil, rest.FailureFromResponse("users", resp)
	}

	var user domain.User
	if err := rest.DecodeJSON(resp, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, &apperrors.AuthorizationError{Message: "who-am-I returned no identity"}
	}

	return &user, nil
}

// clearAll empties the session and erases the stored credential.
func (s *Service) clearAll(ctx context.Context) {
	s.Replace(nil)
	if err := s.deps.Credentials.Clear(ctx); err != nil {
		s.deps.Logger.Warn("failed to clear stored credential", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
