// ABOUTME: Navigation guard gating access to views that require a session
// ABOUTME: Advisory only; the backend independently rejects unauthorized calls

package session

import apperrors "openwiki-client/core/errors"

// Guard answers whether a protected view may render. It is a UX check,
// not a security boundary.
type Guard struct {
	sessions *Service
}

// NewGuard creates a guard over the given session service
func NewGuard(sessions *Service) *Guard {
	return &Guard{sessions: sessions}
}

// Require returns nil when an identity is present, and an
// AuthorizationError when the caller must be redirected to login.
func (g *Guard) Require() error {
	if g.sessions.Current().Authenticated() {
		return nil
	}
	return &apperrors.AuthorizationError{Message: "login required"}
}
