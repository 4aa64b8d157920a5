// ABOUTME: User and session domain models for the authenticated client
// ABOUTME: A session holds the resolved identity or nothing at all

package domain

// User represents the authenticated account as returned by the backend.
type User struct {
	// ID is the backend identifier for the account
	ID string `json:"id"`

	// Username is the display name chosen at registration
	Username string `json:"username"`

	// Email is the login email address
	Email string `json:"email"`
}

// Session is the in-memory authentication state. User is nil when no
// identity has been resolved for the stored credential.
type Session struct {
	User *User
}

// Authenticated reports whether an identity is present.
func (s Session) Authenticated() bool {
	return s.User != nil
}
