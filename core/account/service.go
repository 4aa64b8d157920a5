// ABOUTME: Account service covering registration, login, profile, password, and deletion
// ABOUTME: Successful mutations update the session store and the credential store in place

package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"openwiki-client/core/domain"
	apperrors "openwiki-client/core/errors"
	"openwiki-client/core/interfaces"
	"openwiki-client/core/rest"
	"openwiki-client/core/session"
)

// Service handles account operations against the backend
type Service struct {
	deps       interfaces.Dependencies
	backendURL string
	sessions   *session.Service
}

// NewService creates a new account service instance
func NewService(deps interfaces.Dependencies, backendURL string, sessions *session.Service) *Service {
	return &Service{
		deps:       deps,
		backendURL: backendURL,
		sessions:   sessions,
	}
}

// Register creates a new account. Validation failures are returned before
// any network call is made.
func (s *Service) Register(ctx context.Context, username, email, password, confirm string) error {
	if username == "" {
		return &apperrors.ValidationError{Field: "username", Message: "username cannot be empty"}
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	if err := validateConfirmation(password, confirm); err != nil {
		return err
	}

	payload, _ := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})

	resp, err := s.deps.HTTPClient.Post(ctx, s.backendURL+"/api/users/register", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if !rest.Success(resp) {
		return rest.FailureFromResponse("users", resp)
	}
	resp.Body().Close()

	s.deps.Logger.Info("account registered", map[string]interface{}{
		"username": username,
	})
	return nil
}

// loginResponse matches the backend login payload
type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login obtains a bearer token, stores it, and replaces the session
// identity with the returned user.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &apperrors.ValidationError{Field: "password", Message: "password cannot be empty"}
	}

	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	resp, err := s.deps.HTTPClient.Post(ctx, s.backendURL+"/api/users/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if !rest.Success(resp) {
		return nil, rest.FailureFromResponse("users", resp)
	}

	var decoded loginResponse
	if err := rest.DecodeJSON(resp, &decoded); err != nil {
		return nil, err
	}
	if decoded.Token == "" || decoded.User == nil {
		return nil, &apperrors.ServerError{StatusCode: resp.StatusCode(), Message: "login response missing token or user", API: "users"}
	}

	if err := s.deps.Credentials.Set(ctx, decoded.Token); err != nil {
		return nil, apperrors.WrapError(err, "failed to store credential")
	}
	s.sessions.Replace(decoded.User)

	s.deps.Logger.Info("logged in", map[string]interface{}{
		"username": decoded.User.Username,
	})
	return decoded.User, nil
}

// Logout clears the stored credential and empties the session. No backend
// call is involved.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.deps.Credentials.Clear(ctx); err != nil {
		return apperrors.WrapError(err, "failed to clear credential")
	}
	s.sessions.Replace(nil)
	return nil
}

// updateResponse matches the backend profile update payload
type updateResponse struct {
	User *domain.User `json:"user"`
}

// UpdateProfile changes username and email for the current account and
// replaces the session identity with the server's representation.
func (s *Service) UpdateProfile(ctx context.Context, username, email string) (*domain.User, error) {
	current := s.sessions.Current().User
	if current == nil {
		return nil, &apperrors.AuthorizationError{Message: "no active session"}
	}
	if username == "" {
		return nil, &apperrors.ValidationError{Field: "username", Message: "username cannot be empty"}
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
	})

	url := fmt.Sprintf("%s/api/users/%s", s.backendURL, current.ID)
	resp, err := s.deps.HTTPClient.Put(ctx, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if !rest.Success(resp) {
		return nil, rest.FailureFromResponse("users", resp)
	}

	var decoded updateResponse
	if err := rest.DecodeJSON(resp, &decoded); err != nil {
		return nil, err
	}
	if decoded.User == nil {
		return nil, &apperrors.ServerError{StatusCode: resp.StatusCode(), Message: "update response missing user", API: "users"}
	}

	s.sessions.Replace(decoded.User)
	return decoded.User, nil
}

// ChangePassword rotates the password given the old one. Strength and
// confirmation are validated locally first.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	if s.sessions.Current().User == nil {
		return &apperrors.AuthorizationError{Message: "no active session"}
	}
	if oldPassword == "" {
		return &apperrors.ValidationError{Field: "oldPassword", Message: "old password cannot be empty"}
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if err := validateConfirmation(newPassword, confirm); err != nil {
		return err
	}

	payload, _ := json.Marshal(map[string]string{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	})

	resp, err := s.deps.HTTPClient.Post(ctx, s.backendURL+"/api/users/change-password", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if !rest.Success(resp) {
		return rest.FailureFromResponse("users", resp)
	}
	resp.Body().Close()

	return nil
}

// DeleteAccount removes the account. On success the stored credential is
// erased and the session emptied, matching the backend state.
func (s *Service) DeleteAccount(ctx context.Context) error {
	current := s.sessions.Current().User
	if current == nil {
		return &apperrors.AuthorizationError{Message: "no active session"}
	}

	url := fmt.Sprintf("%s/api/users/%s", s.backendURL, current.ID)
	resp, err := s.deps.HTTPClient.Delete(ctx, url)
	if err != nil {
		return err
	}
	if !rest.Success(resp) {
		return rest.FailureFromResponse("users", resp)
	}
	resp.Body().Close()

	if err := s.deps.Credentials.Clear(ctx); err != nil {
		s.deps.Logger.Warn("failed to clear credential after account deletion", map[string]interface{}{
			"error": err.Error(),
		})
	}
	s.sessions.Replace(nil)

	s.deps.Logger.Info("account deleted", map[string]interface{}{
		"username": current.Username,
	})
	return nil
}
