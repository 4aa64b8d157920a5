// ABOUTME: Local input validation for account operations
// ABOUTME: Validation failures never reach the network layer

package account

import (
	"regexp"
	"strings"

	apperrors "openwiki-client/core/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = "@$!%*?&"

// validateEmail checks the email shape before any call is issued.
func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &apperrors.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		}
	}
	return nil
}

// validatePassword enforces the strength rules: at least 8 characters,
// one uppercase letter, one digit, one special character.
func validatePassword(password string) error {
	if len(password) < 8 {
		return &apperrors.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		}
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	if !hasUpper || !hasDigit || !hasSpecial {
		return &apperrors.ValidationError{
			Field:   "password",
			Message: "password must contain an uppercase letter, a digit, and a special character",
		}
	}

	return nil
}

// validateConfirmation checks that the password and its confirmation match.
func validateConfirmation(password, confirm string) error {
	if password != confirm {
		return &apperrors.ValidationError{
			Field:   "confirmPassword",
			Message: "passwords do not match",
		}
	}
	return nil
}
