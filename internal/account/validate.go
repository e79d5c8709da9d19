// Package account is the client for the hosted auth collaborator: sign-in,
// sign-up, sign-out and session lookup. Credential validation happens here,
// before any network call.
package account

import (
	"errors"
	"strings"
)

// Validation errors surfaced to the user before any request is made.
var (
	ErrInvalidEmail    = errors.New("account: email address is not valid")
	ErrPasswordTooWeak = errors.New("account: password must be at least 8 characters")
	ErrInvalidUsername = errors.New("account: username must be 3-16 letters, digits or underscores")
)

const (
	minPasswordLength = 8
	minUsernameLength = 3
	maxUsernameLength = 16
)

// ValidateEmail checks the rough shape of an email address. The hosted
// provider does the authoritative check; this only catches obvious typos
// without a round trip.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooWeak
	}
	return nil
}

// ValidateUsername enforces length and character constraints.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return ErrInvalidUsername
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return ErrInvalidUsername
		}
	}
	return nil
}
