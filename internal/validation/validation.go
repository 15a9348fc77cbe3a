// Package validation contains input validation rules shared by handlers and services.
package validation

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"
)

const (
	maxUsernameLen = 30
	maxBioLen      = 500
	maxTitleLen    = 300
	maxBodyLen     = 10000
)

// ValidateUsername checks the handle used to register an account.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username is required")
	}
	if len(username) > maxUsernameLen {
		return errors.New("username too long (max 30 characters)")
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return errors.New("username may only contain letters, digits, '_', '-' and '.'")
		}
	}
	return nil
}

// ValidateEmail checks an optional email address. Empty is allowed.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword enforces the minimal password rule. Strength policies are
// deliberately out of scope; only emptiness is rejected.
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("password is required")
	}
	return nil
}

// ValidatePostInput checks title and body for post create/update.
func ValidatePostInput(title, body string) error {
	if title == "" || body == "" {
		return errors.New("title and body required")
	}
	if len(title) > maxTitleLen {
		return errors.New("title too long (max 300 characters)")
	}
	if len(body) > maxBodyLen {
		return errors.New("body too long (max 10000 characters)")
	}
	return nil
}

// ValidateBio checks the profile bio length.
func ValidateBio(bio string) error {
	if len(bio) > maxBioLen {
		return errors.New("bio too long (max 500 characters)")
	}
	return nil
}
