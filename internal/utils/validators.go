package utils

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidation)
	}
	return nil
}

// ValidateUsername checks username length and character set.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}
	if len(username) < 3 {
		return fmt.Errorf("%w: username must be at least 3 characters long", apperrors.ErrValidation)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: username can only contain letters, numbers, and underscores", apperrors.ErrValidation)
	}
	return nil
}

// ValidatePassword enforces the password strength policy: a configurable
// minimum length plus at least one uppercase letter, one lowercase letter
// and one digit.
func ValidatePassword(password string, minLength int) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", apperrors.ErrValidation)
	}
	if len(password) < minLength {
		return fmt.Errorf("%w: password must be at least %d characters long", apperrors.ErrValidation, minLength)
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("%w: password must contain at least one uppercase letter", apperrors.ErrValidation)
	}
	if !hasLower {
		return fmt.Errorf("%w: password must contain at least one lowercase letter", apperrors.ErrValidation)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one number", apperrors.ErrValidation)
	}
	return nil
}
