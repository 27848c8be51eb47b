package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// Field width limits mirror the persisted column widths.
const (
	maxNameLength        = 100
	maxEmailLength       = 255
	maxDisplayNameLength = 255
)

// ValidateName checks the unique case-sensitive account name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name must be <= %d characters", ErrInvalidInput, maxNameLength)
	}
	return nil
}

// ValidateEmail enforces length and syntactic validity. It deliberately does
// not lowercase: resolution on login is exact-match against the stored value.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("%w: email must be <= %d characters", ErrInvalidInput, maxEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
}

// ValidateDisplayName checks the optional display name.
func ValidateDisplayName(displayName string) error {
	if len(displayName) > maxDisplayNameLength {
		return fmt.Errorf("%w: display name must be <= %d characters", ErrInvalidInput, maxDisplayNameLength)
	}
	return nil
}

// ValidatePassword rejects only unusable passwords. Strength policy is a
// product decision left to callers; the engine requires presence.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

// ValidateRecoveryCode checks the fixed-width numeric shape of a submitted
// code. The value stays a string: "012345" and "12345" are distinct.
func ValidateRecoveryCode(code string) error {
	if len(code) != RecoveryCodeLength {
		return fmt.Errorf("%w: code must be exactly %d digits", ErrInvalidInput, RecoveryCodeLength)
	}
	if strings.IndexFunc(code, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return fmt.Errorf("%w: code must be numeric", ErrInvalidInput)
	}
	return nil
}
