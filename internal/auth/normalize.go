package auth

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// NormalizeEmail trims and case-folds an address so lookups are case-insensitive.
// A Caser is stateful, so each call gets its own.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// ValidateEmail accepts a bare address such as "a@b.example".
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email, "@") {
		return fmt.Errorf(ErrMsgInvalidEmail, domain.ErrInvalidInput)
	}
	return nil
}

// ValidatePassword enforces the length bounds.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength || len(password) > MaxPasswordBytes {
		return fmt.Errorf(ErrMsgPasswordLength, domain.ErrInvalidInput, MinPasswordLength, MaxPasswordBytes)
	}
	return nil
}

// ValidateUsername enforces length and charset.
func ValidateUsername(username string) error {
	n := len(username)
	if n < MinUsernameLength || n > MaxUsernameLength || !usernamePattern.MatchString(username) {
		return fmt.Errorf(ErrMsgInvalidUsername, domain.ErrInvalidInput, MinUsernameLength, MaxUsernameLength)
	}
	return nil
}
