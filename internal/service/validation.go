package service

import (
	"regexp"
	"strings"
	"unicode"
)

// Input shape rules shared by the signup and signin flows.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	otpPattern   = regexp.MustCompile(`^\d{6}$`)
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validPassword requires at least 8 characters with at least one
// uppercase letter, one lowercase letter, and one digit.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
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

	return hasUpper && hasLower && hasDigit
}

func validDisplayName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}
