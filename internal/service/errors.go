package service

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the auth and note services. All of them
// are recoverable by the caller; none are fatal to the process.
var (
	// ErrInvalidCredentials is returned by SignIn for every credential
	// failure. It is deliberately undifferentiated: callers cannot tell
	// "no such account" from "wrong password".
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when a session token is malformed or
	// expired. Any structural or temporal violation yields this same
	// error.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNoPendingSignUp is returned when an OTP operation runs without
	// a signup in progress.
	ErrNoPendingSignUp = errors.New("no sign-up in progress")

	// ErrDuplicateEmail is returned when committing an account whose
	// email was registered in the meantime.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUnknownProviderAccount is returned when a federated login names
	// a provider account id missing from the roster.
	ErrUnknownProviderAccount = errors.New("unknown provider account")

	// ErrNoActiveSession is returned by note operations when nobody is
	// logged in.
	ErrNoActiveSession = errors.New("no active session")
)

// FieldError names a single violated input rule.
type FieldError struct {
	// Field is the input field the rule applies to (e.g. "email").
	Field string

	// Message is the human-readable rule description.
	Message string
}

// ValidationError aggregates every field rule violated by one operation
// so a caller can display all field errors at once instead of the first
// one only.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) hasErrors() bool {
	return len(e.Fields) > 0
}

// FieldMessage returns the message recorded for the given field, or ""
// when the field passed validation.
func (e *ValidationError) FieldMessage(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}

	return ""
}
