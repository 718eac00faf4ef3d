// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteTaker Authors

package tui

import (
	"errors"

	"github.com/notetaker/notetaker/internal/service"
)

// humanizeAuthError maps service errors to the wording shown on screen.
// Validation errors are handled field-by-field elsewhere; here they
// collapse into one line for the overlay case.
func humanizeAuthError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrNoPendingSignUp):
		return "No sign-up in progress; start over"
	case errors.Is(err, service.ErrDuplicateEmail):
		return "An account with this email already exists"
	case errors.Is(err, service.ErrUnknownProviderAccount):
		return "This Google account is not available"
	case errors.Is(err, service.ErrNoActiveSession):
		return "You are signed out"
	}

	var validation *service.ValidationError
	if errors.As(err, &validation) && len(validation.Fields) > 0 {
		return validation.Fields[0].Message
	}

	return err.Error()
}

// fieldErrors extracts the per-field messages from a validation error,
// or nil when the error is of another kind.
func fieldErrors(err error) map[string]string {
	var validation *service.ValidationError
	if !errors.As(err, &validation) {
		return nil
	}

	msgs := make(map[string]string, len(validation.Fields))
	for _, f := range validation.Fields {
		if _, seen := msgs[f.Field]; !seen {
			msgs[f.Field] = f.Message
		}
	}
	return msgs
}
