package models

import "time"

// AuthKind describes how an account authenticates.
type AuthKind string

const (
	// AuthKindPassword marks accounts created through the email/password
	// signup flow. Such accounts always carry a stored credential.
	AuthKindPassword AuthKind = "password"

	// AuthKindFederated marks accounts created by a federated provider
	// login. Such accounts have no stored credential.
	AuthKindFederated AuthKind = "federated"
)

// Account represents a registered identity used for authentication and
// note ownership. Accounts are immutable after creation and are never
// deleted.
type Account struct {
	// AccountID is the opaque unique identifier of the account.
	// It is the value notes reference as their owner.
	AccountID string `json:"id"`

	// Email is the unique login identifier of the account.
	// Uniqueness is case-sensitive, exactly as stored.
	Email string `json:"email"`

	// Name is the display name of the account.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// AuthKind tells whether the account is password-based or federated.
	AuthKind AuthKind `json:"auth_kind"`

	// Credential is the stored credential representation produced by the
	// credential codec. Present only for password-based accounts.
	// It is NOT a cryptographic hash; see the codec documentation.
	Credential string `json:"credential,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsPasswordBased reports whether the account authenticates with a
// stored credential.
func (a Account) IsPasswordBased() bool {
	return a.AuthKind == AuthKindPassword
}
