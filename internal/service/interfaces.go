package service

import "github.com/notetaker/notetaker/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialCodec transforms a plaintext password into its storable
// credential form and checks passwords against stored credentials.
//
// The transformation is deterministic and reversible; it exists to keep
// plaintext passwords out of the stored snapshots, not to resist offline
// attack. This is a documented limitation, not a security boundary.
type CredentialCodec interface {
	Encode(password string) string
	Matches(password string, credential string) bool
}

// TokenCodec issues and verifies the self-contained session tokens that
// carry identity claims and an absolute expiry.
//
// The codec boundary isolates the (deliberately unsigned) token format:
// a future implementation can swap in real signing without touching any
// caller.
type TokenCodec interface {
	Issue(account models.Account) (string, error)
	Verify(token string) (models.SessionClaims, error)
}

// ProviderRoster resolves federated provider account ids to profile
// data. The demo roster is a fixed in-memory list; a real identity
// provider integration can be substituted behind this interface.
type ProviderRoster interface {
	Resolve(providerAccountID string) (models.ProviderProfile, error)
	Profiles() []models.ProviderProfile
}

// IDGenerator produces opaque unique identifiers for new accounts and
// notes.
type IDGenerator interface {
	Generate() string
}
