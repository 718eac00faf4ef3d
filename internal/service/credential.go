package service

import "encoding/base64"

// credentialSalt is appended to every password before encoding. The
// value is fixed so that existing stored credentials keep matching.
const credentialSalt = "noteTaker_salt_2025"

// saltedCredentialCodec is the deterministic, reversible credential
// transformation: base64 over the salted password. Equal passwords
// always produce equal credentials, which is what Matches relies on.
//
// This is NOT a password hash and offers no protection against anyone
// who can read the stored snapshot. Real key derivation is out of scope
// for the local demo data set.
type saltedCredentialCodec struct{}

// NewCredentialCodec returns the codec used for password-based accounts.
func NewCredentialCodec() CredentialCodec {
	return saltedCredentialCodec{}
}

func (saltedCredentialCodec) Encode(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password + credentialSalt))
}

func (c saltedCredentialCodec) Matches(password string, credential string) bool {
	return c.Encode(password) == credential
}
