package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set embedded in an issued session token.
//
// It extends [jwt.RegisteredClaims] (sub, exp, iat) with the display
// attributes of the account so that callers can render identity
// information without an extra account lookup.
//
// The token carrying these claims is deliberately NOT signed: it uses
// the JWT "none" algorithm and is forgeable by construction. It must
// never be treated as a trust boundary.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the email of the account the token was issued for.
	Email string `json:"email"`

	// Name is the display name of the account the token was issued for.
	Name string `json:"name"`
}

// GetAccountID extracts the account identifier from the "sub" (subject)
// claim. Returns an error if the subject claim is missing or empty.
func (c *SessionClaims) GetAccountID() (string, error) {
	accountID, err := c.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting AccountID from token: %w", err)
	}
	if accountID == "" {
		return "", fmt.Errorf("empty subject in session token")
	}

	return accountID, nil
}
