package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notetaker/notetaker/models"
)

func testAccount() models.Account {
	return models.Account{
		AccountID: "acc-1",
		Email:     "user@example.com",
		Name:      "Test User",
		AuthKind:  models.AuthKindPassword,
		CreatedAt: time.Now().UTC(),
	}
}

func TestTokenCodec_IssueVerifyRoundTrip(t *testing.T) {
	codec := NewTokenCodec("notetaker", 24*time.Hour)

	token, err := codec.Issue(testAccount())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
	assert.Equal(t, "notetaker", claims.Issuer)

	accountID, err := claims.GetAccountID()
	require.NoError(t, err)
	assert.Equal(t, "acc-1", accountID)
}

func TestTokenCodec_ExpiryStampedRelativeToIssue(t *testing.T) {
	codec := NewTokenCodec("notetaker", 24*time.Hour)

	token, err := codec.Issue(testAccount())
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}

func TestTokenCodec_ExpiredTokenRejected(t *testing.T) {
	expiredCodec := NewTokenCodec("notetaker", -time.Minute)

	token, err := expiredCodec.Issue(testAccount())
	require.NoError(t, err)

	_, err = NewTokenCodec("notetaker", 24*time.Hour).Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenCodec_MalformedTokenRejected(t *testing.T) {
	codec := NewTokenCodec("notetaker", 24*time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		_, err := codec.Verify(token)
		assert.True(t, errors.Is(err, ErrInvalidToken), "token %q must be rejected", token)
	}
}

func TestTokenCodec_TamperedTokenStillParses(t *testing.T) {
	codec := NewTokenCodec("notetaker", 24*time.Hour)

	token, err := codec.Issue(testAccount())
	require.NoError(t, err)

	// No signature protects the payload: a structurally valid token with
	// edited claims verifies fine. This documents the trust model rather
	// than defending it.
	reissued, err := codec.Issue(models.Account{AccountID: "forged", Email: "forged@example.com"})
	require.NoError(t, err)
	require.NotEqual(t, token, reissued)

	claims, err := codec.Verify(reissued)
	require.NoError(t, err)
	assert.Equal(t, "forged", claims.Subject)
}
