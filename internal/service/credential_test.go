package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialCodec_EncodeIsDeterministic(t *testing.T) {
	codec := NewCredentialCodec()

	first := codec.Encode("Demo123!")
	second := codec.Encode("Demo123!")

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestCredentialCodec_MatchesRoundTrip(t *testing.T) {
	codec := NewCredentialCodec()

	credential := codec.Encode("Sup3rSecret")

	assert.True(t, codec.Matches("Sup3rSecret", credential))
	assert.False(t, codec.Matches("Sup3rSecret2", credential))
	assert.False(t, codec.Matches("", credential))
}

func TestCredentialCodec_DistinctPasswordsDistinctCredentials(t *testing.T) {
	codec := NewCredentialCodec()

	assert.NotEqual(t, codec.Encode("PasswordA1"), codec.Encode("PasswordB1"))
}

// The encoding is documented as reversible: decoding the credential
// yields the salted plaintext.
func TestCredentialCodec_EncodingIsReversible(t *testing.T) {
	codec := NewCredentialCodec()

	decoded, err := base64.StdEncoding.DecodeString(codec.Encode("Demo123!"))

	require.NoError(t, err)
	assert.Equal(t, "Demo123!"+credentialSalt, string(decoded))
}
