package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "issuer-from-env")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/notes.db")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "issuer-from-env", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "/tmp/notes.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.App.TokenDuration)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
}
