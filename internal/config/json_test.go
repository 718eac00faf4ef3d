package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_issuer": "json-issuer",
			"token_duration": "6h"
		},
		"storage": {
			"db": {"dsn": "json.db"}
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 6*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"app": {"token_duration": 3600000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSON(t, "{not json")

	_, err := parseJSON(path)
	require.Error(t, err)
}
