// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteTaker Authors

package config

import (
	"time"
)

// Default values applied to any field left unset by every configuration
// source. The 24h token lifetime matches the session expiry the rest of
// the application is built around.
const (
	DefaultDSN           = "notetaker.db"
	DefaultTokenIssuer   = "notetaker"
	DefaultTokenDuration = 24 * time.Hour
)

// StructuredConfig is the top-level configuration container for the
// note-taker client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session token
	// parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence medium.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values controlling the
// session token lifecycle.
type App struct {
	// TokenIssuer is the "iss" claim embedded in every issued session
	// token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid
	// after issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the persistence medium.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs
// the key-value persistence medium.
type DB struct {
	// DSN is the SQLite file path (or ":memory:" in tests).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
