package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path for the local store
//	-c/-config json file path with configs
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var tokenIssuer string
	var tokenDuration time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
