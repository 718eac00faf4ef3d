package store

import (
	"context"
	"fmt"

	"github.com/notetaker/notetaker/internal/config"
	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/models"
)

// Storages groups all storage repositories into a single value that can
// be passed around the service layer.
type Storages struct {
	// Accounts is the snapshot-backed repository of registered accounts.
	Accounts AccountRepository

	// Notes is the snapshot-backed repository of all notes.
	Notes NoteRepository

	// SessionToken persists the encoded session token between runs.
	SessionToken SessionTokenRepository
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the key-value medium and the three snapshot stores
//     wired to the provided seed collections.
//
// Returns an error if the database connection cannot be established or
// if migration fails.
func NewStorages(cfg config.Storage, seedAccounts []models.Account, seedNotes []models.Note, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKeyValue(db, log)

	return &Storages{
		Accounts:     NewAccountStore(kv, seedAccounts, log),
		Notes:        NewNoteStore(kv, seedNotes, log),
		SessionToken: NewSessionTokenStore(kv, log),
	}, nil
}
