package store

import (
	"context"

	"github.com/notetaker/notetaker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValue is the local persistence medium. Each key holds one full
// snapshot value that is overwritten wholesale on change.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// AccountRepository is the collection of registered accounts, keyed by
// account id and unique by email.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	FindByID(ctx context.Context, accountID string) (models.Account, error)
	Add(ctx context.Context, account models.Account) error
	All(ctx context.Context) ([]models.Account, error)
}

// NoteRepository is the collection of notes across all owners.
type NoteRepository interface {
	AllForOwner(ctx context.Context, ownerID string) ([]models.Note, error)
	Add(ctx context.Context, note models.Note) error
	Remove(ctx context.Context, noteID string) error
}

// SessionTokenRepository persists the single encoded session token that
// survives process restarts.
type SessionTokenRepository interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
