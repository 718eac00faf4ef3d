package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/notetaker/notetaker/internal/logger"
)

// Storage keys for the three persisted snapshots. They mirror the
// storage layout the application has always used, so existing local
// databases keep working across upgrades.
const (
	accountsKey = "notetaker_accounts"
	notesKey    = "notetaker_notes"
	tokenKey    = "notetaker_token"
)

type sqliteKeyValue struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyValue returns the SQLite-backed key-value medium operating on
// the single kv table created by the migrations.
func NewKeyValue(db *DB, log *logger.Logger) KeyValue {
	return &sqliteKeyValue{db: db, logger: log}
}

func (s *sqliteKeyValue) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}

		s.logger.Err(err).
			Str("func", "sqliteKeyValue.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValue) Put(ctx context.Context, key string, value string) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValue.Put").
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteKeyValue) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	// deleting an absent key is a no-op, same as the rest of the medium
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValue.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
