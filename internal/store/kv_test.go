package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notetaker/notetaker/internal/logger"
)

func newTestKeyValue(t *testing.T) (KeyValue, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	kv := NewKeyValue(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
	return kv, mock, db
}

func TestKeyValue_Get_Success(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("notetaker_accounts").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[]`))

	value, err := kv.Get(context.Background(), "notetaker_accounts")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}

func TestKeyValue_Get_KeyNotFound(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := kv.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKeyValue_Get_QueryError(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("k").
		WillReturnError(errors.New("disk I/O error"))

	_, err := kv.Get(context.Background(), "k")
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestKeyValue_Put_Upserts(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")).
		WithArgs("notetaker_token", "tok").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, kv.Put(context.Background(), "notetaker_token", "tok"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValue_Put_ExecError(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv")).
		WillReturnError(errors.New("database is locked"))

	err := kv.Put(context.Background(), "k", "v")
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestKeyValue_Delete_Success(t *testing.T) {
	kv, mock, db := newTestKeyValue(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv WHERE key = ?")).
		WithArgs("notetaker_token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, kv.Delete(context.Background(), "notetaker_token"))
	require.NoError(t, mock.ExpectationsWereMet())
}
