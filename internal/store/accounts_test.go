package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/models"
)

func seedAccounts() []models.Account {
	return []models.Account{
		{
			AccountID:  "demo_user_1",
			Email:      "demo@example.com",
			Name:       "Demo User",
			AuthKind:   models.AuthKindPassword,
			Credential: "seed-credential",
			CreatedAt:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestAccountStore_SeedsOnFirstRun(t *testing.T) {
	kv := newFakeKeyValue()
	repo := NewAccountStore(kv, seedAccounts(), logger.Nop())
	ctx := context.Background()

	account, err := repo.FindByEmail(ctx, "demo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "demo_user_1", account.AccountID)
	assert.Equal(t, models.AuthKindPassword, account.AuthKind)
}

func TestAccountStore_SeedsOnCorruptedSnapshot(t *testing.T) {
	kv := newFakeKeyValue()
	kv.values[accountsKey] = "{definitely not json"

	repo := NewAccountStore(kv, seedAccounts(), logger.Nop())

	account, err := repo.FindByEmail(context.Background(), "demo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", account.Name)
}

func TestAccountStore_LoadsExistingSnapshot(t *testing.T) {
	stored := []models.Account{
		{AccountID: "u1", Email: "stored@example.com", Name: "Stored", AuthKind: models.AuthKindFederated},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	kv := newFakeKeyValue()
	kv.values[accountsKey] = string(raw)

	repo := NewAccountStore(kv, seedAccounts(), logger.Nop())
	ctx := context.Background()

	// the snapshot wins over the seed
	_, err = repo.FindByEmail(ctx, "demo@example.com")
	require.ErrorIs(t, err, ErrAccountNotFound)

	account, err := repo.FindByEmail(ctx, "stored@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", account.AccountID)
}

func TestAccountStore_Add_PersistsWholeCollection(t *testing.T) {
	kv := newFakeKeyValue()
	repo := NewAccountStore(kv, seedAccounts(), logger.Nop())
	ctx := context.Background()

	newAccount := models.Account{
		AccountID: "u2",
		Email:     "alice@example.com",
		Name:      "Alice",
		AuthKind:  models.AuthKindPassword,
	}
	require.NoError(t, repo.Add(ctx, newAccount))

	var persisted []models.Account
	require.NoError(t, json.Unmarshal([]byte(kv.values[accountsKey]), &persisted))
	require.Len(t, persisted, 2)
	assert.Equal(t, "demo@example.com", persisted[0].Email)
	assert.Equal(t, "alice@example.com", persisted[1].Email)
}

func TestAccountStore_Add_DuplicateEmail(t *testing.T) {
	kv := newFakeKeyValue()
	repo := NewAccountStore(kv, seedAccounts(), logger.Nop())

	err := repo.Add(context.Background(), models.Account{
		AccountID: "u3",
		Email:     "demo@example.com",
	})
	require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestAccountStore_All_PreservesInsertionOrder(t *testing.T) {
	kv := newFakeKeyValue()
	repo := NewAccountStore(kv, seedAccounts(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, models.Account{AccountID: "u2", Email: "b@example.com"}))
	require.NoError(t, repo.Add(ctx, models.Account{AccountID: "u3", Email: "c@example.com"}))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"demo_user_1", "u2", "u3"},
		[]string{all[0].AccountID, all[1].AccountID, all[2].AccountID})
}

func TestAccountStore_FindByID(t *testing.T) {
	kv := newFakeKeyValue()
	repo := NewAccountStore(kv, seedAccounts(), logger.Nop())
	ctx := context.Background()

	account, err := repo.FindByID(ctx, "demo_user_1")
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", account.Email)

	_, err = repo.FindByID(ctx, "ghost")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountStore_WriteFailureKeepsMemoryState(t *testing.T) {
	kv := newFakeKeyValue()
	kv.failPuts = true
	repo := NewAccountStore(kv, seedAccounts(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, models.Account{AccountID: "u2", Email: "alice@example.com"}))

	// the in-memory collection stays authoritative even though the
	// snapshot write failed
	account, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u2", account.AccountID)
}
