package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/models"
)

// accountStore keeps the registered accounts as one JSON snapshot in the
// key-value medium. The whole collection is rewritten on every mutation,
// so the stored state is fully consistent after each call.
//
// A missing or undecodable snapshot is treated as "collection absent"
// and replaced with the seed data: the store prefers availability over
// strict persistence.
type accountStore struct {
	kv     KeyValue
	seed   []models.Account
	logger *logger.Logger

	mu       sync.RWMutex
	loaded   bool
	accounts []models.Account
}

// NewAccountStore builds the account repository on top of the key-value
// medium. seed is the collection used when no usable snapshot exists
// (first run or corrupted state).
func NewAccountStore(kv KeyValue, seed []models.Account, log *logger.Logger) AccountRepository {
	return &accountStore{kv: kv, seed: seed, logger: log}
}

func (s *accountStore) load(ctx context.Context) {
	if s.loaded {
		return
	}

	raw, err := s.kv.Get(ctx, accountsKey)
	if err == nil {
		var accounts []models.Account
		if jsonErr := json.Unmarshal([]byte(raw), &accounts); jsonErr == nil {
			s.accounts = accounts
			s.loaded = true
			return
		}
		s.logger.Warn().
			Str("func", "accountStore.load").
			Msg("stored accounts snapshot is malformed, falling back to seed data")
	}

	s.accounts = make([]models.Account, len(s.seed))
	copy(s.accounts, s.seed)
	s.loaded = true
}

func (s *accountStore) persist(ctx context.Context) {
	raw, err := json.Marshal(s.accounts)
	if err != nil {
		s.logger.Err(err).Str("func", "accountStore.persist").Msg("failed to encode accounts snapshot")
		return
	}

	// write failures keep the in-memory state authoritative
	if err = s.kv.Put(ctx, accountsKey, string(raw)); err != nil {
		s.logger.Err(err).Str("func", "accountStore.persist").Msg("failed to persist accounts snapshot")
	}
}

func (s *accountStore) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	for _, account := range s.accounts {
		if account.Email == email {
			return account, nil
		}
	}

	return models.Account{}, ErrAccountNotFound
}

func (s *accountStore) FindByID(ctx context.Context, accountID string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	for _, account := range s.accounts {
		if account.AccountID == accountID {
			return account, nil
		}
	}

	return models.Account{}, ErrAccountNotFound
}

func (s *accountStore) Add(ctx context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return ErrEmailAlreadyRegistered
		}
	}

	s.accounts = append(s.accounts, account)
	s.persist(ctx)

	return nil
}

func (s *accountStore) All(ctx context.Context) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	accounts := make([]models.Account, len(s.accounts))
	copy(accounts, s.accounts)

	return accounts, nil
}
