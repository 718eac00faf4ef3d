package store

import (
	"context"
	"errors"

	"github.com/notetaker/notetaker/internal/logger"
)

// sessionTokenStore persists the single encoded session token under its
// own key in the key-value medium. Only the encoded string is stored,
// never decoded claims.
type sessionTokenStore struct {
	kv     KeyValue
	logger *logger.Logger
}

// NewSessionTokenStore builds the session token repository on top of the
// key-value medium.
func NewSessionTokenStore(kv KeyValue, log *logger.Logger) SessionTokenRepository {
	return &sessionTokenStore{kv: kv, logger: log}
}

func (s *sessionTokenStore) Save(ctx context.Context, token string) error {
	return s.kv.Put(ctx, tokenKey, token)
}

func (s *sessionTokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", ErrSessionTokenNotFound
		}
		return "", err
	}

	return token, nil
}

// Clear removes the stored token. Clearing when no token is stored is a
// no-op.
func (s *sessionTokenStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, tokenKey)
}
