package service

import (
	"github.com/notetaker/notetaker/internal/config"
	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/internal/store"
	"github.com/notetaker/notetaker/internal/utils"
)

// Services bundles every service the client needs.
type Services struct {
	Auth  *AuthService
	Notes *NoteService
}

// NewServices builds the full service layer over the given storages.
// The auth and note services share one session state object, so a login
// through either path is immediately visible to both.
func NewServices(storages *store.Storages, cfg config.App, log *logger.Logger) *Services {
	credentials := NewCredentialCodec()
	tokenCodec := NewTokenCodec(cfg.TokenIssuer, cfg.TokenDuration)
	roster := NewDemoProviderRoster()
	ids := utils.NewUUIDGenerator()
	session := newActiveSession()

	return &Services{
		Auth:  NewAuthService(storages, credentials, tokenCodec, roster, ids, session, log),
		Notes: NewNoteService(storages.Notes, ids, session, log),
	}
}
