package client

import (
	"context"
	"errors"

	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/internal/service"
	"github.com/notetaker/notetaker/internal/tui"
)

// App ties the service layer to the terminal frontend and drives the
// whole client session.
type App struct {
	services *service.Services
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}

	return &App{services: services, ui: ui, logger: log}, nil
}

// Run restores the persisted session, if any, and hands control to the
// interactive UI. A deliberate quit is a clean exit, not an error.
func (a *App) Run() error {
	ctx := context.Background()

	_, signedIn := a.services.Auth.RestoreSession(ctx)
	if signedIn {
		a.logger.Info().Str("func", "App.Run").Msg("session restored from local storage")
	}

	if err := a.ui.Run(ctx, signedIn); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}
