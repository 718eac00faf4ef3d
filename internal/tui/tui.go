package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notetaker/notetaker/internal/logger"
	"github.com/notetaker/notetaker/internal/service"
	"github.com/notetaker/notetaker/models"
)

// ErrUserQuit signals that the user closed the program deliberately.
var ErrUserQuit = errors.New("user quit")

// TUI owns the terminal frontend of the client.
type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// Run drives the whole interactive session. signedIn selects the start
// screen: dashboard when a stored session was restored, the welcome
// menu otherwise.
func (t *TUI) Run(ctx context.Context, signedIn bool) error {
	model := newAppModel(ctx, t.services, t.buildInfo, signedIn)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
