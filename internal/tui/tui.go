// Package tui is the terminal interface of the client. It is a single
// bubbletea model with screen switching: the stock list is the home screen,
// everything else (detail, add flow, sync settings, import/export) is entered
// from it and returns to it on esc.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarneev/homestock/internal/service"
	"github.com/mkarneev/homestock/models"
)

// ErrUserQuit is returned when the user closed the program from the UI.
var ErrUserQuit = errors.New("пользователь вышел из программы")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo
}

func New(services *service.ClientServices, buildInfo models.BuildInfo) *TUI {
	return &TUI{services: services, buildInfo: buildInfo}
}

// Run drives the main loop until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
