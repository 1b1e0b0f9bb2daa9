package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkarneev/homestock/internal/config"
	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/internal/service"
	"github.com/mkarneev/homestock/internal/tui"
	"github.com/mkarneev/homestock/internal/workers"
)

// App runs the interactive client: the status poller in the background and
// the terminal UI in the foreground.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workersCfg,
		logger:   logger,
	}, nil
}

// Run blocks until the UI exits. Background workers are stopped before
// returning so the poll goroutine never outlives the process teardown.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	background := workers.NewWorkers(
		workers.NewStatusPollWorker(ctx, a.services.StatusPoll, a.workers.StatusPollInterval),
	)
	background.Run()
	defer background.Stop()

	a.logger.Info().Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("client closed by user")
			return nil
		}
		return fmt.Errorf("ui error: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
