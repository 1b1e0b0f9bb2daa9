package handler

import (
	"github.com/mkarneev/homestock/internal/config"
	"github.com/mkarneev/homestock/internal/handler/http"
	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(storages *store.Storages, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(storages, logger),
	}, nil
}
