package http

import (
	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/internal/store"
	"github.com/mkarneev/homestock/internal/validators"
)

type Handler struct {
	storages *store.Storages

	filenames validators.Validator
	logger    *logger.Logger
}

func NewHandler(storages *store.Storages, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		storages:  storages,
		filenames: validators.NewFilenameValidator(),
		logger:    logger,
	}
}
