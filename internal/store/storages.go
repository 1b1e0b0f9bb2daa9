package store

import (
	"context"
	"fmt"

	"github.com/mkarneev/homestock/internal/config"
	"github.com/mkarneev/homestock/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	Blobs BlobRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the blob repository.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Blobs: NewBlobRepository(db, logger),
	}, nil
}
