package store

import (
	"context"
	"fmt"

	"github.com/mkarneev/homestock/internal/config"
	"github.com/mkarneev/homestock/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Items is the SQLite-backed repository for stock items and history.
	Items ItemRepository

	// Categories stores the category list.
	Categories CategoryRepository

	// Settings is the key-value area for sync configuration and device
	// identity.
	Settings SettingsRepository

	// Snapshot applies whole snapshots across items and categories
	// atomically.
	Snapshot SnapshotRepository
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Bootstraps the schema and seeds default categories on first run.
//  3. Wires the item, category and settings repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		Items:      NewItemRepository(db, logger),
		Categories: NewCategoryRepository(db, logger),
		Settings:   NewSettingsRepository(db, logger),
		Snapshot:   NewSnapshotRepository(db, logger),
	}, nil
}
