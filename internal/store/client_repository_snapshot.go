// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package store

import (
	"context"
	"fmt"

	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/models"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceAll rewrites both tables inside one transaction. A failure anywhere
// rolls everything back, so a half-applied snapshot can never be observed.
func (r *snapshotRepository) ReplaceAll(ctx context.Context, items []models.StockItem, categories []models.Category) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllItems); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	for _, item := range items {
		if err = saveItemTx(ctx, tx, item); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.ReplaceAll").
				Str("item_id", item.ID).
				Msg("failed to insert snapshot item")
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, deleteAllCategories); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	for _, c := range categories {
		if _, err = tx.ExecContext(ctx, insertCategory, c.Name); err != nil {
			return fmt.Errorf("failed to insert snapshot category (name=%s): %w", c.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot replacement: %w", err)
	}

	return nil
}
