// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package store

import (
	"context"

	"github.com/mkarneev/homestock/models"
)

// ItemRepository is the client-side durable store for stock items and their
// change history. All mutations are persisted immediately; there is no
// explicit commit or flush.
type ItemRepository interface {
	// SaveItem upserts the full item record including its history,
	// replacing any existing record with the same id wholesale.
	SaveItem(ctx context.Context, item models.StockItem) error

	// GetItem returns the item with the given id, history included and
	// ordered oldest-first. Returns [ErrItemNotFound] if the id is absent.
	GetItem(ctx context.Context, id string) (models.StockItem, error)

	// GetAllItems returns every item, histories included. An empty store
	// yields an empty slice, not an error.
	GetAllItems(ctx context.Context) ([]models.StockItem, error)

	// SearchItems returns items whose name or category contains query,
	// case-insensitively.
	SearchItems(ctx context.Context, query string) ([]models.StockItem, error)

	// DeleteItem removes the item and its history. Deleting an absent id is
	// a no-op.
	DeleteItem(ctx context.Context, id string) error

	// ReplaceAllItems deletes every item and inserts the given ones in a
	// single transaction.
	ReplaceAllItems(ctx context.Context, items []models.StockItem) error
}

// CategoryRepository stores category names, unique by name.
type CategoryRepository interface {
	AddCategory(ctx context.Context, name string) error
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, name string) error

	// ReplaceAllCategories deletes every category and inserts the given
	// ones in a single transaction.
	ReplaceAllCategories(ctx context.Context, categories []models.Category) error
}

// SnapshotRepository applies a remote snapshot or full backup to the local
// store as one atomic unit.
type SnapshotRepository interface {
	// ReplaceAll clears items, their histories and categories, then inserts
	// the given ones, all inside a single transaction. On failure nothing
	// is changed.
	ReplaceAll(ctx context.Context, items []models.StockItem, categories []models.Category) error
}

// SettingsRepository is a plain string key-value persistence area for sync
// configuration, device identity and similar small records.
type SettingsRepository interface {
	// GetSetting returns the value stored under key, or
	// [ErrSettingNotFound].
	GetSetting(ctx context.Context, key string) (string, error)

	// SetSetting stores value under key, overwriting any previous value.
	SetSetting(ctx context.Context, key, value string) error

	// DeleteSetting removes key. Deleting an absent key is a no-op.
	DeleteSetting(ctx context.Context, key string) error
}
