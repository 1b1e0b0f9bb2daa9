// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package store

const (
	upsertItem = `
		INSERT INTO items (
			id,
			name,
			stock,
			category,
			last_ordered
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT(id) DO UPDATE SET
			name         = excluded.name,
			stock        = excluded.stock,
			category     = excluded.category,
			last_ordered = excluded.last_ordered;`

	getSingleItem = `
		SELECT
			id,
			name,
			stock,
			category,
			last_ordered
		FROM items
		WHERE id = $1;`

	getAllItems = `
		SELECT
			id,
			name,
			stock,
			category,
			last_ordered
		FROM items
		ORDER BY name COLLATE NOCASE;`

	searchItems = `
		SELECT
			id,
			name,
			stock,
			category,
			last_ordered
		FROM items
		WHERE LOWER(name) LIKE $1 OR LOWER(category) LIKE $1
		ORDER BY name COLLATE NOCASE;`

	deleteItem = `
		DELETE FROM items
		WHERE id = $1;`

	deleteAllItems = `DELETE FROM items;`

	deleteItemHistory = `
		DELETE FROM item_history
		WHERE item_id = $1;`

	insertHistoryEntry = `
		INSERT INTO item_history (
			item_id,
			timestamp,
			change,
			previous_stock,
			new_stock,
			action
		) VALUES ($1, $2, $3, $4, $5, $6);`

	getItemHistory = `
		SELECT
			timestamp,
			change,
			previous_stock,
			new_stock,
			action
		FROM item_history
		WHERE item_id = $1
		ORDER BY seq;`

	insertCategory = `
		INSERT OR IGNORE INTO categories (name) VALUES ($1);`

	getAllCategories = `
		SELECT name FROM categories ORDER BY name COLLATE NOCASE;`

	deleteCategory = `
		DELETE FROM categories WHERE name = $1;`

	deleteAllCategories = `DELETE FROM categories;`

	getSetting = `
		SELECT value FROM settings WHERE key = $1;`

	upsertSetting = `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	deleteSetting = `
		DELETE FROM settings WHERE key = $1;`
)
