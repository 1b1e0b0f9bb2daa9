package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/models"
)

type itemRepository struct {
	*DB
	logger *logger.Logger
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *itemRepository) SaveItem(ctx context.Context, item models.StockItem) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.SaveItem").
			Str("item_id", item.ID).
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = saveItemTx(ctx, tx, item); err != nil {
		log.Err(err).
			Str("func", "itemRepository.SaveItem").
			Str("item_id", item.ID).
			Msg("failed to save item")
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit item save (id=%s): %w", item.ID, err)
	}

	return nil
}

// saveItemTx upserts the item row and rewrites its history inside the given
// transaction. History replacement keeps the per-item wholesale-replace
// semantics of import.
func saveItemTx(ctx context.Context, tx *sql.Tx, item models.StockItem) error {
	if _, err := tx.ExecContext(ctx, upsertItem,
		item.ID,
		item.Name,
		item.Stock,
		item.Category,
		item.LastOrdered,
	); err != nil {
		return fmt.Errorf("failed to upsert item (id=%s): %w", item.ID, err)
	}

	if _, err := tx.ExecContext(ctx, deleteItemHistory, item.ID); err != nil {
		return fmt.Errorf("failed to clear item history (id=%s): %w", item.ID, err)
	}

	for _, entry := range item.History {
		if _, err := tx.ExecContext(ctx, insertHistoryEntry,
			item.ID,
			entry.Timestamp,
			entry.Change,
			entry.PreviousStock,
			entry.NewStock,
			entry.Action,
		); err != nil {
			return fmt.Errorf("failed to insert history entry (id=%s): %w", item.ID, err)
		}
	}

	return nil
}

func (r *itemRepository) GetItem(ctx context.Context, id string) (models.StockItem, error) {
	log := logger.FromContext(ctx)

	var item models.StockItem
	row := r.DB.QueryRowContext(ctx, getSingleItem, id)

	err := row.Scan(&item.ID, &item.Name, &item.Stock, &item.Category, &item.LastOrdered)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockItem{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetItem").
			Str("item_id", id).
			Msg("failed to scan item row")
		return models.StockItem{}, fmt.Errorf("failed to scan item row: %w", err)
	}

	if item.History, err = r.loadHistory(ctx, id); err != nil {
		return models.StockItem{}, err
	}

	return item, nil
}

func (r *itemRepository) GetAllItems(ctx context.Context) ([]models.StockItem, error) {
	return r.queryItems(ctx, getAllItems)
}

func (r *itemRepository) SearchItems(ctx context.Context, query string) ([]models.StockItem, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return r.queryItems(ctx, searchItems, pattern)
}

func (r *itemRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.StockItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.queryItems").
			Msg("failed to execute item query")
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := make([]models.StockItem, 0)

	for rows.Next() {
		var item models.StockItem

		if err = rows.Scan(&item.ID, &item.Name, &item.Stock, &item.Category, &item.LastOrdered); err != nil {
			log.Err(err).
				Str("func", "itemRepository.queryItems").
				Msg("failed to scan item row")
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "itemRepository.queryItems").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	for i := range items {
		if items[i].History, err = r.loadHistory(ctx, items[i].ID); err != nil {
			return nil, err
		}
	}

	return items, nil
}

func (r *itemRepository) loadHistory(ctx context.Context, itemID string) ([]models.StockHistory, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getItemHistory, itemID)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.loadHistory").
			Str("item_id", itemID).
			Msg("failed to query item history")
		return nil, fmt.Errorf("failed to query item history: %w", err)
	}
	defer rows.Close()

	history := make([]models.StockHistory, 0)

	for rows.Next() {
		var entry models.StockHistory

		if err = rows.Scan(&entry.Timestamp, &entry.Change, &entry.PreviousStock, &entry.NewStock, &entry.Action); err != nil {
			log.Err(err).
				Str("func", "itemRepository.loadHistory").
				Str("item_id", itemID).
				Msg("failed to scan history row")
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return history, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	// History rows go with the item via ON DELETE CASCADE. Absent ids are
	// a no-op by design: delete is idempotent.
	if _, err := r.DB.ExecContext(ctx, deleteItem, id); err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteItem").
			Str("item_id", id).
			Msg("failed to execute delete for item")
		return fmt.Errorf("failed to delete item (id=%s): %w", id, err)
	}

	return nil
}

func (r *itemRepository) ReplaceAllItems(ctx context.Context, items []models.StockItem) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ReplaceAllItems").
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
				Str("func", "itemRepository.ReplaceAllItems").
				Str("item_id", item.ID).
				Msg("failed to insert replacement item")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit item replacement: %w", err)
	}

	return nil
}
