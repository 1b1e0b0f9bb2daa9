package store

import (
	"context"
	"fmt"

	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/models"
)

type categoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *categoryRepository) AddCategory(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	// INSERT OR IGNORE: adding an existing name is a no-op, uniqueness is
	// by name.
	if _, err := r.DB.ExecContext(ctx, insertCategory, name); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.AddCategory").
			Str("category", name).
			Msg("failed to insert category")
		return fmt.Errorf("failed to insert category (name=%s): %w", name, err)
	}

	return nil
}

func (r *categoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllCategories)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.GetAllCategories").
			Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)

	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.Name); err != nil {
			log.Err(err).
				Str("func", "categoryRepository.GetAllCategories").
				Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteCategory, name); err != nil {
		log.Err(err).
			Str("func", "categoryRepository.DeleteCategory").
			Str("category", name).
			Msg("failed to delete category")
		return fmt.Errorf("failed to delete category (name=%s): %w", name, err)
	}

	return nil
}

func (r *categoryRepository) ReplaceAllCategories(ctx context.Context, categories []models.Category) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.ReplaceAllCategories").
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCategories); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}

	for _, c := range categories {
		if _, err = tx.ExecContext(ctx, insertCategory, c.Name); err != nil {
			return fmt.Errorf("failed to insert replacement category (name=%s): %w", c.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category replacement: %w", err)
	}

	return nil
}
