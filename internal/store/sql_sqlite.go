package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mkarneev/homestock/internal/config"
	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/models"
)

// clientSchema bootstraps the local database. Executed on every connect;
// all statements are idempotent.
const clientSchema = `
	CREATE TABLE IF NOT EXISTS items (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		stock        INTEGER NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		last_ordered TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS item_history (
		seq            INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id        TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		timestamp      TIMESTAMP NOT NULL,
		change         INTEGER NOT NULL,
		previous_stock INTEGER NOT NULL,
		new_stock      INTEGER NOT NULL,
		action         TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_item_history_item ON item_history(item_id, seq);

	CREATE TABLE IF NOT EXISTS categories (
		name TEXT PRIMARY KEY
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

// NewConnectSQLite opens (creating if necessary) the client's local SQLite
// database, bootstraps the schema and seeds the default category list on
// first run.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if cfg.DSN != ":memory:" {
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", cfg.DSN+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, clientSchema); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error bootstrapping schema")
		return nil, fmt.Errorf("error bootstrapping schema: %w", err)
	}

	if err = seedDefaultCategories(ctx, conn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error seeding default categories")
		return nil, fmt.Errorf("error seeding default categories: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to local database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// seedDefaultCategories inserts the fixed default category list once. A
// marker row in settings distinguishes "never seeded" from "user deleted
// every category".
func seedDefaultCategories(ctx context.Context, conn *sql.DB) error {
	var seeded string
	err := conn.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = 'categories_seeded';`).Scan(&seeded)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	for _, name := range models.DefaultCategories {
		if _, err = conn.ExecContext(ctx, `INSERT OR IGNORE INTO categories (name) VALUES ($1);`, name); err != nil {
			return err
		}
	}

	_, err = conn.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES ('categories_seeded', 'true');`)
	return err
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
