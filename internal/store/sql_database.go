package store

import (
	"database/sql"

	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/migrations"
)

// DB wraps the raw connection together with the application logger so
// repositories share one handle.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded goose migrations. Only the server's
// PostgreSQL schema is managed this way; the client's SQLite schema is
// bootstrapped inline on connect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
