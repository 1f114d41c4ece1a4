package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/smallbizpal/smallbizpal/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB
	logger *slog.Logger
}

// New creates a new SQLite database connection. A nil logger falls back to
// slog.Default; repositories log corruption warnings through it.
func New(dataSourceName string, logger *slog.Logger) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite handles one writer at a time; a single pooled connection
	// avoids SQLITE_BUSY under concurrent appends.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &DB{DB: db, logger: logger}, nil
}

// RunMigrations applies the embedded schema migrations.
func (db *DB) RunMigrations() error {
	data, err := migrations.FS.ReadFile("001_initial_schema.up.sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	if _, err := db.Exec(string(data)); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
