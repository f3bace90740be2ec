package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Key/value document store: the whole game state is one JSON value.
		`CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		// Save history, used by the restore command.
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL,
			body TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_key_saved_at ON snapshots(key, saved_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
