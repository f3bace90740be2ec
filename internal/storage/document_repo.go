package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// StateKey is the document key the game state lives under.
const StateKey = "quest_life_state"

// How many save snapshots to keep per key.
const snapshotKeep = 20

type Snapshot struct {
	ID      int64
	Key     string
	Body    []byte
	SavedAt time.Time
}

type DocumentRepo struct {
	db *sql.DB
}

func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Get returns the stored document body for key. The second return value is
// false when no document exists yet.
func (r *DocumentRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, key)
	var body []byte
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("document get: %w", err)
	}
	return body, true, nil
}

// Put upserts the document body and appends a snapshot in one transaction,
// pruning snapshots beyond the retention window.
func (r *DocumentRepo) Put(ctx context.Context, key string, body []byte, now time.Time) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (key, body, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
		`, key, body, now); err != nil {
			return fmt.Errorf("document put: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO snapshots (key, body, saved_at) VALUES (?, ?, ?)
		`, key, body, now); err != nil {
			return fmt.Errorf("snapshot insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM snapshots
			WHERE key = ? AND id NOT IN (
				SELECT id FROM snapshots WHERE key = ? ORDER BY id DESC LIMIT ?
			)
		`, key, key, snapshotKeep); err != nil {
			return fmt.Errorf("snapshot prune: %w", err)
		}
		return nil
	})
}

// ListSnapshots returns the most recent snapshots for key, newest first.
func (r *DocumentRepo) ListSnapshots(ctx context.Context, key string, limit int) ([]Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, key, body, saved_at FROM snapshots
		WHERE key = ? ORDER BY id DESC LIMIT ?
	`, key, limit)
	if err != nil {
		return nil, fmt.Errorf("snapshot list: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.Key, &s.Body, &s.SavedAt); err != nil {
			return nil, fmt.Errorf("snapshot scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot rows: %w", err)
	}
	return out, nil
}

// GetSnapshot returns a single snapshot by id, or nil when absent.
func (r *DocumentRepo) GetSnapshot(ctx context.Context, id int64) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, key, body, saved_at FROM snapshots WHERE id = ?
	`, id)
	var s Snapshot
	if err := row.Scan(&s.ID, &s.Key, &s.Body, &s.SavedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot get: %w", err)
	}
	return &s, nil
}
