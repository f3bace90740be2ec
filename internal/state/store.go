package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/geko990/quest-life-sub000/internal/storage"
)

// SaveError wraps a persistence failure. Saves are best effort: callers
// surface the error to the user and keep the in-memory document alive.
type SaveError struct {
	Err error
}

func (e SaveError) Error() string {
	return fmt.Sprintf("state save failed: %v", e.Err)
}

func (e SaveError) Unwrap() error {
	return e.Err
}

// Store loads and saves the game document through the document repo, with
// an optional mirrored JSON export file.
type Store struct {
	docs       *storage.DocumentRepo
	exportPath string
}

func NewStore(docs *storage.DocumentRepo, exportPath string) *Store {
	return &Store{docs: docs, exportPath: exportPath}
}

// Load fetches the persisted document, normalizing it on the way in. A
// missing document yields a fresh one.
func (s *Store) Load(ctx context.Context) (*Document, error) {
	body, ok, err := s.docs.Get(ctx, storage.StateKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewDocument(), nil
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode state document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

// Save persists the document and mirrors it to the export file when one is
// configured. Any failure comes back as a SaveError.
func (s *Store) Save(ctx context.Context, doc *Document, now time.Time) error {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return SaveError{Err: fmt.Errorf("encode state document: %w", err)}
	}
	if err := s.docs.Put(ctx, storage.StateKey, body, now); err != nil {
		return SaveError{Err: err}
	}
	if s.exportPath != "" {
		if err := os.WriteFile(s.exportPath, body, 0o644); err != nil {
			return SaveError{Err: fmt.Errorf("mirror export: %w", err)}
		}
	}
	return nil
}

// Snapshots lists recent save snapshots, newest first.
func (s *Store) Snapshots(ctx context.Context, limit int) ([]storage.Snapshot, error) {
	return s.docs.ListSnapshots(ctx, storage.StateKey, limit)
}

// Restore replaces the current document with the given snapshot's body and
// returns the restored document. The caller should run a streak repair
// afterwards, since derived fields may be stale relative to the log.
func (s *Store) Restore(ctx context.Context, snapshotID int64, now time.Time) (*Document, error) {
	snap, err := s.docs.GetSnapshot(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, fmt.Errorf("snapshot %d not found", snapshotID)
	}

	var doc Document
	if err := json.Unmarshal(snap.Body, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", snapshotID, err)
	}
	doc.Normalize()

	if err := s.Save(ctx, &doc, now); err != nil {
		return nil, err
	}
	return &doc, nil
}
