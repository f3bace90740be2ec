package state

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/geko990/quest-life-sub000/internal/storage"
)

func newTestStore(t *testing.T, exportPath string) *Store {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(storage.NewDocumentRepo(db), exportPath)
}

func TestLoadAbsentYieldsFreshDocument(t *testing.T) {
	store := newTestStore(t, "")
	doc, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc == nil || doc.CompletionLog == nil || doc.Habits == nil {
		t.Fatalf("fresh document not normalized: %+v", doc)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t, "")
	ctx := context.Background()

	doc := NewDocument()
	doc.Player.TotalXP = 420
	doc.CompletionLog.MarkHabit("2025-03-01", "h1")
	if err := store.Save(ctx, doc, time.Now()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Player.TotalXP != 420 {
		t.Fatalf("totalXp=%d, want 420", got.Player.TotalXP)
	}
	if !got.CompletionLog.HabitDone("2025-03-01", "h1") {
		t.Fatalf("log entry lost in round trip")
	}
}

func TestSaveMirrorsExportFile(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "export.json")
	store := newTestStore(t, exportPath)
	ctx := context.Background()

	doc := NewDocument()
	doc.Player.TotalXP = 10
	if err := store.Save(ctx, doc, time.Now()); err != nil {
		t.Fatalf("save: %v", err)
	}

	body, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var mirrored Document
	if err := json.Unmarshal(body, &mirrored); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if mirrored.Player.TotalXP != 10 {
		t.Fatalf("export totalXp=%d, want 10", mirrored.Player.TotalXP)
	}
}

func TestSaveFailureIsTyped(t *testing.T) {
	// An unwritable export path must surface as a SaveError so callers can
	// warn without losing the in-memory document.
	store := newTestStore(t, filepath.Join(t.TempDir(), "missing-dir", "x", "export.json"))
	err := store.Save(context.Background(), NewDocument(), time.Now())
	if err == nil {
		t.Fatalf("expected save error")
	}
	if _, ok := err.(SaveError); !ok {
		t.Fatalf("err=%T, want SaveError", err)
	}
}
