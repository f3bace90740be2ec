package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/geko990/quest-life-sub000/internal/config"
	"github.com/geko990/quest-life-sub000/internal/engine"
	"github.com/geko990/quest-life-sub000/internal/state"
	"github.com/geko990/quest-life-sub000/internal/storage"
)

// openService loads config, opens the database, and wires up a Service
// around the loaded document. The cleanup closes the database.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return openServiceWith(ctx, cfg)
}

// openServiceWith is openService for callers that already hold a config.
func openServiceWith(ctx context.Context, cfg *config.Config) (*engine.Service, func(), error) {
	cfg.SetupLogging()

	path := cfg.DBPath
	var err error
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }

	store := state.NewStore(storage.NewDocumentRepo(db), cfg.ExportPath)
	doc, err := store.Load(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return engine.NewService(store, doc), cleanup, nil
}

// resolveID matches ref against ids and names: an exact id, a unique id
// prefix, or a case-insensitive exact name.
func resolveID(ref string, ids map[string]string) (string, error) {
	if _, ok := ids[ref]; ok {
		return ref, nil
	}

	var matches []string
	lower := strings.ToLower(ref)
	for id, name := range ids {
		if strings.HasPrefix(id, ref) || strings.ToLower(name) == lower {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("nothing matches %q", ref)
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches); use a longer id prefix", ref, len(matches))
	}
}

func habitIndex(svc *engine.Service) map[string]string {
	out := map[string]string{}
	for _, h := range svc.Document().Habits {
		if h != nil {
			out[h.ID] = h.Name
		}
	}
	return out
}

func oneshotIndex(svc *engine.Service) map[string]string {
	out := map[string]string{}
	for _, o := range svc.Document().Oneshots {
		if o != nil {
			out[o.ID] = o.Name
		}
	}
	return out
}

func questIndex(svc *engine.Service) map[string]string {
	out := map[string]string{}
	for _, q := range svc.Document().Quests {
		if q != nil {
			out[q.ID] = q.Name
		}
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
