package root

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/engine"
	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore [snapshot-id]",
		Short: "List save snapshots, or roll back to one",
		Long: `Every save keeps a snapshot of the full game state. Without arguments
this lists recent snapshots; with an id it rolls the state back to that
snapshot and re-runs the streak repair, since derived streak fields may
be stale relative to the restored completion log.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			store := svc.Store()

			if len(args) == 0 {
				snaps, err := store.Snapshots(ctx, 10)
				if err != nil {
					return err
				}
				if len(snaps) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("No snapshots yet."))
					return nil
				}
				fmt.Fprintln(out, ui.H2.Render("💾 Snapshots"))
				for _, s := range snaps {
					fmt.Fprintf(out, "  %s  %s\n",
						ui.Key.Render(strconv.FormatInt(s.ID, 10)),
						ui.Muted.Render(s.SavedAt.Format("2006-01-02 15:04:05")))
				}
				return nil
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("snapshot id must be an integer: %q", args[0])
			}

			doc, err := store.Restore(ctx, id, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s snapshot %d\n", ui.Warn.Render("↩ Restored"), id)

			// Derived streaks may disagree with the restored log; fix them.
			restored := engine.NewService(store, doc)
			if fixed := restored.Repair(ctx); fixed > 0 {
				fmt.Fprintf(out, "%d streak(s) repaired after restore.\n", fixed)
			}
			return nil
		},
	}

	return cmd
}
