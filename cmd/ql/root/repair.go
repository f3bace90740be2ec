package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Rebuild streaks from the completion log",
		Long: `Recomputes every habit streak and the global streak from scratch by
scanning the completion log. Use after hand-editing the log or restoring a
backup. Safe to run any time: a second run changes nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fixed := svc.Repair(ctx)
			out := cmd.OutOrStdout()
			if fixed == 0 {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" All streaks already correct."))
				return nil
			}
			fmt.Fprintf(out, "%s %d streak(s) fixed.\n", ui.Warn.Render(ui.IconWrench+" Repair:"), fixed)
			return nil
		},
	}

	return cmd
}
