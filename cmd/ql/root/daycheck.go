package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newDayCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daycheck",
		Short: "Run the daily rollover: streak resets and habit rescheduling",
		Long: `Runs the daily passes over the game state:

- Streak reset: daily habits not completed yesterday lose their streak.
  Skipped before noon, so yesterday can still be logged late.
- Progressive scheduling: times-per-week/month habits still short of their
  target are rolled forward to today.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.DayCheck(ctx)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LabelValue("Streaks reset", res.StreaksReset))
			fmt.Fprintln(out, ui.LabelValue("Habits shifted", res.HabitsShifted))
			return nil
		},
	}

	return cmd
}
