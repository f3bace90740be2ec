package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive quest board",
		Long: `Launches the full-screen board listing everything due today. Move with
j/k, complete with space, repair streaks with r, quit with q.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Roll the day over before showing anything, so overnight resets
			// and shifts are already applied.
			svc.DayCheck(ctx)

			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
