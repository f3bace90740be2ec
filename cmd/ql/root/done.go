package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/engine"
	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newDoneCmd() *cobra.Command {
	var (
		isOneshot bool
		isQuest   bool
	)

	cmd := &cobra.Command{
		Use:   "done <id-or-name>",
		Short: "Complete a habit for today (or a oneshot/quest check-in)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id or name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var (
				res  *engine.CompleteResult
				name string
			)
			switch {
			case isOneshot:
				id, err := resolveID(args[0], oneshotIndex(svc))
				if err != nil {
					return err
				}
				name = svc.Document().OneshotByID(id).Name
				res, err = svc.CompleteOneshot(ctx, id)
				if err != nil {
					return err
				}
			case isQuest:
				id, err := resolveID(args[0], questIndex(svc))
				if err != nil {
					return err
				}
				name = svc.Document().QuestByID(id).Name
				res, err = svc.CheckInQuest(ctx, id)
				if err != nil {
					return err
				}
			default:
				id, err := resolveID(args[0], habitIndex(svc))
				if err != nil {
					return err
				}
				name = svc.Document().HabitByID(id).Name
				res, err = svc.CompleteHabit(ctx, id)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Done"), name, ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XPAwarded)))
			if res.Streak > 0 {
				fmt.Fprintln(out, ui.LabelValue("Streak", ui.StreakText(res.Streak)))
			}
			if res.QuestDone {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" Quest complete!"))
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Muted.Render(fmt.Sprintf("level %d → %d", res.LevelBefore, res.LevelAfter)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&isOneshot, "oneshot", false, "Complete a oneshot")
	cmd.Flags().BoolVar(&isQuest, "quest", false, "Check in on a quest")

	return cmd
}
