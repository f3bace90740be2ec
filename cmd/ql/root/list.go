package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/gameclock"
	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits, oneshots and quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := svc.Document()
			todayStr := gameclock.ISODate(svc.Today())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.H2.Render(ui.IconHabit+" Habits"))
			for _, h := range doc.Habits {
				if h == nil || (h.Locked && !all) {
					continue
				}
				mark := "·"
				if doc.CompletionLog.HabitDone(todayStr, h.ID) {
					mark = ui.Good.Render("✓")
				}
				detail := ui.StreakText(h.Streak)
				if h.Frequency.IsPeriodic() {
					due := ""
					if h.ShiftedToDate != nil && *h.ShiftedToDate == todayStr {
						due = " " + ui.Warn.Render("due today")
					}
					detail = ui.Muted.Render(fmt.Sprintf("%d× / %s", h.FreqTimes, string(h.Frequency))) + due
				}
				lock := ""
				if h.Locked {
					lock = " " + ui.IconLock
				}
				fmt.Fprintf(out, "  %s %s %s  %s%s\n", mark, ui.Muted.Render(shortID(h.ID)), h.Name, detail, lock)
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconOneshot+" Oneshots"))
			for _, o := range doc.Oneshots {
				if o == nil || (o.Done && !all) {
					continue
				}
				mark := "·"
				if o.Done {
					mark = ui.Good.Render("✓")
				}
				fmt.Fprintf(out, "  %s %s %s  %s\n", mark, ui.Muted.Render(shortID(o.ID)), o.Name, ui.Stars(o.Stars))
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" Quests"))
			for _, q := range doc.Quests {
				if q == nil || (q.Done && !all) {
					continue
				}
				mark := "·"
				if q.Done {
					mark = ui.Good.Render("✓")
				}
				progress := doc.CompletionLog.CountQuestCheckins(q.ID)
				fmt.Fprintf(out, "  %s %s %s  %s %s\n", mark, ui.Muted.Render(shortID(q.ID)), q.Name,
					ui.ProgressBar(progress, q.Days, 10), ui.Muted.Render(fmt.Sprintf("%d/%d days", progress, q.Days)))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked habits and finished items")

	return cmd
}
