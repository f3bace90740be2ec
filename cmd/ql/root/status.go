package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/engine"
	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player level, streaks, stats and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := svc.Document()
			p := doc.Player
			out := cmd.OutOrStdout()

			level := engine.LevelForTotalXP(p.TotalXP)
			into := p.TotalXP - engine.CumulativeXPForLevel(level)
			span := engine.CumulativeXPForLevel(level+1) - engine.CumulativeXPForLevel(level)

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Quest Life"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s %s", level,
				ui.ProgressBar(into, span, 24), ui.Muted.Render(fmt.Sprintf("%d/%d XP to next", into, span)))))
			fmt.Fprintln(out, ui.LabelValue("Total XP", p.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Global streak", ui.StreakText(p.GlobalStreak)))
			if p.LastActionDate != "" {
				fmt.Fprintln(out, ui.LabelValue("Last action", p.LastActionDate))
			}
			pct := engine.CompletionPercentageForDate(doc, svc.Today())
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%.0f%% complete", pct)))
			fmt.Fprintln(out, "")

			if len(doc.Stats) > 0 {
				fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
				for _, st := range doc.Stats {
					if st == nil {
						continue
					}
					lvl := engine.LevelForTotalXP(st.XP)
					cur := engine.CumulativeXPForLevel(lvl)
					next := engine.CumulativeXPForLevel(lvl + 1)
					fmt.Fprintf(out, "  %s lvl %d %s %s\n", ui.Key.Render(st.Name),
						lvl, ui.ProgressBar(st.XP-cur, next-cur, 14), ui.Muted.Render(fmt.Sprintf("(%d xp)", st.XP)))
				}
				fmt.Fprintln(out, "")
			}

			achievements := engine.Achievements(doc)
			earned := engine.CountEarned(achievements)
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, earned, len(achievements))))
			for _, a := range achievements {
				if !a.Earned {
					continue
				}
				fmt.Fprintf(out, "  %s %s %s\n", a.Icon, a.Name, ui.Muted.Render(a.Description))
			}

			return nil
		},
	}

	return cmd
}
