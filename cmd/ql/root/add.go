package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/engine"
	"github.com/geko990/quest-life-sub000/internal/state"
	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		freq      string
		times     int
		stars     int
		stat      string
		isOneshot bool
		isQuest   bool
		days      int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit (default), oneshot or quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			if isOneshot && isQuest {
				return errors.New("--oneshot and --quest are mutually exclusive")
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

			name := args[0]
			out := cmd.OutOrStdout()

			switch {
			case isOneshot:
				o, err := svc.AddOneshot(ctx, name, stars)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s %s %s\n", ui.Good.Render("Added"), ui.IconOneshot, o.Name, ui.Stars(o.Stars))
				fmt.Fprintln(out, ui.Muted.Render("id: "+shortID(o.ID)))
			case isQuest:
				q, err := svc.AddQuest(ctx, name, days)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s %s %s\n", ui.Good.Render("Added"), ui.IconQuest, q.Name, ui.Muted.Render(fmt.Sprintf("(%d days)", q.Days)))
				fmt.Fprintln(out, ui.Muted.Render("id: "+shortID(q.ID)))
			default:
				f, err := state.ParseFrequency(freq)
				if err != nil {
					return err
				}
				h, err := svc.AddHabit(ctx, engine.CreateHabitInput{
					Name:      name,
					Frequency: f,
					FreqTimes: times,
					Stat:      stat,
					Stars:     stars,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s %s %s\n", ui.Good.Render("Added"), ui.IconHabit, h.Name, ui.Stars(h.Stars))
				fmt.Fprintln(out, ui.Muted.Render("id: "+shortID(h.ID)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&freq, "freq", "f", "daily", "Habit frequency (daily|times_week|times_month)")
	cmd.Flags().IntVarP(&times, "times", "t", 0, "Target completions per period (periodic habits)")
	cmd.Flags().IntVarP(&stars, "stars", "s", 3, "Difficulty rating 1-5")
	cmd.Flags().StringVar(&stat, "stat", "", "Stat id that receives this habit's XP")
	cmd.Flags().BoolVar(&isOneshot, "oneshot", false, "Create a one-off task instead of a habit")
	cmd.Flags().BoolVar(&isQuest, "quest", false, "Create a multi-day quest instead of a habit")
	cmd.Flags().IntVar(&days, "days", 7, "Quest length in days")

	return cmd
}
