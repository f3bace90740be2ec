package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/engine"
	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newChallengesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "List the challenge catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.H2.Render("📜 Challenges"))
			for _, t := range engine.ChallengeCatalog() {
				detail := ""
				switch t.Kind {
				case engine.TemplateKindQuest:
					detail = fmt.Sprintf("%s quest, %d days", ui.IconQuest, t.Days)
				default:
					detail = fmt.Sprintf("%s habit, %s", ui.IconHabit, string(t.Frequency))
					if t.FreqTimes > 0 {
						detail += fmt.Sprintf(" ×%d", t.FreqTimes)
					}
				}
				fmt.Fprintf(out, "  %s %s  %s\n", ui.Key.Render(t.Code), t.Title, ui.Muted.Render("("+detail+")"))
			}
			return nil
		},
	}

	return cmd
}

func newAcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept <challenge>",
		Short: "Accept a challenge from the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("challenge code is required")
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

			id, err := svc.AcceptChallenge(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n",
				ui.Good.Render("📜 Accepted"), args[0], ui.Muted.Render("id: "+shortID(id)))
			return nil
		},
	}

	return cmd
}
