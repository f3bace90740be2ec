package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newStatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat <id> <name>",
		Short: "Create a stat that habits can feed XP into",
		Long: `Stats are RPG attributes (strength, focus, ...) that level up on the
same curve as the player. Link a habit with: ql add --stat <id>.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("stat id and name are required")
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

			st, err := svc.AddStat(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render("Added stat"), ui.Key.Render(st.Name), ui.Muted.Render("(id: "+st.ID+")"))
			return nil
		},
	}

	return cmd
}
