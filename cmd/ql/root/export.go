package root

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the full game state to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			body, err := json.MarshalIndent(svc.Document(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode state: %w", err)
			}
			if err := os.WriteFile(args[0], body, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("✔ Exported to"), args[0])
			return nil
		},
	}

	return cmd
}
