package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock <habit>",
		Short: "Pause a habit without losing its history",
		Long: `A locked habit is skipped by the daily reset and the scheduler and does
not count toward daily completion. Its streak freezes until unlocked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setLocked(cmd, args[0], true)
		},
	}
	return cmd
}

func newUnlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock <habit>",
		Short: "Resume a paused habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setLocked(cmd, args[0], false)
		},
	}
	return cmd
}

func setLocked(cmd *cobra.Command, ref string, locked bool) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := resolveID(ref, habitIndex(svc))
	if err != nil {
		return err
	}
	if err := svc.SetHabitLocked(ctx, id, locked); err != nil {
		return err
	}

	h := svc.Document().HabitByID(id)
	out := cmd.OutOrStdout()
	if locked {
		fmt.Fprintf(out, "%s %s locked\n", ui.IconLock, ui.Key.Render(h.Name))
	} else {
		fmt.Fprintf(out, "%s %s unlocked\n", ui.Good.Render("✔"), ui.Key.Render(h.Name))
	}
	return nil
}

func newStarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stars <habit> <1-5>",
		Short: "Change a habit's difficulty rating",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stars, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("stars must be a number from 1 to 5: %q", args[1])
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveID(args[0], habitIndex(svc))
			if err != nil {
				return err
			}
			if err := svc.SetHabitStars(ctx, id, stars); err != nil {
				return err
			}

			h := svc.Document().HabitByID(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", ui.Key.Render(h.Name), ui.Stars(h.Stars))
			return nil
		},
	}
	return cmd
}
