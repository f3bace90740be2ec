package root

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/config"
	"github.com/geko990/quest-life-sub000/internal/ui"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run in the background, rolling the game day over on schedule",
		Long: `Stays running and performs the day check on a cron schedule (hourly by
default, see QL_DAYCHECK_CRON). Streak resets and progressive habit
shifts happen automatically when the game day changes. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			svc, cleanup, err := openServiceWith(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			runCheck := func() {
				res := svc.DayCheck(ctx)
				if res.StreaksReset > 0 || res.HabitsShifted > 0 {
					log.WithFields(log.Fields{
						"reset":   res.StreaksReset,
						"shifted": res.HabitsShifted,
					}).Info("day check applied")
				} else {
					log.Debug("day check: nothing to do")
				}
			}

			// Catch up immediately, then hand off to the scheduler.
			runCheck()

			c := cron.New()
			if _, err := c.AddFunc(cfg.DayCheckCron, runCheck); err != nil {
				return fmt.Errorf("invalid day check schedule %q: %w", cfg.DayCheckCron, err)
			}
			c.Start()

			fmt.Fprintf(cmd.OutOrStdout(), "%s schedule %s (Ctrl-C to stop)\n",
				ui.Muted.Render("Watching."), ui.Key.Render(cfg.DayCheckCron))

			<-ctx.Done()
			<-c.Stop().Done()
			return nil
		},
	}

	return cmd
}
