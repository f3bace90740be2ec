package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geko990/quest-life-sub000/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ql",
	Short:         "Quest Life, a gamified habit tracker",
	Long:          "Quest Life is a local-first habit tracker with RPG progression: habits, oneshots, quests, XP, levels and streaks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newStatCmd(),
		newDoneCmd(),
		newListCmd(),
		newStatusCmd(),
		newLockCmd(),
		newUnlockCmd(),
		newStarsCmd(),
		newDayCheckCmd(),
		newRepairCmd(),
		newChallengesCmd(),
		newAcceptCmd(),
		newRestoreCmd(),
		newExportCmd(),
		newBoardCmd(),
		newWatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render("Error:")+" "+err.Error())
		os.Exit(1)
	}
}
