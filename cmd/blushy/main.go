package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "blushy",
		Short: "Cycle-phase calendar service",
		Long: `blushy tracks a menstrual cycle: it classifies cycle days into phases,
renders month calendars with logged overrides, predicts the next period and
serves a JSON API with an optional chat companion and Telegram reminders.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("lang", "en", "output language (en, ru)")

	root.AddCommand(
		newServeCommand(),
		newPredictCommand(),
		newCalendarCommand(),
		newPhaseCommand(),
	)
	return root
}
