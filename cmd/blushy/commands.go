package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/blushy/internal/cli"
	"github.com/terraincognita07/blushy/internal/i18n"
)

func newPredictCommand() *cobra.Command {
	var options cli.PredictOptions

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Print the cycle position and upcoming dates",
		Example: `  blushy predict --start 2024-12-25 --today 2025-03-10 --length 28
  blushy predict --db data/blushy.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, language, err := commandMessages(cmd)
			if err != nil {
				return err
			}
			options.Language = language
			options.Now = time.Now()
			return cli.RunPredictCommand(cmd.OutOrStdout(), messages, options)
		},
	}

	cmd.Flags().StringVar(&options.Today, "today", "", "day to predict for (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&options.CycleStart, "start", "", "first day of the current cycle (YYYY-MM-DD)")
	cmd.Flags().IntVar(&options.CycleLength, "length", 28, "average cycle length in days")
	cmd.Flags().StringVar(&options.DBPath, "db", os.Getenv("DB_PATH"), "read the cycle start from this database when --start is empty")
	return cmd
}

func newCalendarCommand() *cobra.Command {
	var options cli.CalendarOptions

	cmd := &cobra.Command{
		Use:     "calendar",
		Short:   "Print a month grid with phase markers",
		Example: `  blushy calendar --month 2025-03`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, language, err := commandMessages(cmd)
			if err != nil {
				return err
			}
			options.Language = language
			options.Now = time.Now()
			return cli.RunCalendarCommand(cmd.OutOrStdout(), messages, options)
		},
	}

	cmd.Flags().StringVar(&options.Month, "month", "", "month to print (YYYY-MM, default current month)")
	cmd.Flags().StringVar(&options.DBPath, "db", "", "merge logged days from this database")
	return cmd
}

func newPhaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "phase <cycle-day>",
		Short: "Classify a single cycle day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, language, err := commandMessages(cmd)
			if err != nil {
				return err
			}
			return cli.RunPhaseCommand(cmd.OutOrStdout(), messages, language, args[0])
		},
	}
}

func commandMessages(cmd *cobra.Command) (*i18n.Manager, string, error) {
	language, err := cmd.Flags().GetString("lang")
	if err != nil {
		return nil, "", err
	}
	messages, err := i18n.NewEmbeddedManager(i18n.LangEN)
	if err != nil {
		return nil, "", err
	}
	return messages, messages.NormalizeLanguage(language), nil
}
