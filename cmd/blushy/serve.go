package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/blushy/internal/ai"
	"github.com/terraincognita07/blushy/internal/api"
	"github.com/terraincognita07/blushy/internal/config"
	"github.com/terraincognita07/blushy/internal/db"
	"github.com/terraincognita07/blushy/internal/i18n"
	"github.com/terraincognita07/blushy/internal/logging"
	"github.com/terraincognita07/blushy/internal/services"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder loop",
		Long: `Loads configuration from CONFIG_PATH (default ./config.yaml) and the
environment, opens the SQLite database and serves the JSON API until SIGINT or
SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(parent context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	location, err := cfg.Cycle.Location()
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Warn("close database", zap.Error(err))
		}
	}()

	messages, err := i18n.NewEmbeddedManager(cfg.Cycle.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	completer, err := newCompleter(ctx, cfg.Companion, logger)
	if err != nil {
		return err
	}

	handler, err := api.NewHandler(database, api.HandlerOptions{
		Location:         location,
		I18n:             messages,
		Logger:           logger,
		Completer:        completer,
		CompanionTimeout: cfg.Companion.Timeout,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := api.NewApp(handler, api.ServerOptions{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		AccessLog:    true,
	})

	reminders := services.NewReminderService(
		handler.Predictions(),
		newReminderSender(cfg.Reminders),
		messages,
		services.ReminderSettings{
			PeriodReminderDays: cfg.Reminders.DaysBeforePeriod,
			FertilityReminder:  cfg.Reminders.FertilityReminders,
			Interval:           cfg.Reminders.Interval,
			Language:           cfg.Cycle.DefaultLanguage,
		},
		location,
		logger.Named("reminders"),
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		address := cfg.Server.Address()
		logger.Info("http server listening", zap.String("addr", address))
		if err := app.Listen(address); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return app.ShutdownWithContext(shutdownCtx)
	})
	group.Go(func() error {
		return reminders.Run(groupCtx)
	})

	return group.Wait()
}

// newCompleter returns a nil interface when the companion is not configured so
// chat replies fall back to canned text.
func newCompleter(ctx context.Context, cfg config.CompanionConfig, logger *zap.Logger) (services.Completer, error) {
	if !cfg.CompanionReady() {
		logger.Info("chat companion backend disabled")
		return nil, nil
	}

	completer, err := ai.NewGeminiCompleter(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("companion init failed: %w", err)
	}
	logger.Info("chat companion backend enabled", zap.String("model", completer.Model()))
	return completer, nil
}

func newReminderSender(cfg config.RemindersConfig) services.ReminderSender {
	if sender := services.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID); sender != nil {
		return sender
	}
	return nil
}
