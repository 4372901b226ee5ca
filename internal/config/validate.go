package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "console"}
	validLanguages  = []string{"en", "ru"}
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %s)", c.Server.ShutdownTimeout)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Cycle.validate(); err != nil {
		return fmt.Errorf("cycle: %w", err)
	}
	if c.Companion.Timeout <= 0 {
		return fmt.Errorf("companion.timeout must be > 0 (got %s)", c.Companion.Timeout)
	}
	if err := c.Reminders.validate(); err != nil {
		return fmt.Errorf("reminders: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	if !slices.Contains(validLogLevels, l.Level) {
		return fmt.Errorf("level must be one of %v (got %q)", validLogLevels, l.Level)
	}
	if !slices.Contains(validLogFormats, l.Format) {
		return fmt.Errorf("format must be one of %v (got %q)", validLogFormats, l.Format)
	}
	return nil
}

func (c *CycleConfig) validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	c.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.DefaultLanguage))
	if !slices.Contains(validLanguages, c.DefaultLanguage) {
		return fmt.Errorf("default_language must be one of %v (got %q)", validLanguages, c.DefaultLanguage)
	}
	return nil
}

func (r *RemindersConfig) validate() error {
	r.TelegramBotToken = strings.TrimSpace(r.TelegramBotToken)
	r.TelegramChatID = strings.TrimSpace(r.TelegramChatID)
	if (r.TelegramBotToken == "") != (r.TelegramChatID == "") {
		return fmt.Errorf("telegram_bot_token and telegram_chat_id must be set together")
	}
	if r.DaysBeforePeriod < 0 {
		return fmt.Errorf("days_before_period must be >= 0 (got %d)", r.DaysBeforePeriod)
	}
	if r.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %s)", r.Interval)
	}
	return nil
}
