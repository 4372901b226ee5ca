package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Cycle     CycleConfig     `yaml:"cycle"`
	Companion CompanionConfig `yaml:"companion"`
	Reminders RemindersConfig `yaml:"reminders"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds the SQLite file location.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"DB_PATH" env-default:"data/blushy.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CycleConfig holds calendar defaults. Timezone decides which calendar date
// "today" is.
type CycleConfig struct {
	Timezone        string `yaml:"timezone"         env:"CYCLE_TIMEZONE"   env-default:"UTC"`
	DefaultLanguage string `yaml:"default_language" env:"DEFAULT_LANGUAGE" env-default:"en"`
}

// CompanionConfig holds the chat companion backend settings.
type CompanionConfig struct {
	Enabled bool          `yaml:"enabled" env:"COMPANION_ENABLED"`
	APIKey  string        `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model   string        `yaml:"model"   env:"GEMINI_MODEL"      env-default:"gemini-2.0-flash"`
	Timeout time.Duration `yaml:"timeout" env:"COMPANION_TIMEOUT" env-default:"20s"`
}

// RemindersConfig holds Telegram reminder settings. Reminders stay off until
// both the bot token and the chat id are set.
type RemindersConfig struct {
	TelegramBotToken   string        `yaml:"telegram_bot_token"   env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID     string        `yaml:"telegram_chat_id"     env:"TELEGRAM_CHAT_ID"`
	DaysBeforePeriod   int           `yaml:"days_before_period"   env:"REMINDER_DAYS_BEFORE_PERIOD"`
	FertilityReminders bool          `yaml:"fertility_reminders"  env:"REMINDER_FERTILITY"`
	Interval           time.Duration `yaml:"interval"             env:"REMINDER_INTERVAL"           env-default:"6h"`
}

// newDefaultConfig presets fields whose zero value is a meaningful setting.
// env-default only fills zero fields, so it cannot default these to true or 2
// without overriding an explicit false or 0 from YAML.
func newDefaultConfig() Config {
	return Config{
		Companion: CompanionConfig{Enabled: true},
		Reminders: RemindersConfig{
			DaysBeforePeriod:   2,
			FertilityReminders: true,
		},
	}
}

// Address returns the listen address for the HTTP server.
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Location resolves the configured timezone.
func (c CycleConfig) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return location, nil
}

// CompanionReady reports whether a completion backend can be built.
func (c CompanionConfig) CompanionReady() bool {
	return c.Enabled && c.APIKey != ""
}

// Enabled reports whether Telegram credentials are configured.
func (c RemindersConfig) Enabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}
