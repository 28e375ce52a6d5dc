package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything coming from the environment. Goal policy comes
// from a separate TOML file, see LoadGoals.
type Config struct {
	Environment string `env:"HEALTH_ENV, default=development"`

	// garmin connect
	GarminAPIURL     string `env:"GARMIN_API_URL, default=https://connectapi.garmin.com"`
	GarminEmail      string `env:"GARMIN_EMAIL"`
	GarminPassword   string `env:"GARMIN_PASSWORD"`
	SyncLookbackDays int    `env:"DAYS_TO_SYNC, default=7"`

	// telegram
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`

	// postgres
	DBHost string `env:"HEALTH_DB_HOST, default=localhost"`
	DBPort string `env:"HEALTH_DB_PORT, default=5432"`
	DBName string `env:"HEALTH_DB_NAME, default=health"`

	// logging
	LogsPath    string `env:"HEALTH_LOGS_PATH"`
	LogLevel    string `env:"HEALTH_LOG_LEVEL, default=trace"`
	LogToStdout bool   `env:"HEALTH_LOG_TO_STDOUT, default=true"`

	SentryEnabled bool   `env:"SENTRY_ENABLED"`
	SentryDSN     string `env:"SENTRY_DSN"`

	TracingEnabled bool `env:"TRACING_ENABLED"`
}

func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	if cfg.SyncLookbackDays < 1 {
		return nil, fmt.Errorf("DAYS_TO_SYNC must be at least 1, got %d", cfg.SyncLookbackDays)
	}

	return &cfg, nil
}

// ValidateGarmin checks the values cmd/sync cannot run without.
func (c *Config) ValidateGarmin() error {
	if c.GarminEmail == "" || c.GarminPassword == "" {
		return errors.New("garmin credentials not set, use GARMIN_EMAIL and GARMIN_PASSWORD")
	}
	return nil
}

// ValidateTelegram checks the values cmd/notify cannot run without.
func (c *Config) ValidateTelegram() error {
	if c.TelegramBotToken == "" || c.TelegramChatID == "" {
		return errors.New("telegram destination not set, use TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
	}
	return nil
}
