package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	TelegramToken  string
	DatabaseURL    string
	LogLevel       string
	Environment    string
	DailyCheckTime string // HH:MM local time for the scheduled deadline check
	HTTPAddr       string
	MetricsEnabled bool
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.DailyCheckTime = os.Getenv("DAILY_CHECK_TIME")
	if cfg.DailyCheckTime == "" {
		cfg.DailyCheckTime = "08:00"
	}
	if _, err := time.Parse("15:04", cfg.DailyCheckTime); err != nil {
		return nil, fmt.Errorf("invalid DAILY_CHECK_TIME %q, expected HH:MM: %w", cfg.DailyCheckTime, err)
	}

	cfg.HTTPAddr = os.Getenv("HTTP_ADDR")
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	cfg.MetricsEnabled = true
	if raw := os.Getenv("METRICS_ENABLED"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid METRICS_ENABLED: %w", err)
		}
		cfg.MetricsEnabled = enabled
	}

	return cfg, nil
}
