package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds runtime settings read from the environment.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string

	// LogPath is the file logs are written to. Empty disables logging,
	// since the TUI owns the terminal.
	LogPath string

	// LogLevel is the minimum level written to LogPath.
	LogLevel zapcore.Level
}

// Load reads configuration from environment variables, after loading a .env
// file from the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:  os.Getenv("KANAZ_DB"),
		LogPath: os.Getenv("KANAZ_LOG"),
	}

	level, err := parseLevel(getEnv("KANAZ_LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return level, fmt.Errorf("KANAZ_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
