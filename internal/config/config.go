package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// Backend
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Local session store
	SessionDBPath string

	// Logging
	LogLevel string
}

// Load reads configuration from the environment. The base URL keeps a
// localhost fallback for local development.
func Load() *Config {
	return &Config{
		APIBaseURL:    getEnv("EXPENSE_API_BASE_URL", "http://localhost:3001/"),
		HTTPTimeout:   getEnvDuration("EXPENSE_HTTP_TIMEOUT", 10*time.Second),
		SessionDBPath: getEnv("EXPENSE_SESSION_DB_PATH", defaultSessionDBPath()),
		LogLevel:      getEnv("EXPENSE_LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid api base url '%s'", c.APIBaseURL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid api base url scheme '%s': must be http or https", u.Scheme))
	}

	if c.HTTPTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid http timeout %v: must be positive", c.HTTPTimeout))
	}

	if strings.TrimSpace(c.SessionDBPath) == "" {
		errors = append(errors, "session db path must not be empty")
	}

	if _, err := c.SlogLevel(); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

// SlogLevel maps the configured level name onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel)
	}
}

func defaultSessionDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data/session.db"
	}
	return filepath.Join(home, ".expensetrack", "session.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
