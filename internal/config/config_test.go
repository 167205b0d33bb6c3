package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				APIBaseURL:    "http://localhost:3001/",
				HTTPTimeout:   10 * time.Second,
				SessionDBPath: "./test-session.db",
				LogLevel:      "info",
			},
			wantErr: false,
		},
		{
			name: "https base url",
			config: Config{
				APIBaseURL:    "https://expenses.example.com/api/",
				HTTPTimeout:   5 * time.Second,
				SessionDBPath: "./s.db",
				LogLevel:      "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid base url scheme",
			config: Config{
				APIBaseURL:    "ftp://localhost:3001/",
				HTTPTimeout:   10 * time.Second,
				SessionDBPath: "./s.db",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "must be http or https",
		},
		{
			name: "base url without host",
			config: Config{
				APIBaseURL:    "not a url",
				HTTPTimeout:   10 * time.Second,
				SessionDBPath: "./s.db",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "invalid api base url",
		},
		{
			name: "non-positive timeout",
			config: Config{
				APIBaseURL:    "http://localhost:3001/",
				HTTPTimeout:   0,
				SessionDBPath: "./s.db",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "must be positive",
		},
		{
			name: "empty session db path",
			config: Config{
				APIBaseURL:    "http://localhost:3001/",
				HTTPTimeout:   time.Second,
				SessionDBPath: "   ",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "session db path",
		},
		{
			name: "invalid log level",
			config: Config{
				APIBaseURL:    "http://localhost:3001/",
				HTTPTimeout:   time.Second,
				SessionDBPath: "./s.db",
				LogLevel:      "loud",
			},
			wantErr:     true,
			errorString: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	c := Config{LogLevel: "warn"}
	lvl, err := c.SlogLevel()
	if err != nil || lvl != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v (err=%v)", lvl, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EXPENSE_API_BASE_URL", "")
	t.Setenv("EXPENSE_HTTP_TIMEOUT", "")
	t.Setenv("EXPENSE_LOG_LEVEL", "")

	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:3001/" {
		t.Fatalf("default base url: %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("default timeout: %v", cfg.HTTPTimeout)
	}

	t.Setenv("EXPENSE_HTTP_TIMEOUT", "2s")
	if got := Load().HTTPTimeout; got != 2*time.Second {
		t.Fatalf("env timeout: %v", got)
	}
}
