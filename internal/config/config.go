package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	// Client side.
	APIBaseURL string
	StateDir   string

	// Dev backend side.
	HTTPAddr        string
	DBConnString    string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty BLOOMSHOP_DB_DSN runs the dev backend on in-memory repositories.
func FromEnv() Config {
	return Config{
		APIBaseURL:      envOrDefault("BLOOMSHOP_API_URL", "http://localhost:3000"),
		StateDir:        envOrDefault("BLOOMSHOP_STATE_DIR", defaultStateDir()),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":3000"),
		DBConnString:    envOrDefault("BLOOMSHOP_DB_DSN", ""),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "bloomshop")
	}
	return ".bloomshop"
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
