// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. Store credentials come from the
// environment or a .env file only; they are never compiled in.
type Config struct {
	StoreBaseURL    string
	ConsumerKey     string
	ConsumerSecret  string
	OrdersPath      string
	DatabasePath    string
	RefreshInterval time.Duration
	TopProducts     int
	LogLevel        string
}

// Default values
const (
	defaultRefreshInterval = 5 * time.Minute
	defaultTopProducts     = 5
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		StoreBaseURL:    strings.TrimRight(getEnvString("STORE_BASE_URL", ""), "/"),
		ConsumerKey:     getEnvString("STORE_CONSUMER_KEY", ""),
		ConsumerSecret:  getEnvString("STORE_CONSUMER_SECRET", ""),
		OrdersPath:      getEnvString("ORDERS_PATH", ""),
		DatabasePath:    getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", defaultRefreshInterval),
		TopProducts:     getEnvInt("TOP_PRODUCT_LIMIT", defaultTopProducts),
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Ensure database directory exists
	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Offline reports whether orders are read from a local file instead of the API.
func (c *Config) Offline() bool {
	return c.OrdersPath != ""
}

func (c *Config) validate() error {
	if c.Offline() {
		return nil
	}
	if c.StoreBaseURL == "" {
		return fmt.Errorf("STORE_BASE_URL is required (or set ORDERS_PATH for a local orders file)")
	}
	if c.ConsumerKey == "" || c.ConsumerSecret == "" {
		return fmt.Errorf("STORE_CONSUMER_KEY and STORE_CONSUMER_SECRET are required (set via env or .env, never commit them)")
	}
	return nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "storedash", ".env"),
			filepath.Join(home, ".storedash", ".env"),
		)
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the SQLite database.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "storedash.db"
	}
	return filepath.Join(home, ".config", "storedash", "storedash.db")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
