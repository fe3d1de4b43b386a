// Package config loads engine settings from an optional YAML file with
// FINBOARD_* environment overrides on top. A .env file is honored when
// present.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" envconfig:"REFRESH_INTERVAL"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout" envconfig:"FETCH_TIMEOUT"`
	BatchSize       int           `yaml:"batch_size" envconfig:"BATCH_SIZE"`
	LogLevel        string        `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// Path to a YAML catalog override. Empty means the built-in catalog.
	CatalogPath string `yaml:"catalog" envconfig:"CATALOG"`

	Journal JournalConfig `yaml:"journal"`
}

type JournalConfig struct {
	Type string `yaml:"type" envconfig:"JOURNAL_TYPE"` // "none", "csv" or "sqlite"
	Path string `yaml:"path" envconfig:"JOURNAL_PATH"`
}

// Default returns the engine defaults: refresh every 10s, 10s per-fetch
// timeout, 5 concurrent fetches per batch, no journal.
func Default() *Config {
	return &Config{
		RefreshInterval: 10 * time.Second,
		FetchTimeout:    10 * time.Second,
		BatchSize:       5,
		LogLevel:        "info",
		Journal:         JournalConfig{Type: "none"},
	}
}

// Load builds the effective config: defaults, then the YAML file at
// path (if any), then environment variables.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process("finboard", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate refuses settings the refresh loop would degenerate on.
func (c *Config) Validate() error {
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv", "sqlite":
		if c.Journal.Path == "" {
			return fmt.Errorf("journal type %q requires a path", c.Journal.Type)
		}
	default:
		return fmt.Errorf("unknown journal type %q", c.Journal.Type)
	}
	return nil
}
