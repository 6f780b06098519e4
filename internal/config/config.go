// Package config loads the engine's YAML configuration file, grounded on
// chycee-cryptoGo's infra.LoadConfig: read the whole file with os.ReadFile,
// unmarshal with yaml.v3, then validate.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every knob the ingest harness needs at startup.
type Config struct {
	Pool struct {
		BlockSize int `yaml:"block_size"`
	} `yaml:"pool"`

	Feed struct {
		// LocateAllowlist restricts processing to these stock_locate
		// values; empty means process every locate.
		LocateAllowlist []uint16 `yaml:"locate_allowlist"`
	} `yaml:"feed"`

	Logging struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the YAML file at path, applying defaults to
// any zero-valued field that must not be zero.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Pool.BlockSize <= 0 {
		c.Pool.BlockSize = 4096
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = 100
	}
	if c.Logging.MaxBackups <= 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAgeDays <= 0 {
		c.Logging.MaxAgeDays = 28
	}
}

// Validate checks configuration invariants that applyDefaults can't paper over.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}
	if c.Pool.BlockSize <= 0 {
		return fmt.Errorf("pool block size must be positive")
	}
	return nil
}
