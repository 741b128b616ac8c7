package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete tool configuration.
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Export   ExportConfig   `json:"export" yaml:"export"`
	Budget   BudgetConfig   `json:"budget" yaml:"budget"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

// ExportConfig contains CSV export parameters.
type ExportConfig struct {
	File string `json:"file" yaml:"file"`
}

// BudgetConfig holds the fallback session budget, used when none has been
// set in the database and no --budget flag is given. Zero means "no default".
type BudgetConfig struct {
	Default float64 `json:"default,omitempty" yaml:"default,omitempty"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"` // debug, info, warn, error
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Export.File == "" {
		return fmt.Errorf("export.file is required")
	}
	if c.Budget.Default < 0 {
		return fmt.Errorf("budget.default must not be negative")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "./swingtrade.db",
		},
		Export: ExportConfig{
			File: "./trades_export.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
