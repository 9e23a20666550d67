package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Supported history backends.
const (
	HistoryBackendFile   = "file"
	HistoryBackendSQLite = "sqlite"
)

// HistoryConfig controls the local result history used for averages.
type HistoryConfig struct {
	// Enabled turns history reads and writes on
	Enabled bool `yaml:"enabled"`

	// Backend is "file" (JSON) or "sqlite"
	Backend string `yaml:"backend"`

	// Path overrides the default location under the survey home
	Path string `yaml:"path"`

	// MaxRecords bounds the history; oldest records are dropped first
	MaxRecords int `yaml:"max_records"`
}

// DisplayConfig controls result rendering.
type DisplayConfig struct {
	// Color is auto, always or never
	Color string `yaml:"color"`

	// CompareAverage shows the history average next to each dimension
	CompareAverage bool `yaml:"compare_average"`
}

// Config represents survey configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	History HistoryConfig `yaml:"history"`
	Display DisplayConfig `yaml:"display"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		History: HistoryConfig{
			Enabled:    true,
			Backend:    HistoryBackendFile,
			Path:       "",
			MaxRecords: 1000,
		},
		Display: DisplayConfig{
			Color:          ColorAuto,
			CompareAverage: true,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// A missing file yields the defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Zero values cannot tell "unset" from "false", so nested sections are
	// merged key by key using the raw document.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	if section, ok := rawMap["history"].(map[string]interface{}); ok {
		if _, exists := section["enabled"]; exists {
			cfg.History.Enabled = fileCfg.History.Enabled
		}
		if _, exists := section["backend"]; exists {
			cfg.History.Backend = fileCfg.History.Backend
		}
		if _, exists := section["path"]; exists {
			cfg.History.Path = fileCfg.History.Path
		}
		if _, exists := section["max_records"]; exists {
			cfg.History.MaxRecords = fileCfg.History.MaxRecords
		}
	}

	if section, ok := rawMap["display"].(map[string]interface{}); ok {
		if _, exists := section["color"]; exists {
			cfg.Display.Color = fileCfg.Display.Color
		}
		if _, exists := section["compare_average"]; exists {
			cfg.Display.CompareAverage = fileCfg.Display.CompareAverage
		}
	}

	return cfg, nil
}

// LoadConfigFromHome loads config.yaml from the survey home directory.
func LoadConfigFromHome() (*Config, error) {
	home, err := GetHome()
	if err != nil {
		return nil, err
	}
	return LoadConfig(filepath.Join(home, "config.yaml"))
}

// MergeWithFlags applies CLI flag values. Nil pointers leave the config as is.
func (c *Config) MergeWithFlags(logLevel *string, noColor *bool, historyBackend *string, historyPath *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if noColor != nil && *noColor {
		c.Display.Color = ColorNever
	}
	if historyBackend != nil {
		c.History.Backend = *historyBackend
	}
	if historyPath != nil {
		c.History.Path = *historyPath
	}
}

// HistoryPath returns the configured history location, defaulting to a file
// under home named after the backend.
func (c *Config) HistoryPath(home string) string {
	if c.History.Path != "" {
		return c.History.Path
	}
	if c.History.Backend == HistoryBackendSQLite {
		return filepath.Join(home, "history.db")
	}
	return filepath.Join(home, "history.json")
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.History.Backend {
	case HistoryBackendFile, HistoryBackendSQLite:
	default:
		return fmt.Errorf("invalid history.backend %q, must be one of: file, sqlite", c.History.Backend)
	}
	if c.History.MaxRecords <= 0 {
		return fmt.Errorf("history.max_records must be > 0, got %d", c.History.MaxRecords)
	}

	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid display.color %q, must be one of: auto, always, never", c.Display.Color)
	}

	return nil
}
