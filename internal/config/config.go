// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
)

// Environment variables that override file and flag values.
const (
	EnvLogLevel  = "RESUME_LOG_LEVEL"
	EnvLogFormat = "RESUME_LOG_FORMAT"
	EnvPort      = "PORT"
)

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	logFormats = []string{"json", "pretty"}
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // zerolog level name
	LogFormat string `json:"log_format,omitempty"` // json or pretty

	// Limits
	MaxInputBytes int `json:"max_input_bytes,omitempty"` // Largest resume accepted, in bytes
	Concurrency   int `json:"concurrency,omitempty"`     // Files analyzed at once by extract

	// Behavior
	ValidateSchema bool `json:"validate_schema,omitempty"` // Check emitted records against the JSON Schema
	Verbose        bool `json:"verbose,omitempty"`         // Print a summary of each record
	Port           int  `json:"port,omitempty"`            // HTTP listen port for serve
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     "json",
		MaxInputBytes: 10 << 20,
		Concurrency:   4,
		Port:          8080,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Empty strings and zero numbers are allowed; they mean "use the default".
func (c *Config) Validate() error {
	if c.LogLevel != "" && !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}
	if c.LogFormat != "" && !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("config error: 'log_format' must be one of %v", logFormats)
	}

	if c.MaxInputBytes < 0 {
		return fmt.Errorf("config error: 'max_input_bytes' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.MaxInputBytes == 0 {
		result.MaxInputBytes = defaults.MaxInputBytes
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		c.Port = port
	}
	return nil
}
