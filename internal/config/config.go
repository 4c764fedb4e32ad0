// Package config loads wbinspect settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, e.g. WBINSPECT_FILE.
const EnvPrefix = "WBINSPECT"

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Config represents the complete tool configuration
type Config struct {
	// File is the workbook to inspect when no argument is given.
	File            string `envconfig:"FILE"`
	HeadRows        int    `envconfig:"HEAD_ROWS" default:"5"`
	MaxListedValues int    `envconfig:"MAX_LISTED" default:"10"`
	Suggest         string `envconfig:"SUGGEST" default:"static"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat       string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads DefaultEnvFile when present, then the environment.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom reads envFile when present, then the environment. Variables
// already set in the environment win over the file. The result is not
// validated so that command-line overrides can be applied first.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.HeadRows <= 0 {
		return fmt.Errorf("head rows must be positive, got %d", c.HeadRows)
	}
	if c.MaxListedValues < 0 {
		return fmt.Errorf("max listed values must not be negative, got %d", c.MaxListedValues)
	}
	switch c.Suggest {
	case "static", "data", "none":
	default:
		return fmt.Errorf("invalid suggest mode: %s (must be static, data, or none)", c.Suggest)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.LogFormat)
	}
	return nil
}
