package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cesargomez89/musicshelf/internal/constants"
)

// Config holds all application configuration
type Config struct {
	DBPath        string
	DefaultFormat string
	LogLevel      string
	LogFormat     string
}

// Load loads configuration from environment variables with defaults.
// Variables from a .env file in the working directory are applied first;
// variables already present in the environment win.
func Load() *Config {
	_ = LoadEnvFile(constants.DefaultEnvFile)

	return &Config{
		DBPath:        getEnv("MUSICSHELF_DB_PATH", constants.DefaultDBPath),
		DefaultFormat: getEnv("MUSICSHELF_DEFAULT_FORMAT", constants.DefaultScanFormat),
		LogLevel:      getEnv("LOG_LEVEL", constants.DefaultLogLevel),
		LogFormat:     getEnv("LOG_FORMAT", constants.DefaultLogFormat),
	}
}

// LoadEnvFile applies variables from path to the process environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "MUSICSHELF_DB_PATH cannot be empty")
	}

	if !slices.Contains(constants.AllowedFormats, c.DefaultFormat) {
		errors = append(errors, fmt.Sprintf("MUSICSHELF_DEFAULT_FORMAT must be one of: %s, got: %s",
			strings.Join(constants.AllowedFormats, ", "), c.DefaultFormat))
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
