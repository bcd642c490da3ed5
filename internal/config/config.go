// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides environment-based configuration for greet.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
// None of it affects the greeting; it only tunes diagnostics on stderr.
type Config struct {
	LogLevel  string // debug, info, warn, error (default: info)
	LogFormat string // text, json (default: text)
}

// validLogLevels contains the allowed log level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validLogFormats contains the allowed log format values.
var validLogFormats = []string{"text", "json"}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{LogLevel: "info", LogFormat: "text"}
}

// Load reads configuration from environment variables, with .env file as optional override.
// The .env file is loaded if present but errors are ignored if it doesn't exist.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  getEnv("GREET_LOG_LEVEL", "info"),
		LogFormat: getEnv("GREET_LOG_FORMAT", "text"),
	}

	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid GREET_LOG_LEVEL %q: must be one of %v", cfg.LogLevel, validLogLevels)
	}

	if !slices.Contains(validLogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid GREET_LOG_FORMAT %q: must be one of %v", cfg.LogFormat, validLogFormats)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
