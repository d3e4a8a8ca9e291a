// Package config provides configuration loading and validation for the
// screening service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration that can be loaded from a
// JSON file, merged with environment variables and CLI flags. All fields
// are optional; missing values fall back to defaults.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Oracles
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key
	QuestionCount int    `json:"question_count,omitempty"` // Questions generated per interview

	// Extraction
	Vocabulary string `json:"vocabulary,omitempty"` // Path to skill vocabulary JSON (empty uses the built-in set)

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // Emit JSON logs instead of console encoding
	Debug   bool `json:"debug,omitempty"`    // Lower the log level to debug
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

// FromEnv returns a Config populated from environment variables.
// Unset variables leave the zero value so the result can be merged
// over a file config.
func FromEnv() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Vocabulary:  os.Getenv("SKILL_VOCABULARY"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Required fields are checked by the commands after merging, since a
// file config may legitimately omit them.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.QuestionCount < 0 {
		return fmt.Errorf("config error: 'question_count' must be non-negative")
	}
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. CLI flags always win over both.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.QuestionCount == 0 {
		result.QuestionCount = defaults.QuestionCount
	}

	// Bool fields cannot distinguish unset from false, so they are not
	// merged; flags should always win for bools.

	return result
}
