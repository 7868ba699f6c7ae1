// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Identity
	OwnerID string `json:"owner_id,omitempty"` // Owner UUID for profile operations

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key (env GEMINI_API_KEY)
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (env DATABASE_URL)
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information

	// Extraction tuning
	TopPhrases int `json:"top_phrases,omitempty"` // Max phrases/terms kept per profile
	MinSamples int `json:"min_samples,omitempty"` // Sample count at which confidence base reaches 0.5
}

// Load loads configuration from a JSON file.
func Load(path string) (*Config, error) {
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

// FromEnv fills unset fields from environment variables.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.OwnerID == "" {
		c.OwnerID = os.Getenv("VOICE_OWNER_ID")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopPhrases < 0 {
		return fmt.Errorf("config error: 'top_phrases' must be non-negative")
	}
	if c.MinSamples < 0 {
		return fmt.Errorf("config error: 'min_samples' must be non-negative")
	}
	return nil
}
