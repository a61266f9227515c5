// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Input
	Product     string `json:"product,omitempty"`      // Product name the script is written for
	ReviewsURL  string `json:"reviews_url,omitempty"`  // Product page URL to scrape reviews from
	ReviewsFile string `json:"reviews_file,omitempty"` // Path to a text file with one review per line

	// Limits
	MaxReviews  int `json:"max_reviews,omitempty"` // Maximum reviews carried into analysis
	Concurrency int `json:"concurrency,omitempty"` // Parallel sessions in batch mode

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for JS-rendered widgets
	DemoReviews bool   `json:"demo_reviews,omitempty"` // Substitute sample reviews when a page yields none
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.ReviewsURL != "" && c.ReviewsFile != "" {
		return fmt.Errorf("config error: 'reviews_url' and 'reviews_file' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.MaxReviews < 0 {
		return fmt.Errorf("config error: 'max_reviews' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.ReviewsFile != "" {
		if _, err := os.Stat(c.ReviewsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: reviews file not found: %s", c.ReviewsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Product == "" {
		result.Product = defaults.Product
	}
	if result.ReviewsURL == "" {
		result.ReviewsURL = defaults.ReviewsURL
	}
	if result.ReviewsFile == "" {
		result.ReviewsFile = defaults.ReviewsFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MaxReviews == 0 {
		result.MaxReviews = defaults.MaxReviews
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
