// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/internship-recommender/internal/schemas"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Catalog source: either the two CSV tables or a PostgreSQL table
	ListingsCSV   string `json:"listings_csv,omitempty"`   // Path to the listing table
	TextsCSV      string `json:"texts_csv,omitempty"`      // Path to the preprocessed text table
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	ListingsTable string `json:"listings_table,omitempty"` // Table read when DatabaseURL is set

	// Server
	Port int `json:"port,omitempty"`

	// Result sizes
	DefaultN int `json:"default_n,omitempty"` // Recommendations returned by the JSON endpoints
	DetailN  int `json:"detail_n,omitempty"`  // Recommendations shown on a listing detail
	SampleN  int `json:"sample_n,omitempty"`  // Listings shown on the home sample

	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		ListingsCSV:   filepath.Join("data", "magang_opportunities.csv"),
		TextsCSV:      filepath.Join("data", "cleaned_data.csv"),
		ListingsTable: "internship_listings",
		Port:          8080,
		DefaultN:      10,
		DetailN:       6,
		SampleN:       3,
	}
}

// LoadConfig loads configuration from a JSON file.
// The file is checked against the embedded JSON Schema before decoding.
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

	if err := schemas.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from DATABASE_URL, LISTINGS_TABLE and PORT when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("LISTINGS_TABLE"); v != "" {
		c.ListingsTable = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

// UsesDatabase reports whether the catalog is read from PostgreSQL.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.UsesDatabase() && (c.ListingsCSV != "" || c.TextsCSV != "") {
		return fmt.Errorf("config error: 'database_url' and 'listings_csv'/'texts_csv' are mutually exclusive")
	}
	if !c.UsesDatabase() && (c.ListingsCSV == "") != (c.TextsCSV == "") {
		return fmt.Errorf("config error: 'listings_csv' and 'texts_csv' must be set together")
	}

	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.DefaultN < 0 {
		return fmt.Errorf("config error: 'default_n' must be non-negative")
	}
	if c.DetailN < 0 {
		return fmt.Errorf("config error: 'detail_n' must be non-negative")
	}
	if c.SampleN < 0 {
		return fmt.Errorf("config error: 'sample_n' must be non-negative")
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{"listings": c.ListingsCSV, "texts": c.TextsCSV} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// CSV paths are only filled when no database is configured.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if !result.UsesDatabase() {
		if result.ListingsCSV == "" && result.TextsCSV == "" {
			result.ListingsCSV = defaults.ListingsCSV
			result.TextsCSV = defaults.TextsCSV
		}
	}
	if result.ListingsTable == "" {
		result.ListingsTable = defaults.ListingsTable
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DefaultN == 0 {
		result.DefaultN = defaults.DefaultN
	}
	if result.DetailN == 0 {
		result.DetailN = defaults.DetailN
	}
	if result.SampleN == 0 {
		result.SampleN = defaults.SampleN
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
