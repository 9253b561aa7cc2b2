package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/jonathan/internship-recommender/internal/catalog"
	"github.com/jonathan/internship-recommender/internal/config"
	"github.com/jonathan/internship-recommender/internal/observability"
	"github.com/jonathan/internship-recommender/internal/recommend"
)

// resolveConfig layers the config file, the environment and the flags, in
// that order, over the defaults and validates the result.
func (o *rootOptions) resolveConfig() (config.Config, error) {
	cfg := &config.Config{}
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if o.listingsCSV != "" || o.textsCSV != "" {
		cfg.ListingsCSV = o.listingsCSV
		cfg.TextsCSV = o.textsCSV
		cfg.DatabaseURL = ""
	}
	if o.databaseURL != "" {
		cfg.DatabaseURL = o.databaseURL
		cfg.ListingsCSV = ""
		cfg.TextsCSV = ""
	}
	if o.table != "" {
		cfg.ListingsTable = o.table
	}
	if o.verbose {
		cfg.Verbose = true
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// sourceFor picks the catalog source described by cfg.
func sourceFor(cfg config.Config) catalog.Source {
	if cfg.UsesDatabase() {
		return catalog.PostgresSource{DatabaseURL: cfg.DatabaseURL, Table: cfg.ListingsTable}
	}
	return catalog.CSVSource{ListingsPath: cfg.ListingsCSV, TextsPath: cfg.TextsCSV}
}

// loadEngine resolves the configuration, loads the catalog and builds the index.
// Load progress is not logged when quiet is set and verbose mode is off.
func (o *rootOptions) loadEngine(ctx context.Context, out io.Writer, quiet bool) (*recommend.Engine, config.Config, error) {
	cfg, err := o.resolveConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	if quiet && !cfg.Verbose {
		log.SetOutput(io.Discard)
	}

	cat, err := sourceFor(cfg).Load(ctx)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	engine := recommend.New(cat)
	if cfg.Verbose {
		observability.NewPrinter(out).PrintIndexSummary(cat.Len(), engine.Index().VocabularySize())
	}
	return engine, cfg, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
