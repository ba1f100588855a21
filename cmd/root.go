// Package cmd implements the geohist CLI command tree.
// This file defines the root command and registers all global persistent flags.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikigeo/geohist/internal/app"
	"github.com/wikigeo/geohist/internal/config"
)

// globalFlags holds the parsed values of all persistent (global) flags.
// Commands read from this struct via the deps or config they resolve.
var globalFlags struct {
	DB         string
	Format     string
	Out        string
	Workers    int
	ProgressHz float64
	Quiet      bool
	Verbose    bool
	Debug      bool
}

// rootCmd is the base command. Running `geohist` with no subcommand prints
// help.
var rootCmd = &cobra.Command{
	Use:   "geohist",
	Short: "geohist — spatio-temporal index builder for Wikidata dumps",
	Long: `geohist ingests a compressed Wikidata JSON dump, extracts dated and
located items, classifies them, and builds a queryable R-tree index over
their coordinates and time ranges in a local SQLite database.

Quick start:
  geohist config init                 # create a template config.json
  geohist ingest wikidata-latest.json.gz
  geohist stats
  geohist db info`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// resolveConfig resolves configuration and applies global flag overrides,
// without opening the database. Commands that must not implicitly create
// the database file (e.g. `db clear`) call this instead of buildDeps.
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if globalFlags.DB != "" {
		cfg.DBPath = globalFlags.DB
	}
	cfg.Quiet = globalFlags.Quiet
	cfg.Verbose = globalFlags.Verbose
	cfg.Debug = globalFlags.Debug

	if globalFlags.Format != "" {
		cfg.Format = globalFlags.Format
	}
	if globalFlags.Workers > 0 {
		cfg.Workers = globalFlags.Workers
	}
	if globalFlags.ProgressHz > 0 {
		cfg.ProgressHz = globalFlags.ProgressHz
	}

	return cfg, nil
}

// buildDeps resolves config and constructs the dependency container.
// Called at the start of each command's RunE.
func buildDeps() (*app.Deps, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg), nil
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&globalFlags.DB, "db", "",
		"path to the geohist SQLite database (overrides env GEOHIST_DB_PATH and config.json)")
	pf.StringVar(&globalFlags.Format, "format", "",
		"output format: table|json|jsonl|csv|tsv|md (default: table)")
	pf.StringVar(&globalFlags.Out, "out", "",
		"write output to file instead of stdout")
	pf.IntVar(&globalFlags.Workers, "workers", 0,
		"number of parser workers for ingest (default: 8)")
	pf.Float64Var(&globalFlags.ProgressHz, "progress-hz", 0,
		"maximum progress lines per second during ingest (default: 2.0)")
	pf.BoolVar(&globalFlags.Quiet, "quiet", false,
		"suppress ingest progress output")
	pf.BoolVar(&globalFlags.Verbose, "verbose", false,
		"show extra diagnostics after output")
	pf.BoolVar(&globalFlags.Debug, "debug", false,
		"log per-row and per-line diagnostics during ingest")
}
