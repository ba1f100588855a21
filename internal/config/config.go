// Package config handles loading and resolving geohist configuration.
// Resolution order (first non-empty value wins):
//  1. CLI flags
//  2. Environment variables
//  3. config.json in the current working directory
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	DefaultConfigFile   = "config.json"
	DefaultFormat       = "table"
	DefaultWorkers      = 8
	DefaultProgressHz   = 2.0
	DefaultRawQueueCap  = 3
	DefaultLineQueueCap = 26
	DefaultItemQueueCap = 126
	EnvDBPath           = "GEOHIST_DB_PATH"
	EnvWorkers          = "GEOHIST_WORKERS"
)

// File is the on-disk representation of config.json.
type File struct {
	DBPath        string  `json:"db_path"`
	DefaultFormat string  `json:"default_format"`
	Workers       int     `json:"workers"`
	ProgressHz    float64 `json:"progress_hz"`
}

// Config is the fully-resolved runtime configuration. All callers use this
// struct; the File is only read during loading.
type Config struct {
	DBPath     string
	Format     string
	Workers    int
	ProgressHz float64
	ConfigPath string // path of the config.json that was loaded (empty if none found)

	// Runtime overrides set from CLI flags after Load()
	Quiet   bool
	Verbose bool
	Debug   bool
}

// Load resolves configuration from all sources.
func Load() (*Config, error) {
	cfg := &Config{
		Format:     DefaultFormat,
		Workers:    DefaultWorkers,
		ProgressHz: DefaultProgressHz,
	}

	// Layer 1: config.json (lowest priority)
	if f, path, err := loadFile(); err == nil {
		applyFile(cfg, f, path)
	}

	// Layer 2: environment variables
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	// Default DB path if still unset.
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.DBPath = filepath.Join(home, ".geohist", "geohist.db")
		}
	}

	return cfg, nil
}

// Validate returns an error if required fields are missing.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New(
			"no database path configured.\n\n" +
				"Set it one of these ways:\n" +
				"  1. CLI flag:        geohist --db ./geohist.db ...\n" +
				"  2. Environment:     export GEOHIST_DB_PATH=./geohist.db\n" +
				"  3. config.json:     {\"db_path\": \"./geohist.db\"}",
		)
	}
	return nil
}

// loadFile attempts to read config.json from the current working directory.
func loadFile() (*File, string, error) {
	path, err := filepath.Abs(DefaultConfigFile)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("config.json not found at %s", path)
		}
		return nil, "", fmt.Errorf("reading config.json: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("parsing config.json: %w", err)
	}
	return &f, path, nil
}

// applyFile copies values from a parsed File into cfg, skipping any fields
// that are zero/empty.
func applyFile(cfg *Config, f *File, path string) {
	cfg.ConfigPath = path
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
	if f.DefaultFormat != "" {
		cfg.Format = f.DefaultFormat
	}
	if f.Workers > 0 {
		cfg.Workers = f.Workers
	}
	if f.ProgressHz > 0 {
		cfg.ProgressHz = f.ProgressHz
	}
}

// Template returns a File populated with sensible defaults, suitable for
// writing an initial config.json via `geohist config init`.
func Template() File {
	return File{
		DefaultFormat: DefaultFormat,
		Workers:       DefaultWorkers,
		ProgressHz:    DefaultProgressHz,
	}
}

// WriteFile serialises a File to the given path.
func WriteFile(path string, f File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0600)
}
