// Package app wires together configuration and the SQLite store into a
// single Deps struct that commands receive at runtime.
package app

import (
	"fmt"

	"github.com/wikigeo/geohist/internal/config"
	"github.com/wikigeo/geohist/internal/store"
)

// Deps holds the runtime dependencies injected into command Run functions.
// Store is opened lazily by RequireStore, since read-only commands like
// `config get` never need it.
type Deps struct {
	Config *config.Config
	Store  *store.Store
}

// New builds a Deps from resolved config. It does not open the database.
func New(cfg *config.Config) *Deps {
	return &Deps{Config: cfg}
}

// RequireStore opens the configured database if not already open and
// returns it. Commands that read or write the SQLite store call this first.
func (d *Deps) RequireStore() (*store.Store, error) {
	if d.Store != nil {
		return d.Store, nil
	}
	if d.Config.DBPath == "" {
		return nil, fmt.Errorf("no database path configured, see --db")
	}
	s, err := store.Open(d.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	d.Store = s
	return s, nil
}

// Close releases any resources Deps opened, namely the store connection.
func (d *Deps) Close() error {
	if d.Store == nil {
		return nil
	}
	return d.Store.Close()
}
