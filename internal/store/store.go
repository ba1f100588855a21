// Package store persists classified, location-resolved items into the
// output SQLite database: an R-tree virtual table of well-formed
// spatio-temporal rows, a plain table for rows whose time interval is
// inverted, and a class-frequency table.
//
// This is an intentional, append-only data accumulator built once per
// ingest run, not a general-purpose cache — no TTL, no update, no delete
// of prior rows.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Current schema version. Bump when the table layout changes; this is the
// store's own bootstrap bookkeeping, not a migration of already-persisted
// rows.
const schemaVersion = 1

// pageCacheKiB sizes the session's page cache to roughly 66 MiB,
// expressed in SQLite's negative-KiB pragma units.
const pageCacheKiB = 66 * 1024

// Store owns the single SQLite connection used by the persister. Exactly
// one goroutine may use a Store at a time.
type Store struct {
	db *sql.DB

	insertItem   *sql.Stmt
	insertBroken *sql.Stmt

	path string
}

// Open creates (if absent) and opens the database at path, applies the
// bulk-ingest session pragmas, and bootstraps the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: creating directory for %s: %w", path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // the persister is the sole writer/reader

	s := &Store{db: db, path: path}
	if err := s.configureSession(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrating schema: %w", err)
	}
	if err := s.prepare(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: preparing statements: %w", err)
	}
	return s, nil
}

// Path returns the filesystem path of the open database.
func (s *Store) Path() string { return s.path }

// Close releases the prepared statements and the underlying connection.
func (s *Store) Close() error {
	if s.insertItem != nil {
		s.insertItem.Close()
	}
	if s.insertBroken != nil {
		s.insertBroken.Close()
	}
	return s.db.Close()
}

// configureSession applies the durability-for-speed pragmas the bulk
// ingest's exclusive connection runs under.
func (s *Store) configureSession() error {
	pragmas := []string{
		"PRAGMA locking_mode = EXCLUSIVE",
		"PRAGMA journal_mode = TRUNCATE",
		"PRAGMA synchronous = OFF",
		"PRAGMA temp_store = MEMORY",
		fmt.Sprintf("PRAGMA cache_size = -%d", pageCacheKiB),
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("store: applying %q: %w", p, err)
		}
	}
	return nil
}

// migrate creates the items, classes and broken_items tables and the
// geohist_meta table if they don't already exist, and
// records the schema version for future bootstrap checks.
func (s *Store) migrate() error {
	stmts := []string{
		`CREATE VIRTUAL TABLE IF NOT EXISTS items USING rtree_i32(
			id,
			minX, maxX,
			minY, maxY,
			minT, maxT,
			+title TEXT,
			+class INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS classes(
			id   INTEGER PRIMARY KEY,
			cnt  INTEGER,
			name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS broken_items(
			id   INTEGER PRIMARY KEY,
			minX INTEGER, maxX INTEGER,
			minY INTEGER, maxY INTEGER,
			minT INTEGER, maxT INTEGER,
			title TEXT,
			class INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS geohist_meta(
			key   TEXT PRIMARY KEY,
			value TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt, err)
		}
	}
	_, err := s.db.Exec(
		`INSERT INTO geohist_meta(key, value) VALUES('schema_version', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		fmt.Sprintf("%d", schemaVersion),
	)
	return err
}

func (s *Store) prepare() error {
	var err error
	s.insertItem, err = s.db.Prepare(
		`INSERT INTO items(id, minX, maxX, minY, maxY, minT, maxT, title, class)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	s.insertBroken, err = s.db.Prepare(
		`INSERT INTO broken_items(id, minX, maxX, minY, maxY, minT, maxT, title, class)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	return err
}

// Row is one bind set for an items/broken_items insert.
type Row struct {
	ID     uint32
	LonE7  int32
	LatE7  int32
	MinT   int32
	MaxT   int32
	Title  string
	Class  uint32
	Broken bool
}

// Tx wraps one open SQLite transaction, exposing only the bulk-insert and
// commit operations the persister needs.
type Tx struct {
	tx           *sql.Tx
	insertItem   *sql.Stmt
	insertBroken *sql.Stmt
}

// Begin opens a new transaction against the statements prepared by Open.
func (s *Store) Begin(ctx context.Context) (*Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("store: beginning transaction: %w", err)
	}
	return &Tx{
		tx:           tx,
		insertItem:   tx.Stmt(s.insertItem),
		insertBroken: tx.Stmt(s.insertBroken),
	}, nil
}

// Insert binds one row to the appropriate prepared statement, chosen by
// r.Broken. A bind/exec failure is non-fatal: it is returned
// to the caller to log, not to abort the transaction.
func (t *Tx) Insert(ctx context.Context, r Row) error {
	stmt := t.insertItem
	if r.Broken {
		stmt = t.insertBroken
	}
	_, err := stmt.ExecContext(ctx, r.ID, r.LonE7, r.LonE7, r.LatE7, r.LatE7, r.MinT, r.MaxT, r.Title, r.Class)
	return err
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// CommitAndBegin commits the current transaction and immediately opens a
// fresh one against the same statements, used to batch commits during a
// long second-pass insert run.
func (t *Tx) CommitAndBegin(ctx context.Context, s *Store) (*Tx, error) {
	if err := t.tx.Commit(); err != nil {
		return nil, fmt.Errorf("store: committing before rebegin: %w", err)
	}
	return s.Begin(ctx)
}

// Rollback aborts the transaction. Used only on connection-level failure
// paths; row-level failures are logged and the transaction
// continues.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// ClassStats is a ClassId -> row count accumulator.
type ClassStats map[uint32]uint64

// WriteClassStats inserts the accumulated per-class counts into the
// classes table in its own transaction, after the second pass completes.
func (s *Store) WriteClassStats(ctx context.Context, stats ClassStats) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: beginning class-stats transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO classes(id, cnt) VALUES(?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("store: preparing class insert: %w", err)
	}
	defer stmt.Close()

	for id, cnt := range stats {
		if _, err := stmt.ExecContext(ctx, id, cnt); err != nil {
			tx.Rollback()
			return fmt.Errorf("store: inserting class %d: %w", id, err)
		}
	}
	return tx.Commit()
}

// Info is the summary Stats() returns for the `db info` command.
type Info struct {
	Path       string
	SizeBytes  int64
	ItemRows   int64
	BrokenRows int64
	ClassRows  int64
}

// Stats reports file size and row counts across the three tables, for the
// `db info` command. This is read-only inspection, not a query interface.
func (s *Store) Stats() (Info, error) {
	info := Info{Path: s.path}

	if fi, err := os.Stat(s.path); err == nil {
		info.SizeBytes = fi.Size()
	}

	queries := []struct {
		q   string
		dst *int64
	}{
		{"SELECT COUNT(*) FROM items", &info.ItemRows},
		{"SELECT COUNT(*) FROM broken_items", &info.BrokenRows},
		{"SELECT COUNT(*) FROM classes", &info.ClassRows},
	}
	for _, q := range queries {
		if err := s.db.QueryRow(q.q).Scan(q.dst); err != nil {
			return info, fmt.Errorf("store: %s: %w", q.q, err)
		}
	}
	return info, nil
}

// ClassCount is one row of the classes table, for the `stats` command.
type ClassCount struct {
	ID  uint32
	Cnt uint64
}

// ClassCounts lists the classes table ordered by descending frequency.
func (s *Store) ClassCounts() ([]ClassCount, error) {
	rows, err := s.db.Query(`SELECT id, cnt FROM classes ORDER BY cnt DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: querying classes: %w", err)
	}
	defer rows.Close()

	var out []ClassCount
	for rows.Next() {
		var c ClassCount
		if err := rows.Scan(&c.ID, &c.Cnt); err != nil {
			return nil, fmt.Errorf("store: scanning class row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Clear removes the database file so a fresh run can start from empty.
// It replaces the whole file rather than deleting rows in place.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: removing %s: %w", path, err)
	}
	return nil
}
