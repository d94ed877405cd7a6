package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

var (
	// ErrElementNotFound is returned when a referenced element is not stored
	ErrElementNotFound = errors.New("element not found")
	// ErrElementExists is returned when adding an element whose ID is taken
	ErrElementExists = errors.New("element already exists")
)

const schema = `
CREATE TABLE IF NOT EXISTS elements (
	id TEXT PRIMARY KEY,
	label TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS links (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_id TEXT NOT NULL REFERENCES elements(id),
	target_id TEXT NOT NULL REFERENCES elements(id),
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS links_source ON links(source_id);
CREATE INDEX IF NOT EXISTS links_target ON links(target_id);
`

// DB wraps a SQLite database connection
type DB struct {
	conn *sql.DB
	Path string
}

// OpenDB opens a SQLite database with WAL mode and foreign keys enabled,
// creating the schema if it is missing.
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Each pooled connection to :memory: would get its own empty database
	if path == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	// Enable WAL mode for concurrent reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	d := &DB{conn: conn, Path: path}
	if err := d.Migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return d, nil
}

// Migrate creates the elements and links tables
func (d *DB) Migrate() error {
	if _, err := d.conn.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}

// Conn returns the underlying sql.DB for custom queries
func (d *DB) Conn() *sql.DB {
	return d.conn
}
