package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS articles (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		title        TEXT,
		source       TEXT,
		url          TEXT UNIQUE,
		summary      TEXT,
		sentiment    TEXT,
		published_at TEXT,
		processed_at TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_articles_processed ON articles(processed_at DESC);
`

// Open opens the SQLite store at path, creating the file and schema if
// needed. The store assumes a single writer process.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return conn, nil
}
