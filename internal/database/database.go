package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the default location of the spot registry
func DBPath() string {
	return filepath.Join("data", "jiai.db")
}

// Open opens the sqlite file at dbPath, creating its directory and schema if needed.
// ":memory:" is accepted for tests.
func Open(dbPath string) (*sql.DB, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the spots table. Safe to call repeatedly.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS spots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			style TEXT NOT NULL DEFAULT '',
			preset INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_spots_name ON spots(name);
		CREATE INDEX IF NOT EXISTS idx_spots_position ON spots(latitude, longitude);
	`)
	if err != nil {
		return fmt.Errorf("creating spots table: %w", err)
	}

	return nil
}
