// Package recent keeps the list of recently opened and saved files in a
// SQLite database inside the config directory.
package recent

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DBFileName is the database file inside the config directory.
const DBFileName = "recent.db"

// DefaultLimit is how many entries List returns when asked for zero.
const DefaultLimit = 10

const schema = `
CREATE TABLE IF NOT EXISTS recent_files (
	path    TEXT PRIMARY KEY,
	used_at INTEGER NOT NULL
)`

// Entry is one remembered file.
type Entry struct {
	Path   string
	UsedAt time.Time
}

// Store is the recent files database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database in dir.
func Open(dir string) (*Store, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// one writer at a time; the TUI and a CLI command may share the file
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Touch records that path was used at t. Relative paths are made absolute.
func (s *Store) Touch(path string, t time.Time) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO recent_files (path, used_at) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET used_at = excluded.used_at
	`, abs, t.UnixNano())
	if err != nil {
		return fmt.Errorf("recording %s: %w", abs, err)
	}
	return nil
}

// List returns up to limit entries, most recent first.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(`
		SELECT path, used_at FROM recent_files
		ORDER BY used_at DESC, path
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent files: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var usedAt int64
		if err := rows.Scan(&e.Path, &usedAt); err != nil {
			return nil, fmt.Errorf("scanning recent file: %w", err)
		}
		e.UsedAt = time.Unix(0, usedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading recent files: %w", err)
	}

	return entries, nil
}

// Remove forgets path.
func (s *Store) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM recent_files WHERE path = ?", abs); err != nil {
		return fmt.Errorf("removing %s: %w", abs, err)
	}
	return nil
}

// Clear forgets every file.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM recent_files"); err != nil {
		return fmt.Errorf("clearing recent files: %w", err)
	}
	return nil
}

// Close closes the database. A nil store is fine.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil && !errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
