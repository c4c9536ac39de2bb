package persist

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite is the registry-like Adapter: one kv table scoped by storage
// location, so many applications can share a single database file.
type SQLite struct {
	db    *sql.DB
	Path  string
	scope string
}

// DefaultDBPath returns the default database path: ~/.filemru/filemru.db
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".filemru", "filemru.db"), nil
}

// OpenSQLite opens (or creates) the SQLite database at the given path,
// configures pragmas, and runs migrations.
func OpenSQLite(path string, loc Location) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	s := &SQLite{db: sqlDB, Path: path, scope: loc.Scope()}
	if err := s.configurePragmas(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// OpenMemory opens an in-memory SQLite store for testing.
func OpenMemory(loc Location) (*SQLite, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}

	s := &SQLite{db: sqlDB, Path: ":memory:", scope: loc.Scope()}
	if err := s.configurePragmas(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	return nil
}

// ReadString implements Adapter. A missing row or a query failure both
// yield the fallback.
func (s *SQLite) ReadString(section, key, fallback string) string {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM kv WHERE scope = ? AND section = ? AND key = ?
	`, s.scope, section, key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback
	}
	if err != nil {
		log.Printf("persist: read %s/%s: %v", section, key, err)
		return fallback
	}
	return value
}

// WriteString implements Adapter.
func (s *SQLite) WriteString(section, key, value string) error {
	now := time.Now().UnixMilli()
	_, err := s.db.Exec(`
		INSERT INTO kv (scope, section, key, value, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (scope, section, key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.scope, section, key, value, now)
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", section, key, err)
	}
	return nil
}

// EraseSection implements Adapter.
func (s *SQLite) EraseSection(section string) error {
	_, err := s.db.Exec(`
		DELETE FROM kv WHERE scope = ? AND section = ?
	`, s.scope, section)
	if err != nil {
		return fmt.Errorf("erase section %s: %w", section, err)
	}
	return nil
}

// Close implements Adapter.
func (s *SQLite) Close() error {
	return s.db.Close()
}
