package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	kind  TEXT NOT NULL,
	key   TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (kind, key)
);
`

// KV is the SQLite key-value backend: one JSON blob per (kind, key).
type KV struct {
	path string
	db   *sql.DB
}

// NewKV creates a SQLite backend at the given path.
func NewKV(path string) *KV {
	return &KV{path: path}
}

func (s *KV) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *KV) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'commutewell init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema is idempotent; creating on load covers older files
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}
	return nil
}

func (s *KV) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *KV) GetConfigPath() string { return s.path }

func (s *KV) Get(kind, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM records WHERE kind = ? AND key = ?", kind, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *KV) Set(kind, key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO records (kind, key, value) VALUES (?, ?, ?)",
		kind, key, string(value),
	)
	return err
}

func (s *KV) Delete(kind, key string) error {
	_, err := s.db.Exec("DELETE FROM records WHERE kind = ? AND key = ?", kind, key)
	return err
}

func (s *KV) List(kind string) ([][]byte, error) {
	rows, err := s.db.Query(
		"SELECT value FROM records WHERE kind = ? ORDER BY key", kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values [][]byte
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, []byte(value))
	}
	return values, rows.Err()
}
