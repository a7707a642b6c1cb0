package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	kind  TEXT NOT NULL,
	key   TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (kind, key)
);
`

// KV is the PostgreSQL key-value backend, for users who point the
// tracker at a shared database instead of a local file.
type KV struct {
	connStr string
	db      *sql.DB
}

// NewKV creates a Postgres backend for the given connection string.
func NewKV(connStr string) *KV {
	return &KV{connStr: connStr}
}

func (s *KV) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *KV) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}
	return nil
}

func (s *KV) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *KV) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *KV) GetConfigPath() string { return s.connStr }

func (s *KV) Get(kind, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM records WHERE kind = $1 AND key = $2", kind, key,
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
		`INSERT INTO records (kind, key, value) VALUES ($1, $2, $3)
		 ON CONFLICT (kind, key) DO UPDATE SET value = EXCLUDED.value`,
		kind, key, string(value),
	)
	return err
}

func (s *KV) Delete(kind, key string) error {
	_, err := s.db.Exec("DELETE FROM records WHERE kind = $1 AND key = $2", kind, key)
	return err
}

func (s *KV) List(kind string) ([][]byte, error) {
	rows, err := s.db.Query(
		"SELECT value FROM records WHERE kind = $1 ORDER BY key", kind,
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
