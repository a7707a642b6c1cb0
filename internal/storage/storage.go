package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/commutewell/internal/storage/postgres"
	"github.com/julianstephens/commutewell/internal/storage/sqlite"
)

// NewSQLiteStore returns a store backed by a local SQLite file.
func NewSQLiteStore(path string) *Store {
	return New(sqlite.NewKV(ExpandPath(path)))
}

// NewJSONStore returns a store backed by a single JSON file.
func NewJSONStore(path string) *Store {
	return New(NewJSONKV(ExpandPath(path)))
}

// NewPostgresStore returns a store backed by a PostgreSQL database.
func NewPostgresStore(connStr string) *Store {
	return New(postgres.NewKV(connStr))
}

// FromConfig picks a backend from the --config value: a postgres://
// connection string, a .json path, or (default) a SQLite file path.
func FromConfig(config string) *Store {
	switch {
	case IsPostgresConn(config):
		return NewPostgresStore(config)
	case strings.HasSuffix(config, ".json"):
		return NewJSONStore(config)
	default:
		return NewSQLiteStore(config)
	}
}

// IsPostgresConn reports whether the config value is a Postgres
// connection string.
func IsPostgresConn(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those are refused; use env vars or .pgpass instead.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
