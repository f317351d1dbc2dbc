package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

const memoryPath = ":memory:"

func init() {
	Register("sqlite", newSQLiteStore)
}

// sqliteStore keeps preferences in a single key/value table of a SQLite file.
type sqliteStore struct {
	db     *sql.DB
	logger Logger
}

func newSQLiteStore(cfg ProviderConfig) (Store, error) {
	path := cfg.Path
	if path == "" {
		return nil, errors.New("sqlite store: path is required")
	}
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite store: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open database: %w", err)
	}
	// A single connection serialises writes and keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value BLOB
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite store: create schema: %w", err)
	}

	return &sqliteStore{db: db, logger: cfg.Logger}, nil
}

func (s *sqliteStore) logError(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(msg, err)
	}
}

func (s *sqliteStore) Get(key string) ([]byte, bool) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logError("sqlite store Get failed", err)
		}
		return nil, false
	}
	return value, true
}

func (s *sqliteStore) Set(key string, value []byte) {
	_, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		s.logError("sqlite store Set failed", err)
	}
}

func (s *sqliteStore) Contains(key string) bool {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM settings WHERE key = ?`, key).Scan(&one)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.logError("sqlite store Contains failed", err)
	}
	return err == nil
}

func (s *sqliteStore) Len() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&n); err != nil {
		s.logError("sqlite store Len failed", err)
		return 0
	}
	return n
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
