// Package storage persists preference values for the settings package.
//
// Stores are opened by provider name through New: "sqlite" (the default for
// the command line), "redis" and "memory". NewPreferencesStore is not a named
// provider; it is library API for fyne hosts, which pass their app's
// Preferences so settings live in the platform preference store.
package storage

import "github.com/rs/zerolog"

// Store defines the key-value persistence used to hold preferences.
// Implementations may keep values in memory or in external backends like Redis or SQLite.
type Store interface {
	// Get retrieves a value by key. Returns the value and true if found, or nil and false if not.
	Get(key string) ([]byte, bool)

	// Set stores a value with the given key. If the key already exists, it is overwritten.
	// Backend failures are reported to the configured Logger, never to the caller.
	Set(key string, value []byte)

	// Contains checks whether a key exists.
	Contains(key string) bool

	// Len returns the number of persisted keys.
	Len() int

	// Close releases any resources held by the store (e.g., network connections).
	// For in-memory stores, this is a no-op.
	Close() error
}

// Logger receives error reports from store operations.
type Logger interface {
	Error(msg string, err error)
}

type zerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger to the store Logger interface.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return zerologAdapter{logger: logger}
}

func (z zerologAdapter) Error(msg string, err error) {
	z.logger.Error().Err(err).Msg(msg)
}
