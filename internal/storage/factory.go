package storage

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/Belphemur/ReaderSettings/internal/apperrors"
)

// ProviderConfig carries every setting a provider may need. Each provider
// reads only its own fields.
type ProviderConfig struct {
	// Logger receives backend failures that Set cannot return. Nil drops them.
	Logger Logger

	// Path is the SQLite database file. ":memory:" keeps the database in process.
	Path string

	// Redis connection for the redis provider.
	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// KeyPrefix namespaces the settings hash in a shared Redis. Defaults to "readerprefs:".
	KeyPrefix string

	// Group labels the store's metrics. Empty leaves the store uninstrumented.
	Group string
}

// Provider opens a Store.
type Provider func(cfg ProviderConfig) (Store, error)

// providerTable maps provider names to constructors. Providers add themselves
// from init, so lookups after startup only take the read lock.
type providerTable struct {
	mu     sync.RWMutex
	byName map[string]Provider
}

var providers = &providerTable{byName: make(map[string]Provider)}

func (t *providerTable) add(name string, p Provider) error {
	if p == nil {
		return fmt.Errorf("storage: provider %q is nil", name)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, taken := t.byName[name]; taken {
		return fmt.Errorf("storage: provider %q already registered", name)
	}
	t.byName[name] = p
	return nil
}

func (t *providerTable) lookup(name string) (Provider, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.byName[name]
	return p, ok
}

func (t *providerTable) names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.byName))
}

// Register makes a provider available to New. It is meant for init functions
// and panics on a nil provider or a name already in use.
func Register(name string, p Provider) {
	if err := providers.add(name, p); err != nil {
		panic(err)
	}
}

// New opens the preference store named by name, e.g. "sqlite" or "redis".
// The store is instrumented when cfg.Group is set.
func New(name string, cfg ProviderConfig) (Store, error) {
	open, ok := providers.lookup(name)
	if !ok {
		return nil, &apperrors.ErrUnknownProvider{Name: name, Registered: RegisteredProviders()}
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}

	store, err := open(cfg)
	if err != nil {
		return nil, err
	}
	return Instrument(store, cfg.Group), nil
}

// Instrument adds read, write and key-count metrics to s under group.
// An empty group returns s unchanged.
func Instrument(s Store, group string) Store {
	if group == "" {
		return s
	}
	return newInstrumentedStore(s, group)
}

// RegisteredProviders lists the provider names New accepts, sorted.
func RegisteredProviders() []string {
	return providers.names()
}
