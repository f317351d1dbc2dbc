package storage

import (
	"sync"

	"fyne.io/fyne/v2"
)

// absentSentinel is returned by StringWithFallback when a key was never written.
const absentSentinel = "\x00readerprefs:absent"

// preferencesStore adapts the fyne app preferences, the platform key-value
// store on mobile targets, to the Store interface. Values are kept as strings.
type preferencesStore struct {
	prefs fyne.Preferences

	mu   sync.Mutex
	keys map[string]struct{}
}

// NewPreferencesStore returns a Store backed by a fyne.Preferences, typically app.Preferences().
func NewPreferencesStore(prefs fyne.Preferences) Store {
	return &preferencesStore{prefs: prefs, keys: make(map[string]struct{})}
}

func (p *preferencesStore) Get(key string) ([]byte, bool) {
	val := p.prefs.StringWithFallback(key, absentSentinel)
	if val == absentSentinel {
		return nil, false
	}
	p.track(key)
	return []byte(val), true
}

func (p *preferencesStore) Set(key string, value []byte) {
	p.prefs.SetString(key, string(value))
	p.track(key)
}

func (p *preferencesStore) Contains(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len counts the keys this store has observed; fyne exposes no enumeration.
func (p *preferencesStore) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.keys)
}

func (p *preferencesStore) Close() error {
	return nil
}

func (p *preferencesStore) track(key string) {
	p.mu.Lock()
	p.keys[key] = struct{}{}
	p.mu.Unlock()
}
