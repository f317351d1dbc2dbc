package storage

import (
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryStore)
}

// memoryStore keeps preferences in a golang-lru map with no capacity limit
// and no expiry. Values are lost when the process exits.
type memoryStore struct {
	inner *lru.LRU[string, []byte]
}

func newMemoryStore(ProviderConfig) (Store, error) {
	return &memoryStore{
		inner: lru.NewLRU[string, []byte](0, nil, 0),
	}, nil
}

func (m *memoryStore) Get(key string) ([]byte, bool) {
	return m.inner.Get(key)
}

func (m *memoryStore) Set(key string, value []byte) {
	// Copy so later mutation of the caller's slice cannot change the stored value.
	m.inner.Add(key, append([]byte(nil), value...))
}

func (m *memoryStore) Contains(key string) bool {
	return m.inner.Contains(key)
}

func (m *memoryStore) Len() int {
	return m.inner.Len()
}

func (m *memoryStore) Close() error {
	return nil
}
