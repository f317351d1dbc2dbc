package storage

// instrumentedStore counts reads and writes of the wrapped store and exposes
// its persisted key count under group.
type instrumentedStore struct {
	inner Store
	group string
}

func newInstrumentedStore(inner Store, group string) *instrumentedStore {
	persistedKeys.track(group, inner.Len)
	return &instrumentedStore{inner: inner, group: group}
}

func (s *instrumentedStore) Get(key string) ([]byte, bool) {
	val, ok := s.inner.Get(key)
	if ok {
		ReadsTotal.WithLabelValues(s.group, "hit").Inc()
	} else {
		ReadsTotal.WithLabelValues(s.group, "miss").Inc()
	}
	return val, ok
}

func (s *instrumentedStore) Set(key string, value []byte) {
	s.inner.Set(key, value)
	WritesTotal.WithLabelValues(s.group).Inc()
}

func (s *instrumentedStore) Contains(key string) bool {
	return s.inner.Contains(key)
}

func (s *instrumentedStore) Len() int {
	return s.inner.Len()
}

// Close stops reporting the key count and closes the wrapped store.
func (s *instrumentedStore) Close() error {
	persistedKeys.untrack(s.group)
	return s.inner.Close()
}
