package storage

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// getCounterVecValue reads the current value of a CounterVec for the given labels.
func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// newInstrumentedTestStore creates an instrumented memory store with the given group and
// registers a cleanup that calls Close() at the end of the test.
func newInstrumentedTestStore(t *testing.T, group string) Store {
	t.Helper()
	s, err := New("memory", ProviderConfig{Group: group})
	if err != nil {
		t.Fatalf("New instrumented store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInstrumentedStore_Reads(t *testing.T) {
	s := newInstrumentedTestStore(t, "test-reads")

	s.Set("k", []byte("v"))
	hitsBefore := getCounterVecValue(ReadsTotal, "test-reads", "hit")
	missesBefore := getCounterVecValue(ReadsTotal, "test-reads", "miss")

	_, _ = s.Get("k")      // hit
	_, _ = s.Get("absent") // miss

	if diff := getCounterVecValue(ReadsTotal, "test-reads", "hit") - hitsBefore; diff != 1 {
		t.Errorf("Expected hits to increment by 1, got diff %.0f", diff)
	}
	if diff := getCounterVecValue(ReadsTotal, "test-reads", "miss") - missesBefore; diff != 1 {
		t.Errorf("Expected misses to increment by 1, got diff %.0f", diff)
	}
}

func TestInstrumentedStore_Writes(t *testing.T) {
	s := newInstrumentedTestStore(t, "test-writes")

	before := getCounterVecValue(WritesTotal, "test-writes")
	s.Set("a", []byte("1"))
	s.Set("a", []byte("2"))

	if diff := getCounterVecValue(WritesTotal, "test-writes") - before; diff != 2 {
		t.Errorf("Expected writes to increment by 2, got diff %.0f", diff)
	}
}

// gatherPersistedKeys scrapes the key gauge through its own registry and
// returns the value for store, or -1 when the store is not reported.
func gatherPersistedKeys(t *testing.T, store string) float64 {
	t.Helper()
	reg := prometheus.NewRegistry()
	reg.MustRegister(persistedKeys)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "reader_storage_persisted_keys" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "store" && lp.GetValue() == store {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	return -1
}

func TestInstrumentedStore_PersistedKeys(t *testing.T) {
	s := newInstrumentedTestStore(t, "test-keys")

	if v := gatherPersistedKeys(t, "test-keys"); v != 0 {
		t.Fatalf("Expected 0 keys before Set, got %.0f", v)
	}

	s.Set("ui_language", []byte("fr"))
	s.Set("download_media", []byte("false"))
	s.Set("ui_language", []byte("de"))

	if v := gatherPersistedKeys(t, "test-keys"); v != 2 {
		t.Errorf("Expected 2 keys after writing two options, got %.0f", v)
	}
}

func TestInstrumentedStore_Close_StopsReportingKeys(t *testing.T) {
	s, err := New("memory", ProviderConfig{Group: "test-close"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !persistedKeys.tracked("test-close") {
		t.Fatal("Expected key count to be reported after New()")
	}

	_ = s.Close()

	if persistedKeys.tracked("test-close") {
		t.Fatal("Expected key count to stop being reported after Close()")
	}
	if v := gatherPersistedKeys(t, "test-close"); v != -1 {
		t.Errorf("Expected no series for a closed store, got %.0f", v)
	}
}

func TestInstrument_EmptyGroup(t *testing.T) {
	inner, err := New("memory", ProviderConfig{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer inner.Close()

	if Instrument(inner, "") != inner {
		t.Error("Expected Instrument with an empty group to return the store unchanged")
	}
}
