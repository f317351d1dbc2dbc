package storage

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Preference store metrics, labelled by the ProviderConfig.Group of the store.
var (
	// ReadsTotal counts option reads, split by whether the key was persisted.
	ReadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reader_storage_reads_total",
			Help: "Total number of preference store reads.",
		},
		[]string{"store", "result"},
	)

	// WritesTotal counts option writes.
	WritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reader_storage_writes_total",
			Help: "Total number of preference store writes.",
		},
		[]string{"store"},
	)

	persistedKeys = newKeyGauge()
)

func init() {
	prometheus.MustRegister(
		ReadsTotal,
		WritesTotal,
		persistedKeys,
	)
}

// keyGauge reports how many options each open instrumented store has
// persisted. Counts are taken from the stores when scraped.
type keyGauge struct {
	desc *prometheus.Desc

	mu     sync.Mutex
	counts map[string]func() int
}

func newKeyGauge() *keyGauge {
	return &keyGauge{
		desc: prometheus.NewDesc(
			"reader_storage_persisted_keys",
			"Number of options persisted in the preference store.",
			[]string{"store"},
			nil,
		),
		counts: make(map[string]func() int),
	}
}

// track starts reporting count under store. A later store opened with the
// same group takes over the series.
func (g *keyGauge) track(store string, count func() int) {
	g.mu.Lock()
	g.counts[store] = count
	g.mu.Unlock()
}

func (g *keyGauge) untrack(store string) {
	g.mu.Lock()
	delete(g.counts, store)
	g.mu.Unlock()
}

func (g *keyGauge) tracked(store string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.counts[store]
	return ok
}

func (g *keyGauge) Describe(ch chan<- *prometheus.Desc) {
	ch <- g.desc
}

// Collect calls the stores outside the lock; a Redis or SQLite count may block.
func (g *keyGauge) Collect(ch chan<- prometheus.Metric) {
	g.mu.Lock()
	snapshot := make(map[string]func() int, len(g.counts))
	for store, count := range g.counts {
		snapshot[store] = count
	}
	g.mu.Unlock()

	for store, count := range snapshot {
		ch <- prometheus.MustNewConstMetric(g.desc, prometheus.GaugeValue, float64(count()), store)
	}
}
