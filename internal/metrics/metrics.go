package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Preference metrics
var (
	SettingsWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reader_settings_writes_total",
			Help: "Total number of preference writes per option.",
		},
		[]string{"option"},
	)
)

// Media download view metrics
var (
	MediaViewTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reader_media_view_transitions_total",
			Help: "Total number of media download view mode changes.",
		},
		[]string{"from", "to"},
	)

	MediaDownloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reader_media_downloads_total",
			Help: "Total number of media downloads driven by the download view.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		SettingsWritesTotal,
		MediaViewTransitionsTotal,
		MediaDownloadsTotal,
	)
}
