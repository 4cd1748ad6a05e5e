// Package metrics provides Prometheus metrics for the access engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeGranted = "granted"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheClear = "clear"

	SnapshotOK     = "ok"
	SnapshotFailed = "failed"
)

var (
	// resolutionsTotal counts access resolutions.
	// Labels:
	//   - outcome: granted, empty (no permissions and no departments) or error
	resolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_resolutions_total",
			Help: "Total number of access resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// resolutionDuration times a resolution, cache lookups included.
	resolutionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "access_resolution_duration_seconds",
			Help:    "Duration of access resolutions in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// cacheEventsTotal counts result cache activity.
	// Labels:
	//   - event: hit, miss or clear
	cacheEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_cache_events_total",
			Help: "Total number of access result cache events",
		},
		[]string{"event"},
	)

	// snapshotBuildsTotal counts rebuilds of the department/role/menu snapshot.
	snapshotBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_snapshot_builds_total",
			Help: "Total number of access snapshot builds by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(resolutionsTotal)
	prometheus.MustRegister(resolutionDuration)
	prometheus.MustRegister(cacheEventsTotal)
	prometheus.MustRegister(snapshotBuildsTotal)
}

func RecordResolution(outcome string, durationSeconds float64) {
	resolutionsTotal.WithLabelValues(outcome).Inc()
	resolutionDuration.Observe(durationSeconds)
}

func RecordCacheEvent(event string) {
	cacheEventsTotal.WithLabelValues(event).Inc()
}

func RecordSnapshotBuild(outcome string) {
	snapshotBuildsTotal.WithLabelValues(outcome).Inc()
}
