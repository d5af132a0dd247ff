package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyBuckets = []float64{
	0.001, // 1ms
	0.005, // 5ms
	0.01,  // 10ms
	0.025, // 25ms
	0.05,  // 50ms
	0.1,   // 100ms
	0.25,  // 250ms
	0.5,   // 500ms
	1.0,   // 1s
}

var (
	// ClicksTotal counts RecordClick outcomes by result
	// (accepted, rejected, error).
	ClicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boost_clicks_total",
			Help: "Number of boost clicks by result",
		},
		[]string{"result"},
	)

	// ClickConflicts counts optimistic concurrency retries on the click path.
	ClickConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boost_click_conflicts_total",
			Help: "Number of click commits retried after a version conflict",
		},
	)

	ClickDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "boost_click_duration_seconds",
			Help:    "Duration of click recording in seconds",
			Buckets: latencyBuckets,
		},
		[]string{"result"},
	)

	// Transitions counts status changes by the status entered.
	Transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boost_transitions_total",
			Help: "Number of boost status transitions by new status",
		},
		[]string{"status"},
	)

	SweepRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boost_sweep_runs_total",
			Help: "Number of expiry sweeps by outcome",
		},
		[]string{"outcome"},
	)

	// EventsPublished counts lifecycle events by delivery result
	// (ok, error, dropped).
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boost_events_published_total",
			Help: "Number of lifecycle events handed to the broker by result",
		},
		[]string{"result"},
	)

	ListingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "boost_listing_duration_seconds",
			Help:    "Duration of ranked listing composition in seconds",
			Buckets: latencyBuckets,
		},
		[]string{"target_type"},
	)
)

// RecordClick records the outcome and duration of a click.
func RecordClick(result string, duration float64) {
	ClicksTotal.WithLabelValues(result).Inc()
	ClickDuration.WithLabelValues(result).Observe(duration)
}

// RecordTransition counts n boosts entering status.
func RecordTransition(status string, n int) {
	Transitions.WithLabelValues(status).Add(float64(n))
}

// RecordListing records how long a listing took to build.
func RecordListing(targetType string, duration float64) {
	ListingDuration.WithLabelValues(targetType).Observe(duration)
}
