package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "venuesearch",
			Name:      "searches_total",
			Help:      "Total number of tiered searches by resolving tier",
		},
		[]string{"tier"}, // "1".."5" / "exhausted"
	)

	BackendTierDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "venuesearch",
			Name:      "backend_tier_duration_seconds",
			Help:      "Backend round-trip duration per tier in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"tier"},
	)

	BackendTierErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "venuesearch",
			Name:      "backend_tier_errors_total",
			Help:      "Total backend errors per tier",
		},
		[]string{"tier"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(BackendTierDuration)
	prometheus.MustRegister(BackendTierErrorsTotal)
	searchMetricsRegistered = true
}
