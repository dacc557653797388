package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Tree mutations by operation.
	TreeMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tree_mutation_count",
			Help: "Total number of tree mutations applied",
		},
		[]string{"operation"},
	)

	// Snapshot cache lookups by result.
	CacheLookupCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_cache_lookup_count",
			Help: "Total number of snapshot cache lookups",
		},
		[]string{"key", "result"}, // result: hit, miss, error
	)
)

// RecordHTTPRequestDuration records one served HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementTreeMutation counts one applied mutation.
func IncrementTreeMutation(operation string) {
	TreeMutationCount.WithLabelValues(operation).Inc()
}

// IncrementCacheLookup counts one cache lookup outcome.
func IncrementCacheLookup(key, result string) {
	CacheLookupCount.WithLabelValues(key, result).Inc()
}
