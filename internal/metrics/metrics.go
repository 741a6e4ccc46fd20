// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rankcheck"

// Query outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
)

// Verdict cache lookup results.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

var (
	registerOnce sync.Once

	queriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of keyword queries by outcome",
	}, []string{"outcome"})
	matchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "matches_total",
		Help:      "Total number of primary matches by match kind",
	}, []string{"kind"})
	queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Histogram of ranking durations in seconds by operation",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2.5, 10), // 100µs up to ~0.4s
	}, []string{"operation"})
	batchKeywords = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_keywords",
		Help:      "Number of keywords per batch request",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Verdict cache lookups by result",
	}, []string{"result"})

	memoryAllocGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "process_memory_alloc_bytes",
		Help:      "Current process memory allocation (runtime.Alloc)",
	})
	goroutinesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "process_goroutines",
		Help:      "Number of currently running goroutines",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(queriesTotal, matchesTotal, queryDuration, batchKeywords,
			cacheLookups, memoryAllocGauge, goroutinesGauge)
	})
}

// Query helpers
func IncQuery(outcome string) { queriesTotal.WithLabelValues(outcome).Inc() }
func IncMatch(kind string)    { matchesTotal.WithLabelValues(kind).Inc() }
func ObserveQueryDuration(operation string, d time.Duration) {
	queryDuration.WithLabelValues(operation).Observe(d.Seconds())
}
func ObserveBatchSize(n int)       { batchKeywords.Observe(float64(n)) }
func IncCacheLookup(result string) { cacheLookups.WithLabelValues(result).Inc() }

// Gauges
func SetMemoryAlloc(b uint64) { memoryAllocGauge.Set(float64(b)) }
func SetGoroutines(n int)     { goroutinesGauge.Set(float64(n)) }
