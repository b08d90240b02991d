// Package observability provides metrics and tracing instrumentation.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheHits counts cache-aside hits by key class.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_cache_hits_total",
		Help: "Total number of cache hits by key class",
	}, []string{"key"})

	// CacheMisses counts cache-aside misses by key class.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_cache_misses_total",
		Help: "Total number of cache misses by key class",
	}, []string{"key"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ripple_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// WebSocketConnectionsTotal is the gauge of total WebSocket connections.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ripple_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// WebSocketBackpressureDrops counts messages dropped due to backpressure by hub and reason.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"hub", "reason"})

	// RealtimeEventsTotal counts realtime events published by type.
	RealtimeEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_realtime_events_total",
		Help: "Total number of realtime events published by type",
	}, []string{"event_type"})

	// AccountCascadeDuration records how long full account deletions take.
	AccountCascadeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ripple_account_cascade_duration_seconds",
		Help:    "Duration of account deletion cascades in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// AccountCascadeRowsDeleted counts rows removed by account cascades per table.
	AccountCascadeRowsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_account_cascade_rows_deleted_total",
		Help: "Total rows removed by account deletion cascades, by table",
	}, []string{"table"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct{}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics() *DatabaseMetrics {
	return &DatabaseMetrics{}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
