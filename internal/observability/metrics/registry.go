package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	// HTTPRequestsTotal counts requests by method, normalized path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPResponseSize measures response body size in bytes.
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight is the number of requests currently being served.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// HTTPWritesThrottledTotal counts write requests rejected by the rate limiter.
	HTTPWritesThrottledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_writes_throttled_total",
			Help: "Total number of write requests rejected with 429",
		},
	)
)

// Business metrics
var (
	// ArticlesCreatedTotal counts successfully created articles.
	ArticlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles created",
		},
	)

	// CommentsCreatedTotal counts successfully created comments.
	CommentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_created_total",
			Help: "Total number of comments created",
		},
	)

	// WritesRejectedTotal counts create requests refused before storage,
	// by entity (article, comment) and reason (validation, not_found).
	WritesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "writes_rejected_total",
			Help: "Total number of create requests rejected before storage",
		},
		[]string{"entity", "reason"},
	)

	// ArticlesTotal is the number of stored articles, refreshed periodically.
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the database",
		},
	)

	// CommentsTotal is the number of stored comments, refreshed periodically.
	CommentsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "comments_total",
			Help: "Total number of comments in the database",
		},
	)
)

// Database metrics
var (
	// DBQueryDuration measures repository calls by operation.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsInUse is the number of pool connections in use.
	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		},
	)

	// DBConnectionsIdle is the number of idle pool connections.
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// CircuitBreakerState is 0 (closed), 1 (half-open) or 2 (open) per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
		},
		[]string{"name"},
	)
)
