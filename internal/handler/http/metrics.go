package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/responsewriter"
	"pressroom/internal/observability/metrics"
)

// MetricsMiddleware records HTTP request metrics including duration, size, and status codes.
// Paths are normalized so that article IDs do not explode label cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		wrapped := responsewriter.Wrap(w)
		start := time.Now()
		next.ServeHTTP(wrapped, r)

		metrics.RecordHTTPRequest(
			r.Method,
			pathutil.NormalizePath(r.URL.Path),
			wrapped.StatusCode(),
			time.Since(start),
			wrapped.BytesWritten(),
		)
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
