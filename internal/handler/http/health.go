// Package http provides the HTTP server plumbing for the API: health check
// endpoints, metrics collection, request logging, panic recovery, timeouts
// and write throttling. Resource handlers live in sub-packages.
package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Pinger is satisfied by *sql.DB and by the database circuit breaker.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// BreakerStater reports the state of a circuit breaker.
type BreakerStater interface {
	State() gobreaker.State
}

// HealthHandler handles health check endpoint requests.
// DB is nil when articles are kept in process memory.
type HealthHandler struct {
	DB      Pinger
	Stats   func() sql.DBStats // optional pool statistics
	Breaker BreakerStater      // optional
	Version string
}

// ServeHTTP performs health checks and returns the application health status.
// Returns 200 OK if healthy or degraded, or 503 Service Unavailable if any check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{"database": h.checkDatabase(ctx)}
	if h.Breaker != nil {
		checks["circuit_breaker"] = h.checkBreaker()
	}

	status := statusHealthy
	statusCode := http.StatusOK
	for _, c := range checks {
		if c.Status == statusUnhealthy {
			status = statusUnhealthy
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Default().Error("health: failed to encode response", slog.Any("error", err))
	}
}

// checkDatabase pings the database and reports connection pool statistics.
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: statusHealthy, Message: "in-memory storage"}
	}

	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: statusUnhealthy, Message: err.Error()}
	}
	if h.Stats == nil {
		return CheckStatus{Status: statusHealthy}
	}

	stats := h.Stats()
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	// Guard against zero division when MaxOpenConnections is 0 (unlimited)
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{Status: statusHealthy, Details: details}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}

	return CheckStatus{Status: statusHealthy, Details: details}
}

// checkBreaker treats an open breaker as unhealthy; half-open is degraded.
func (h *HealthHandler) checkBreaker() CheckStatus {
	state := h.Breaker.State()
	details := map[string]any{"state": state.String()}
	switch state {
	case gobreaker.StateOpen:
		return CheckStatus{Status: statusUnhealthy, Message: "database circuit breaker open", Details: details}
	case gobreaker.StateHalfOpen:
		return CheckStatus{Status: statusDegraded, Details: details}
	default:
		return CheckStatus{Status: statusHealthy, Details: details}
	}
}

// ReadyHandler handles Kubernetes readiness probe requests.
// It checks that storage is reachable before traffic is routed here.
type ReadyHandler struct {
	DB Pinger
}

// ServeHTTP returns 200 OK if ready, or 503 Service Unavailable if the
// database does not answer.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			http.Error(w, "database not ready", http.StatusServiceUnavailable)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler handles Kubernetes liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 OK while the process can respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
