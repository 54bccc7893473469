package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/logging"
	"pressroom/internal/observability/metrics"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// WriteLimiter throttles write requests per client IP with a token bucket.
type WriteLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rate    rate.Limit
	burst   int
	now     func() time.Time
}

// NewWriteLimiter allows perSecond sustained writes per client with the given burst.
func NewWriteLimiter(perSecond float64, burst int) *WriteLimiter {
	return &WriteLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    rate.Limit(perSecond),
		burst:   burst,
		now:     time.Now,
	}
}

// Middleware rejects requests over the client's budget with 429.
func (wl *WriteLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !wl.allow(ip) {
			metrics.HTTPWritesThrottledTotal.Inc()
			logging.FromContext(r.Context()).Warn("write throttled",
				"client_ip", ip,
				"path", r.URL.Path)

			retryAfter := 1
			if wl.rate > 0 {
				retryAfter = max(1, int(1/float64(wl.rate)))
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			respond.Error(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (wl *WriteLimiter) allow(key string) bool {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	now := wl.now()
	c, ok := wl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(wl.rate, wl.burst)}
		wl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Cleanup drops clients not seen for idle and returns how many were removed.
func (wl *WriteLimiter) Cleanup(idle time.Duration) int {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	cutoff := wl.now().Add(-idle)
	removed := 0
	for key, c := range wl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(wl.clients, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (wl *WriteLimiter) Len() int {
	wl.mu.Lock()
	defer wl.mu.Unlock()
	return len(wl.clients)
}

// clientIP keys clients by the connection's remote host. Forwarding headers
// are ignored since they are client-controlled.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
