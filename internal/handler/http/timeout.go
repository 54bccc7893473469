package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"pressroom/internal/handler/http/respond"
)

// Timeout returns middleware that enforces request timeouts.
// If a request takes longer than the specified duration, it returns 504 Gateway Timeout.
// The context is canceled so that storage calls downstream stop early.
//
// The handler runs in its own goroutine and writes into a private header map;
// only one of the handler and the timeout path ever writes the response.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutResponseWriter{w: w, header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				return
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !tw.wroteHeader {
					respond.Error(w, http.StatusGatewayTimeout, "request timeout")
				}
			}
		})
	}
}

// timeoutResponseWriter wraps http.ResponseWriter to prevent writes after timeout.
type timeoutResponseWriter struct {
	w           http.ResponseWriter
	header      http.Header
	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
}

func (tw *timeoutResponseWriter) Header() http.Header { return tw.header }

func (tw *timeoutResponseWriter) WriteHeader(statusCode int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.writeHeaderLocked(statusCode)
}

func (tw *timeoutResponseWriter) writeHeaderLocked(statusCode int) {
	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.wroteHeader = true
	dst := tw.w.Header()
	for k, v := range tw.header {
		dst[k] = v
	}
	tw.w.WriteHeader(statusCode)
}

func (tw *timeoutResponseWriter) Write(data []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	tw.writeHeaderLocked(http.StatusOK)
	return tw.w.Write(data)
}
