// Package resilience groups the fault tolerance helpers used around the database:
//
//   - circuitbreaker: a gobreaker-backed breaker that stops hammering an
//     unavailable database and fails requests fast while it is open.
//   - retry: exponential backoff with jitter, used only while establishing the
//     initial connection at startup. Request handling never retries.
//
// Usage Example:
//
//	err := retry.WithBackoff(ctx, retry.ConnectConfig(), func() error {
//	    conn, err = db.Open(ctx, opts)
//	    return err
//	})
//	breaker := circuitbreaker.NewDBCircuitBreaker(conn)
//	articles := postgres.NewArticleRepo(breaker)
package resilience
