package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker wraps a connection pool with circuit breaker protection.
// It satisfies db.Querier, so the SQL repositories can run behind it.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig returns the breaker configuration for the database.
// It opens after 5 requests that all failed and probes again after 30 seconds.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// NewDBCircuitBreaker wraps db using DBConfig.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(db, DBConfig())
}

// NewDBCircuitBreakerWithConfig wraps db using cfg.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(cfg),
		db: db,
	}
}

// QueryContext executes a query with circuit breaker protection.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement with circuit breaker protection.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext is passed straight to the pool.
// *sql.Row defers its error until Scan, so the breaker cannot observe it here;
// while the breaker is open the pool still reports the failure at Scan time.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// PingContext checks connectivity through the breaker. Used by the readiness probe.
func (dcb *DBCircuitBreaker) PingContext(ctx context.Context) error {
	_, err := dcb.cb.Execute(func() (interface{}, error) {
		return nil, dcb.db.PingContext(ctx)
	})
	return err
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}

// DB returns the underlying pool for work that must bypass the breaker,
// such as migrations at startup.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}
