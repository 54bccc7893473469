package db

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB used by the SQL repositories.
// It is also satisfied by circuitbreaker.DBCircuitBreaker, so repositories can
// run either directly on the pool or behind the breaker.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ Querier = (*sql.DB)(nil)
