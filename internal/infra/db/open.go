package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"pressroom/pkg/config"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// ConnectionConfigFromEnv reads DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS,
// DB_CONN_MAX_LIFETIME and DB_CONN_MAX_IDLE_TIME on top of base.
// Non-positive values keep the base setting.
func ConnectionConfigFromEnv(base ConnectionConfig) ConnectionConfig {
	cfg := base
	if v := config.GetEnvInt("DB_MAX_OPEN_CONNS", 0); v > 0 {
		cfg.MaxOpenConns = v
	}
	if v := config.GetEnvInt("DB_MAX_IDLE_CONNS", 0); v > 0 {
		cfg.MaxIdleConns = v
	}
	if v := config.GetEnvDuration("DB_CONN_MAX_LIFETIME", 0); v > 0 {
		cfg.ConnMaxLifetime = v
	}
	if v := config.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 0); v > 0 {
		cfg.ConnMaxIdleTime = v
	}
	return cfg
}

// Options selects the driver and data source for Open.
type Options struct {
	Driver string
	DSN    string
	Pool   ConnectionConfig
}

// Open creates, configures and pings a connection pool.
// DriverMemory has no pool; callers handle it before calling Open.
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("open %s: empty DSN", opts.Driver)
	}

	name, dsn, pool, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("driver", opts.Driver),
		slog.Int("max_open_conns", pool.MaxOpenConns),
		slog.Int("max_idle_conns", pool.MaxIdleConns),
		slog.Duration("conn_max_lifetime", pool.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", pool.ConnMaxIdleTime))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", opts.Driver, err)
	}

	slog.Info("database connection established successfully")
	return db, nil
}

// prepare maps a driver to its database/sql name and adjusts DSN and pool.
func prepare(opts Options) (name, dsn string, pool ConnectionConfig, err error) {
	switch opts.Driver {
	case DriverPostgres:
		return "pgx", opts.DSN, opts.Pool, nil
	case DriverSQLite:
		// A single connection serialises writers and keeps ":memory:"
		// databases alive for the lifetime of the pool.
		pool = ConnectionConfig{MaxOpenConns: 1, MaxIdleConns: 1}
		return "sqlite3", sqliteDSN(opts.DSN), pool, nil
	default:
		return "", "", ConnectionConfig{}, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// sqliteDSN enables foreign key enforcement unless the DSN already sets it.
func sqliteDSN(dsn string) string {
	path, rawQuery, _ := strings.Cut(dsn, "?")
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		q = url.Values{}
	}
	if q.Get("_foreign_keys") == "" && q.Get("_fk") == "" {
		q.Set("_foreign_keys", "on")
	}
	return path + "?" + q.Encode()
}
