// Package main provides a CLI command that prepares a SQL database.
// Usage: pressroom-seed [--fresh] [--no-seed] [--timeout 30s]
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"pressroom/internal/infra/adapter/persistence/postgres"
	"pressroom/internal/infra/adapter/persistence/sqlite"
	"pressroom/internal/infra/db"
	"pressroom/internal/observability/logging"
	"pressroom/internal/repository"
	"pressroom/internal/resilience/retry"
	"pressroom/pkg/config"
)

func main() {
	var (
		fresh   bool
		noSeed  bool
		timeout time.Duration
	)
	flag.BoolVar(&fresh, "fresh", false, "Drop all tables before migrating (destroys stored data)")
	flag.BoolVar(&noSeed, "no-seed", false, "Only run migrations")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "Overall time limit")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := run(ctx, fresh, !noSeed); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, fresh, seed bool) error {
	driver := config.GetEnvString("DB_DRIVER", db.DriverPostgres)
	if err := config.ValidateOneOf("DB_DRIVER", driver, db.DriverPostgres, db.DriverSQLite); err != nil {
		return err
	}

	opts := db.Options{
		Driver: driver,
		DSN:    config.GetEnvString("DATABASE_URL", ""),
		Pool:   db.ConnectionConfigFromEnv(db.DefaultConnectionConfig()),
	}

	var sqlDB *sql.DB
	err := retry.WithBackoff(ctx, retry.ConnectConfig(), func() error {
		var err error
		sqlDB, err = db.Open(ctx, opts)
		return err
	})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if fresh {
		slog.Warn("dropping existing tables")
		if err := db.MigrateDown(ctx, sqlDB); err != nil {
			return err
		}
	}
	if err := db.MigrateUp(ctx, sqlDB, driver); err != nil {
		return err
	}
	slog.Info("migrations applied", slog.String("driver", driver), slog.Bool("fresh", fresh))

	if !seed {
		return nil
	}
	var articles repository.ArticleRepository
	var comments repository.CommentRepository
	if driver == db.DriverSQLite {
		articles, comments = sqlite.NewArticleRepo(sqlDB), sqlite.NewCommentRepo(sqlDB)
	} else {
		articles, comments = postgres.NewArticleRepo(sqlDB), postgres.NewCommentRepo(sqlDB)
	}
	_, err = db.Seed(ctx, articles, comments)
	return err
}
