package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sony/gobreaker"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"pressroom/internal/config"
	"pressroom/internal/infra/adapter/persistence/memory"
	pgRepo "pressroom/internal/infra/adapter/persistence/postgres"
	liteRepo "pressroom/internal/infra/adapter/persistence/sqlite"
	"pressroom/internal/infra/db"
	"pressroom/internal/observability/logging"
	"pressroom/internal/observability/metrics"
	"pressroom/internal/observability/tracing"
	"pressroom/internal/repository"
	"pressroom/internal/resilience/circuitbreaker"
	"pressroom/internal/resilience/retry"

	artUC "pressroom/internal/usecase/article"

	hhttp "pressroom/internal/handler/http"
	harticle "pressroom/internal/handler/http/article"
	"pressroom/internal/handler/http/middleware"
	"pressroom/internal/handler/http/requestid"

	_ "pressroom/docs" // swagger docs
)

// @title           Pressroom API
// @version         1.0
// @description     Publish articles and collect reader comments.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = 10 * time.Minute
)

func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewProvider(tracing.Config{
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: cfg.Version,
		SampleRatio:    cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Error("failed to initialise tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer provider shutdown failed", slog.Any("error", err))
		}
	}()

	store, err := initStorage(ctx, logger, cfg.DB)
	if err != nil {
		logger.Error("failed to initialise storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close(logger)

	if cfg.DB.Seed {
		if _, err := db.Seed(ctx, store.Articles, store.Comments); err != nil {
			logger.Error("failed to seed sample data", slog.Any("error", err))
			os.Exit(1)
		}
	}

	components, err := setupServer(logger, cfg, store)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	if err := runServer(ctx, logger, cfg, components); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}

// initLogger builds the process logger from LOG_LEVEL and LOG_FORMAT and installs it as the default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// Storage bundles the repositories for the configured driver.
// DB and Breaker are nil for the in-memory driver.
type Storage struct {
	Articles repository.ArticleRepository
	Comments repository.CommentRepository
	DB       *sql.DB
	Breaker  *circuitbreaker.DBCircuitBreaker
}

// Close releases the connection pool, if any.
func (s *Storage) Close(logger *slog.Logger) {
	if s.DB == nil {
		return
	}
	if err := s.DB.Close(); err != nil {
		logger.Error("failed to close database", slog.Any("error", err))
	}
}

// initStorage opens the configured backend and runs its migrations.
// Connecting is retried so the API can start alongside its database.
func initStorage(ctx context.Context, logger *slog.Logger, cfg config.DBConfig) (*Storage, error) {
	if cfg.Driver == db.DriverMemory {
		mem := memory.New()
		logger.Info("using in-memory storage; data is lost on restart")
		return &Storage{Articles: mem.Articles(), Comments: mem.Comments()}, nil
	}

	var database *sql.DB
	err := retry.WithBackoff(ctx, retry.ConnectConfig(), func() error {
		var err error
		database, err = db.Open(ctx, db.Options{Driver: cfg.Driver, DSN: cfg.URL, Pool: cfg.Pool()})
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := db.MigrateUp(ctx, database, cfg.Driver); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	breakerCfg := circuitbreaker.DBConfig()
	breakerCfg.OnStateChange = func(name string, _, to gobreaker.State) {
		metrics.SetCircuitBreakerState(name, int(to))
	}
	breaker := circuitbreaker.NewDBCircuitBreakerWithConfig(database, breakerCfg)

	s := &Storage{DB: database, Breaker: breaker}
	switch cfg.Driver {
	case db.DriverPostgres:
		s.Articles, s.Comments = pgRepo.NewArticleRepo(breaker), pgRepo.NewCommentRepo(breaker)
	case db.DriverSQLite:
		s.Articles, s.Comments = liteRepo.NewArticleRepo(breaker), liteRepo.NewCommentRepo(breaker)
	default:
		_ = database.Close()
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	logger.Info("database ready", slog.String("driver", cfg.Driver))
	return s, nil
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler      http.Handler
	WriteLimiter *hhttp.WriteLimiter
	Refresher    *metrics.Refresher
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, cfg config.Config, store *Storage) (*ServerComponents, error) {
	svc := &artUC.Service{Articles: store.Articles, Comments: store.Comments}
	writeLimiter := hhttp.NewWriteLimiter(cfg.HTTP.WriteRateLimit, cfg.HTTP.WriteRateBurst)

	mux := http.NewServeMux()
	harticle.Register(mux, svc, writeLimiter.Middleware)
	setupPublicRoutes(mux, cfg.Version, store)

	corsConfig, err := middleware.NewCORSConfig(cfg.CORS.AllowedOrigins)
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}
	corsConfig.Logger = logger

	var refresherOpts []metrics.RefresherOption
	refresherOpts = append(refresherOpts, metrics.WithLogger(logger))
	if store.DB != nil {
		refresherOpts = append(refresherOpts, metrics.WithDBStats(store.DB.Stats))
	}
	refresher, err := metrics.NewRefresher(cfg.Metrics.RefreshSchedule,
		store.Articles.Count, store.Comments.Count, refresherOpts...)
	if err != nil {
		return nil, err
	}

	handler := hhttp.Chain(mux,
		middleware.CORS(*corsConfig),
		middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig()),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.Recover(logger),
		hhttp.Timeout(cfg.HTTP.RequestTimeout),
		hhttp.LimitRequestBody(int64(cfg.HTTP.MaxBodyBytes)),
	)

	return &ServerComponents{
		Handler:      handler,
		WriteLimiter: writeLimiter,
		Refresher:    refresher,
	}, nil
}

// setupPublicRoutes registers health, metrics and documentation endpoints.
func setupPublicRoutes(mux *http.ServeMux, version string, store *Storage) {
	health := &hhttp.HealthHandler{Version: version}
	ready := &hhttp.ReadyHandler{}
	if store.Breaker != nil {
		health.DB = store.Breaker
		health.Stats = store.DB.Stats
		health.Breaker = store.Breaker
		ready.DB = store.Breaker
	}

	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", ready)
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}

// runServer serves until ctx is cancelled, then drains in-flight requests
// and stops the background jobs.
func runServer(ctx context.Context, logger *slog.Logger, cfg config.Config, c *ServerComponents) error {
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           c.Handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", cfg.Version),
			slog.String("driver", cfg.DB.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return c.Refresher.Run(gctx)
	})

	g.Go(func() error {
		hhttp.StartWriteLimiterCleanup(gctx, c.WriteLimiter, limiterCleanupInterval, limiterIdleTTL)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
