package metrics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule runs the refresh once a minute.
const DefaultRefreshSchedule = "@every 1m"

var scheduleParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateSchedule checks a five-field cron expression or a descriptor such as "@every 30s".
func ValidateSchedule(schedule string) error {
	if schedule == "" {
		return errors.New("invalid cron schedule: cannot be empty")
	}
	if _, err := scheduleParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}

// CountFunc returns the number of stored rows of one kind.
type CountFunc func(ctx context.Context) (int64, error)

// Refresher periodically recomputes the gauges that cannot be maintained
// incrementally: stored totals (other instances write too) and pool stats.
type Refresher struct {
	cron     *cron.Cron
	schedule string
	timeout  time.Duration
	articles CountFunc
	comments CountFunc
	dbStats  func() sql.DBStats
	logger   *slog.Logger
}

// RefresherOption configures a Refresher.
type RefresherOption func(*Refresher)

// WithDBStats also exports pool statistics on every refresh.
func WithDBStats(stats func() sql.DBStats) RefresherOption {
	return func(r *Refresher) { r.dbStats = stats }
}

// WithLogger sets the logger used for refresh failures.
func WithLogger(logger *slog.Logger) RefresherOption {
	return func(r *Refresher) { r.logger = logger }
}

// NewRefresher validates schedule and prepares (but does not start) the job.
func NewRefresher(schedule string, articles, comments CountFunc, opts ...RefresherOption) (*Refresher, error) {
	if err := ValidateSchedule(schedule); err != nil {
		return nil, err
	}

	r := &Refresher{
		cron:     cron.New(cron.WithParser(scheduleParser), cron.WithLocation(time.UTC)),
		schedule: schedule,
		timeout:  10 * time.Second,
		articles: articles,
		comments: comments,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return nil, fmt.Errorf("add refresh job: %w", err)
	}
	return r, nil
}

// Refresh updates all gauges once.
func (r *Refresher) Refresh(ctx context.Context) error {
	articles, err := r.articles(ctx)
	if err != nil {
		return fmt.Errorf("count articles: %w", err)
	}
	comments, err := r.comments(ctx)
	if err != nil {
		return fmt.Errorf("count comments: %w", err)
	}
	UpdateTotals(articles, comments)

	if r.dbStats != nil {
		UpdateDBConnectionStats(r.dbStats())
	}
	return nil
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.Refresh(ctx); err != nil {
		r.logger.Warn("metrics refresh failed", slog.Any("error", err))
	}
}

// Run refreshes once, starts the schedule and blocks until ctx is done.
// It then waits for a running refresh to finish.
func (r *Refresher) Run(ctx context.Context) error {
	r.run()
	r.cron.Start()
	r.logger.Info("metrics refresher started", slog.String("schedule", r.schedule))

	<-ctx.Done()
	<-r.cron.Stop().Done()
	return nil
}
