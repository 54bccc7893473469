package metrics

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constCount(n int64) CountFunc {
	return func(context.Context) (int64, error) { return n, nil }
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{"@every 1m", false},
		{"@hourly", false},
		{"*/5 * * * *", false},
		{"30 5 * * 1-5", false},
		{"", true},
		{"* * *", true},
		{"every minute", true},
	}

	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			err := ValidateSchedule(tt.schedule)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewRefresher_InvalidSchedule(t *testing.T) {
	_, err := NewRefresher("not a schedule", constCount(0), constCount(0))
	assert.Error(t, err)
}

func TestRefresher_Refresh(t *testing.T) {
	r, err := NewRefresher(DefaultRefreshSchedule, constCount(5), constCount(9),
		WithDBStats(func() sql.DBStats { return sql.DBStats{InUse: 1, Idle: 4} }))
	require.NoError(t, err)

	require.NoError(t, r.Refresh(context.Background()))

	assert.Equal(t, 5.0, testutil.ToFloat64(ArticlesTotal))
	assert.Equal(t, 9.0, testutil.ToFloat64(CommentsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(DBConnectionsInUse))
	assert.Equal(t, 4.0, testutil.ToFloat64(DBConnectionsIdle))
}

func TestRefresher_RefreshError(t *testing.T) {
	boom := errors.New("db down")
	r, err := NewRefresher(DefaultRefreshSchedule, constCount(1),
		func(context.Context) (int64, error) { return 0, boom })
	require.NoError(t, err)

	assert.ErrorIs(t, r.Refresh(context.Background()), boom)
}

func TestRefresher_RunStopsWithContext(t *testing.T) {
	calls := make(chan struct{}, 10)
	count := func(context.Context) (int64, error) {
		calls <- struct{}{}
		return 0, nil
	}
	r, err := NewRefresher("@every 1h", count, constCount(0))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("initial refresh did not run")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
