package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:    attempts,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff_Success(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(3), func() error {
		attempts++
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestWithBackoff_SuccessAfterRetry(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(3), func() error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("dial: %w", syscall.ECONNREFUSED)
		}
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithBackoff_MaxAttemptsExceeded(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(4), func() error {
		attempts++
		return driver.ErrBadConn
	})

	if !errors.Is(err, driver.ErrBadConn) {
		t.Fatalf("expected wrapped ErrBadConn, got %v", err)
	}
	if attempts != 4 {
		t.Errorf("expected 4 attempts, got %d", attempts)
	}
}

func TestWithBackoff_NonRetryableError(t *testing.T) {
	attempts := 0
	authErr := errors.New("password authentication failed")
	err := WithBackoff(context.Background(), fastConfig(5), func() error {
		attempts++
		return authErr
	})

	if err != authErr {
		t.Errorf("expected %v, got %v", authErr, err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestWithBackoff_CustomClassifier(t *testing.T) {
	cfg := fastConfig(3)
	cfg.Retryable = func(error) bool { return true }

	attempts := 0
	_ = WithBackoff(context.Background(), cfg, func() error {
		attempts++
		return errors.New("anything")
	})

	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig(5)
	cfg.InitialDelay = time.Hour

	attempts := 0
	err := WithBackoff(ctx, cfg, func() error {
		attempts++
		cancel()
		return syscall.ECONNRESET
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("ping: %w", context.DeadlineExceeded), false},
		{"bad conn", driver.ErrBadConn, true},
		{"connection refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, true},
		{"connection reset", syscall.ECONNRESET, true},
		{"dns", &net.DNSError{Err: "no such host", Name: "db"}, true},
		{"generic", errors.New("syntax error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestConnectConfig(t *testing.T) {
	cfg := ConnectConfig()
	if cfg.MaxAttempts < 2 || cfg.InitialDelay <= 0 || cfg.MaxDelay < cfg.InitialDelay {
		t.Errorf("unexpected connect config: %+v", cfg)
	}
}

func TestAddJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		got := addJitter(base, 0.1)
		if got < base || got > base+10*time.Millisecond {
			t.Fatalf("addJitter out of range: %v", got)
		}
	}
	if got := addJitter(base, 0); got != base {
		t.Errorf("zero fraction changed duration: %v", got)
	}
}
