package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"

	"pressroom/internal/infra/db"
)

var _ db.Querier = (*DBCircuitBreaker)(nil)

func TestNewDBCircuitBreaker(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = conn.Close() }()

	dcb := NewDBCircuitBreaker(conn)

	if dcb.DB() != conn {
		t.Error("expected db to be set")
	}
	if dcb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state to be Closed, got %s", dcb.State())
	}
}

func TestDBCircuitBreaker_QueryContext(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = conn.Close() }()

	dcb := NewDBCircuitBreaker(conn)
	mock.ExpectQuery("SELECT (.+) FROM articles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Hello"))

	rows, err := dcb.QueryContext(context.Background(), "SELECT id, title FROM articles")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		t.Fatal("expected one row")
	}
	var id int
	var title string
	if err := rows.Scan(&id, &title); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if id != 1 || title != "Hello" {
		t.Errorf("got id=%d title=%s", id, title)
	}
}

func TestDBCircuitBreaker_ExecContext(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = conn.Close() }()

	dcb := NewDBCircuitBreaker(conn)
	mock.ExpectExec("INSERT INTO articles").WillReturnResult(sqlmock.NewResult(3, 1))

	res, err := dcb.ExecContext(context.Background(), "INSERT INTO articles (title) VALUES (?)", "x")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id, _ := res.LastInsertId(); id != 3 {
		t.Errorf("LastInsertId = %d, want 3", id)
	}
}

func TestDBCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = conn.Close() }()

	cfg := DBConfig()
	cfg.Timeout = time.Hour
	dcb := NewDBCircuitBreakerWithConfig(conn, cfg)

	dbErr := errors.New("connection refused")
	for i := 0; i < int(cfg.MinRequests); i++ {
		mock.ExpectQuery("SELECT").WillReturnError(dbErr)
		if _, err := dcb.QueryContext(context.Background(), "SELECT 1"); !errors.Is(err, dbErr) {
			t.Fatalf("attempt %d: expected db error, got %v", i, err)
		}
	}

	if !dcb.IsOpen() {
		t.Fatalf("expected Open, got %s", dcb.State())
	}

	// no expectation registered: an open breaker must not reach the driver
	if _, err := dcb.ExecContext(context.Background(), "INSERT INTO articles"); !IsOpenError(err) {
		t.Fatalf("expected open-state error, got %v", err)
	}
	if err := dcb.PingContext(context.Background()); !IsOpenError(err) {
		t.Fatalf("expected open-state error from ping, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDBCircuitBreaker_QueryRowContextBypassesBreaker(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = conn.Close() }()

	dcb := NewDBCircuitBreaker(conn)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	var n int
	if err := dcb.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM articles").Scan(&n); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}
