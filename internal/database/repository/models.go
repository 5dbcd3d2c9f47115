package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so repos can join a
// caller's transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// FetchRun represents a fetch_runs row: one session's load of the launch collection.
type FetchRun struct {
	ID          string
	Endpoint    string
	StartedAt   time.Time
	FinishedAt  time.Time
	State       string
	RecordCount int
	Error       *string
}

// Duration is how long the fetch took.
func (r FetchRun) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// scanner handles both Row and Rows.
type scanner interface {
	Scan(dest ...any) error
}
