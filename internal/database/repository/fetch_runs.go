package repository

import (
	"context"
	"database/sql"
	"errors"
)

const fetchRunColumns = "id, endpoint, started_at, finished_at, state, record_count, error"

// FetchRunRepo handles fetch_runs.
type FetchRunRepo struct {
	db DBTX
}

func NewFetchRunRepo(db DBTX) *FetchRunRepo { return &FetchRunRepo{db: db} }

func (r *FetchRunRepo) Insert(ctx context.Context, run FetchRun) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO fetch_runs(id, endpoint, started_at, finished_at, state, record_count, error)
	VALUES(?, ?, ?, ?, ?, ?, ?);
	`, run.ID, run.Endpoint, run.StartedAt.UTC(), run.FinishedAt.UTC(), run.State, run.RecordCount, run.Error)
	return err
}

// List returns the most recent runs first. A non-positive limit returns all.
func (r *FetchRunRepo) List(ctx context.Context, limit int) ([]FetchRun, error) {
	query := "SELECT " + fetchRunColumns + " FROM fetch_runs ORDER BY started_at DESC, id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FetchRun
	for rows.Next() {
		run, err := scanFetchRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// LatestWithState returns the newest run in state, or nil when there is none.
func (r *FetchRunRepo) LatestWithState(ctx context.Context, state string) (*FetchRun, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+fetchRunColumns+" FROM fetch_runs WHERE state = ? ORDER BY started_at DESC, id LIMIT 1", state)
	run, err := scanFetchRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// DeleteAllButNewest keeps the newest keep runs and deletes the rest.
func (r *FetchRunRepo) DeleteAllButNewest(ctx context.Context, keep int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	DELETE FROM fetch_runs
	WHERE id NOT IN (SELECT id FROM fetch_runs ORDER BY started_at DESC, id LIMIT ?);
	`, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanFetchRun(row scanner) (FetchRun, error) {
	var run FetchRun
	var errText sql.NullString
	if err := row.Scan(&run.ID, &run.Endpoint, &run.StartedAt, &run.FinishedAt, &run.State, &run.RecordCount, &errText); err != nil {
		return FetchRun{}, err
	}
	if errText.Valid {
		run.Error = &errText.String
	}
	return run, nil
}
