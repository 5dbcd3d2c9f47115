package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jask/launchdeck/internal/launch"
)

// SnapshotRepo handles launch_snapshots: the records a ready run returned,
// kept in source order by position.
type SnapshotRepo struct {
	db DBTX
}

func NewSnapshotRepo(db DBTX) *SnapshotRepo { return &SnapshotRepo{db: db} }

// Save stores records under runID. Run it inside the transaction that
// inserted the run so a snapshot is never partial.
func (r *SnapshotRepo) Save(ctx context.Context, runID string, records []launch.Record) error {
	for i, rec := range records {
		var success sql.NullBool
		if rec.Success != nil {
			success = sql.NullBool{Bool: *rec.Success, Valid: true}
		}
		var details sql.NullString
		if rec.Details != nil {
			details = sql.NullString{String: *rec.Details, Valid: true}
		}
		_, err := r.db.ExecContext(ctx, `
		INSERT INTO launch_snapshots(
		 run_id, position, flight_number, mission_name, launch_date, launch_success,
		 rocket_name, site_name_long, details)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?);
		`,
			runID, i, rec.FlightNumber, rec.MissionName, rec.LaunchDate.Format(time.RFC3339Nano), success,
			rec.RocketName, rec.SiteNameLong, details)
		if err != nil {
			return fmt.Errorf("save flight %d: %w", rec.FlightNumber, err)
		}
	}
	return nil
}

// Load returns the records of runID in their original order.
func (r *SnapshotRepo) Load(ctx context.Context, runID string) ([]launch.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT flight_number, mission_name, launch_date, launch_success, rocket_name, site_name_long, details
	FROM launch_snapshots WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []launch.Record
	for rows.Next() {
		rec, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns how many records runID holds.
func (r *SnapshotRepo) Count(ctx context.Context, runID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM launch_snapshots WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}

// scanSnapshot handles the nullable outcome and details columns.
func scanSnapshot(row scanner) (launch.Record, error) {
	var rec launch.Record
	var date string
	var success sql.NullBool
	var details sql.NullString
	if err := row.Scan(&rec.FlightNumber, &rec.MissionName, &date, &success, &rec.RocketName, &rec.SiteNameLong, &details); err != nil {
		return launch.Record{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return launch.Record{}, fmt.Errorf("flight %d launch_date: %w", rec.FlightNumber, err)
	}
	rec.LaunchDate = t
	if success.Valid {
		rec.Success = &success.Bool
	}
	if details.Valid {
		rec.Details = &details.String
	}
	return rec, nil
}
