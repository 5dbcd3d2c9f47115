package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jask/launchdeck/internal/database"
	"github.com/jask/launchdeck/internal/database/repository"
	"github.com/jask/launchdeck/internal/launch"
	"github.com/jask/launchdeck/internal/logging"
	"github.com/jask/launchdeck/internal/store"
)

// ErrNoSnapshot is returned when the archive holds no ready run.
var ErrNoSnapshot = errors.New("archive: no ready snapshot")

// LoadReport describes one finished store load.
type LoadReport struct {
	Endpoint   string
	StartedAt  time.Time
	FinishedAt time.Time
	State      store.LoadState
	Records    []launch.Record
	Err        error
}

// Archiver persists load reports.
type Archiver interface {
	RecordLoad(ctx context.Context, rep LoadReport) (string, error)
}

// ArchiveService writes fetch runs and snapshots to the sqlite archive.
type ArchiveService struct {
	DB     *sql.DB
	Logger *slog.Logger
}

func (s *ArchiveService) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}

// RecordLoad stores rep as a fetch run, with its records as a snapshot when
// the load succeeded. It returns the new run ID.
func (s *ArchiveService) RecordLoad(ctx context.Context, rep LoadReport) (string, error) {
	if s.DB == nil {
		return "", fmt.Errorf("archive: db not configured")
	}
	if rep.State == store.Loading {
		return "", fmt.Errorf("archive: load still in progress")
	}
	run := repository.FetchRun{
		ID:         uuid.NewString(),
		Endpoint:   rep.Endpoint,
		StartedAt:  rep.StartedAt,
		FinishedAt: rep.FinishedAt,
		State:      rep.State.String(),
	}
	if rep.State == store.Ready {
		run.RecordCount = len(rep.Records)
	}
	if rep.Err != nil {
		msg := rep.Err.Error()
		run.Error = &msg
	}

	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := repository.NewFetchRunRepo(tx).Insert(ctx, run); err != nil {
			return fmt.Errorf("insert fetch run: %w", err)
		}
		if rep.State != store.Ready {
			return nil
		}
		return repository.NewSnapshotRepo(tx).Save(ctx, run.ID, rep.Records)
	})
	if err != nil {
		return "", err
	}
	s.logger().Debug("fetch run archived", "run", run.ID, "state", run.State, "records", run.RecordCount)
	return run.ID, nil
}

// LatestSnapshot returns the records of the newest ready run.
func (s *ArchiveService) LatestSnapshot(ctx context.Context) ([]launch.Record, *repository.FetchRun, error) {
	if s.DB == nil {
		return nil, nil, fmt.Errorf("archive: db not configured")
	}
	run, err := repository.NewFetchRunRepo(s.DB).LatestWithState(ctx, store.Ready.String())
	if err != nil {
		return nil, nil, err
	}
	if run == nil {
		return nil, nil, ErrNoSnapshot
	}
	records, err := repository.NewSnapshotRepo(s.DB).Load(ctx, run.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load snapshot %s: %w", run.ID, err)
	}
	return records, run, nil
}

// History lists fetch runs, newest first. A non-positive limit lists all.
func (s *ArchiveService) History(ctx context.Context, limit int) ([]repository.FetchRun, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("archive: db not configured")
	}
	return repository.NewFetchRunRepo(s.DB).List(ctx, limit)
}

// SnapshotFetcher serves the newest archived snapshot as a launch source,
// for browsing offline.
type SnapshotFetcher struct {
	Archive *ArchiveService
}

func (f SnapshotFetcher) FetchLaunches(ctx context.Context) ([]launch.Record, error) {
	records, _, err := f.Archive.LatestSnapshot(ctx)
	return records, err
}
