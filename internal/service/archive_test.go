package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/launchdeck/internal/database"
	"github.com/jask/launchdeck/internal/fixtures"
	"github.com/jask/launchdeck/internal/store"
)

func setupArchive(t *testing.T) (*ArchiveService, *sql.DB) {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &ArchiveService{DB: db}, db
}

func TestRecordLoadReadySavesSnapshot(t *testing.T) {
	t.Parallel()
	svc, db := setupArchive(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	records := fixtures.Catalog(now)

	id, err := svc.RecordLoad(ctx, LoadReport{
		Endpoint:   "http://localhost/launches",
		StartedAt:  now,
		FinishedAt: now.Add(800 * time.Millisecond),
		State:      store.Ready,
		Records:    records,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM launch_snapshots WHERE run_id = ?", id).Scan(&count))
	require.Equal(t, len(records), count)

	got, run, err := svc.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, id, run.ID)
	require.Equal(t, len(records), run.RecordCount)
	require.Equal(t, 800*time.Millisecond, run.Duration())
	require.Len(t, got, len(records))
	require.Equal(t, "FalconSat", got[0].MissionName)
}

func TestRecordLoadFailedKeepsError(t *testing.T) {
	t.Parallel()
	svc, _ := setupArchive(t)
	ctx := context.Background()
	now := time.Now()

	_, err := svc.RecordLoad(ctx, LoadReport{
		Endpoint:   "http://localhost/launches",
		StartedAt:  now,
		FinishedAt: now,
		State:      store.Failed,
		Err:        errors.New("connection refused"),
	})
	require.NoError(t, err)

	runs, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "failed", runs[0].State)
	require.Zero(t, runs[0].RecordCount)
	require.NotNil(t, runs[0].Error)
	require.Equal(t, "connection refused", *runs[0].Error)

	_, _, err = svc.LatestSnapshot(ctx)
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestRecordLoadRejectsLoadingState(t *testing.T) {
	t.Parallel()
	svc, _ := setupArchive(t)
	_, err := svc.RecordLoad(context.Background(), LoadReport{State: store.Loading})
	require.Error(t, err)
}

func TestArchiveWithoutDB(t *testing.T) {
	t.Parallel()
	svc := &ArchiveService{}
	_, err := svc.RecordLoad(context.Background(), LoadReport{State: store.Ready})
	require.ErrorContains(t, err, "db not configured")
	_, err = svc.History(context.Background(), 1)
	require.ErrorContains(t, err, "db not configured")
}

func TestSnapshotFetcherFeedsStore(t *testing.T) {
	t.Parallel()
	svc, _ := setupArchive(t)
	ctx := context.Background()
	now := time.Now()

	offline := store.New(SnapshotFetcher{Archive: svc}, nil)
	require.Equal(t, store.Failed, offline.Load(ctx))
	require.ErrorIs(t, offline.Err(), ErrNoSnapshot)

	_, err := svc.RecordLoad(ctx, LoadReport{StartedAt: now, FinishedAt: now, State: store.Ready, Records: fixtures.Catalog(now)})
	require.NoError(t, err)

	offline = store.New(SnapshotFetcher{Archive: svc}, nil)
	require.Equal(t, store.Ready, offline.Load(ctx))
	require.Len(t, offline.Records(), 8)
}

type failingArchiver struct{ calls int }

func (a *failingArchiver) RecordLoad(context.Context, LoadReport) (string, error) {
	a.calls++
	return "", errors.New("database is locked")
}

func TestLoaderArchivesFirstLoadOnly(t *testing.T) {
	t.Parallel()
	svc, _ := setupArchive(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	fetcher := &fixtures.Fetcher{Records: fixtures.Catalog(now)}
	l := &Loader{
		Store:    store.New(fetcher, nil),
		Archive:  svc,
		Endpoint: "http://localhost/launches",
		Clock:    func() time.Time { return now },
	}

	require.Equal(t, store.Ready, l.Load(ctx))
	require.Equal(t, store.Ready, l.Load(ctx))
	require.Equal(t, 1, fetcher.Calls)

	runs, err := svc.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "http://localhost/launches", runs[0].Endpoint)
	require.Equal(t, "ready", runs[0].State)
}

func TestLoaderArchiveFailureKeepsState(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	archive := &failingArchiver{}
	l := &Loader{
		Store:   store.New(&fixtures.Fetcher{Records: fixtures.Catalog(time.Now())}, nil),
		Archive: archive,
		Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
	}

	require.Equal(t, store.Ready, l.Load(context.Background()))
	require.Equal(t, 1, archive.calls)
	require.Contains(t, buf.String(), "archive fetch run failed")
	require.Contains(t, buf.String(), "database is locked")
}

func TestLoaderWithoutArchive(t *testing.T) {
	t.Parallel()
	fetcher := &fixtures.Fetcher{Err: errors.New("boom")}
	l := &Loader{Store: store.New(fetcher, nil)}
	require.Equal(t, store.Failed, l.Load(context.Background()))
	require.Empty(t, l.Store.Records())
}
