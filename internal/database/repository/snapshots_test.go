package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/jask/launchdeck/internal/database"
	"github.com/jask/launchdeck/internal/database/repository"
	"github.com/jask/launchdeck/internal/fixtures"
	"github.com/jask/launchdeck/internal/launch"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertRun(t *testing.T, db *sql.DB, id string, started time.Time, state string) {
	t.Helper()
	err := repository.NewFetchRunRepo(db).Insert(context.Background(), repository.FetchRun{
		ID:         id,
		Endpoint:   "http://localhost/launches",
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
		State:      state,
	})
	require.NoError(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	insertRun(t, db, "run-1", now, "ready")

	records := fixtures.Catalog(now)
	require.NoError(t, repository.NewSnapshotRepo(db).Save(ctx, "run-1", records))

	got, err := repository.NewSnapshotRepo(db).Load(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i := range records {
		require.Equal(t, records[i].FlightNumber, got[i].FlightNumber)
		require.Equal(t, records[i].MissionName, got[i].MissionName)
		require.True(t, records[i].LaunchDate.Equal(got[i].LaunchDate), "flight %d date", records[i].FlightNumber)
		require.Equal(t, records[i].Outcome(), got[i].Outcome())
		require.Equal(t, records[i].DetailsText(), got[i].DetailsText())
		require.Equal(t, records[i].RocketName, got[i].RocketName)
		require.Equal(t, records[i].SiteNameLong, got[i].SiteNameLong)
	}

	n, err := repository.NewSnapshotRepo(db).Count(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, len(records), n)
}

func TestSnapshotKeepsOffset(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	insertRun(t, db, "run-1", time.Now(), "ready")

	date := time.Date(2006, 3, 25, 10, 30, 0, 0, time.FixedZone("", 12*3600))
	rec := fixtures.Launch(1, "FalconSat", date, nil)
	require.NoError(t, repository.NewSnapshotRepo(db).Save(ctx, "run-1", []launch.Record{rec}))

	got, err := repository.NewSnapshotRepo(db).Load(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	_, offset := got[0].LaunchDate.Zone()
	require.Equal(t, 12*3600, offset)
	require.Nil(t, got[0].Success)
}

func TestDeletingRunCascadesToSnapshots(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		insertRun(t, db, id, base.Add(time.Duration(i)*time.Hour), "ready")
		require.NoError(t, repository.NewSnapshotRepo(db).Save(ctx, id, fixtures.Catalog(base)))
	}

	deleted, err := repository.NewFetchRunRepo(db).DeleteAllButNewest(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	n, err := repository.NewSnapshotRepo(db).Count(ctx, "old")
	require.NoError(t, err)
	require.Zero(t, n)

	runs, err := repository.NewFetchRunRepo(db).List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "new", runs[0].ID)
}

func TestLatestWithStateSkipsFailedRuns(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	insertRun(t, db, "good", base, "ready")
	insertRun(t, db, "bad", base.Add(time.Hour), "failed")

	run, err := repository.NewFetchRunRepo(db).LatestWithState(ctx, "ready")
	require.NoError(t, err)
	require.NotNil(t, run)
	require.Equal(t, "good", run.ID)
	require.True(t, run.StartedAt.Equal(base))
}

func TestSnapshotLoadRejectsCorruptDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM launch_snapshots").
		WithArgs("run-1").
		WillReturnRows(sqlmock.NewRows([]string{"flight_number", "mission_name", "launch_date", "launch_success", "rocket_name", "site_name_long", "details"}).
			AddRow(7, "Crew-9", "next tuesday", nil, "Falcon 9", "KSC LC 39A", nil))

	_, err = repository.NewSnapshotRepo(db).Load(context.Background(), "run-1")
	require.ErrorContains(t, err, "flight 7 launch_date")
}

func TestSnapshotSaveWrapsFlightNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO launch_snapshots").WillReturnError(sql.ErrConnDone)

	rec := fixtures.Launch(42, "Starlink-42", time.Now(), fixtures.Bool(true))
	err = repository.NewSnapshotRepo(db).Save(context.Background(), "run-1", []launch.Record{rec})
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.ErrorContains(t, err, "save flight 42")
}
