package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/launchdeck/internal/fixtures"
	"github.com/jask/launchdeck/internal/store"
)

func TestPruneHistoryKeepsNewest(t *testing.T) {
	t.Parallel()
	svc, db := setupArchive(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 4; i++ {
		started := base.Add(time.Duration(i) * time.Hour)
		id, err := svc.RecordLoad(ctx, LoadReport{StartedAt: started, FinishedAt: started, State: store.Ready, Records: fixtures.Catalog(base)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	m := &MaintenanceService{DB: db}
	deleted, err := m.PruneHistory(ctx, 2)
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	runs, err := svc.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, ids[3], runs[0].ID)
	require.Equal(t, ids[2], runs[1].ID)

	var snapshots int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM launch_snapshots").Scan(&snapshots))
	require.Equal(t, 16, snapshots)
}

func TestPruneHistoryValidation(t *testing.T) {
	t.Parallel()
	_, err := (&MaintenanceService{}).PruneHistory(context.Background(), 1)
	require.ErrorContains(t, err, "db not configured")

	_, db := setupArchive(t)
	_, err = (&MaintenanceService{DB: db}).PruneHistory(context.Background(), -1)
	require.ErrorContains(t, err, "must not be negative")
}
