package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/launchdeck/internal/database"
	"github.com/jask/launchdeck/internal/database/repository"
)

// MaintenanceService houses destructive archive operations surfaced through the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// PruneHistory keeps the newest keep fetch runs and deletes the rest along
// with their snapshots. It returns how many runs were deleted.
func (s *MaintenanceService) PruneHistory(ctx context.Context, keep int) (int64, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	if keep < 0 {
		return 0, fmt.Errorf("maintenance: keep must not be negative, got %d", keep)
	}
	var deleted int64
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		n, err := repository.NewFetchRunRepo(tx).DeleteAllButNewest(ctx, keep)
		if err != nil {
			return fmt.Errorf("prune fetch runs: %w", err)
		}
		deleted = n
		return nil
	}); err != nil {
		return 0, err
	}
	if deleted > 0 {
		_, _ = s.DB.ExecContext(ctx, "VACUUM")
	}
	return deleted, nil
}
