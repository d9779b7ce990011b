package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/miniapps/internal/database"
)

// Cleared counts the rows a reset removed.
type Cleared struct {
	Rounds    int64
	Forecasts int64
}

func (c Cleared) String() string {
	return fmt.Sprintf("cleared %d rounds and %d cached forecasts", c.Rounds, c.Forecasts)
}

// MaintenanceService wipes history when the user confirms a reset.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset empties the results journal and the weather cache in one
// transaction. The schema stays, so the running app keeps recording.
func (s *MaintenanceService) Reset(ctx context.Context) (Cleared, error) {
	var out Cleared
	if s.DB == nil {
		return out, fmt.Errorf("maintenance: db not configured")
	}
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM round_results")
		if err != nil {
			return fmt.Errorf("clear results: %w", err)
		}
		out.Rounds, _ = res.RowsAffected()
		res, err = tx.ExecContext(ctx, "DELETE FROM weather_cache")
		if err != nil {
			return fmt.Errorf("clear weather cache: %w", err)
		}
		out.Forecasts, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return Cleared{}, err
	}
	// WAL: fold the deletes back into the main file.
	_, _ = s.DB.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)")
	return out, nil
}
