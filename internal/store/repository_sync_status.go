package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/models"
)

type syncStatusRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncStatusRepository constructs the repository for the singleton sync
// status record.
func NewSyncStatusRepository(db *DB, logger *logger.Logger) SyncStatusRepository {
	return &syncStatusRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncStatusRepository) GetSyncStatus(ctx context.Context) (models.SyncStatus, error) {
	log := logger.FromContext(ctx)

	var (
		status       models.SyncStatus
		lastSyncTime sql.NullTime
	)

	row := r.DB.QueryRowContext(ctx, getSyncStatus)
	err := row.Scan(
		&lastSyncTime,
		&status.IsSyncing,
		&status.LastError,
		&status.Cursor,
		&status.SyncType,
		&status.AttemptCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// first run on a database created before the seed migration;
			// store the pristine record and return it
			if saveErr := r.SaveSyncStatus(ctx, status); saveErr != nil {
				return models.SyncStatus{}, saveErr
			}
			return status, nil
		}
		log.Err(err).
			Str("func", "syncStatusRepository.GetSyncStatus").
			Msg("failed to scan sync status row")
		return models.SyncStatus{}, fmt.Errorf("failed to scan sync status row: %w", err)
	}

	if lastSyncTime.Valid {
		t := lastSyncTime.Time
		status.LastSyncTime = &t
	}

	return status, nil
}

func (r *syncStatusRepository) SaveSyncStatus(ctx context.Context, status models.SyncStatus) error {
	log := logger.FromContext(ctx)

	var lastSyncTime sql.NullTime
	if status.LastSyncTime != nil {
		lastSyncTime = sql.NullTime{Time: *status.LastSyncTime, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, saveSyncStatus,
		lastSyncTime,
		status.IsSyncing,
		status.LastError,
		status.Cursor,
		status.SyncType,
		status.AttemptCount,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncStatusRepository.SaveSyncStatus").
			Bool("is_syncing", status.IsSyncing).
			Str("sync_type", status.SyncType).
			Msg("failed to save sync status")
		return fmt.Errorf("failed to save sync status: %w", err)
	}

	return nil
}
