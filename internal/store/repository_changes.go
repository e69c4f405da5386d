package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pack-sync/internal/logger"
	"github.com/MKhiriev/go-pack-sync/models"
)

type changeRepository struct {
	*DB
	logger *logger.Logger
}

// NewChangeRepository returns the SQLite-backed pending-change queue.
func NewChangeRepository(db *DB, logger *logger.Logger) ChangeRepository {
	return &changeRepository{DB: db, logger: logger}
}

func (r *changeRepository) SaveChange(ctx context.Context, change models.Change) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveChange,
		change.ID,
		change.EntityType,
		change.Operation,
		change.EntityID,
		change.TripID,
		change.UserID,
		change.Version,
		change.Timestamp,
		change.Synced,
		[]byte(change.Data),
	)
	if err != nil {
		log.Err(err).
			Str("func", "changeRepository.SaveChange").
			Str("change_id", change.ID).
			Str("entity_id", change.EntityID).
			Msg("failed to execute upsert for change")
		return fmt.Errorf("failed to save change %s: %w", change.ID, err)
	}

	return nil
}

func (r *changeRepository) GetPendingChanges(ctx context.Context) ([]models.Change, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getPendingChanges)
	if err != nil {
		log.Err(err).
			Str("func", "changeRepository.GetPendingChanges").
			Msg("failed to query pending changes")
		return nil, fmt.Errorf("failed to query pending changes: %w", err)
	}
	defer rows.Close()

	var changes []models.Change
	for rows.Next() {
		change, scanErr := scanChange(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "changeRepository.GetPendingChanges").
				Msg("failed to scan change row")
			return nil, scanErr
		}
		changes = append(changes, change)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating change rows: %w", rowsErr)
	}

	return changes, nil
}

func (r *changeRepository) GetUnsyncedByEntityID(ctx context.Context, entityID string) (models.Change, error) {
	row := r.DB.QueryRowContext(ctx, getUnsyncedByEntityID, entityID)

	var (
		change models.Change
		data   []byte
	)
	err := row.Scan(
		&change.ID,
		&change.EntityType,
		&change.Operation,
		&change.EntityID,
		&change.TripID,
		&change.UserID,
		&change.Version,
		&change.Timestamp,
		&change.Synced,
		&data,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Change{}, fmt.Errorf("%w: unsynced change for entity %s", ErrRecordNotFound, entityID)
	}
	if err != nil {
		return models.Change{}, fmt.Errorf("failed to scan change for entity %s: %w", entityID, err)
	}

	change.Data = json.RawMessage(data)
	return change, nil
}

func (r *changeRepository) MarkChangeSynced(ctx context.Context, changeID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, markChangeSynced, changeID); err != nil {
		log.Err(err).
			Str("func", "changeRepository.MarkChangeSynced").
			Str("change_id", changeID).
			Msg("failed to mark change synced")
		return fmt.Errorf("failed to mark change %s synced: %w", changeID, err)
	}

	return nil
}

func (r *changeRepository) DeleteChange(ctx context.Context, changeID string) error {
	if _, err := r.DB.ExecContext(ctx, deleteChange, changeID); err != nil {
		return fmt.Errorf("failed to delete change %s: %w", changeID, err)
	}
	return nil
}

func (r *changeRepository) DeleteSyncedChanges(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx, deleteSyncedChanges)
	if err != nil {
		return 0, fmt.Errorf("failed to delete synced changes: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

func scanChange(rows *sql.Rows) (models.Change, error) {
	var (
		change models.Change
		data   []byte
	)
	err := rows.Scan(
		&change.ID,
		&change.EntityType,
		&change.Operation,
		&change.EntityID,
		&change.TripID,
		&change.UserID,
		&change.Version,
		&change.Timestamp,
		&change.Synced,
		&data,
	)
	if err != nil {
		return models.Change{}, fmt.Errorf("failed to scan change row: %w", err)
	}

	change.Data = json.RawMessage(data)
	return change, nil
}
