package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pack-sync/internal/logger"
	"github.com/MKhiriev/go-pack-sync/models"
)

type conflictRepository struct {
	*DB
	logger *logger.Logger
}

// NewConflictRepository returns the SQLite-backed conflicts table. Structured
// columns cover the lookup keys (id, entity type); details and both data
// snapshots are stored as JSON.
func NewConflictRepository(db *DB, logger *logger.Logger) ConflictRepository {
	return &conflictRepository{DB: db, logger: logger}
}

func (r *conflictRepository) SaveConflict(ctx context.Context, conflict models.SyncConflict) error {
	log := logger.FromContext(ctx)

	details, err := json.Marshal(conflict.ConflictDetails)
	if err != nil {
		return fmt.Errorf("failed to encode conflict details %s: %w", conflict.ID, err)
	}
	localData, err := json.Marshal(conflict.LocalData)
	if err != nil {
		return fmt.Errorf("failed to encode conflict local data %s: %w", conflict.ID, err)
	}
	serverData, err := json.Marshal(conflict.ServerData)
	if err != nil {
		return fmt.Errorf("failed to encode conflict server data %s: %w", conflict.ID, err)
	}

	_, err = r.DB.ExecContext(ctx, saveConflict,
		conflict.ID,
		conflict.EntityType,
		conflict.EntityID,
		conflict.LocalVersion,
		conflict.ServerVersion,
		conflict.ConflictType,
		conflict.Timestamp,
		details,
		localData,
		serverData,
	)
	if err != nil {
		log.Err(err).
			Str("func", "conflictRepository.SaveConflict").
			Str("conflict_id", conflict.ID).
			Str("entity_id", conflict.EntityID).
			Msg("failed to execute upsert for conflict")
		return fmt.Errorf("failed to save conflict %s: %w", conflict.ID, err)
	}

	return nil
}

func (r *conflictRepository) GetConflict(ctx context.Context, conflictID string) (models.SyncConflict, error) {
	row := r.DB.QueryRowContext(ctx, getConflict, conflictID)

	conflict, err := scanConflictRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncConflict{}, fmt.Errorf("%w: conflict %s", ErrRecordNotFound, conflictID)
	}
	if err != nil {
		return models.SyncConflict{}, fmt.Errorf("failed to get conflict %s: %w", conflictID, err)
	}

	return conflict, nil
}

func (r *conflictRepository) GetAllConflicts(ctx context.Context) ([]models.SyncConflict, error) {
	return r.queryConflicts(ctx, sq.Eq{})
}

func (r *conflictRepository) GetConflictsByEntityType(ctx context.Context, entityType models.EntityType) ([]models.SyncConflict, error) {
	return r.queryConflicts(ctx, sq.Eq{"entity_type": entityType})
}

func (r *conflictRepository) queryConflicts(ctx context.Context, where sq.Eq) ([]models.SyncConflict, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"id", "entity_type", "entity_id", "local_version", "server_version",
		"conflict_type", "timestamp", "details", "local_data", "server_data",
	).
		From("sync_conflicts").
		OrderBy("timestamp").
		PlaceholderFormat(sq.Dollar)
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build conflicts query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "conflictRepository.queryConflicts").
			Msg("failed to query conflicts")
		return nil, fmt.Errorf("failed to query conflicts: %w", err)
	}
	defer rows.Close()

	var conflicts []models.SyncConflict
	for rows.Next() {
		conflict, scanErr := scanConflictRow(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan conflict row: %w", scanErr)
		}
		conflicts = append(conflicts, conflict)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating conflict rows: %w", rowsErr)
	}

	return conflicts, nil
}

func (r *conflictRepository) DeleteConflict(ctx context.Context, conflictID string) error {
	if _, err := r.DB.ExecContext(ctx, deleteConflict, conflictID); err != nil {
		return fmt.Errorf("failed to delete conflict %s: %w", conflictID, err)
	}
	return nil
}

func (r *conflictRepository) ClearConflicts(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx, clearConflicts)
	if err != nil {
		return 0, fmt.Errorf("failed to clear conflicts: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

func scanConflictRow(scan func(dest ...any) error) (models.SyncConflict, error) {
	var (
		conflict   models.SyncConflict
		details    []byte
		localData  []byte
		serverData []byte
	)
	err := scan(
		&conflict.ID,
		&conflict.EntityType,
		&conflict.EntityID,
		&conflict.LocalVersion,
		&conflict.ServerVersion,
		&conflict.ConflictType,
		&conflict.Timestamp,
		&details,
		&localData,
		&serverData,
	)
	if err != nil {
		return models.SyncConflict{}, err
	}

	if len(details) > 0 {
		if err = json.Unmarshal(details, &conflict.ConflictDetails); err != nil {
			return models.SyncConflict{}, fmt.Errorf("decode conflict details: %w", err)
		}
	}
	if len(localData) > 0 {
		if err = json.Unmarshal(localData, &conflict.LocalData); err != nil {
			return models.SyncConflict{}, fmt.Errorf("decode conflict local data: %w", err)
		}
	}
	if len(serverData) > 0 {
		if err = json.Unmarshal(serverData, &conflict.ServerData); err != nil {
			return models.SyncConflict{}, fmt.Errorf("decode conflict server data: %w", err)
		}
	}

	return conflict, nil
}
