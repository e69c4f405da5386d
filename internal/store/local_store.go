package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pack-sync/internal/logger"
)

// indexColumns maps the public index names of [LocalStore.GetAllByIndex] to
// their backing columns.
var indexColumns = map[string]string{
	IndexTripID:     "trip_id",
	IndexEntityType: "entity_type",
	IndexUserID:     "user_id",
}

type sqliteLocalStore struct {
	*DB
	logger *logger.Logger
}

// NewLocalStore returns the SQLite-backed [LocalStore]. All named stores
// share one records table partitioned by the store column; the tripId,
// entityType and userId index columns are denormalised out of the payload at
// write time.
func NewLocalStore(db *DB, logger *logger.Logger) LocalStore {
	return &sqliteLocalStore{DB: db, logger: logger}
}

func (s *sqliteLocalStore) Get(ctx context.Context, storeName, id string) (map[string]any, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	err := s.DB.QueryRowContext(ctx, getRecord, storeName, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, storeName, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStore.Get").
			Str("store", storeName).
			Str("id", id).
			Msg("failed to query record")
		return nil, fmt.Errorf("failed to query record %s/%s: %w", storeName, id, err)
	}

	var value map[string]any
	if err = json.Unmarshal(payload, &value); err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStore.Get").
			Str("store", storeName).
			Str("id", id).
			Msg("failed to decode record payload")
		return nil, fmt.Errorf("failed to decode record %s/%s: %w", storeName, id, err)
	}

	return value, nil
}

func (s *sqliteLocalStore) Put(ctx context.Context, storeName string, value map[string]any) error {
	log := logger.FromContext(ctx)

	id := stringField(value, "id")
	if id == "" {
		return ErrMissingID
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %s/%s: %w", storeName, id, err)
	}

	_, err = s.DB.ExecContext(ctx, putRecord,
		storeName,
		id,
		stringField(value, "tripId"),
		stringField(value, "entityType"),
		stringField(value, "userId"),
		payload,
		time.Now().UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStore.Put").
			Str("store", storeName).
			Str("id", id).
			Msg("failed to execute upsert for record")
		return fmt.Errorf("failed to put record %s/%s: %w", storeName, id, err)
	}

	return nil
}

func (s *sqliteLocalStore) Delete(ctx context.Context, storeName, id string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteRecord, storeName, id); err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStore.Delete").
			Str("store", storeName).
			Str("id", id).
			Msg("failed to execute delete for record")
		return fmt.Errorf("failed to delete record %s/%s: %w", storeName, id, err)
	}

	return nil
}

func (s *sqliteLocalStore) GetAllByIndex(ctx context.Context, storeName, index, key string) ([]map[string]any, error) {
	log := logger.FromContext(ctx)

	column, ok := indexColumns[index]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndex, index)
	}

	query, args, err := sq.Select("payload").
		From("records").
		Where(sq.Eq{"store": storeName, column: key}).
		OrderBy("updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build index query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStore.GetAllByIndex").
			Str("store", storeName).
			Str("index", index).
			Msg("failed to execute index scan")
		return nil, fmt.Errorf("failed to scan index %s on %s: %w", index, storeName, err)
	}
	defer rows.Close()

	var values []map[string]any
	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}

		var value map[string]any
		if err = json.Unmarshal(payload, &value); err != nil {
			return nil, fmt.Errorf("failed to decode record payload: %w", err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	return values, nil
}

func stringField(value map[string]any, key string) string {
	s, _ := value[key].(string)
	return s
}
