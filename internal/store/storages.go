package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pack-sync/internal/config"
	"github.com/MKhiriev/go-pack-sync/internal/logger"
)

// Storages groups the engine's local persistence layers into one value that
// can be passed to the service layer.
type Storages struct {
	// Entities is the generic entity store written by the integration layer.
	Entities LocalStore
	// Changes is the durable pending-change queue.
	Changes ChangeRepository
	// Conflicts is the persisted conflicts table.
	Conflicts ConflictRepository
}

// NewStorages opens the SQLite database referenced by cfg.DB.DSN (creating
// the file if needed), runs pending schema migrations, and wires the three
// repositories over the shared connection.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Entities:  NewLocalStore(db, logger),
		Changes:   NewChangeRepository(db, logger),
		Conflicts: NewConflictRepository(db, logger),
	}, nil
}
