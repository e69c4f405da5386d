// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the engine's local persistence: the generic entity
// store consumed by the integration layer, the durable pending-change queue,
// and the conflicts table. The default backend is a single SQLite database
// file, mirroring how the rest of the application keeps device-local state;
// an in-memory implementation of [LocalStore] is provided for tests.
package store

import (
	"context"

	"github.com/MKhiriev/go-pack-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Entity store names used by the integration layer. They mirror the remote
// table names so a pulled row maps to its local store without translation.
const (
	StoreTrips            = "trips"
	StoreTripPeople       = "trip_people"
	StoreTripItems        = "trip_items"
	StoreDefaultItemRules = "trip_default_item_rules"
	StoreRulePacks        = "rule_packs"
	StoreTripRules        = "trip_rules"
	StoreRuleOverrides    = "trip_rule_overrides"
)

// Index names accepted by [LocalStore.GetAllByIndex].
const (
	IndexTripID     = "tripId"
	IndexEntityType = "entityType"
	IndexUserID     = "userId"
)

// LocalStore is the key-value entity store collaborator. Values are generic
// JSON objects keyed by their client-generated "id" field; indexed scans are
// supported for the columns named by the Index constants.
//
// The sync engine never interprets entity payloads beyond the id/tripId keys;
// business meaning stays with the application.
type LocalStore interface {
	// Get returns the value stored under id in the named store.
	// Returns [ErrRecordNotFound] when absent.
	Get(ctx context.Context, storeName, id string) (map[string]any, error)

	// Put inserts or replaces value in the named store, keyed by
	// value["id"]. Index columns are extracted from the value at write
	// time.
	Put(ctx context.Context, storeName string, value map[string]any) error

	// Delete removes the value stored under id. Deleting an absent id is
	// not an error.
	Delete(ctx context.Context, storeName, id string) error

	// GetAllByIndex returns every value in the named store whose index
	// column equals key.
	GetAllByIndex(ctx context.Context, storeName, index, key string) ([]map[string]any, error)
}

// ChangeRepository is the durable pending-change queue keyed by change id.
type ChangeRepository interface {
	// SaveChange inserts or replaces a change record.
	SaveChange(ctx context.Context, change models.Change) error

	// GetPendingChanges returns all unsynced changes ordered by their
	// mutation timestamp.
	GetPendingChanges(ctx context.Context) ([]models.Change, error)

	// GetUnsyncedByEntityID returns the unsynced change for entityID, or
	// [ErrRecordNotFound] when the entity has no pending change.
	GetUnsyncedByEntityID(ctx context.Context, entityID string) (models.Change, error)

	// MarkChangeSynced flips the synced flag for the given change id.
	MarkChangeSynced(ctx context.Context, changeID string) error

	// DeleteChange removes a change record.
	DeleteChange(ctx context.Context, changeID string) error

	// DeleteSyncedChanges removes every acknowledged change, returning the
	// number of rows dropped.
	DeleteSyncedChanges(ctx context.Context) (int64, error)
}

// ConflictRepository persists structural conflicts until they are resolved.
type ConflictRepository interface {
	// SaveConflict inserts or replaces a conflict record.
	SaveConflict(ctx context.Context, conflict models.SyncConflict) error

	// GetConflict returns the conflict with the given id, or
	// [ErrRecordNotFound].
	GetConflict(ctx context.Context, conflictID string) (models.SyncConflict, error)

	// GetAllConflicts returns every unresolved conflict ordered by
	// detection time.
	GetAllConflicts(ctx context.Context) ([]models.SyncConflict, error)

	// GetConflictsByEntityType returns unresolved conflicts for one
	// entity kind.
	GetConflictsByEntityType(ctx context.Context, entityType models.EntityType) ([]models.SyncConflict, error)

	// DeleteConflict removes a single conflict after resolution.
	DeleteConflict(ctx context.Context, conflictID string) error

	// ClearConflicts removes all conflicts, returning the number dropped.
	ClearConflicts(ctx context.Context) (int64, error)
}
