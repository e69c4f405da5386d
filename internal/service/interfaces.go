// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the sync engine's business layer: the change
// tracker with its pending queue, the push/pull orchestrator, and the entity
// integration layer that applies resolved remote state back into the local
// store.
package service

import (
	"context"

	"github.com/MKhiriev/go-pack-sync/internal/diff"
	"github.com/MKhiriev/go-pack-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ChangeTracker records local mutations into the durable pending queue.
type ChangeTracker interface {
	// TrackChange validates and persists a local mutation, superseding
	// any unsynced prior change for the same entity. Changes produced by
	// device-local identities (userId "local-user", "local-shared-user",
	// or any "local-" prefix) are dropped before they reach storage and
	// leave no trace.
	TrackChange(ctx context.Context, change models.Change) error
}

// SyncOrchestrator drives push/pull cycles against the remote authority.
type SyncOrchestrator interface {
	// Start loads persisted queue state, subscribes to connectivity, and
	// launches the auto-sync timer.
	Start(ctx context.Context) error

	// Stop tears down the timer and all subscriptions. Safe to call
	// mid-cycle: in-flight network calls may complete but their results
	// no longer mutate state.
	Stop()

	// ForceSync runs one sync cycle immediately. Offline it is a silent
	// no-op; while another cycle is in flight the request is dropped.
	ForceSync(ctx context.Context) error

	// Subscribe registers cb for SyncState snapshots and synchronously
	// invokes it with the current one. The returned function
	// unsubscribes.
	Subscribe(cb func(models.SyncState)) func()

	// SyncState returns the current snapshot.
	SyncState() models.SyncState

	// ResolveConflict applies the given strategy to a persisted conflict
	// and removes it.
	ResolveConflict(ctx context.Context, conflictID string, strategy diff.Strategy) error

	// ClearConflicts drops all persisted conflicts without applying
	// either side.
	ClearConflicts(ctx context.Context) error
}

// EntityIntegration translates resolved remote entities into local-store
// writes and application notifications. The sync engine never owns entity
// storage; this boundary keeps sync mechanics separate from business data.
type EntityIntegration interface {
	// Exists reports whether the entity is present in its local store.
	Exists(ctx context.Context, entityType models.EntityType, entityID string) (bool, error)

	// OnTripUpsert applies a resolved trip into the local store.
	OnTripUpsert(ctx context.Context, entity map[string]any) error
	// OnPersonUpsert applies a resolved person into the local store.
	OnPersonUpsert(ctx context.Context, entity map[string]any) error
	// OnItemUpsert applies a resolved item into the local store.
	OnItemUpsert(ctx context.Context, entity map[string]any) error
	// OnDefaultItemRuleUpsert applies a resolved default item rule.
	OnDefaultItemRuleUpsert(ctx context.Context, entity map[string]any) error
	// OnRulePackUpsert applies a resolved rule pack.
	OnRulePackUpsert(ctx context.Context, entity map[string]any) error
	// OnTripRuleUpsert applies a resolved trip-rule link.
	OnTripRuleUpsert(ctx context.Context, entity map[string]any) error
	// OnRuleOverrideUpsert applies a resolved rule override.
	OnRuleOverrideUpsert(ctx context.Context, entity map[string]any) error

	// Apply dispatches entity to the upsert callback matching entityType.
	Apply(ctx context.Context, entityType models.EntityType, entity map[string]any) error

	// Remove deletes the entity from its local store and notifies the
	// application.
	Remove(ctx context.Context, entityType models.EntityType, entityID string) error
}
