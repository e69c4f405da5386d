// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pack-sync/internal/adapter"
	"github.com/MKhiriev/go-pack-sync/internal/config"
	"github.com/MKhiriev/go-pack-sync/internal/connectivity"
	"github.com/MKhiriev/go-pack-sync/internal/logger"
	"github.com/MKhiriev/go-pack-sync/internal/store"
)

// Services wires the engine's business layer around a single shared state
// hub, so the tracker's queue updates and the orchestrator's cycle results
// reach the same subscribers.
type Services struct {
	Tracker      ChangeTracker
	Integration  EntityIntegration
	Orchestrator SyncOrchestrator
}

// Hooks carries the application callbacks invoked when resolved entities are
// applied or removed locally. Nil hooks are allowed.
type Hooks struct {
	OnUpsert UpsertHook
	OnRemove RemoveHook
}

// NewServices assembles the engine from its collaborators.
func NewServices(
	storages *store.Storages,
	remote adapter.RemoteClient,
	monitor connectivity.Monitor,
	hooks Hooks,
	cfg config.Sync,
	logger *logger.Logger,
) *Services {
	hub := newStateHub()
	integration := NewEntityIntegration(storages.Entities, hooks.OnUpsert, hooks.OnRemove, logger)

	return &Services{
		Tracker:     NewChangeTracker(storages.Changes, hub, logger),
		Integration: integration,
		Orchestrator: NewSyncOrchestrator(
			storages.Changes,
			storages.Conflicts,
			remote,
			integration,
			monitor,
			hub,
			OrchestratorConfig{Interval: cfg.Interval, UserID: cfg.UserID},
			logger,
		),
	}
}
