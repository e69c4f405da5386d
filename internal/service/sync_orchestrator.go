// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pack-sync/internal/adapter"
	"github.com/MKhiriev/go-pack-sync/internal/connectivity"
	"github.com/MKhiriev/go-pack-sync/internal/diff"
	"github.com/MKhiriev/go-pack-sync/internal/logger"
	"github.com/MKhiriev/go-pack-sync/internal/store"
	"github.com/MKhiriev/go-pack-sync/internal/utils"
	"github.com/MKhiriev/go-pack-sync/models"
)

// pullOrder lists the remote tables in dependency order: parents before the
// rows that reference them, so an applied child never dangles.
var pullOrder = []struct {
	table      string
	entityType models.EntityType
}{
	{adapter.TableTrips, models.EntityTrip},
	{adapter.TableTripPeople, models.EntityPerson},
	{adapter.TableTripItems, models.EntityItem},
	{adapter.TableDefaultItemRules, models.EntityDefaultItemRule},
	{adapter.TableRulePacks, models.EntityRulePack},
	{adapter.TableTripRules, models.EntityTripRule},
	{adapter.TableRuleOverrides, models.EntityRuleOverride},
}

type syncOrchestrator struct {
	changes     store.ChangeRepository
	conflicts   store.ConflictRepository
	remote      adapter.RemoteClient
	integration EntityIntegration
	monitor     connectivity.Monitor
	hub         *stateHub
	idGen       *utils.UUIDGenerator
	logger      *logger.Logger

	interval time.Duration
	userID   string

	mu          sync.Mutex
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup

	active  atomic.Bool
	syncing atomic.Bool
}

// OrchestratorConfig carries the orchestrator's tunables.
type OrchestratorConfig struct {
	// Interval is the auto-sync timer period.
	Interval time.Duration

	// UserID is stamped on changes the orchestrator re-queues on the
	// user's behalf during conflict resolution.
	UserID string
}

// NewSyncOrchestrator constructs the [SyncOrchestrator]. hub is shared with
// the change tracker so queue updates from either side reach the same
// subscribers.
func NewSyncOrchestrator(
	changes store.ChangeRepository,
	conflicts store.ConflictRepository,
	remote adapter.RemoteClient,
	integration EntityIntegration,
	monitor connectivity.Monitor,
	hub *stateHub,
	cfg OrchestratorConfig,
	log *logger.Logger,
) SyncOrchestrator {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}

	return &syncOrchestrator{
		changes:     changes,
		conflicts:   conflicts,
		remote:      remote,
		integration: integration,
		monitor:     monitor,
		hub:         hub,
		idGen:       utils.NewUUIDGenerator(),
		logger:      log,
		interval:    cfg.Interval,
		userID:      cfg.UserID,
	}
}

// Start implements [SyncOrchestrator]. It restores the persisted queue and
// conflicts into the state snapshot, marks the engine initialized, subscribes
// to connectivity, and launches the auto-sync timer. Calling Start on a
// running orchestrator restarts the timer.
func (o *syncOrchestrator) Start(ctx context.Context) error {
	o.Stop()

	pending, err := o.changes.GetPendingChanges(ctx)
	if err != nil {
		return fmt.Errorf("restore pending changes: %w", err)
	}
	conflicts, err := o.conflicts.GetAllConflicts(ctx)
	if err != nil {
		return fmt.Errorf("restore conflicts: %w", err)
	}

	connState := o.monitor.State()
	o.hub.Update(func(state *models.SyncState) {
		state.PendingChanges = pending
		state.Conflicts = conflicts
		state.IsOnline = connState.IsOnline
		state.IsConnected = connState.IsConnected
		state.IsInitialized = true
	})

	o.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.active.Store(true)

	o.unsubscribe = o.monitor.Subscribe(func(cs connectivity.State) {
		o.onConnectivity(loopCtx, cs)
	})

	o.wg.Add(1)
	go o.run(loopCtx)
	o.mu.Unlock()

	o.logger.Info().
		Str("func", "syncOrchestrator.Start").
		Dur("interval", o.interval).
		Int("pending", len(pending)).
		Int("conflicts", len(conflicts)).
		Msg("sync engine started")

	return nil
}

// Stop implements [SyncOrchestrator]. After it returns no timer fires, no
// connectivity callback mutates state, and all state subscribers are dropped;
// an in-flight cycle may finish its current network call but its results are
// discarded.
func (o *syncOrchestrator) Stop() {
	o.mu.Lock()
	cancel := o.cancel
	unsubscribe := o.unsubscribe
	o.cancel = nil
	o.unsubscribe = nil
	o.mu.Unlock()

	if cancel == nil {
		return
	}

	o.active.Store(false)
	cancel()
	o.wg.Wait()
	if unsubscribe != nil {
		unsubscribe()
	}
	// no subscriber may be notified after Stop returns
	o.hub.Close()
}

func (o *syncOrchestrator) run(ctx context.Context) {
	defer o.wg.Done()

	t := time.NewTicker(o.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := o.runCycle(ctx); err != nil {
				o.logger.Error().
					Err(err).
					Str("func", "syncOrchestrator.run").
					Msg("scheduled sync cycle failed")
			}
		}
	}
}

// onConnectivity mirrors the monitor's state into the snapshot and kicks an
// immediate cycle when the remote comes back within reach, so queued offline
// work flushes without waiting for the next tick.
func (o *syncOrchestrator) onConnectivity(ctx context.Context, cs connectivity.State) {
	if !o.active.Load() {
		return
	}

	var reconnected bool
	o.hub.Update(func(state *models.SyncState) {
		reconnected = cs.IsConnected && !state.IsConnected
		state.IsOnline = cs.IsOnline
		state.IsConnected = cs.IsConnected
	})

	if reconnected {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			if err := o.runCycle(ctx); err != nil {
				o.logger.Error().
					Err(err).
					Str("func", "syncOrchestrator.onConnectivity").
					Msg("reconnect sync cycle failed")
			}
		}()
	}
}

// ForceSync implements [SyncOrchestrator].
func (o *syncOrchestrator) ForceSync(ctx context.Context) error {
	if !o.active.Load() {
		return ErrNotStarted
	}
	return o.runCycle(ctx)
}

// Subscribe implements [SyncOrchestrator].
func (o *syncOrchestrator) Subscribe(cb func(models.SyncState)) func() {
	return o.hub.Subscribe(cb)
}

// SyncState implements [SyncOrchestrator].
func (o *syncOrchestrator) SyncState() models.SyncState {
	return o.hub.Snapshot()
}

// runCycle executes one push-then-pull cycle. Cycles are single-flight:
// while one is in progress further requests return immediately without
// queueing. Offline the cycle is a silent no-op so callers can invoke it
// unconditionally.
func (o *syncOrchestrator) runCycle(ctx context.Context) error {
	if !o.syncing.CompareAndSwap(false, true) {
		return nil
	}
	defer o.syncing.Store(false)

	if !o.monitor.State().IsConnected {
		return nil
	}

	log := logger.FromContext(ctx)

	var since int64
	o.hub.Update(func(state *models.SyncState) {
		since = state.LastSyncTimestamp
		state.IsSyncing = true
		state.Error = ""
	})

	// Captured before the push so rows updated mid-cycle land in the next
	// pull window instead of being skipped.
	cycleStart := time.Now().UnixMilli()

	err := o.push(ctx)
	if err == nil {
		err = o.pull(ctx, since)
	}

	if err != nil {
		o.hub.Update(func(state *models.SyncState) {
			state.IsSyncing = false
			state.Error = err.Error()
		})
		return err
	}

	if dropped, dErr := o.changes.DeleteSyncedChanges(ctx); dErr != nil {
		log.Warn().
			Err(dErr).
			Str("func", "syncOrchestrator.runCycle").
			Msg("failed to compact acknowledged changes")
	} else if dropped > 0 {
		log.Debug().
			Str("func", "syncOrchestrator.runCycle").
			Int64("dropped", dropped).
			Msg("compacted acknowledged changes")
	}

	o.hub.Update(func(state *models.SyncState) {
		state.IsSyncing = false
		state.LastSyncTimestamp = cycleStart
	})

	return nil
}

// push sends every pending change to the remote in queue order. Changes for
// entities with an open conflict are held back until the conflict is
// resolved. The first transport error aborts the phase; already-acknowledged
// changes stay marked so the retry is incremental.
func (o *syncOrchestrator) push(ctx context.Context) error {
	log := logger.FromContext(ctx)

	pending, err := o.changes.GetPendingChanges(ctx)
	if err != nil {
		return fmt.Errorf("load pending changes: %w", err)
	}

	conflicted := make(map[string]struct{})
	for _, c := range o.hub.Snapshot().Conflicts {
		conflicted[c.EntityID] = struct{}{}
	}

	for _, change := range pending {
		if _, held := conflicted[change.EntityID]; held {
			continue
		}

		if err = o.pushOne(ctx, change); err != nil {
			return fmt.Errorf("push change %s (%s %s): %w", change.ID, change.Operation, change.EntityID, err)
		}

		if err = o.changes.MarkChangeSynced(ctx, change.ID); err != nil {
			return fmt.Errorf("acknowledge change %s: %w", change.ID, err)
		}

		if !o.active.Load() {
			return nil
		}
		o.hub.Update(func(state *models.SyncState) {
			removePendingChange(state, change.ID)
		})

		log.Debug().
			Str("func", "syncOrchestrator.push").
			Str("change_id", change.ID).
			Str("entity_id", change.EntityID).
			Msg("pushed change")
	}

	return nil
}

// pushOne transmits a single change, preserving the client-generated entity
// id as the remote primary key. Replays are absorbed: an insert hitting an
// existing key retries as an update, an update of a missing row retries as
// an insert, a delete of a missing row is already done.
//
// The insert-to-update fallback cannot distinguish a replayed create from a
// cross-client id collision: a colliding row would be overwritten. Entity
// ids are uuid v7, so at-least-once delivery of creates is the case the
// fallback exists for.
func (o *syncOrchestrator) pushOne(ctx context.Context, change models.Change) error {
	table, err := adapter.TableFor(change.EntityType)
	if err != nil {
		return err
	}

	switch change.Operation {
	case models.OpCreate, models.OpUpdate:
		row, err := change.DataAsMap()
		if err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		row["id"] = change.EntityID

		if change.Operation == models.OpCreate {
			err = o.remote.InsertRow(ctx, table, row)
			if errors.Is(err, adapter.ErrUniqueViolation) {
				err = o.remote.UpdateRow(ctx, table, change.EntityID, row)
			}
			return err
		}

		err = o.remote.UpdateRow(ctx, table, change.EntityID, row)
		if errors.Is(err, adapter.ErrNotFound) {
			err = o.remote.InsertRow(ctx, table, row)
		}
		return err

	case models.OpDelete:
		err = o.remote.DeleteRow(ctx, table, change.EntityID)
		if errors.Is(err, adapter.ErrNotFound) {
			return nil
		}
		return err

	default:
		return fmt.Errorf("%w: operation %q", ErrInvalidChange, change.Operation)
	}
}

// pull fetches every table's rows updated since the last completed cycle and
// reconciles each against the pending queue.
func (o *syncOrchestrator) pull(ctx context.Context, since int64) error {
	for _, p := range pullOrder {
		rows, err := o.remote.PullSince(ctx, p.table, since)
		if err != nil {
			return fmt.Errorf("pull %s: %w", p.table, err)
		}

		for _, row := range rows {
			if !o.active.Load() {
				return nil
			}
			if err = o.reconcileRow(ctx, p.entityType, row); err != nil {
				return fmt.Errorf("reconcile %s row: %w", p.table, err)
			}
		}
	}

	return nil
}

// reconcileRow merges one pulled server row with local state. Rows without a
// pending local change apply directly; rows colliding with a pending change
// go through the structural diff, and diverging paths become a persisted
// conflict instead of silently losing one side.
func (o *syncOrchestrator) reconcileRow(ctx context.Context, entityType models.EntityType, row map[string]any) error {
	log := logger.FromContext(ctx)

	rowID, _ := row["id"].(string)
	if rowID == "" {
		log.Warn().
			Str("func", "syncOrchestrator.reconcileRow").
			Str("entity_type", string(entityType)).
			Msg("discarding pulled row without id")
		return nil
	}

	serverDeleted := isDeletedRow(row)

	pending, err := o.changes.GetUnsyncedByEntityID(ctx, rowID)
	if errors.Is(err, store.ErrRecordNotFound) {
		if serverDeleted {
			return o.integration.Remove(ctx, entityType, rowID)
		}
		return o.integration.Apply(ctx, entityType, row)
	}
	if err != nil {
		return fmt.Errorf("lookup pending change for %s: %w", rowID, err)
	}

	localDelete := pending.Operation == models.OpDelete

	// Both sides deleted: nothing to merge, the queue entry is a replay.
	if serverDeleted && localDelete {
		return o.acknowledge(ctx, entityType, pending, nil, true)
	}

	// Exactly one side deleted while the other holds a live edit.
	if serverDeleted != localDelete {
		localData, dErr := pendingDataAsMap(pending)
		if dErr != nil {
			return dErr
		}
		return o.recordConflict(ctx, entityType, pending, row, models.DeleteConflict, nil, localData)
	}

	localData, err := pendingDataAsMap(pending)
	if err != nil {
		return err
	}

	res := diff.Diff(localData, row, diff.DefaultIgnorePaths)
	if res.HasConflicts {
		return o.recordConflict(ctx, entityType, pending, row, models.UpdateConflict, res.Conflicts, localData)
	}

	// Non-overlapping edits: both sides survive in the merged entity and
	// the local change is considered absorbed.
	return o.acknowledge(ctx, entityType, pending, res.Merged, false)
}

// acknowledge marks a pending change as absorbed by the server, optionally
// applying the merged entity (or the server-side delete) locally first.
func (o *syncOrchestrator) acknowledge(ctx context.Context, entityType models.EntityType, pending models.Change, merged map[string]any, deleted bool) error {
	if deleted {
		if err := o.integration.Remove(ctx, entityType, pending.EntityID); err != nil {
			return err
		}
	} else if merged != nil {
		if err := o.integration.Apply(ctx, entityType, merged); err != nil {
			return err
		}
	}

	if err := o.changes.MarkChangeSynced(ctx, pending.ID); err != nil {
		return fmt.Errorf("acknowledge change %s: %w", pending.ID, err)
	}

	o.hub.Update(func(state *models.SyncState) {
		removePendingChange(state, pending.ID)
	})
	return nil
}

// recordConflict persists a structural conflict and publishes it, leaving
// both the local entity and the pending change untouched until resolution.
func (o *syncOrchestrator) recordConflict(
	ctx context.Context,
	entityType models.EntityType,
	pending models.Change,
	row map[string]any,
	conflictType models.ConflictType,
	details []models.ConflictDetail,
	localData map[string]any,
) error {
	log := logger.FromContext(ctx)

	conflict := models.SyncConflict{
		ID:              o.idGen.Generate(),
		EntityType:      entityType,
		EntityID:        pending.EntityID,
		LocalVersion:    pending.Version,
		ServerVersion:   rowVersion(row),
		ConflictType:    conflictType,
		Timestamp:       time.Now().UnixMilli(),
		ConflictDetails: details,
		LocalData:       localData,
		ServerData:      row,
	}

	if err := o.conflicts.SaveConflict(ctx, conflict); err != nil {
		return fmt.Errorf("persist conflict for %s: %w", pending.EntityID, err)
	}

	o.hub.Update(func(state *models.SyncState) {
		state.Conflicts = append(state.Conflicts, conflict)
	})

	log.Info().
		Str("func", "syncOrchestrator.recordConflict").
		Str("conflict_id", conflict.ID).
		Str("entity_id", conflict.EntityID).
		Str("type", string(conflictType)).
		Int("paths", len(details)).
		Msg("conflict detected")

	return nil
}

// ResolveConflict implements [SyncOrchestrator].
//
// For update conflicts the two snapshots are merged per strategy, the result
// is applied locally, and with prefer-local a fresh change is queued so the
// winning values reach the server. A delete conflict has no paths to merge:
// prefer-server applies the delete, prefer-local re-queues the surviving
// data as an update with a bumped version. Manual resolution applies the
// server side but keeps the conflict persisted until an explicit choice
// replaces it.
func (o *syncOrchestrator) ResolveConflict(ctx context.Context, conflictID string, strategy diff.Strategy) error {
	if !strategy.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	conflict, err := o.conflicts.GetConflict(ctx, conflictID)
	if err != nil {
		return fmt.Errorf("load conflict %s: %w", conflictID, err)
	}

	switch conflict.ConflictType {
	case models.DeleteConflict:
		err = o.resolveDelete(ctx, conflict, strategy)
	default:
		err = o.resolveUpdate(ctx, conflict, strategy)
	}
	if err != nil {
		return err
	}

	if strategy == diff.Manual {
		return nil
	}

	if err = o.conflicts.DeleteConflict(ctx, conflictID); err != nil {
		return fmt.Errorf("drop resolved conflict %s: %w", conflictID, err)
	}
	o.hub.Update(func(state *models.SyncState) {
		removeConflict(state, conflictID)
	})

	return nil
}

func (o *syncOrchestrator) resolveUpdate(ctx context.Context, conflict models.SyncConflict, strategy diff.Strategy) error {
	merged := diff.SmartMerge(conflict.LocalData, conflict.ServerData, strategy)

	if err := o.integration.Apply(ctx, conflict.EntityType, merged); err != nil {
		return fmt.Errorf("apply resolution for %s: %w", conflict.EntityID, err)
	}

	if strategy == diff.PreferLocal {
		return o.requeue(ctx, conflict, merged)
	}

	// Server side won: the held change is superseded, drop it.
	return o.dropPendingFor(ctx, conflict.EntityID)
}

func (o *syncOrchestrator) resolveDelete(ctx context.Context, conflict models.SyncConflict, strategy diff.Strategy) error {
	if strategy == diff.PreferLocal && conflict.LocalData != nil {
		// The local edit survives; push it back as an update so the
		// remote resurrects the row.
		if err := o.integration.Apply(ctx, conflict.EntityType, conflict.LocalData); err != nil {
			return fmt.Errorf("apply surviving entity %s: %w", conflict.EntityID, err)
		}
		return o.requeue(ctx, conflict, conflict.LocalData)
	}

	if err := o.integration.Remove(ctx, conflict.EntityType, conflict.EntityID); err != nil {
		return fmt.Errorf("apply delete for %s: %w", conflict.EntityID, err)
	}
	return o.dropPendingFor(ctx, conflict.EntityID)
}

// requeue replaces the held pending change with a fresh update carrying the
// resolved data and a version past both sides, so the next push wins cleanly.
func (o *syncOrchestrator) requeue(ctx context.Context, conflict models.SyncConflict, data map[string]any) error {
	if err := o.dropPendingFor(ctx, conflict.EntityID); err != nil {
		return err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode resolved entity %s: %w", conflict.EntityID, err)
	}

	version := conflict.LocalVersion
	if conflict.ServerVersion > version {
		version = conflict.ServerVersion
	}

	tripID, _ := data["tripId"].(string)
	change := models.Change{
		ID:         o.idGen.Generate(),
		EntityType: conflict.EntityType,
		Operation:  models.OpUpdate,
		EntityID:   conflict.EntityID,
		TripID:     tripID,
		UserID:     o.userID,
		Version:    version + 1,
		Timestamp:  time.Now().UnixMilli(),
		Data:       payload,
	}

	if err = o.changes.SaveChange(ctx, change); err != nil {
		return fmt.Errorf("queue resolved change for %s: %w", conflict.EntityID, err)
	}

	o.hub.Update(func(state *models.SyncState) {
		setPendingChange(state, change)
	})
	return nil
}

func (o *syncOrchestrator) dropPendingFor(ctx context.Context, entityID string) error {
	pending, err := o.changes.GetUnsyncedByEntityID(ctx, entityID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup pending change for %s: %w", entityID, err)
	}

	if err = o.changes.DeleteChange(ctx, pending.ID); err != nil {
		return fmt.Errorf("drop pending change %s: %w", pending.ID, err)
	}

	o.hub.Update(func(state *models.SyncState) {
		removePendingChange(state, pending.ID)
	})
	return nil
}

// ClearConflicts implements [SyncOrchestrator]. Neither side's data is
// applied; pending changes held by the cleared conflicts become pushable
// again.
func (o *syncOrchestrator) ClearConflicts(ctx context.Context) error {
	dropped, err := o.conflicts.ClearConflicts(ctx)
	if err != nil {
		return fmt.Errorf("clear conflicts: %w", err)
	}

	o.hub.Update(func(state *models.SyncState) {
		state.Conflicts = nil
	})

	o.logger.Info().
		Str("func", "syncOrchestrator.ClearConflicts").
		Int64("dropped", dropped).
		Msg("cleared all conflicts")

	return nil
}

// pendingDataAsMap decodes the pending change's payload; delete changes have
// no payload and yield nil.
func pendingDataAsMap(change models.Change) (map[string]any, error) {
	if len(change.Data) == 0 {
		return nil, nil
	}
	data, err := change.DataAsMap()
	if err != nil {
		return nil, fmt.Errorf("decode payload of change %s: %w", change.ID, err)
	}
	return data, nil
}

// isDeletedRow recognises the remote's soft-delete markers.
func isDeletedRow(row map[string]any) bool {
	if deleted, ok := row["deleted"].(bool); ok && deleted {
		return true
	}
	if deletedAt, ok := row["deletedAt"]; ok && deletedAt != nil {
		return true
	}
	return false
}

// rowVersion extracts the numeric version column of a pulled row, zero when
// absent.
func rowVersion(row map[string]any) int64 {
	switch v := row["version"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}
