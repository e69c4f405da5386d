// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pack-sync/internal/adapter"
	"github.com/MKhiriev/go-pack-sync/internal/connectivity"
	"github.com/MKhiriev/go-pack-sync/internal/diff"
	"github.com/MKhiriev/go-pack-sync/internal/logger"
	"github.com/MKhiriev/go-pack-sync/internal/mock"
	"github.com/MKhiriev/go-pack-sync/internal/store"
	"github.com/MKhiriev/go-pack-sync/models"
)

type orchestratorMocks struct {
	changes     *mock.MockChangeRepository
	conflicts   *mock.MockConflictRepository
	remote      *mock.MockRemoteClient
	integration *mock.MockEntityIntegration
	monitor     *connectivity.ManualMonitor
}

// newTestOrchestrator — хелпер для создания syncOrchestrator с моками; active
// взводится вручную, чтобы тесты гоняли циклы без запуска таймера
func newTestOrchestrator(t *testing.T, ctrl *gomock.Controller) (*syncOrchestrator, orchestratorMocks) {
	t.Helper()

	m := orchestratorMocks{
		changes:     mock.NewMockChangeRepository(ctrl),
		conflicts:   mock.NewMockConflictRepository(ctrl),
		remote:      mock.NewMockRemoteClient(ctrl),
		integration: mock.NewMockEntityIntegration(ctrl),
		monitor:     connectivity.NewManualMonitor(connectivity.State{IsOnline: true, IsConnected: true}),
	}

	orch := NewSyncOrchestrator(
		m.changes, m.conflicts, m.remote, m.integration, m.monitor,
		newStateHub(),
		OrchestratorConfig{Interval: time.Hour, UserID: "user-42"},
		logger.Nop(),
	).(*syncOrchestrator)
	orch.active.Store(true)

	return orch, m
}

func pendingUpdate(entityID string, data string) models.Change {
	return models.Change{
		ID:         "chg-" + entityID,
		EntityType: models.EntityTrip,
		Operation:  models.OpUpdate,
		EntityID:   entityID,
		UserID:     "user-42",
		Version:    2,
		Timestamp:  time.Now().UnixMilli(),
		Data:       json.RawMessage(data),
	}
}

// expectEmptyPulls покрывает таблицы, не участвующие в сценарии
func expectEmptyPulls(m orchestratorMocks) {
	m.remote.EXPECT().PullSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

// ── runCycle ─────────────────────────────────────────────────────────────────

func TestSyncOrchestrator_RunCycle_OfflineIsSilentNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	m.monitor.SetState(connectivity.State{})

	// Ни одного сетевого вызова и ни одного обращения к хранилищу
	require.NoError(t, orch.runCycle(context.Background()))
	assert.Empty(t, orch.SyncState().Error)
}

func TestSyncOrchestrator_RunCycle_PushesPendingCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	change := pendingUpdate("trip-xyz", `{"title":"Alps"}`)
	change.Operation = models.OpCreate

	m.changes.EXPECT().GetPendingChanges(ctx).Return([]models.Change{change}, nil)
	m.remote.EXPECT().InsertRow(ctx, adapter.TableTrips, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, row map[string]any) error {
			// Клиентский id уходит на сервер без подмены
			assert.Equal(t, "trip-xyz", row["id"])
			return nil
		},
	)
	m.changes.EXPECT().MarkChangeSynced(ctx, change.ID).Return(nil)
	expectEmptyPulls(m)
	m.changes.EXPECT().DeleteSyncedChanges(ctx).Return(int64(1), nil)

	require.NoError(t, orch.runCycle(ctx))

	state := orch.SyncState()
	assert.False(t, state.IsSyncing)
	assert.NotZero(t, state.LastSyncTimestamp)
}

func TestSyncOrchestrator_Push_ReplayedInsertFallsBackToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	change := pendingUpdate("trip-1", `{"title":"Alps"}`)
	change.Operation = models.OpCreate

	m.changes.EXPECT().GetPendingChanges(ctx).Return([]models.Change{change}, nil)
	gomock.InOrder(
		m.remote.EXPECT().InsertRow(ctx, adapter.TableTrips, gomock.Any()).Return(adapter.ErrUniqueViolation),
		m.remote.EXPECT().UpdateRow(ctx, adapter.TableTrips, "trip-1", gomock.Any()).Return(nil),
	)
	m.changes.EXPECT().MarkChangeSynced(ctx, change.ID).Return(nil)

	require.NoError(t, orch.push(ctx))
}

func TestSyncOrchestrator_Push_DeleteOfMissingRowIsDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	change := pendingUpdate("trip-1", "")
	change.Operation = models.OpDelete
	change.Data = nil

	m.changes.EXPECT().GetPendingChanges(ctx).Return([]models.Change{change}, nil)
	m.remote.EXPECT().DeleteRow(ctx, adapter.TableTrips, "trip-1").Return(adapter.ErrNotFound)
	m.changes.EXPECT().MarkChangeSynced(ctx, change.ID).Return(nil)

	require.NoError(t, orch.push(ctx))
}

func TestSyncOrchestrator_Push_HoldsConflictedEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	held := pendingUpdate("trip-held", `{"title":"A"}`)
	free := pendingUpdate("trip-free", `{"title":"B"}`)

	orch.hub.Update(func(state *models.SyncState) {
		state.Conflicts = []models.SyncConflict{{ID: "cfl-1", EntityID: "trip-held"}}
	})

	m.changes.EXPECT().GetPendingChanges(ctx).Return([]models.Change{held, free}, nil)
	// Только неконфликтная запись уходит на сервер
	m.remote.EXPECT().UpdateRow(ctx, adapter.TableTrips, "trip-free", gomock.Any()).Return(nil)
	m.changes.EXPECT().MarkChangeSynced(ctx, free.ID).Return(nil)

	require.NoError(t, orch.push(ctx))
}

func TestSyncOrchestrator_RunCycle_TransportErrorSurfacesInState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	change := pendingUpdate("trip-1", `{"title":"Alps"}`)

	m.changes.EXPECT().GetPendingChanges(ctx).Return([]models.Change{change}, nil)
	m.remote.EXPECT().UpdateRow(ctx, adapter.TableTrips, "trip-1", gomock.Any()).Return(adapter.ErrUnavailable)

	err := orch.runCycle(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnavailable)

	state := orch.SyncState()
	assert.False(t, state.IsSyncing)
	assert.NotEmpty(t, state.Error)
	assert.Zero(t, state.LastSyncTimestamp, "неудачный цикл не сдвигает окно пулла")
}

// ── pull / reconcile ─────────────────────────────────────────────────────────

func TestSyncOrchestrator_Pull_AppliesRowWithoutPendingChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	row := map[string]any{"id": "trip-9", "title": "Sea"}

	m.remote.EXPECT().PullSince(ctx, adapter.TableTrips, int64(0)).Return([]map[string]any{row}, nil)
	expectEmptyPulls(m)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-9").Return(models.Change{}, store.ErrRecordNotFound)
	m.integration.EXPECT().Apply(ctx, models.EntityTrip, row).Return(nil)

	require.NoError(t, orch.pull(ctx, 0))
}

func TestSyncOrchestrator_Pull_RemovesDeletedRowWithoutPendingChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	row := map[string]any{"id": "trip-9", "deleted": true}

	m.remote.EXPECT().PullSince(ctx, adapter.TableTrips, int64(0)).Return([]map[string]any{row}, nil)
	expectEmptyPulls(m)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-9").Return(models.Change{}, store.ErrRecordNotFound)
	m.integration.EXPECT().Remove(ctx, models.EntityTrip, "trip-9").Return(nil)

	require.NoError(t, orch.pull(ctx, 0))
}

func TestSyncOrchestrator_Pull_IdenticalSidesAbsorbPendingChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	// Расхождение только в игнорируемых системных полях
	pending := pendingUpdate("trip-1", `{"id":"trip-1","title":"Alps","version":2}`)
	row := map[string]any{"id": "trip-1", "title": "Alps", "version": float64(5), "updatedAt": float64(999)}

	m.remote.EXPECT().PullSince(ctx, adapter.TableTrips, int64(0)).Return([]map[string]any{row}, nil)
	expectEmptyPulls(m)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-1").Return(pending, nil)
	m.integration.EXPECT().Apply(ctx, models.EntityTrip, gomock.Any()).Return(nil)
	m.changes.EXPECT().MarkChangeSynced(ctx, pending.ID).Return(nil)

	require.NoError(t, orch.pull(ctx, 0))
}

func TestSyncOrchestrator_Pull_DivergingEditsBecomeConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	pending := pendingUpdate("trip-1", `{"id":"trip-1","title":"Local title"}`)
	row := map[string]any{"id": "trip-1", "title": "Server title", "version": float64(7)}

	m.remote.EXPECT().PullSince(ctx, adapter.TableTrips, int64(0)).Return([]map[string]any{row}, nil)
	expectEmptyPulls(m)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-1").Return(pending, nil)

	var saved models.SyncConflict
	m.conflicts.EXPECT().SaveConflict(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.SyncConflict) error {
			saved = c
			return nil
		},
	)

	require.NoError(t, orch.pull(ctx, 0))

	assert.Equal(t, models.UpdateConflict, saved.ConflictType)
	assert.Equal(t, "trip-1", saved.EntityID)
	assert.EqualValues(t, 2, saved.LocalVersion)
	assert.EqualValues(t, 7, saved.ServerVersion)
	require.Len(t, saved.ConflictDetails, 1)
	assert.Equal(t, "title", saved.ConflictDetails[0].Path)

	// Конфликт опубликован, локальные данные не перезаписаны
	state := orch.SyncState()
	require.Len(t, state.Conflicts, 1)
}

func TestSyncOrchestrator_Pull_ServerDeleteAgainstLocalEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	pending := pendingUpdate("trip-1", `{"id":"trip-1","title":"Still mine"}`)
	row := map[string]any{"id": "trip-1", "deleted": true, "version": float64(4)}

	m.remote.EXPECT().PullSince(ctx, adapter.TableTrips, int64(0)).Return([]map[string]any{row}, nil)
	expectEmptyPulls(m)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-1").Return(pending, nil)

	var saved models.SyncConflict
	m.conflicts.EXPECT().SaveConflict(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.SyncConflict) error {
			saved = c
			return nil
		},
	)

	require.NoError(t, orch.pull(ctx, 0))
	assert.Equal(t, models.DeleteConflict, saved.ConflictType)
	assert.Empty(t, saved.ConflictDetails)
}

func TestSyncOrchestrator_Pull_BothSidesDeletedIsReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	pending := pendingUpdate("trip-1", "")
	pending.Operation = models.OpDelete
	pending.Data = nil
	row := map[string]any{"id": "trip-1", "deleted": true}

	m.remote.EXPECT().PullSince(ctx, adapter.TableTrips, int64(0)).Return([]map[string]any{row}, nil)
	expectEmptyPulls(m)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-1").Return(pending, nil)
	m.integration.EXPECT().Remove(ctx, models.EntityTrip, "trip-1").Return(nil)
	m.changes.EXPECT().MarkChangeSynced(ctx, pending.ID).Return(nil)

	require.NoError(t, orch.pull(ctx, 0))
}

func TestSyncOrchestrator_Pull_RowWithoutIDIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.remote.EXPECT().PullSince(ctx, adapter.TableTrips, int64(0)).Return([]map[string]any{{"title": "orphan"}}, nil)
	expectEmptyPulls(m)

	require.NoError(t, orch.pull(ctx, 0))
}

// ── ResolveConflict ──────────────────────────────────────────────────────────

func updateConflictFixture() models.SyncConflict {
	return models.SyncConflict{
		ID:            "cfl-1",
		EntityType:    models.EntityTrip,
		EntityID:      "trip-1",
		LocalVersion:  2,
		ServerVersion: 7,
		ConflictType:  models.UpdateConflict,
		LocalData:     map[string]any{"id": "trip-1", "title": "Local title"},
		ServerData:    map[string]any{"id": "trip-1", "title": "Server title"},
	}
}

func TestSyncOrchestrator_ResolveConflict_PreferServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	conflict := updateConflictFixture()

	m.conflicts.EXPECT().GetConflict(ctx, "cfl-1").Return(conflict, nil)
	m.integration.EXPECT().Apply(ctx, models.EntityTrip, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.EntityType, entity map[string]any) error {
			assert.Equal(t, "Server title", entity["title"])
			return nil
		},
	)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-1").Return(models.Change{ID: "chg-trip-1"}, nil)
	m.changes.EXPECT().DeleteChange(ctx, "chg-trip-1").Return(nil)
	m.conflicts.EXPECT().DeleteConflict(ctx, "cfl-1").Return(nil)

	require.NoError(t, orch.ResolveConflict(ctx, "cfl-1", diff.PreferServer))
}

func TestSyncOrchestrator_ResolveConflict_PreferLocalRequeuesChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	conflict := updateConflictFixture()

	m.conflicts.EXPECT().GetConflict(ctx, "cfl-1").Return(conflict, nil)
	m.integration.EXPECT().Apply(ctx, models.EntityTrip, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.EntityType, entity map[string]any) error {
			assert.Equal(t, "Local title", entity["title"])
			return nil
		},
	)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-1").Return(models.Change{}, store.ErrRecordNotFound)

	var requeued models.Change
	m.changes.EXPECT().SaveChange(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Change) error {
			requeued = c
			return nil
		},
	)
	m.conflicts.EXPECT().DeleteConflict(ctx, "cfl-1").Return(nil)

	require.NoError(t, orch.ResolveConflict(ctx, "cfl-1", diff.PreferLocal))

	// Версия перепрыгивает серверную, чтобы следующий push победил чисто
	assert.Equal(t, models.OpUpdate, requeued.Operation)
	assert.EqualValues(t, 8, requeued.Version)
	assert.Equal(t, "user-42", requeued.UserID)
	assert.Equal(t, "trip-1", requeued.EntityID)
}

func TestSyncOrchestrator_ResolveConflict_DeleteConflictPreferServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	conflict := updateConflictFixture()
	conflict.ConflictType = models.DeleteConflict
	conflict.ServerData = map[string]any{"id": "trip-1", "deleted": true}

	m.conflicts.EXPECT().GetConflict(ctx, "cfl-1").Return(conflict, nil)
	m.integration.EXPECT().Remove(ctx, models.EntityTrip, "trip-1").Return(nil)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-1").Return(models.Change{}, store.ErrRecordNotFound)
	m.conflicts.EXPECT().DeleteConflict(ctx, "cfl-1").Return(nil)

	require.NoError(t, orch.ResolveConflict(ctx, "cfl-1", diff.PreferServer))
}

func TestSyncOrchestrator_ResolveConflict_DeleteConflictPreferLocalResurrects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	conflict := updateConflictFixture()
	conflict.ConflictType = models.DeleteConflict

	m.conflicts.EXPECT().GetConflict(ctx, "cfl-1").Return(conflict, nil)
	m.integration.EXPECT().Apply(ctx, models.EntityTrip, conflict.LocalData).Return(nil)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-1").Return(models.Change{}, store.ErrRecordNotFound)
	m.changes.EXPECT().SaveChange(ctx, gomock.Any()).Return(nil)
	m.conflicts.EXPECT().DeleteConflict(ctx, "cfl-1").Return(nil)

	require.NoError(t, orch.ResolveConflict(ctx, "cfl-1", diff.PreferLocal))
}

func TestSyncOrchestrator_ResolveConflict_ManualKeepsConflictPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	conflict := updateConflictFixture()

	m.conflicts.EXPECT().GetConflict(ctx, "cfl-1").Return(conflict, nil)
	m.integration.EXPECT().Apply(ctx, models.EntityTrip, gomock.Any()).Return(nil)
	m.changes.EXPECT().GetUnsyncedByEntityID(ctx, "trip-1").Return(models.Change{}, store.ErrRecordNotFound)
	// DeleteConflict не вызывается — запись остаётся до явного выбора

	require.NoError(t, orch.ResolveConflict(ctx, "cfl-1", diff.Manual))
}

func TestSyncOrchestrator_ResolveConflict_UnknownStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, _ := newTestOrchestrator(t, ctrl)

	err := orch.ResolveConflict(context.Background(), "cfl-1", "newest-wins")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestSyncOrchestrator_ForceSync_BeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, _ := newTestOrchestrator(t, ctrl)
	orch.active.Store(false)

	assert.ErrorIs(t, orch.ForceSync(context.Background()), ErrNotStarted)
}

func TestSyncOrchestrator_StartRestoresPersistedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	pending := []models.Change{pendingUpdate("trip-1", `{"title":"A"}`)}
	conflicts := []models.SyncConflict{{ID: "cfl-1", EntityID: "trip-2"}}

	m.changes.EXPECT().GetPendingChanges(gomock.Any()).Return(pending, nil)
	m.conflicts.EXPECT().GetAllConflicts(gomock.Any()).Return(conflicts, nil)

	require.NoError(t, orch.Start(ctx))
	defer orch.Stop()

	state := orch.SyncState()
	assert.True(t, state.IsInitialized)
	assert.True(t, state.IsConnected)
	require.Len(t, state.PendingChanges, 1)
	require.Len(t, state.Conflicts, 1)
}

func TestSyncOrchestrator_ClearConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	orch.hub.Update(func(state *models.SyncState) {
		state.Conflicts = []models.SyncConflict{{ID: "cfl-1"}, {ID: "cfl-2"}}
	})

	m.conflicts.EXPECT().ClearConflicts(ctx).Return(int64(2), nil)

	require.NoError(t, orch.ClearConflicts(ctx))
	assert.Empty(t, orch.SyncState().Conflicts)
}

func TestSyncOrchestrator_SubscribeDeliversSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, _ := newTestOrchestrator(t, ctrl)

	var got []models.SyncState
	unsubscribe := orch.Subscribe(func(s models.SyncState) {
		got = append(got, s)
	})

	orch.hub.Update(func(state *models.SyncState) {
		state.LastSyncTimestamp = 123
	})
	unsubscribe()
	orch.hub.Update(func(state *models.SyncState) {
		state.LastSyncTimestamp = 456
	})

	require.Len(t, got, 2, "первый снапшот приходит сразу при подписке")
	assert.EqualValues(t, 123, got[1].LastSyncTimestamp)
}

func TestSyncOrchestrator_StopDropsSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch, m := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	m.changes.EXPECT().GetPendingChanges(gomock.Any()).Return(nil, nil)
	m.conflicts.EXPECT().GetAllConflicts(gomock.Any()).Return(nil, nil)

	require.NoError(t, orch.Start(ctx))

	var notified int
	orch.Subscribe(func(models.SyncState) { notified++ })
	require.Equal(t, 1, notified, "снапшот при подписке")

	orch.Stop()

	// Поздняя запись после Stop никого не уведомляет
	orch.hub.Update(func(state *models.SyncState) {
		state.LastSyncTimestamp = 999
	})
	assert.Equal(t, 1, notified)
}
