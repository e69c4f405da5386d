package service

import (
	"sync"

	"github.com/MKhiriev/go-pack-sync/models"
)

// stateHub owns the process-wide SyncState and its subscriber set. Only the
// orchestrator and the change tracker hold a reference; all mutation goes
// through Update so readers always observe a consistent snapshot.
type stateHub struct {
	mu          sync.Mutex
	state       models.SyncState
	subscribers map[int]func(models.SyncState)
	nextID      int
}

func newStateHub() *stateHub {
	return &stateHub{subscribers: make(map[int]func(models.SyncState))}
}

// Snapshot returns a copy of the current state.
func (h *stateHub) Snapshot() models.SyncState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Clone()
}

// Update applies fn to the state under the lock and notifies subscribers
// with the resulting snapshot outside of it.
func (h *stateHub) Update(fn func(*models.SyncState)) {
	h.mu.Lock()
	fn(&h.state)
	snapshot := h.state.Clone()
	cbs := make([]func(models.SyncState), 0, len(h.subscribers))
	for _, cb := range h.subscribers {
		cbs = append(cbs, cb)
	}
	h.mu.Unlock()

	for _, cb := range cbs {
		cb(snapshot)
	}
}

// Subscribe registers cb and synchronously invokes it with the current
// snapshot. The returned function unsubscribes.
func (h *stateHub) Subscribe(cb func(models.SyncState)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subscribers[id] = cb
	snapshot := h.state.Clone()
	h.mu.Unlock()

	cb(snapshot)

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers, id)
	}
}

// Close drops all subscribers.
func (h *stateHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers = make(map[int]func(models.SyncState))
}

// setPendingChange replaces or appends the queue entry for change's entity.
func setPendingChange(state *models.SyncState, change models.Change) {
	for i, existing := range state.PendingChanges {
		if existing.EntityID == change.EntityID {
			state.PendingChanges[i] = change
			return
		}
	}
	state.PendingChanges = append(state.PendingChanges, change)
}

// removePendingChange drops the queue entry with the given change id.
func removePendingChange(state *models.SyncState, changeID string) {
	for i, existing := range state.PendingChanges {
		if existing.ID == changeID {
			state.PendingChanges = append(state.PendingChanges[:i], state.PendingChanges[i+1:]...)
			return
		}
	}
}

// removeConflict drops the conflict with the given id.
func removeConflict(state *models.SyncState, conflictID string) {
	for i, existing := range state.Conflicts {
		if existing.ID == conflictID {
			state.Conflicts = append(state.Conflicts[:i], state.Conflicts[i+1:]...)
			return
		}
	}
}
