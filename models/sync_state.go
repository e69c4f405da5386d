package models

// SyncState is the orchestrator's unified status snapshot, one instance per
// application session. It is constructed with defaults at orchestrator start,
// mutated exclusively by the orchestrator, and handed to subscribers by value
// so callers can never mutate the orchestrator's copy through it.
type SyncState struct {
	// IsOnline mirrors the connectivity monitor's network reachability.
	IsOnline bool `json:"isOnline"`

	// IsConnected reports whether the remote authority answered the last
	// probe; online networks with an unreachable backend stay disconnected.
	IsConnected bool `json:"isConnected"`

	// IsSyncing is true while a push/pull cycle is in flight.
	IsSyncing bool `json:"isSyncing"`

	// IsInitialized is set once the orchestrator has loaded persisted
	// pending changes and conflicts after Start.
	IsInitialized bool `json:"isInitialized"`

	// PendingChanges are the unsynced changes queued for push, excluding
	// device-local identities which are filtered before persistence.
	PendingChanges []Change `json:"pendingChanges"`

	// Conflicts are the unresolved structural conflicts awaiting a policy
	// or human decision.
	Conflicts []SyncConflict `json:"conflicts"`

	// LastSyncTimestamp is the Unix-millisecond time of the last completed
	// cycle; pulls request rows updated at or after it.
	LastSyncTimestamp int64 `json:"lastSyncTimestamp"`

	// Error holds the message of the last failed cycle, empty when the
	// last cycle succeeded or was skipped offline.
	Error string `json:"error,omitempty"`
}

// Clone returns a deep-enough copy for handing to subscribers: slices are
// duplicated so a later orchestrator mutation does not race a reader.
func (s SyncState) Clone() SyncState {
	out := s
	if s.PendingChanges != nil {
		out.PendingChanges = make([]Change, len(s.PendingChanges))
		copy(out.PendingChanges, s.PendingChanges)
	}
	if s.Conflicts != nil {
		out.Conflicts = make([]SyncConflict, len(s.Conflicts))
		copy(out.Conflicts, s.Conflicts)
	}
	return out
}
