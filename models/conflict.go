// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConflictType classifies how local and server edits collided.
type ConflictType string

const (
	// UpdateConflict means both sides edited the same entity and the
	// structural diff found diverging paths.
	UpdateConflict ConflictType = "update_conflict"

	// DeleteConflict means one side deleted the entity while the other
	// still holds a live edit for it.
	DeleteConflict ConflictType = "delete_conflict"
)

// DetailType classifies a single diverging path inside a conflict.
type DetailType string

const (
	// DetailModified means both sides hold a value at the path and they differ.
	DetailModified DetailType = "modified"

	// DetailAdded means the path exists only on the server side.
	DetailAdded DetailType = "added"

	// DetailRemoved means the path exists only on the local side.
	DetailRemoved DetailType = "removed"
)

// ConflictDetail pinpoints one diverging dot-path between the local and
// server representations of an entity. Array elements are addressed by
// index, e.g. "days.1.items.0.packed".
type ConflictDetail struct {
	Path        string     `json:"path"`
	LocalValue  any        `json:"localValue,omitempty"`
	ServerValue any        `json:"serverValue,omitempty"`
	Type        DetailType `json:"type"`
}

// SyncConflict is a first-class sync outcome, not a failure: the diff engine
// found diverging paths between an unsynced local change and the pulled
// server row. It is persisted in the local conflicts store (keyed by ID,
// secondary lookup by EntityType) until a policy or a human resolves it, or
// it is cleared in bulk.
type SyncConflict struct {
	ID              string           `json:"id"`
	EntityType      EntityType       `json:"entityType"`
	EntityID        string           `json:"entityId"`
	LocalVersion    int64            `json:"localVersion"`
	ServerVersion   int64            `json:"serverVersion"`
	ConflictType    ConflictType     `json:"conflictType"`
	Timestamp       int64            `json:"timestamp"`
	ConflictDetails []ConflictDetail `json:"conflictDetails,omitempty"`

	// LocalData and ServerData snapshot both representations at detection
	// time so a later resolution does not depend on either store still
	// holding them.
	LocalData  map[string]any `json:"localData,omitempty"`
	ServerData map[string]any `json:"serverData,omitempty"`
}
