// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEntityType is returned by [Change.DecodePayload] when the change
// carries an entity type with no registered payload variant.
var ErrUnknownEntityType = errors.New("unknown entity type")

// Change is a recorded local mutation awaiting transmission to the remote
// authority. It is created by the change tracker on every local edit,
// marked Synced by the orchestrator after a confirmed remote acknowledgment,
// and removed from the pending queue once synced or superseded by a newer
// change to the same entity.
//
// EntityID is always the client-generated identifier and must survive the
// push verbatim; the remote row uses it as the primary key and must never
// substitute a server-generated one.
type Change struct {
	// ID uniquely identifies the change record itself.
	ID string `json:"id" validate:"required"`

	// EntityType names the aggregate the change applies to.
	EntityType EntityType `json:"entityType" validate:"required"`

	// Operation is the kind of mutation: create, update or delete.
	Operation Operation `json:"operation" validate:"required,oneof=create update delete"`

	// EntityID is the client-generated identifier of the mutated entity.
	EntityID string `json:"entityId" validate:"required"`

	// TripID scopes trip-owned entities (people, items, rule overrides).
	// Empty for trip-independent aggregates such as rule packs.
	TripID string `json:"tripId,omitempty"`

	// UserID is the identity that produced the mutation. Identities with
	// the "local-" prefix are device-local and are filtered out before a
	// change ever reaches durable storage.
	UserID string `json:"userId" validate:"required"`

	// Version is the entity version the mutation produced.
	Version int64 `json:"version" validate:"gte=0"`

	// Timestamp is the mutation time in Unix milliseconds.
	Timestamp int64 `json:"timestamp" validate:"required"`

	// Synced is set once the remote authority acknowledged the change.
	Synced bool `json:"synced"`

	// Data is the entity payload as recorded at mutation time. Kept raw so
	// the diff engine can treat it as a generic JSON tree; use
	// DecodePayload for the typed view.
	Data json.RawMessage `json:"data,omitempty"`
}

// EntityPayload is the closed set of payload variants a Change can carry.
// The marker method keeps the union sealed inside this package.
type EntityPayload interface {
	entityPayload()
}

func (TripData) entityPayload()            {}
func (PersonData) entityPayload()          {}
func (ItemData) entityPayload()            {}
func (RuleOverrideData) entityPayload()    {}
func (DefaultItemRuleData) entityPayload() {}
func (RulePackData) entityPayload()        {}
func (TripRuleData) entityPayload()        {}

// DecodePayload decodes Data into the payload variant selected by EntityType.
// The switch is exhaustive over [EntityType]; an unlisted type yields
// [ErrUnknownEntityType] wrapped with the offending value.
func (c Change) DecodePayload() (EntityPayload, error) {
	decode := func(dst EntityPayload) (EntityPayload, error) {
		if len(c.Data) == 0 {
			return dst, nil
		}
		if err := json.Unmarshal(c.Data, &dst); err != nil {
			return nil, fmt.Errorf("decode %s payload for change %s: %w", c.EntityType, c.ID, err)
		}
		return dst, nil
	}

	switch c.EntityType {
	case EntityTrip:
		return decode(&TripData{})
	case EntityPerson:
		return decode(&PersonData{})
	case EntityItem:
		return decode(&ItemData{})
	case EntityRuleOverride:
		return decode(&RuleOverrideData{})
	case EntityDefaultItemRule:
		return decode(&DefaultItemRuleData{})
	case EntityRulePack:
		return decode(&RulePackData{})
	case EntityTripRule:
		return decode(&TripRuleData{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, c.EntityType)
	}
}

// DataAsMap decodes Data into the generic JSON tree the diff engine works on.
// A change without payload yields an empty map.
func (c Change) DataAsMap() (map[string]any, error) {
	if len(c.Data) == 0 {
		return map[string]any{}, nil
	}

	var m map[string]any
	if err := json.Unmarshal(c.Data, &m); err != nil {
		return nil, fmt.Errorf("decode change %s data as map: %w", c.ID, err)
	}
	return m, nil
}
