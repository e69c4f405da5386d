// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pack-sync/internal/logger"
	"github.com/MKhiriev/go-pack-sync/internal/store"
	"github.com/MKhiriev/go-pack-sync/models"
)

// UpsertHook is invoked after every applied upsert so the application's
// in-memory state can pick up the resolved entity. A nil hook disables
// notifications.
type UpsertHook func(entityType models.EntityType, entity map[string]any)

// RemoveHook is invoked after an entity is deleted locally.
type RemoveHook func(entityType models.EntityType, entityID string)

// storeFor maps entity kinds to their local store names.
var storeFor = map[models.EntityType]string{
	models.EntityTrip:            store.StoreTrips,
	models.EntityPerson:          store.StoreTripPeople,
	models.EntityItem:            store.StoreTripItems,
	models.EntityDefaultItemRule: store.StoreDefaultItemRules,
	models.EntityRulePack:        store.StoreRulePacks,
	models.EntityTripRule:        store.StoreTripRules,
	models.EntityRuleOverride:    store.StoreRuleOverrides,
}

type entityIntegration struct {
	entities store.LocalStore
	onUpsert UpsertHook
	onRemove RemoveHook
	logger   *logger.Logger
}

// NewEntityIntegration constructs the [EntityIntegration] writing into the
// given local store. hooks may be nil.
func NewEntityIntegration(entities store.LocalStore, onUpsert UpsertHook, onRemove RemoveHook, log *logger.Logger) EntityIntegration {
	return &entityIntegration{
		entities: entities,
		onUpsert: onUpsert,
		onRemove: onRemove,
		logger:   log,
	}
}

func (e *entityIntegration) Exists(ctx context.Context, entityType models.EntityType, entityID string) (bool, error) {
	storeName, err := storeNameFor(entityType)
	if err != nil {
		return false, err
	}

	_, err = e.entities.Get(ctx, storeName, entityID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("existence check %s/%s: %w", storeName, entityID, err)
	}
	return true, nil
}

func (e *entityIntegration) OnTripUpsert(ctx context.Context, entity map[string]any) error {
	return e.upsert(ctx, models.EntityTrip, entity)
}

func (e *entityIntegration) OnPersonUpsert(ctx context.Context, entity map[string]any) error {
	return e.upsert(ctx, models.EntityPerson, entity)
}

func (e *entityIntegration) OnItemUpsert(ctx context.Context, entity map[string]any) error {
	return e.upsert(ctx, models.EntityItem, entity)
}

func (e *entityIntegration) OnDefaultItemRuleUpsert(ctx context.Context, entity map[string]any) error {
	return e.upsert(ctx, models.EntityDefaultItemRule, entity)
}

func (e *entityIntegration) OnRulePackUpsert(ctx context.Context, entity map[string]any) error {
	return e.upsert(ctx, models.EntityRulePack, entity)
}

func (e *entityIntegration) OnTripRuleUpsert(ctx context.Context, entity map[string]any) error {
	return e.upsert(ctx, models.EntityTripRule, entity)
}

func (e *entityIntegration) OnRuleOverrideUpsert(ctx context.Context, entity map[string]any) error {
	return e.upsert(ctx, models.EntityRuleOverride, entity)
}

// Apply dispatches to the kind-specific upsert callback. The switch is
// exhaustive over [models.EntityType].
func (e *entityIntegration) Apply(ctx context.Context, entityType models.EntityType, entity map[string]any) error {
	switch entityType {
	case models.EntityTrip:
		return e.OnTripUpsert(ctx, entity)
	case models.EntityPerson:
		return e.OnPersonUpsert(ctx, entity)
	case models.EntityItem:
		return e.OnItemUpsert(ctx, entity)
	case models.EntityDefaultItemRule:
		return e.OnDefaultItemRuleUpsert(ctx, entity)
	case models.EntityRulePack:
		return e.OnRulePackUpsert(ctx, entity)
	case models.EntityTripRule:
		return e.OnTripRuleUpsert(ctx, entity)
	case models.EntityRuleOverride:
		return e.OnRuleOverrideUpsert(ctx, entity)
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownEntityType, entityType)
	}
}

func (e *entityIntegration) Remove(ctx context.Context, entityType models.EntityType, entityID string) error {
	storeName, err := storeNameFor(entityType)
	if err != nil {
		return err
	}

	if err = e.entities.Delete(ctx, storeName, entityID); err != nil {
		return fmt.Errorf("remove %s/%s: %w", storeName, entityID, err)
	}

	if e.onRemove != nil {
		e.onRemove(entityType, entityID)
	}
	return nil
}

// upsert merges the resolved entity into the local store. When a local copy
// already exists, fields present only locally (transient UI state the remote
// never carries) are preserved; everything else takes the incoming value.
// Applying the same entity twice yields the same local state.
func (e *entityIntegration) upsert(ctx context.Context, entityType models.EntityType, entity map[string]any) error {
	log := logger.FromContext(ctx)

	storeName, err := storeNameFor(entityType)
	if err != nil {
		return err
	}

	id, _ := entity["id"].(string)
	if id == "" {
		return fmt.Errorf("upsert into %s: %w", storeName, store.ErrMissingID)
	}

	merged := make(map[string]any, len(entity))
	for k, v := range entity {
		merged[k] = v
	}

	existing, err := e.entities.Get(ctx, storeName, id)
	switch {
	case err == nil:
		// only keys absent from the incoming entity are kept from the local
		// copy; a key the remote carries always wins, zero values included
		for k, v := range existing {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	case errors.Is(err, store.ErrRecordNotFound):
		// fresh entity
	default:
		return fmt.Errorf("load local copy of %s/%s: %w", storeName, id, err)
	}

	if err = e.entities.Put(ctx, storeName, merged); err != nil {
		return fmt.Errorf("store %s/%s: %w", storeName, id, err)
	}

	log.Debug().
		Str("func", "entityIntegration.upsert").
		Str("store", storeName).
		Str("id", id).
		Msg("applied resolved entity")

	if e.onUpsert != nil {
		e.onUpsert(entityType, merged)
	}
	return nil
}

func storeNameFor(entityType models.EntityType) (string, error) {
	storeName, ok := storeFor[entityType]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownEntityType, entityType)
	}
	return storeName, nil
}
