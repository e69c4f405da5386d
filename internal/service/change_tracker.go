// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-pack-sync/internal/logger"
	"github.com/MKhiriev/go-pack-sync/internal/store"
	"github.com/MKhiriev/go-pack-sync/models"
)

// Device-local identities that never leave the device. The prefix check
// covers both named constants; they are kept for call sites that need the
// exact ids.
const (
	LocalUserID       = "local-user"
	LocalSharedUserID = "local-shared-user"
	localUserPrefix   = "local-"
)

// IsLocalOnlyUser reports whether userID is a device-local identity whose
// changes must never reach the pending queue or the remote authority.
func IsLocalOnlyUser(userID string) bool {
	return strings.HasPrefix(userID, localUserPrefix)
}

type changeTracker struct {
	changes  store.ChangeRepository
	hub      *stateHub
	validate *validator.Validate
	logger   *logger.Logger
}

// NewChangeTracker constructs the [ChangeTracker] writing to the given
// pending-change repository and publishing snapshots through the
// orchestrator's hub.
func NewChangeTracker(changes store.ChangeRepository, hub *stateHub, log *logger.Logger) ChangeTracker {
	return &changeTracker{
		changes:  changes,
		hub:      hub,
		validate: validator.New(),
		logger:   log,
	}
}

// TrackChange implements [ChangeTracker].
//
// The local-identity filter runs before any storage access so a filtered
// change produces zero writes; this is the invariant that keeps device-local
// "shared account" data off the wire entirely. A tracked change supersedes an
// unsynced prior change for the same entity instead of queueing a duplicate.
func (t *changeTracker) TrackChange(ctx context.Context, change models.Change) error {
	log := logger.FromContext(ctx)

	if err := t.validateChange(change); err != nil {
		return err
	}

	if IsLocalOnlyUser(change.UserID) {
		log.Debug().
			Str("func", "changeTracker.TrackChange").
			Str("entity_id", change.EntityID).
			Str("user_id", change.UserID).
			Msg("skipping change from device-local identity")
		return nil
	}

	prior, err := t.changes.GetUnsyncedByEntityID(ctx, change.EntityID)
	switch {
	case err == nil:
		if prior.ID != change.ID {
			if err = t.changes.DeleteChange(ctx, prior.ID); err != nil {
				return fmt.Errorf("supersede change for entity %s: %w", change.EntityID, err)
			}
		}
	case errors.Is(err, store.ErrRecordNotFound):
		// first pending change for this entity
	default:
		return fmt.Errorf("lookup pending change for entity %s: %w", change.EntityID, err)
	}

	if err = t.changes.SaveChange(ctx, change); err != nil {
		return fmt.Errorf("persist change %s: %w", change.ID, err)
	}

	t.hub.Update(func(state *models.SyncState) {
		setPendingChange(state, change)
	})

	log.Debug().
		Str("func", "changeTracker.TrackChange").
		Str("change_id", change.ID).
		Str("entity_id", change.EntityID).
		Str("operation", string(change.Operation)).
		Msg("tracked local change")

	return nil
}

func (t *changeTracker) validateChange(change models.Change) error {
	if !change.EntityType.IsValid() {
		return fmt.Errorf("%w: entity type %q", ErrInvalidChange, change.EntityType)
	}
	if !change.Operation.IsValid() {
		return fmt.Errorf("%w: operation %q", ErrInvalidChange, change.Operation)
	}
	if err := t.validate.Struct(change); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChange, err)
	}
	// the payload must decode into the variant its entity kind selects
	if _, err := change.DecodePayload(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChange, err)
	}
	return nil
}
