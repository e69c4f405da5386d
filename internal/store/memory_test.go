// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocalStore_PutGetDelete(t *testing.T) {
	s := NewMemoryLocalStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, StoreTrips, map[string]any{"id": "trip-1", "title": "Alps"}))

	value, err := s.Get(ctx, StoreTrips, "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "Alps", value["title"])

	require.NoError(t, s.Delete(ctx, StoreTrips, "trip-1"))
	_, err = s.Get(ctx, StoreTrips, "trip-1")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// Удаление отсутствующей записи — не ошибка
	assert.NoError(t, s.Delete(ctx, StoreTrips, "trip-1"))
}

func TestMemoryLocalStore_PutRequiresID(t *testing.T) {
	s := NewMemoryLocalStore()

	err := s.Put(context.Background(), StoreTrips, map[string]any{"title": "no id"})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestMemoryLocalStore_ReturnedValueIsIsolated(t *testing.T) {
	s := NewMemoryLocalStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, StoreTrips, map[string]any{"id": "trip-1", "title": "Alps"}))

	value, err := s.Get(ctx, StoreTrips, "trip-1")
	require.NoError(t, err)
	value["title"] = "mutated"

	again, err := s.Get(ctx, StoreTrips, "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "Alps", again["title"])
}

func TestMemoryLocalStore_GetAllByIndex(t *testing.T) {
	s := NewMemoryLocalStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, StoreTripItems, map[string]any{"id": "item-b", "tripId": "trip-1"}))
	require.NoError(t, s.Put(ctx, StoreTripItems, map[string]any{"id": "item-a", "tripId": "trip-1"}))
	require.NoError(t, s.Put(ctx, StoreTripItems, map[string]any{"id": "item-c", "tripId": "trip-2"}))

	values, err := s.GetAllByIndex(ctx, StoreTripItems, IndexTripID, "trip-1")
	require.NoError(t, err)
	require.Len(t, values, 2)

	// Скан детерминирован: сортировка по id
	assert.Equal(t, "item-a", values[0]["id"])
	assert.Equal(t, "item-b", values[1]["id"])

	_, err = s.GetAllByIndex(ctx, StoreTripItems, "color", "red")
	assert.ErrorIs(t, err, ErrUnknownIndex)
}
