// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pack-sync/models"
)

// ── Reflexivity ──────────────────────────────────────────────────────────────

func TestDiff_IdenticalObjects(t *testing.T) {
	obj := map[string]any{
		"id":    "trip-1",
		"title": "Alps",
		"days": []any{
			map[string]any{"date": "2026-08-01", "items": []any{
				map[string]any{"itemId": "i-1", "quantity": float64(2), "packed": true},
			}},
		},
		"meta": map[string]any{"color": "blue", "tags": []any{"hiking"}},
	}

	res := Diff(obj, obj, nil)

	require.False(t, res.HasConflicts)
	assert.Empty(t, res.Conflicts)
	assert.Equal(t, obj, res.Merged)
}

func TestDiff_BothEmpty(t *testing.T) {
	res := Diff(nil, nil, nil)

	require.False(t, res.HasConflicts)
	assert.Empty(t, res.Merged)
}

// ── Ignore paths ─────────────────────────────────────────────────────────────

func TestDiff_IgnorePathsSuppressSystemFields(t *testing.T) {
	local := map[string]any{"title": "Alps", "updatedAt": float64(100), "version": float64(3)}
	server := map[string]any{"title": "Alps", "updatedAt": float64(999), "version": float64(7)}

	res := Diff(local, server, []string{"updatedAt", "version"})

	require.False(t, res.HasConflicts)
	// server values win for ignored keys
	assert.Equal(t, float64(999), res.Merged["updatedAt"])
	assert.Equal(t, float64(7), res.Merged["version"])
}

func TestDiff_IgnorePathsAreTopLevelOnly(t *testing.T) {
	local := map[string]any{"meta": map[string]any{"version": float64(1)}}
	server := map[string]any{"meta": map[string]any{"version": float64(2)}}

	res := Diff(local, server, []string{"version"})

	require.True(t, res.HasConflicts)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "meta.version", res.Conflicts[0].Path)
}

func TestDiff_IgnoredKeyPresentOnlyLocally(t *testing.T) {
	local := map[string]any{"title": "Alps", "lastSyncedAt": float64(42)}
	server := map[string]any{"title": "Alps"}

	res := Diff(local, server, DefaultIgnorePaths)

	require.False(t, res.HasConflicts)
	assert.Equal(t, float64(42), res.Merged["lastSyncedAt"])
}

// ── One-sided keys ───────────────────────────────────────────────────────────

func TestDiff_ServerOnlyKeyIsAddedConflict(t *testing.T) {
	local := map[string]any{"title": "Local Title"}
	server := map[string]any{"title": "Local Title", "notes": "Server notes"}

	res := Diff(local, server, nil)

	require.True(t, res.HasConflicts)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "notes", res.Conflicts[0].Path)
	assert.Equal(t, models.DetailAdded, res.Conflicts[0].Type)
	assert.Equal(t, "Server notes", res.Conflicts[0].ServerValue)
	// present side wins in the merged object
	assert.Equal(t, "Server notes", res.Merged["notes"])
	assert.Equal(t, "Local Title", res.Merged["title"])
}

func TestDiff_LocalOnlyKeyIsRemovedConflict(t *testing.T) {
	local := map[string]any{"title": "Alps", "draft": true}
	server := map[string]any{"title": "Alps"}

	res := Diff(local, server, nil)

	require.True(t, res.HasConflicts)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "draft", res.Conflicts[0].Path)
	assert.Equal(t, models.DetailRemoved, res.Conflicts[0].Type)
	assert.Equal(t, true, res.Merged["draft"])
}

// ── Array semantics ──────────────────────────────────────────────────────────

// Только один флаг packed отличается — конфликт должен быть ровно один,
// на самом глубоком пути, а не на всём массиве days.
func TestDiff_SingleElementFieldConflict(t *testing.T) {
	mkTrip := func(day1item0packed bool) map[string]any {
		return map[string]any{
			"id": "trip-1",
			"days": []any{
				map[string]any{"date": "2026-08-01", "items": []any{
					map[string]any{"itemId": "i-1", "packed": true},
				}},
				map[string]any{"date": "2026-08-02", "items": []any{
					map[string]any{"itemId": "i-2", "packed": day1item0packed},
					map[string]any{"itemId": "i-3", "packed": false},
				}},
			},
		}
	}

	res := Diff(mkTrip(false), mkTrip(true), nil)

	require.True(t, res.HasConflicts)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "days.1.items.0.packed", res.Conflicts[0].Path)
	assert.Equal(t, models.DetailModified, res.Conflicts[0].Type)
	assert.Equal(t, false, res.Conflicts[0].LocalValue)
	assert.Equal(t, true, res.Conflicts[0].ServerValue)
}

func TestDiff_ArrayLengthMismatchIsSingleConflict(t *testing.T) {
	local := map[string]any{"tags": []any{"a", "b"}}
	server := map[string]any{"tags": []any{"a", "b", "c"}}

	res := Diff(local, server, nil)

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "tags", res.Conflicts[0].Path)
	assert.Equal(t, models.DetailModified, res.Conflicts[0].Type)
	// server array wins in the merged object
	assert.Equal(t, []any{"a", "b", "c"}, res.Merged["tags"])
}

func TestDiff_EqualLengthArraysDiffPerIndex(t *testing.T) {
	local := map[string]any{"tags": []any{"a", "x", "c"}}
	server := map[string]any{"tags": []any{"a", "y", "c"}}

	res := Diff(local, server, nil)

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "tags.1", res.Conflicts[0].Path)
}

// ── Nil and type mismatches ──────────────────────────────────────────────────

func TestDiff_NilVersusConcreteConflicts(t *testing.T) {
	local := map[string]any{"notes": nil}
	server := map[string]any{"notes": "filled in"}

	res := Diff(local, server, nil)

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, models.DetailModified, res.Conflicts[0].Type)
	assert.Equal(t, "filled in", res.Merged["notes"])
}

func TestDiff_BothNilNoConflict(t *testing.T) {
	local := map[string]any{"notes": nil}
	server := map[string]any{"notes": nil}

	res := Diff(local, server, nil)

	assert.False(t, res.HasConflicts)
}

func TestDiff_TypeMismatchServerWins(t *testing.T) {
	local := map[string]any{"days": []any{"2026-08-01"}}
	server := map[string]any{"days": map[string]any{"count": float64(3)}}

	res := Diff(local, server, nil)

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "days", res.Conflicts[0].Path)
	assert.Equal(t, models.DetailModified, res.Conflicts[0].Type)
	assert.Equal(t, map[string]any{"count": float64(3)}, res.Merged["days"])
}

func TestDiff_NumericKindsCompareEqual(t *testing.T) {
	// decoded JSON yields float64, locally built payloads may carry int
	local := map[string]any{"quantity": 2}
	server := map[string]any{"quantity": float64(2)}

	res := Diff(local, server, nil)

	assert.False(t, res.HasConflicts)
}

// ── Merged-object default ────────────────────────────────────────────────────

func TestDiff_NonConflictingKeysTakeServerValue(t *testing.T) {
	local := map[string]any{"title": "Same", "nested": map[string]any{"a": float64(1)}}
	server := map[string]any{"title": "Same", "nested": map[string]any{"a": float64(1)}}

	res := Diff(local, server, nil)

	require.False(t, res.HasConflicts)
	assert.Equal(t, server, res.Merged)
}

func TestDiff_DeterministicConflictOrder(t *testing.T) {
	local := map[string]any{"b": float64(1), "a": float64(1), "c": float64(1)}
	server := map[string]any{"b": float64(2), "a": float64(2), "c": float64(2)}

	first := Diff(local, server, nil)
	second := Diff(local, server, nil)

	require.Equal(t, first.Conflicts, second.Conflicts)
	paths := make([]string, 0, len(first.Conflicts))
	for _, c := range first.Conflicts {
		paths = append(paths, c.Path)
	}
	assert.Equal(t, []string{"a", "b", "c"}, paths)
}
