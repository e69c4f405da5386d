package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategy_IsValid(t *testing.T) {
	assert.True(t, PreferServer.IsValid())
	assert.True(t, PreferLocal.IsValid())
	assert.True(t, Manual.IsValid())
	assert.False(t, Strategy("newest-wins").IsValid())
}

func TestSmartMerge_NoConflictsReturnsDiffMerged(t *testing.T) {
	local := map[string]any{"title": "Alps"}
	server := map[string]any{"title": "Alps", "version": float64(4)}

	merged := SmartMerge(local, server, PreferLocal)

	assert.Equal(t, map[string]any{"title": "Alps", "version": float64(4)}, merged)
}

func TestSmartMerge_PreferLocalTakesLocalLeaf(t *testing.T) {
	local := map[string]any{"title": "Local Title"}
	server := map[string]any{"title": "Server Title"}

	merged := SmartMerge(local, server, PreferLocal)

	assert.Equal(t, "Local Title", merged["title"])
}

func TestSmartMerge_PreferServerTakesServerLeaf(t *testing.T) {
	local := map[string]any{"title": "Local Title"}
	server := map[string]any{"title": "Server Title"}

	merged := SmartMerge(local, server, PreferServer)

	assert.Equal(t, "Server Title", merged["title"])
}

// Непересекающиеся правки не должны затирать друг друга.
func TestSmartMerge_NonOverlappingEditsSurviveBothStrategies(t *testing.T) {
	local := map[string]any{"title": "Local Title"}
	server := map[string]any{"title": "Local Title", "notes": "Server notes"}

	for _, strategy := range []Strategy{PreferLocal, PreferServer} {
		merged := SmartMerge(local, server, strategy)

		assert.Equal(t, "Local Title", merged["title"], "strategy %s", strategy)
		assert.Equal(t, "Server notes", merged["notes"], "strategy %s", strategy)
	}
}

func TestSmartMerge_LocalOnlyFieldSurvivesPreferServer(t *testing.T) {
	local := map[string]any{"title": "Alps", "draft": true}
	server := map[string]any{"title": "Alps"}

	merged := SmartMerge(local, server, PreferServer)

	assert.Equal(t, true, merged["draft"])
}

func TestSmartMerge_DeepPathResolution(t *testing.T) {
	mkTrip := func(packed bool) map[string]any {
		return map[string]any{
			"days": []any{
				map[string]any{"items": []any{map[string]any{"itemId": "i-1", "packed": true}}},
				map[string]any{"items": []any{map[string]any{"itemId": "i-2", "packed": packed}}},
			},
		}
	}

	merged := SmartMerge(mkTrip(false), mkTrip(true), PreferLocal)

	days, ok := merged["days"].([]any)
	require.True(t, ok)
	day1, ok := days[1].(map[string]any)
	require.True(t, ok)
	items, ok := day1["items"].([]any)
	require.True(t, ok)
	item0, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, item0["packed"])
}

func TestSmartMerge_ManualBehavesLikePreferServer(t *testing.T) {
	local := map[string]any{"title": "Local Title"}
	server := map[string]any{"title": "Server Title"}

	assert.Equal(t,
		SmartMerge(local, server, PreferServer),
		SmartMerge(local, server, Manual),
	)
}

func TestSmartMerge_InvalidStrategyFallsBackToServer(t *testing.T) {
	local := map[string]any{"title": "Local Title"}
	server := map[string]any{"title": "Server Title"}

	merged := SmartMerge(local, server, Strategy("bogus"))

	assert.Equal(t, "Server Title", merged["title"])
}

func TestSetPath_MaterialisesIntermediateObjects(t *testing.T) {
	root := map[string]any{}

	setPath(root, "a.b.c", float64(1))

	a, ok := root["a"].(map[string]any)
	require.True(t, ok)
	b, ok := a["b"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), b["c"])
}

func TestSetPath_OutOfRangeIndexIsNoop(t *testing.T) {
	root := map[string]any{"arr": []any{"a"}}

	setPath(root, "arr.5", "x")

	assert.Equal(t, []any{"a"}, root["arr"])
}
