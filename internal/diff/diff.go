// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diff implements the structural comparison core of the sync engine:
// a pure, deterministic deep diff over decoded JSON trees and the merge
// resolver that applies a strategy over its result.
//
// The engine operates on Go's generic representation of JSON (nil, bool,
// float64, string, []any, map[string]any) so it can compare arbitrary entity
// payloads without knowing their schema. It performs no I/O, never panics on
// malformed input, and treats incomparable values as conflicts with the
// server side winning in the merged object.
package diff

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/MKhiriev/go-pack-sync/models"
)

// DefaultIgnorePaths are the top-level system fields excluded from conflict
// detection. Both camelCase and snake_case spellings are listed because local
// payloads and remote rows disagree on naming.
var DefaultIgnorePaths = []string{
	"timestamp",
	"updatedAt",
	"lastModified",
	"lastSyncedAt",
	"version",
	"updated_at",
	"last_modified",
	"last_synced_at",
}

// Result is the outcome of one structural comparison.
type Result struct {
	// HasConflicts is true when at least one path diverged.
	HasConflicts bool

	// Conflicts lists every diverging dot-path in deterministic
	// (lexicographic per level) order.
	Conflicts []models.ConflictDetail

	// Merged is the combined object: server values for clean and ignored
	// paths, the present side's value for one-sided paths, server values
	// at conflicting paths until a resolver overrides them.
	Merged map[string]any
}

// Diff compares the local and server representations of an entity key-by-key
// over the union of their keys.
//
// Rules, in order:
//   - ignorePaths short-circuits the listed top-level keys only; the server's
//     value is taken for them unconditionally.
//   - a key present on one side only is an added (server-only) or removed
//     (local-only) conflict and resolves to the present side's value. This is
//     deliberate even when the values would be compatible.
//   - objects recurse key-wise; primitives compare by equality.
//   - arrays compare by index. Differing lengths collapse into a single
//     modified conflict for the whole array (coarse on purpose: it can hide
//     legitimate non-conflicting element edits but avoids guessing element
//     identity). Matching lengths are diffed element-by-element.
//   - nil versus a concrete value is always a conflict; a type mismatch at
//     the same path is a modified conflict. The server wins the merged slot
//     in both cases.
//
// The merged object prefers the server's value everywhere no rule says
// otherwise. Passing nil ignorePaths applies no ignores; use
// [DefaultIgnorePaths] for the standard system-field set.
func Diff(local, server map[string]any, ignorePaths []string) Result {
	if local == nil {
		local = map[string]any{}
	}
	if server == nil {
		server = map[string]any{}
	}

	ignored := make(map[string]struct{}, len(ignorePaths))
	for _, p := range ignorePaths {
		ignored[p] = struct{}{}
	}

	var conflicts []models.ConflictDetail
	merged := make(map[string]any, len(server))

	for _, key := range unionKeys(local, server) {
		lv, inLocal := local[key]
		sv, inServer := server[key]

		if _, skip := ignored[key]; skip {
			if inServer {
				merged[key] = sv
			} else if inLocal {
				merged[key] = lv
			}
			continue
		}

		switch {
		case inLocal && inServer:
			merged[key] = compare(key, lv, sv, &conflicts)

		case inServer:
			conflicts = append(conflicts, models.ConflictDetail{
				Path:        key,
				ServerValue: sv,
				Type:        models.DetailAdded,
			})
			merged[key] = sv

		default: // local only
			conflicts = append(conflicts, models.ConflictDetail{
				Path:        key,
				LocalValue:  lv,
				Type:        models.DetailRemoved,
			})
			merged[key] = lv
		}
	}

	return Result{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
		Merged:       merged,
	}
}

// compare diffs a single path present on both sides and returns the value for
// the merged object, appending any conflicts found beneath path.
func compare(path string, local, server any, conflicts *[]models.ConflictDetail) any {
	if local == nil && server == nil {
		return nil
	}
	if local == nil || server == nil {
		*conflicts = append(*conflicts, modified(path, local, server))
		return server
	}

	switch sv := server.(type) {
	case map[string]any:
		lv, ok := local.(map[string]any)
		if !ok {
			*conflicts = append(*conflicts, modified(path, local, server))
			return server
		}
		return compareObjects(path, lv, sv, conflicts)

	case []any:
		lv, ok := local.([]any)
		if !ok {
			*conflicts = append(*conflicts, modified(path, local, server))
			return server
		}
		return compareArrays(path, lv, sv, conflicts)

	default:
		if !equalValues(local, server) {
			*conflicts = append(*conflicts, modified(path, local, server))
		}
		return server
	}
}

// compareObjects recurses into two nested objects over the union of their
// keys. Nested one-sided keys follow the same added/removed rule as the top
// level.
func compareObjects(path string, local, server map[string]any, conflicts *[]models.ConflictDetail) map[string]any {
	merged := make(map[string]any, len(server))

	for _, key := range unionKeys(local, server) {
		childPath := path + "." + key
		lv, inLocal := local[key]
		sv, inServer := server[key]

		switch {
		case inLocal && inServer:
			merged[key] = compare(childPath, lv, sv, conflicts)
		case inServer:
			*conflicts = append(*conflicts, models.ConflictDetail{
				Path:        childPath,
				ServerValue: sv,
				Type:        models.DetailAdded,
			})
			merged[key] = sv
		default:
			*conflicts = append(*conflicts, models.ConflictDetail{
				Path:        childPath,
				LocalValue:  lv,
				Type:        models.DetailRemoved,
			})
			merged[key] = lv
		}
	}

	return merged
}

// compareArrays diffs two arrays by index. A length mismatch is one modified
// conflict for the whole array with no per-element detail; equal lengths diff
// each index independently so a single diverging element flags only its own
// path (e.g. "days.1.items.0.packed").
func compareArrays(path string, local, server []any, conflicts *[]models.ConflictDetail) []any {
	if len(local) != len(server) {
		*conflicts = append(*conflicts, modified(path, local, server))
		return server
	}

	merged := make([]any, len(server))
	for i := range server {
		merged[i] = compare(path+"."+strconv.Itoa(i), local[i], server[i], conflicts)
	}
	return merged
}

func modified(path string, local, server any) models.ConflictDetail {
	return models.ConflictDetail{
		Path:        path,
		LocalValue:  local,
		ServerValue: server,
		Type:        models.DetailModified,
	}
}

// equalValues compares two leaf values. Numbers are normalised to float64
// first so a decoded 1 and a literal int 1 compare equal; everything else
// falls back to reflect.DeepEqual, which is safe on any input.
func equalValues(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// unionKeys returns the sorted union of both maps' keys so repeated runs over
// the same input produce identical conflict ordering.
func unionKeys(a, b map[string]any) []string {
	keys := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))

	for k := range a {
		keys = append(keys, k)
		seen[k] = struct{}{}
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)
	return keys
}
