package diff

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pack-sync/models"
)

// Strategy selects the winning side for each conflicting path during a merge.
type Strategy string

const (
	// PreferServer keeps the server's value at every conflicting path.
	PreferServer Strategy = "prefer-server"

	// PreferLocal keeps the local value at every conflicting path.
	PreferLocal Strategy = "prefer-local"

	// Manual defers the decision to a human. Until a resolution UI writes
	// an explicit choice back, it behaves exactly like PreferServer; the
	// conflict record stays persisted so the choice can still be made.
	Manual Strategy = "manual"
)

// IsValid reports whether s is a recognised strategy.
func (s Strategy) IsValid() bool {
	switch s {
	case PreferServer, PreferLocal, Manual:
		return true
	default:
		return false
	}
}

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	return string(s)
}

// SmartMerge runs [Diff] over both representations and resolves every
// reported conflict per strategy, walking each conflict's dot-path and
// overwriting the leaf with the winner's value. Intermediate objects are
// materialised as needed; array hops require the index to exist since element
// identity cannot be invented.
//
// With no conflicts the diff's merged object is returned unchanged. A winner
// side that has no value at a one-sided path (server side of a removed path,
// local side of an added path) leaves the present side's value in place, so
// non-overlapping edits never clobber each other.
func SmartMerge(local, server map[string]any, strategy Strategy) map[string]any {
	if !strategy.IsValid() {
		strategy = PreferServer
	}

	res := Diff(local, server, DefaultIgnorePaths)
	if !res.HasConflicts {
		return res.Merged
	}

	for _, c := range res.Conflicts {
		var winner any
		switch strategy {
		case PreferLocal:
			winner = c.LocalValue
		default: // PreferServer and Manual
			winner = c.ServerValue
		}

		// Keep the present side's value when the winning side never had
		// one: added paths survive prefer-local, removed paths survive
		// prefer-server.
		if winner == nil && c.Type != models.DetailModified {
			continue
		}

		setPath(res.Merged, c.Path, winner)
	}

	return res.Merged
}

// setPath writes value at the dot-path inside root, creating intermediate
// objects for missing segments. Numeric segments index into arrays; an
// out-of-range index or a scalar in the middle of the path aborts the write
// silently, mirroring the engine's never-panic policy.
func setPath(root map[string]any, path string, value any) {
	segments := strings.Split(path, ".")

	var current any = root
	for i, seg := range segments {
		last := i == len(segments)-1

		switch node := current.(type) {
		case map[string]any:
			if last {
				node[seg] = value
				return
			}
			next, ok := node[seg]
			if !ok || next == nil {
				child := map[string]any{}
				node[seg] = child
				current = child
				continue
			}
			current = next

		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return
			}
			if last {
				node[idx] = value
				return
			}
			current = node[idx]

		default:
			return
		}
	}
}
