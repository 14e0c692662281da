// Package overlap resolves overlapping candidate matches down to a
// non-overlapping set, per SPEC_FULL.md §4.4: sort by (start, priority,
// -weight, -length), then sweep left to right holding a current match and
// replacing it with any later-starting overlapping candidate that outranks
// it on (priority, -weight, -length).
package overlap

import (
	"sort"

	"github.com/gov-df/safedoc/pkg/rules"
)

// Resolve returns matches sorted by start offset with all overlaps removed.
// Input order is not significant; Resolve does not mutate its argument.
func Resolve(matches []rules.Match) []rules.Match {
	if len(matches) == 0 {
		return nil
	}

	ordered := make([]rules.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.AppliedWeight != b.AppliedWeight {
			return a.AppliedWeight > b.AppliedWeight
		}
		return (a.End - a.Start) > (b.End - b.Start)
	})

	kept := make([]rules.Match, 0, len(ordered))
	current := ordered[0]
	for _, m := range ordered[1:] {
		if m.Start >= current.End {
			kept = append(kept, current)
			current = m
			continue
		}
		if betterKey(m, current) {
			current = m
		}
	}
	kept = append(kept, current)
	return kept
}

// betterKey reports whether candidate outranks current under the tie-break
// key (priority, -applied_weight, -length): lower priority integer wins,
// then higher weight, then longer span.
func betterKey(candidate, current rules.Match) bool {
	if candidate.Priority != current.Priority {
		return candidate.Priority < current.Priority
	}
	if candidate.AppliedWeight != current.AppliedWeight {
		return candidate.AppliedWeight > current.AppliedWeight
	}
	return (candidate.End - candidate.Start) > (current.End - current.Start)
}
