// Package scan applies the rule catalog to a normalized document and turns
// each syntactic pattern hit into a rules.Match, following the four-step
// algorithm in SPEC_FULL.md §4.3: length gate, validator, weight
// computation, and (for soft rules) the generic context test.
package scan

import (
	"github.com/gov-df/safedoc/pkg/context"
	"github.com/gov-df/safedoc/pkg/normalize"
	"github.com/gov-df/safedoc/pkg/rules"
	"github.com/gov-df/safedoc/pkg/validate"
)

// Scan runs every catalog rule against views and returns every surviving
// candidate match, unsorted and with overlaps still present — resolving
// overlaps is pkg/overlap's job.
func Scan(views normalize.Views) []rules.Match {
	return ScanWithRules(views, rules.Catalog())
}

// ScanWithRules runs an explicit, caller-supplied rule set against views
// instead of the memoized rules.Catalog(). Production callers always use
// Scan; this exists so tests can exercise the catalog under a shuffled
// rule order without mutating the shared, memoized slice Catalog returns.
func ScanWithRules(views normalize.Views, catalog []rules.Rule) []rules.Match {
	var out []rules.Match
	for _, rule := range catalog {
		out = append(out, scanRule(rule, views)...)
	}
	return out
}

func scanRule(rule rules.Rule, views normalize.Views) []rules.Match {
	// Patterns run against Raw, not Search: nome_completo depends on
	// capitalization, which casefolding erases. Search exists only to
	// drive the context-keyword window tests below.
	locs := rule.Pattern.FindAllStringIndex(views.Raw, -1)
	if locs == nil {
		return nil
	}

	var out []rules.Match
	for _, loc := range locs {
		start, end := byteRangeToRuneRange(views.Raw, loc[0], loc[1])
		raw := sliceRunes(views.Raw, start, end)

		if runeLen(raw) < rule.MinLen {
			continue
		}

		var outcome validate.Outcome
		if rule.Validator != nil {
			outcome = rule.Validator.Validate(raw, views.Raw, views.Search, start, end)
			if !outcome.Accepted {
				continue
			}
		} else {
			outcome = validate.Accepted(raw, "")
		}

		m, ok := applyWeight(rule, raw, outcome, start, end, views.Search)
		if !ok {
			continue
		}
		out = append(out, m)
	}
	return out
}

func applyWeight(rule rules.Rule, raw string, outcome validate.Outcome, start, end int, searchView string) (rules.Match, bool) {
	reason := outcome.Reason

	if rule.Kind == rules.Hard {
		if reason == "" {
			reason = "padrao_direto"
		}
		return rules.Match{
			RuleName: rule.Name, Priority: rule.Priority,
			Start: start, End: end, RawSubstring: raw,
			NormalizedValue: outcome.Normalized, AcceptanceReason: reason,
			AppliedWeight: rule.BaseWeight,
		}, true
	}

	contextPresent := context.Present(searchView, start, end)
	if !contextPresent {
		if rule.RequireContext || rule.WeightWithoutContext <= 0 {
			return rules.Match{}, false
		}
		if reason == "" {
			reason = "soft_sem_contexto"
		}
		return rules.Match{
			RuleName: rule.Name, Priority: rule.Priority,
			Start: start, End: end, RawSubstring: raw,
			NormalizedValue: outcome.Normalized, AcceptanceReason: reason,
			AppliedWeight: rule.WeightWithoutContext,
		}, true
	}

	if reason == "" {
		reason = "soft_com_contexto"
	}
	weight := rule.BaseWeight
	if rule.WeightWithoutContext > weight {
		weight = rule.WeightWithoutContext
	}
	weight += rule.ContextBoost
	return rules.Match{
		RuleName: rule.Name, Priority: rule.Priority,
		Start: start, End: end, RawSubstring: raw,
		NormalizedValue: outcome.Normalized, AcceptanceReason: reason,
		AppliedWeight: weight,
	}, true
}

// byteRangeToRuneRange converts a byte-offset range (as returned by
// regexp, which is byte-indexed) into the equivalent rune-offset range.
func byteRangeToRuneRange(s string, byteStart, byteEnd int) (int, int) {
	runeStart, runeEnd := -1, -1
	runeIdx := 0
	for byteIdx := range s {
		if byteIdx == byteStart {
			runeStart = runeIdx
		}
		if byteIdx == byteEnd {
			runeEnd = runeIdx
		}
		runeIdx++
	}
	if runeStart == -1 {
		runeStart = runeIdx
	}
	if runeEnd == -1 {
		runeEnd = runeIdx
	}
	return runeStart, runeEnd
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func sliceRunes(s string, lo, hi int) string {
	runes := []rune(s)
	if hi > len(runes) {
		hi = len(runes)
	}
	if lo > hi {
		lo = hi
	}
	return string(runes[lo:hi])
}
