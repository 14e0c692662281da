// Package context implements the generic soft-rule context test described
// in SPEC_FULL.md §4.3 step 3: does any keyword from the broad, global
// keyword family appear within a bounded window around a candidate match.
//
// This is deliberately separate from the per-identifier contextual
// validators in pkg/validate, which each gate on a narrow, rule-specific
// keyword set. This test runs for every soft rule regardless of whether it
// also carries its own validator.
package context

import (
	"strings"
	"sync"

	ahocorasick "github.com/BobuSumisu/aho-corasick"

	"github.com/gov-df/safedoc/pkg/rules"
)

// windowRadius is the number of runes examined on either side of a
// candidate match when testing for generic contextual evidence.
const windowRadius = 110

var trieOnce = sync.OnceValue(buildTrie)

func buildTrie() *ahocorasick.Trie {
	return ahocorasick.NewTrieBuilder().
		AddStrings(rules.GenericContextKeywords()).
		Build()
}

// Present reports whether any generic context keyword occurs in the
// ±windowRadius-rune neighborhood of [start, end) within searchView.
// searchView must already be case-folded and diacritic-stripped (see
// pkg/normalize), matching how the keyword list itself is written.
func Present(searchView string, start, end int) bool {
	lo, hi := windowBounds(searchView, start, end)
	window := sliceRunes(searchView, lo, hi)
	return len(trieOnce().MatchString(window)) > 0
}

func windowBounds(s string, start, end int) (int, int) {
	lo := start - windowRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + windowRadius
	if n := runeLen(s); hi > n {
		hi = n
	}
	return lo, hi
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func sliceRunes(s string, lo, hi int) string {
	var b strings.Builder
	i := 0
	for _, r := range s {
		if i >= hi {
			break
		}
		if i >= lo {
			b.WriteRune(r)
		}
		i++
	}
	return b.String()
}
