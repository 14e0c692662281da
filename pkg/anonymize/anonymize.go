// Package anonymize masks surviving matches over the raw view, per
// SPEC_FULL.md §4.6: a mutable rune buffer, masked in place, no reflow.
package anonymize

import "github.com/gov-df/safedoc/pkg/rules"

const maskRune = '*'

// Mask overwrites [start, end) for every match with maskRune and returns
// the resulting string. rawView and match offsets must share the same
// rune indexing (see pkg/normalize). The buffer length always equals
// len([]rune(rawView)); masking never reflows, escapes, or re-encodes.
func Mask(rawView string, matches []rules.Match) string {
	buf := []rune(rawView)
	for _, m := range matches {
		start, end := m.Start, m.End
		if start < 0 {
			start = 0
		}
		if end > len(buf) {
			end = len(buf)
		}
		for i := start; i < end; i++ {
			buf[i] = maskRune
		}
	}
	return string(buf)
}
