// Package normalize produces the two text views the detection engine scans:
// a raw view (used for offsets, matching, and anonymization) and a search
// view (used only for context-window keyword tests).
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// diacriticStrip is the canonical x/text idiom for stripping combining
// marks: decompose (NFKD), drop runes in the Unicode "Mark, nonspacing"
// category, recompose (NFC).
var diacriticStrip = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var caseFold = cases.Fold()

// Views holds the two normalized forms of an input string, aligned by
// rune offset under common inputs (see DESIGN.md for the
// known limitation when decomposition changes rune count).
type Views struct {
	// Raw is whitespace-collapsed, NBSP-replaced, but otherwise
	// unmodified: original casing and diacritics preserved. All match
	// offsets and the anonymized output are expressed against Raw.
	Raw string
	// Search is Raw with compatibility decomposition applied, combining
	// marks dropped, whitespace collapsed again, and casefolded. Used
	// only for context-keyword presence tests.
	Search string
}

// Build computes both views from caller input. Empty or whitespace-only
// input yields empty views for both; callers should treat that as a
// bypass signal.
func Build(input string) Views {
	collapsed := collapseWhitespace(strings.ReplaceAll(input, " ", " "))
	if collapsed == "" {
		return Views{}
	}

	search, _, err := transform.String(diacriticStrip, collapsed)
	if err != nil {
		search = collapsed
	}
	search = collapseWhitespace(search)
	search, _, err = transform.String(caseFold, search)
	if err != nil {
		search = strings.ToLower(search)
	}

	return Views{Raw: collapsed, Search: search}
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Window extracts a clamped substring of s centered on [start, end)
// expanded by radius runes on each side. Offsets and lengths are measured
// in runes, matching the rest of the engine. s is addressed by rune index,
// not byte index, so this is safe to call with either the raw or search
// view as long as start/end were computed against that same view's rune
// sequence.
func Window(s string, start, end, radius int) string {
	r := []rune(s)
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(r) {
		hi = len(r)
	}
	if lo > hi || lo > len(r) {
		return ""
	}
	return string(r[lo:hi])
}

// language.Und is referenced only to document which language.Tag the cases
// folder would be parameterized with if locale-sensitive folding were ever
// needed; cases.Fold() is locale-independent and sufficient here.
var _ = language.Und
