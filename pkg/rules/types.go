// Package rules holds the static, ordered detection-rule catalog: rule
// definitions, the keyword sets they reference, and the ephemeral Match
// record the scanner emits per accepted finding.
package rules

import (
	"regexp"

	"github.com/gov-df/safedoc/pkg/validate"
)

// Kind distinguishes self-justifying rules from context-dependent ones.
type Kind int

const (
	// Hard rules are self-justifying: the pattern (plus an optional
	// validator) proves sensitivity on its own.
	Hard Kind = iota
	// Soft rules require contextual evidence (a nearby keyword) to count
	// at full weight, or to count at all when RequireContext is set.
	Soft
)

// Rule is an immutable catalog entry. The zero value of Validator is nil,
// meaning the rule is accepted on pattern match alone.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Kind     Kind
	BaseWeight int
	Priority   int
	Validator  validate.Validator
	MinLen     int

	// Soft-rule-only fields; ignored for Hard rules.
	RequireContext       bool
	WeightWithoutContext int
	ContextBoost         int
}

// Match is an ephemeral per-scan record: one surviving or candidate
// detection, expressed in rune offsets over the raw view.
type Match struct {
	RuleName         string
	Priority         int
	Start, End       int // half-open, rune offsets into the raw view
	RawSubstring     string
	NormalizedValue  string
	AcceptanceReason string
	AppliedWeight    int
}
