// Package validate holds the per-rule semantic validators: checksum and
// structural verifiers that accept or reject a syntactic regex match.
package validate

import "regexp"

// Outcome is the tagged-variant result of a validator call, replacing the
// source system's ad-hoc (accepted, normalized, reason) tuple.
type Outcome struct {
	Accepted   bool
	Normalized string
	Reason     string
}

func Accepted(normalized, reason string) Outcome {
	return Outcome{Accepted: true, Normalized: normalized, Reason: reason}
}

func Rejected() Outcome {
	return Outcome{Accepted: false}
}

// Validator validates one rule's syntactic match against both text views.
// raw is the matched substring (from the raw view); start/end are rune
// offsets into rawView; searchView is the full search view used for
// context-window lookups at the same offsets.
type Validator interface {
	Validate(raw, rawView, searchView string, start, end int) Outcome
}

var nonDigit = regexp.MustCompile(`\D+`)

// Digits strips every non-digit rune, the shared helper every numeric
// validator in this package builds on (mirrors apenas_digitos in the
// system this engine was modeled on).
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

func allDigitsEqual(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
