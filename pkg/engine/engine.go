// Package engine is the detection engine's pure façade: it wires
// normalize → scan → overlap → score → anonymize into a single Analyze
// call and shapes the result the way the host API and CLI both need it.
package engine

import (
	"github.com/gov-df/safedoc/pkg/anonymize"
	"github.com/gov-df/safedoc/pkg/normalize"
	"github.com/gov-df/safedoc/pkg/overlap"
	"github.com/gov-df/safedoc/pkg/policy"
	"github.com/gov-df/safedoc/pkg/rules"
	"github.com/gov-df/safedoc/pkg/scan"
	"github.com/gov-df/safedoc/pkg/score"
)

// contextRadius is the half-width, in runes, of the context window
// embedded in each MatchRecord (±60 per the wire contract).
const contextRadius = 60

// MatchRecord is one surviving match, shaped to the wire contract's
// "matches[]" entries.
type MatchRecord struct {
	Tipo             string `json:"tipo"`
	ValorDetectado   string `json:"valor_detectado"`
	ValorNormalizado string `json:"valor_normalizado,omitempty"`
	Motivo           string `json:"motivo,omitempty"`
	Contexto         string `json:"contexto"`
	Score            int    `json:"score"`
}

// Result is the full wire-contract shape for a single analyzed document.
type Result struct {
	Status            string        `json:"status"`
	Score             int           `json:"score"`
	TotalMatches      int           `json:"total_matches"`
	Matches           []MatchRecord `json:"matches"`
	TextoAnonimizado  string        `json:"texto_anonimizado"`
}

// Analyze is the core pure function: text and a policy in, a Result out.
// It never returns an error — every input, including the empty string,
// produces a valid Result (see SPEC_FULL.md §7).
func Analyze(text string, p policy.Policy) Result {
	views := normalize.Build(text)
	if views.Raw == "" {
		return Result{
			Status:           string(score.Publish),
			TextoAnonimizado: views.Raw,
		}
	}

	candidates := scan.Scan(views)
	kept := overlap.Resolve(candidates)
	total, status := score.Decide(kept, p)
	anonymized := anonymize.Mask(views.Raw, kept)

	return Result{
		Status:           string(status),
		Score:            total,
		TotalMatches:     len(kept),
		Matches:          toRecords(kept, views.Raw),
		TextoAnonimizado: anonymized,
	}
}

func toRecords(matches []rules.Match, rawView string) []MatchRecord {
	if len(matches) == 0 {
		return nil
	}
	out := make([]MatchRecord, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchRecord{
			Tipo:             m.RuleName,
			ValorDetectado:   m.RawSubstring,
			ValorNormalizado: m.NormalizedValue,
			Motivo:           m.AcceptanceReason,
			Contexto:         normalize.Window(rawView, m.Start, m.End, contextRadius),
			Score:            m.AppliedWeight,
		})
	}
	return out
}
