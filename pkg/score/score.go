// Package score totals applied weights across surviving matches and maps
// the total, plus the policy's escalation flags, onto a final Status.
package score

import (
	"github.com/gov-df/safedoc/pkg/policy"
	"github.com/gov-df/safedoc/pkg/rules"
)

// Status is the document-level decision.
type Status string

const (
	Publish Status = "PUBLISH"
	Review  Status = "REVIEW"
	Block   Status = "BLOCK"
)

// ruleNames indexes matches by rule name for the escalation checks below.
func ruleNames(matches []rules.Match) map[string]rules.Match {
	m := make(map[string]rules.Match, len(matches))
	for _, match := range matches {
		if existing, ok := m[match.RuleName]; !ok || match.AppliedWeight > existing.AppliedWeight {
			m[match.RuleName] = match
		}
	}
	return m
}

// Decide totals the applied weight of every surviving match and derives a
// Status, honoring the policy's short-circuit escalation flags before
// falling back to the plain score thresholds.
func Decide(matches []rules.Match, p policy.Policy) (int, Status) {
	total := 0
	for _, m := range matches {
		total += m.AppliedWeight
	}

	byName := ruleNames(matches)

	if p.BlockIfCPFCNPJValid {
		for _, m := range matches {
			if (m.RuleName == "cpf" && m.AcceptanceReason != "cpf_suspeito_dv") ||
				(m.RuleName == "cnpj" && m.AcceptanceReason != "cnpj_suspeito_dv") {
				return total, Block
			}
		}
	}
	if p.BlockIfEmailPresent {
		if _, ok := byName["email"]; ok {
			return total, Block
		}
	}
	if p.BlockIfPhoneValid {
		if _, ok := byName["telefone"]; ok {
			return total, Block
		}
	}
	if p.BlockIfProcessoPresente {
		if _, ok := byName["processo_cnj"]; ok {
			return total, Block
		}
		if _, ok := byName["processo_sei"]; ok {
			return total, Block
		}
	}

	if total >= p.ScoreBlock {
		return total, Block
	}

	if p.ReviewIfHardSuspectWithCtx {
		for _, m := range matches {
			if m.AcceptanceReason == "cpf_suspeito_dv" || m.AcceptanceReason == "cnpj_suspeito_dv" {
				return total, Review
			}
		}
	}
	if p.ReviewIfPhoneSuspectWithCtx {
		if m, ok := byName["telefone"]; ok && m.AcceptanceReason == "telefone_suspeito" {
			return total, Review
		}
	}

	if total >= p.ScoreReview {
		return total, Review
	}
	return total, Publish
}
