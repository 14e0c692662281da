// Package policy defines the decision configuration that maps a detection
// score to a publish/review/block action.
package policy

// Policy is the immutable decision configuration consulted by pkg/score.
// Values are held by value and must never be mutated after construction;
// build one with Default or Strict and pass it down the call chain.
type Policy struct {
	// ScoreBlock is the minimum total score that forces BLOCK.
	ScoreBlock int
	// ScoreReview is the minimum total score that forces REVIEW (when
	// below ScoreBlock).
	ScoreReview int

	// Escalation overrides. When true, the presence of a surviving match
	// of the named kind short-circuits to the corresponding action
	// regardless of what the summed score alone would decide. Off by
	// default: rule weights are calibrated so the plain score thresholds
	// alone reproduce the intended defaults (see DESIGN.md). A host that
	// wants the more aggressive original stance — block on any valid
	// CPF/CNPJ no matter the rest of the document — turns these on.
	BlockIfCPFCNPJValid           bool
	BlockIfEmailPresent           bool
	BlockIfPhoneValid             bool
	BlockIfProcessoPresente       bool
	ReviewIfPhoneSuspectWithCtx   bool
	ReviewIfHardSuspectWithCtx    bool
}

// HardSensitivityBaseline is the base weight assigned to hard rules that
// have no more specific calibration (the CPF and CNPJ rules).
const HardSensitivityBaseline = 6

// Default returns the default policy: score_block=8, score_review=3,
// hard-sensitivity baseline 6, escalation overrides off (pure calibration).
func Default() Policy {
	return Policy{
		ScoreBlock:  8,
		ScoreReview: 3,
	}
}

// Strict returns the escalation-heavy policy the system this module was
// modeled after used by default: any valid CPF/CNPJ, any email, or any
// process number present forces BLOCK outright, on top of the same score
// thresholds as Default.
func Strict() Policy {
	p := Default()
	p.BlockIfCPFCNPJValid = true
	p.BlockIfEmailPresent = true
	p.BlockIfProcessoPresente = true
	p.ReviewIfPhoneSuspectWithCtx = true
	p.ReviewIfHardSuspectWithCtx = true
	return p
}
