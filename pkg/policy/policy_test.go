package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicyThresholds(t *testing.T) {
	p := Default()
	assert.Equal(t, 8, p.ScoreBlock)
	assert.Equal(t, 3, p.ScoreReview)
	assert.False(t, p.BlockIfCPFCNPJValid)
	assert.False(t, p.BlockIfEmailPresent)
	assert.False(t, p.BlockIfPhoneValid)
	assert.False(t, p.BlockIfProcessoPresente)
	assert.False(t, p.ReviewIfPhoneSuspectWithCtx)
	assert.False(t, p.ReviewIfHardSuspectWithCtx)
}

func TestStrictPolicyTurnsOnEscalation(t *testing.T) {
	p := Strict()
	assert.Equal(t, Default().ScoreBlock, p.ScoreBlock)
	assert.Equal(t, Default().ScoreReview, p.ScoreReview)
	assert.True(t, p.BlockIfCPFCNPJValid)
	assert.True(t, p.BlockIfEmailPresent)
	assert.True(t, p.BlockIfProcessoPresente)
	assert.True(t, p.ReviewIfPhoneSuspectWithCtx)
	assert.True(t, p.ReviewIfHardSuspectWithCtx)
}

func TestHardSensitivityBaselineConstant(t *testing.T) {
	assert.Equal(t, 6, HardSensitivityBaseline)
}
