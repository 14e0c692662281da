package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCEPValidatorRejectsWithoutAddressContext(t *testing.T) {
	v := NewCEP()
	out := v.Validate("70070-010", "", "o numero e 70070-010 apenas", 0, 9)
	assert.False(t, out.Accepted)
}

func TestCEPValidatorAcceptsWithAddressContext(t *testing.T) {
	v := NewCEP()
	search := "rua das flores, cep 70070-010"
	start := len([]rune("rua das flores, cep "))
	end := start + len([]rune("70070-010"))
	out := v.Validate("70070-010", "", search, start, end)
	assert.True(t, out.Accepted)
	assert.Equal(t, "70070010", out.Normalized)
}

func TestCEPValidatorRejectsWrongLength(t *testing.T) {
	v := NewCEP()
	out := v.Validate("7007-010", "", "rua principal 7007-010", 0, 8)
	assert.False(t, out.Accepted)
}

func TestContainsWordGuardsShortKeywords(t *testing.T) {
	assert.False(t, containsWord("gravar um video", "av"))
	assert.True(t, containsWord("mora na av. brasil", "av"))
}
