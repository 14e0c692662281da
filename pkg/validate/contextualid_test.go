package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextualIDValidatorAcceptsWithKeywordNearby(t *testing.T) {
	v := NewContextualID([]string{"matricula", "funcional", "servidor"})
	search := "matricula 1234567 do servidor"
	start := len([]rune("matricula "))
	end := start + len([]rune("1234567"))
	out := v.Validate("1234567", "", search, start, end)
	assert.True(t, out.Accepted)
	assert.Equal(t, "1234567", out.Normalized)
}

func TestContextualIDValidatorRejectsWithoutKeyword(t *testing.T) {
	v := NewContextualID([]string{"matricula", "funcional", "servidor"})
	out := v.Validate("1234567", "", "o numero informado foi 1234567 na guia", 0, 7)
	assert.False(t, out.Accepted)
}

func TestContextualIDValidatorRejectsIsolatedYear(t *testing.T) {
	v := NewContextualID([]string{"matricula"})
	search := "matricula 2021 concluida"
	start := len([]rune("matricula "))
	end := start + len([]rune("2021"))
	out := v.Validate("2021", "", search, start, end)
	assert.False(t, out.Accepted)
}

func TestContextualIDValidatorRejectsShortValue(t *testing.T) {
	v := NewContextualID([]string{"matricula"})
	out := v.Validate("12", "", "matricula 12", 0, 2)
	assert.False(t, out.Accepted)
}
