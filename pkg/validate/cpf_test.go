package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPFValidatorAcceptsValidChecksum(t *testing.T) {
	v := NewCPF()
	out := v.Validate("390.533.447-05", "", "meu cpf e 390.533.447-05", 0, 14)
	assert.True(t, out.Accepted)
	assert.Equal(t, "39053344705", out.Normalized)
	assert.Empty(t, out.Reason)
}

func TestCPFValidatorRejectsAllDigitsEqual(t *testing.T) {
	v := NewCPF()
	out := v.Validate("111.111.111-11", "", "cpf 111.111.111-11", 0, 14)
	assert.False(t, out.Accepted)
}

func TestCPFValidatorRejectsBadChecksumWithoutContext(t *testing.T) {
	v := NewCPF()
	out := v.Validate("390.533.447-00", "", "numero qualquer 390.533.447-00", 0, 14)
	assert.False(t, out.Accepted)
}

func TestCPFValidatorAcceptsBadChecksumWithCPFContext(t *testing.T) {
	v := NewCPF()
	search := "o cpf informado foi 390.533.447-00 no formulario"
	start := len([]rune("o cpf informado foi "))
	end := start + len([]rune("390.533.447-00"))
	out := v.Validate("390.533.447-00", "", search, start, end)
	assert.True(t, out.Accepted)
	assert.Equal(t, "cpf_suspeito_dv", out.Reason)
}

func TestCPFValidatorRejectsWrongLength(t *testing.T) {
	v := NewCPF()
	out := v.Validate("123456789", "", "123456789", 0, 9)
	assert.False(t, out.Accepted)
}
