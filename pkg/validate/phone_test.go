package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneValidatorAcceptsMobileWithDDD(t *testing.T) {
	v := NewPhone()
	search := "ligue para (61) 98888-7777 para marcar consulta"
	start := len([]rune("ligue para "))
	end := start + len([]rune("(61) 98888-7777"))
	out := v.Validate("(61) 98888-7777", "", search, start, end)
	assert.True(t, out.Accepted)
	assert.Equal(t, "61988887777", out.Normalized)
}

func TestPhoneValidatorStripsCountryCode(t *testing.T) {
	v := NewPhone()
	search := "whatsapp +55 61988887777"
	start := len([]rune("whatsapp "))
	end := start + len([]rune("+55 61988887777"))
	out := v.Validate("+55 61988887777", "", search, start, end)
	assert.True(t, out.Accepted)
	assert.Equal(t, "61988887777", out.Normalized)
}

func TestPhoneValidatorRejectsBadDDD(t *testing.T) {
	v := NewPhone()
	out := v.Validate("0599887766", "", "contato 0599887766", 0, 10)
	assert.False(t, out.Accepted)
}

func TestPhoneValidatorRequiresLeadingNineForElevenDigits(t *testing.T) {
	v := NewPhone()
	out := v.Validate("61888887777", "", "contato 61888887777", 0, 11)
	assert.False(t, out.Accepted)
}

func TestPhoneValidatorRejectsNegativeContext(t *testing.T) {
	v := NewPhone()
	search := "processo numero 6198887777 referente ao caso"
	start := len([]rune("processo numero "))
	end := start + len([]rune("6198887777"))
	out := v.Validate("6198887777", "", search, start, end)
	assert.False(t, out.Accepted)
}

func TestPhoneValidatorRejectsObviousPlaceholderSequence(t *testing.T) {
	v := NewPhone()
	out := v.Validate("1234567890", "", "telefone 1234567890 de teste", 0, 10)
	assert.False(t, out.Accepted)
}

func TestPhoneValidatorRejectsElevenDigitsNotStartingWithNine(t *testing.T) {
	v := NewPhone()
	// Same digit count as a valid CPF but shaped like a phone number:
	// still rejected because the third digit isn't 9.
	out := v.Validate("39053344705", "", "numero 39053344705 anotado", 0, 11)
	assert.False(t, out.Accepted)
}
