package validate

import (
	"strconv"
	"strings"

	"github.com/gov-df/safedoc/pkg/normalize"
)

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func cnpjCheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		d, _ := strconv.Atoi(string(digits[i]))
		sum += d * w
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// CNPJ validates Brazilian CNPJ numbers (Cadastro Nacional da Pessoa
// Jurídica).
type cnpjValidator struct{}

func NewCNPJ() Validator { return cnpjValidator{} }

func (cnpjValidator) Validate(raw, _, searchView string, start, end int) Outcome {
	digits := Digits(raw)
	if len(digits) != 14 || allDigitsEqual(digits) {
		return Rejected()
	}

	d1 := cnpjCheckDigit(digits[:12], cnpjWeights1)
	d2 := cnpjCheckDigit(digits[:12]+strconv.Itoa(d1), cnpjWeights2)
	expected := strconv.Itoa(d1) + strconv.Itoa(d2)
	if digits[12:] == expected {
		return Accepted(digits, "")
	}

	window := normalize.Window(searchView, start, end, 80)
	if strings.Contains(window, "cnpj") {
		return Accepted(digits, "cnpj_suspeito_dv")
	}
	return Rejected()
}
