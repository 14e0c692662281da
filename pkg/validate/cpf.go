package validate

import (
	"strconv"
	"strings"

	"github.com/gov-df/safedoc/pkg/normalize"
)

// cpfWeights1/2 are the official CPF check-digit weights: 10..2 over the
// first 9 digits, then 11..2 over the first 10 (including the first check
// digit).
var (
	cpfWeights1 = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2 = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

func cpfCheckDigit(digits string, weights []int) int {
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

// CPF validates Brazilian CPF numbers (Cadastro de Pessoas Físicas).
type cpfValidator struct{}

func NewCPF() Validator { return cpfValidator{} }

func (cpfValidator) Validate(raw, _, searchView string, start, end int) Outcome {
	digits := Digits(raw)
	if len(digits) != 11 || allDigitsEqual(digits) {
		return Rejected()
	}

	d1 := cpfCheckDigit(digits[:9], cpfWeights1)
	d2 := cpfCheckDigit(digits[:9]+strconv.Itoa(d1), cpfWeights2)
	expected := strconv.Itoa(d1) + strconv.Itoa(d2)
	if digits[9:] == expected {
		return Accepted(digits, "")
	}

	window := normalize.Window(searchView, start, end, 80)
	if strings.Contains(window, "cpf") {
		return Accepted(digits, "cpf_suspeito_dv")
	}
	return Rejected()
}
