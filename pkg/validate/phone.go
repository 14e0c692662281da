package validate

import (
	"strconv"
	"strings"

	"github.com/gov-df/safedoc/pkg/normalize"
)

var phoneNegativeContext = []string{
	"nire", "protocolo", "processo", "sei", "cnj", "matricula", "cda",
	"empenho", "nota fiscal", "nf", "id", "inscricao",
}

// obviousSequences rejects the placeholder digit runs the original system
// also blocklisted (validators.py's _SEQUENCIAS_PROIBIDAS) — sample data
// and form scaffolding routinely leaves these behind, and a raw 10/11
// digit sequence match would otherwise pass the DDD/length checks below.
var obviousSequences = map[string]bool{
	"0000000000": true, "1111111111": true,
	"1234567890": true, "0123456789": true,
}

// phoneValidator implements the strict Brazilian phone validator from
// spec.md §4.2: strip non-digits, reject on negative context, strip a
// leading country code, require a valid DDD and mobile/landline length.
type phoneValidator struct{}

func NewPhone() Validator { return phoneValidator{} }

func (phoneValidator) Validate(raw, _, searchView string, start, end int) Outcome {
	digits := Digits(raw)
	if digits == "" {
		return Rejected()
	}

	window := normalize.Window(searchView, start, end, 60)
	for _, neg := range phoneNegativeContext {
		if strings.Contains(window, neg) {
			return Rejected()
		}
	}

	if len(digits) == 12 || len(digits) == 13 {
		if strings.HasPrefix(digits, "55") {
			digits = digits[2:]
		}
	}

	if len(digits) != 10 && len(digits) != 11 {
		return Rejected()
	}
	if obviousSequences[digits] {
		return Rejected()
	}

	ddd, err := strconv.Atoi(digits[:2])
	if err != nil || ddd < 11 || ddd > 99 {
		return Rejected()
	}

	if len(digits) == 11 && digits[2] != '9' {
		return Rejected()
	}

	return Accepted(digits, "")
}
