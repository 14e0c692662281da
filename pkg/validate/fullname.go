package validate

import (
	"strings"

	"github.com/gov-df/safedoc/pkg/normalize"
)

var nameTriggerPhrases = []string{
	"nome:", "requerente:", "interessado:", "servidor:", "responsavel:",
	"representante:", "advogado:",
}

var nameStopPhrases = []string{
	"parte representada", "nome do requerente",
}

var nameOrgWords = []string{
	"secretaria", "ministerio", "prefeitura", "tribunal", "universidade",
	"fundacao", "autarquia", "agencia", "departamento", "coordenadoria",
	"superintendencia",
}

// fullNameValidator requires a trigger phrase to the left of the match, no
// stop-phrase or organization word nearby, and at least two tokens in the
// match itself.
type fullNameValidator struct{}

func NewFullName() Validator { return fullNameValidator{} }

func (fullNameValidator) Validate(raw, _, searchView string, start, end int) Outcome {
	if len(strings.Fields(raw)) < 2 {
		return Rejected()
	}

	leftWindow := normalize.Window(searchView, start-140, start, 0)
	hasTrigger := false
	for _, trigger := range nameTriggerPhrases {
		if strings.Contains(leftWindow, trigger) {
			hasTrigger = true
			break
		}
	}
	if !hasTrigger {
		return Rejected()
	}

	nearWindow := normalize.Window(searchView, start, end, 90)
	for _, stop := range nameStopPhrases {
		if strings.Contains(nearWindow, stop) {
			return Rejected()
		}
	}
	for _, org := range nameOrgWords {
		if strings.Contains(nearWindow, org) {
			return Rejected()
		}
	}

	return Accepted(raw, "")
}
