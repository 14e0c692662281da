package validate

import (
	"regexp"
	"strings"

	"github.com/gov-df/safedoc/pkg/normalize"
)

var isolatedYear = regexp.MustCompile(`^(19|20)\d{2}$`)

// contextualIDValidator gates a generic identifier-shaped match (rg,
// matricula, inscricao, siape, nis_pis_pasep, cnh_numero,
// titulo_eleitor_numero, nire, id_documental_rotulado) behind a required
// keyword family found within a ±140-char window.
type contextualIDValidator struct {
	keywords []string
}

// NewContextualID builds the shared contextual-ID validator, parameterized
// by the keyword set that must appear nearby.
func NewContextualID(keywords []string) Validator {
	return contextualIDValidator{keywords: keywords}
}

func (v contextualIDValidator) Validate(raw, _, searchView string, start, end int) Outcome {
	normalized := strings.TrimSpace(raw)
	if len(normalized) < 4 {
		return Rejected()
	}
	if isolatedYear.MatchString(normalized) {
		return Rejected()
	}

	window := normalize.Window(searchView, start, end, 140)
	for _, kw := range v.keywords {
		if strings.Contains(window, kw) {
			return Accepted(normalized, "")
		}
	}
	return Rejected()
}
