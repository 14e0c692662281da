package validate

import (
	"strings"

	"github.com/gov-df/safedoc/pkg/normalize"
)

var addressKeywords = []string{
	"endereco", "rua", "avenida", "av", "travessa", "bairro", "cep",
	"logradouro", "quadra", "lote", "setor", "residencia",
}

// cepValidator accepts an 8-digit CEP only when an address keyword is
// present in the ±90-char context window.
type cepValidator struct{}

func NewCEP() Validator { return cepValidator{} }

func (cepValidator) Validate(raw, _, searchView string, start, end int) Outcome {
	digits := Digits(raw)
	if len(digits) != 8 {
		return Rejected()
	}

	window := normalize.Window(searchView, start, end, 90)
	for _, kw := range addressKeywords {
		if containsWord(window, kw) {
			return Accepted(digits, "")
		}
	}
	return Rejected()
}

// containsWord is a cheap word-boundary-ish contains: it reports an
// occurrence of word only when a non-letter (or string edge) sits on both
// sides of it. This keeps short keywords like "av" from matching inside
// unrelated longer words, and applies to every keyword alike.
func containsWord(haystack, word string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], word)
		if i < 0 {
			return false
		}
		pos := idx + i
		before := byte(' ')
		if pos > 0 {
			before = haystack[pos-1]
		}
		after := byte(' ')
		if end := pos + len(word); end < len(haystack) {
			after = haystack[end]
		}
		if !isLetter(before) && !isLetter(after) {
			return true
		}
		idx = pos + 1
		if idx >= len(haystack) {
			return false
		}
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
