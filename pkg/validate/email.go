package validate

import (
	"regexp"
	"strings"
)

var tldPattern = regexp.MustCompile(`^[a-z]{2,24}$`)

var standardBRCompounds = map[string]bool{
	"com.br": true, "gov.br": true, "org.br": true, "net.br": true, "edu.br": true,
}

var commonTLDs = map[string]bool{
	"com": true, "org": true, "net": true, "edu": true, "gov": true, "br": true,
}

// emailValidator always accepts (emails are a hard rule) and derives a
// reason from a TLD heuristic: malformed TLD, uncommon TLD, or nil.
type emailValidator struct{}

func NewEmail() Validator { return emailValidator{} }

func (emailValidator) Validate(raw, _, _ string, _, _ int) Outcome {
	normalized := strings.ToLower(raw)

	at := strings.LastIndex(normalized, "@")
	if at < 0 {
		return Accepted(normalized, "email_tld_suspeito")
	}
	domain := normalized[at+1:]
	dotParts := strings.Split(domain, ".")
	tld := dotParts[len(dotParts)-1]

	if !tldPattern.MatchString(tld) {
		return Accepted(normalized, "email_tld_suspeito")
	}

	if len(dotParts) >= 2 {
		compound := dotParts[len(dotParts)-2] + "." + tld
		if standardBRCompounds[compound] {
			return Accepted(normalized, "")
		}
	}
	if commonTLDs[tld] {
		return Accepted(normalized, "")
	}
	return Accepted(normalized, "email_tld_incomum")
}
