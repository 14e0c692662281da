package rules

import "regexp"

// Syntactic patterns. Each is intentionally permissive about punctuation —
// validate.Digits() and the individual validators do the real filtering —
// but every pattern is an RE2 expression, matched in linear time, so none
// can backtrack catastrophically.
var (
	patCPF  = regexp.MustCompile(`\b\d{3}\.?\d{3}\.?\d{3}-?\d{2}\b`)
	patCNPJ = regexp.MustCompile(`\b\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}\b`)

	patEmail = regexp.MustCompile(`\b[A-Za-z0-9][A-Za-z0-9._%+-]*@[A-Za-z0-9.-]+\.[A-Za-z]{2,24}\b`)

	patProcessoCNJ = regexp.MustCompile(`\b\d{7}-?\d{2}\.?\d{4}\.?\d\.?\d{2}\.?\d{4}\b`)
	patProcessoSEI = regexp.MustCompile(`\b\d{5}\.?\d{6}/?\d{4}-?\d{2}\b`)

	patTelefone = regexp.MustCompile(`\b(?:\+?55\s?)?\(?\d{2}\)?[\s.-]?\d{4,5}[\s.-]?\d{4}\b`)

	patCEP = regexp.MustCompile(`\b\d{5}-?\d{3}\b`)

	patPlacaVeiculo = regexp.MustCompile(`\b[A-Za-z]{3}[\s-]?\d[A-Za-z0-9]\d{2}\b`)

	patData = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)

	// Generic identifier-shaped digit run, optionally separated by dots,
	// dashes, or slashes: rg, matricula, inscricao, siape, nis_pis_pasep,
	// cnh_numero, titulo_eleitor_numero, nire all share this shape and are
	// told apart by their required keyword, not by the pattern.
	patGenericDigitID = regexp.MustCompile(`\b\d[\d.\-/]{2,18}\d\b`)

	// id_documental_rotulado additionally allows letters, for codes like
	// "AB-12345/2019".
	patAlnumID = regexp.MustCompile(`\b[A-Za-z0-9][A-Za-z0-9.\-/]{2,18}[A-Za-z0-9]\b`)

	// nome_completo: two or more capitalized tokens (allows a lowercase
	// connector like "de"/"da"/"dos" between them).
	patNomeCompleto = regexp.MustCompile(`\b[A-ZÀ-Ý][a-zà-ÿ]+(?:\s+(?:d[ae]s?|e)\s+[A-ZÀ-Ý][a-zà-ÿ]+|\s+[A-ZÀ-Ý][a-zà-ÿ]+)+\b`)
)
