package rules

// Keyword families used both by per-identifier contextual validators and
// by the generic soft-rule context test in pkg/context. Kept here,
// alongside the catalog that references them, rather than duplicated
// per-validator.

var kwRG = []string{"rg", "identidade", "carteira de identidade", "doc. identidade"}

var kwMatricula = []string{"matricula", "funcional", "servidor"}

var kwInscricao = []string{"inscricao", "inscrito", "cadastro"}

var kwSIAPE = []string{"siape", "servidor publico federal"}

var kwNISPISPASEP = []string{"nis", "pis", "pasep"}

var kwCNH = []string{"cnh", "carteira de habilitacao", "habilitacao"}

var kwTituloEleitor = []string{"titulo de eleitor", "titulo eleitoral", "zona eleitoral"}

var kwNIRE = []string{"nire", "junta comercial"}

var kwIDDocumental = []string{"documento", "identificador", "numero do documento"}

// genericSoftContextKeywords is the broad keyword set consulted for every
// soft rule's generic context test (spec.md §4.3 step 3): identifiers,
// contact, address, vital records, government/process, education/civil.
// GenericContextKeywords returns the broad keyword set consulted by
// pkg/context for every soft rule's generic context test.
func GenericContextKeywords() []string { return genericSoftContextKeywords }

var genericSoftContextKeywords = []string{
	// identifiers
	"cpf", "cnpj", "rg", "matricula", "inscricao", "siape", "nis", "pis",
	"pasep", "cnh", "titulo de eleitor", "nire", "documento",
	// contact
	"telefone", "celular", "whatsapp", "contato", "email", "e-mail",
	// address
	"endereco", "rua", "avenida", "bairro", "cep", "logradouro",
	// vital records
	"nascimento", "data de nascimento", "filiacao", "obito",
	// government/process
	"processo", "protocolo", "sei", "cnj", "requerente", "interessado",
	// education/civil
	"aluno", "servidor", "paciente", "matricula escolar", "escola",
}
