package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDispatchesEveryKnownKind(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
	}{
		{"cpf", Spec{Kind: KindCPF}},
		{"cnpj", Spec{Kind: KindCNPJ}},
		{"phone", Spec{Kind: KindPhone}},
		{"cep", Spec{Kind: KindCEP}},
		{"email", Spec{Kind: KindEmailTLD}},
		{"date", Spec{Kind: KindDate}},
		{"contextual_id", Spec{Kind: KindContextualID, Keywords: []string{"rg"}}},
		{"full_name", Spec{Kind: KindFullName}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotNil(t, Build(tc.spec))
		})
	}
}

func TestBuildReturnsNilForKindNone(t *testing.T) {
	assert.Nil(t, Build(Spec{Kind: KindNone}))
}
