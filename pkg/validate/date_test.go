package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateValidatorAlwaysAccepts(t *testing.T) {
	v := NewDate()
	out := v.Validate("15/03/1990", "", "nascido em 15/03/1990 em brasilia", 11, 21)
	assert.True(t, out.Accepted)
	assert.Equal(t, "15/03/1990", out.Normalized)
}
