package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "operacao", Fold("Operação"))
	assert.Equal(t, "operacao", Fold("  OPERAÇÃO "))
	assert.Equal(t, "salario", Fold("Salário"))
	assert.Equal(t, "", FoldPtr(nil))
	assert.Equal(t, "variavel", FoldPtr(StringPtr("Variável")))
}
