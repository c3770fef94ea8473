package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vientosur/eolico-api/internal/application/usecase"
)

// Caso: la búsqueda se normaliza a minúsculas y sin marcas diacríticas, para
// emparejar con unaccent(lower(...)) del lado SQL.
func TestNormalizarBusqueda(t *testing.T) {
	casos := map[string]string{
		"  María PÉREZ ": "maria perez",
		"gonzález":       "gonzalez",
		"AE-01":          "ae-01",
		"":               "",
		"ñandú":          "nandu",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, usecase.NormalizarBusqueda(entrada), "entrada %q", entrada)
	}
}
