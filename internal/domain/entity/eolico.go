package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Eolico representa un equipo eólico rentable identificado por un código único.
// Invariante: Activo y Habilitado solo pueden ser true si UsuarioID no es nil.
type Eolico struct {
	ID                   int64
	Codigo               string // único, mayúsculas, 3-20 caracteres
	TarifaMensual        decimal.Decimal
	CostoInstalacion     decimal.Decimal
	Deposito             decimal.Decimal
	CostoOperativoDiario decimal.Decimal
	Activo               bool // encendido/apagado
	Habilitado           bool // asignable
	UsuarioID            *int64
	FechaCreacion        time.Time
}

// NormalizarCodigo limpia y normaliza un código de eólico para almacenamiento.
func NormalizarCodigo(codigo string) string {
	return strings.ToUpper(strings.TrimSpace(codigo))
}

// CodigoValido verifica la longitud del código ya normalizado.
func CodigoValido(codigo string) bool {
	return len(codigo) >= 3 && len(codigo) <= 20
}

// Asignado indica si el eólico tiene un usuario asignado.
func (e *Eolico) Asignado() bool {
	return e.UsuarioID != nil
}

// EolicoDetalle es la vista de listado admin: el eólico más los datos del
// usuario asignado (join opcional).
type EolicoDetalle struct {
	Eolico
	Nombres         *string
	PrimerApellido  *string
	SegundoApellido *string
	Login           *string
}

// CostosEolico agrupa los cuatro campos de costo editables de un eólico.
type CostosEolico struct {
	TarifaMensual        decimal.Decimal
	CostoInstalacion     decimal.Decimal
	Deposito             decimal.Decimal
	CostoOperativoDiario decimal.Decimal
}
