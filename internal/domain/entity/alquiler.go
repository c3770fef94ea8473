package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un alquiler. Un alquiler nunca se elimina: al ser superado por
// una nueva asignación (o por una desasignación explícita) pasa a finalizado
// con fecha_fin, preservando el historial completo.
const (
	AlquilerActivo     = "activo"
	AlquilerFinalizado = "finalizado"
)

// Alquiler es un periodo contiguo de asignación de un eólico a un usuario.
// Invariante: a lo sumo un alquiler activo por eólico y por usuario.
// Tarifa, instalación y depósito son snapshots tomados al momento de asignar,
// para que los planes de cuotas no cambien si luego se editan los costos del
// eólico.
type Alquiler struct {
	ID               int64
	EolicoID         int64
	UsuarioID        int64
	Estado           string
	FechaInicio      time.Time
	FechaFin         *time.Time
	TarifaMensual    decimal.Decimal
	CostoInstalacion decimal.Decimal
	Deposito         decimal.Decimal
}

// Activo indica si el alquiler sigue abierto.
func (a *Alquiler) Activo() bool {
	return a.Estado == AlquilerActivo
}
