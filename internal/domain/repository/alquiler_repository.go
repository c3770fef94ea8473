package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vientosur/eolico-api/internal/domain/entity"
)

// AlquilerRepository puerto de persistencia para el historial de alquileres.
type AlquilerRepository interface {
	Crear(a *entity.Alquiler) (int64, error)
	GetActivoPorEolico(eolicoID int64) (*entity.Alquiler, error)
	// GetActivoPorEolicoForUpdate bloquea la fila del alquiler activo; la usa
	// el generador de cuotas para serializar el check de plan duplicado.
	GetActivoPorEolicoForUpdate(eolicoID int64) (*entity.Alquiler, error)
	// CerrarActivoPorEolico / CerrarActivoPorUsuario finalizan el alquiler
	// activo (si lo hay) y devuelven cuántas filas cerraron.
	CerrarActivoPorEolico(eolicoID int64, fin time.Time) (int64, error)
	CerrarActivoPorUsuario(usuarioID int64, fin time.Time) (int64, error)
	// ActualizarCostos copia tarifa/instalación/depósito al snapshot del alquiler.
	ActualizarCostos(alquilerID int64, tarifa, instalacion, deposito decimal.Decimal) error
}
