package repository

import (
	"time"

	"github.com/vientosur/eolico-api/internal/domain/entity"
)

// CuotaRepository puerto de persistencia para planes de cuotas.
type CuotaRepository interface {
	// ExistePlan indica si ya hay alguna cuota para el par (alquiler, concepto).
	ExistePlan(alquilerID int64, concepto string) (bool, error)
	// CrearLote inserta el plan completo (n cuotas) de una vez.
	CrearLote(cuotas []*entity.Cuota) error
	ListarPorAlquiler(alquilerID int64) ([]*entity.Cuota, error)
	// MarcarPagada ejecuta el UPDATE guardado con WHERE pagada = false y
	// devuelve si afectó alguna fila; false significa inexistente o ya pagada.
	MarcarPagada(id int64, fechaPago time.Time, metodoPago, observaciones *string) (bool, error)
	// ListarVencidas devuelve cuotas impagas con vencimiento anterior a corte,
	// con los datos del destinatario del recordatorio.
	ListarVencidas(corte time.Time) ([]*entity.CuotaVencida, error)
}
