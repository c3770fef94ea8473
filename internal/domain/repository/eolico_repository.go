package repository

import "github.com/vientosur/eolico-api/internal/domain/entity"

// EolicoRepository puerto de persistencia para el registro de eólicos.
// Las implementaciones retornan (nil, nil) cuando el registro no existe.
type EolicoRepository interface {
	Crear(e *entity.Eolico) (int64, error)
	GetByID(id int64) (*entity.Eolico, error)
	// GetByIDForUpdate bloquea la fila del eólico por el resto de la
	// transacción. Es la serialización por equipo de las asignaciones
	// concurrentes: solo tiene sentido sobre un Querier transaccional.
	GetByIDForUpdate(id int64) (*entity.Eolico, error)
	GetByCodigo(codigo string) (*entity.Eolico, error)
	Listar() ([]*entity.EolicoDetalle, error)
	// Asignar fija usuario_id y enciende activo+habilitado.
	Asignar(id, usuarioID int64) error
	// Desasignar limpia usuario_id y apaga activo+habilitado.
	Desasignar(id int64) error
	SetActivo(id int64, activo bool) error
	ActualizarCostos(id int64, costos entity.CostosEolico) error
}
