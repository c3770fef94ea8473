package repository

import "github.com/vientosur/eolico-api/internal/domain/entity"

// LecturaRepository puerto de lectura para los dashboards de sensores.
type LecturaRepository interface {
	// ListarPorCuenta devuelve las lecturas del usuario dueño de la cuenta.
	ListarPorCuenta(cuentaID int64, limit int) ([]*entity.LecturaResumen, error)
	ListarPorUsuario(usuarioID int64, limit int) ([]*entity.LecturaResumen, error)
	ListarTodas(limit int) ([]*entity.LecturaResumen, error)
	// Alertas: lecturas con batería < 20 o voltaje < 10.
	AlertasPorCuenta(cuentaID int64, limit int) ([]*entity.LecturaResumen, error)
	AlertasTodas(limit int) ([]*entity.LecturaResumen, error)
}
