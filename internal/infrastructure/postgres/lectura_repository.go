package postgres

import (
	"context"
	"fmt"

	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// LecturaRepository implementación PostgreSQL (solo lectura) del resumen de
// sensores. Las filas las inserta el pipeline de telemetría, no esta API.
type LecturaRepository struct {
	db Querier
}

// NewLecturaRepository construye el repositorio.
func NewLecturaRepository(db Querier) repository.LecturaRepository {
	return &LecturaRepository{db: db}
}

const lecturaSelect = `
		SELECT id, usuario_id, voltaje, bateria, consumo, fecha_lectura
		FROM lecturas_resumen`

const filtroAlerta = `(bateria < 20 OR voltaje < 10)`

func (r *LecturaRepository) listar(query string, args ...any) ([]*entity.LecturaResumen, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar lecturas: %w", err)
	}
	defer rows.Close()

	var out []*entity.LecturaResumen
	for rows.Next() {
		var l entity.LecturaResumen
		err := rows.Scan(&l.ID, &l.UsuarioID, &l.Voltaje, &l.Bateria, &l.Consumo, &l.FechaLectura)
		if err != nil {
			return nil, fmt.Errorf("scan lectura: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// ListarPorCuenta devuelve las últimas lecturas del usuario dueño de la cuenta.
func (r *LecturaRepository) ListarPorCuenta(cuentaID int64, limit int) ([]*entity.LecturaResumen, error) {
	query := lecturaSelect + `
		WHERE usuario_id = (SELECT id FROM usuarios WHERE cuenta_id = $1)
		ORDER BY fecha_lectura DESC
		LIMIT $2`
	return r.listar(query, cuentaID, limit)
}

// ListarPorUsuario devuelve las últimas lecturas de un usuario.
func (r *LecturaRepository) ListarPorUsuario(usuarioID int64, limit int) ([]*entity.LecturaResumen, error) {
	query := lecturaSelect + `
		WHERE usuario_id = $1
		ORDER BY fecha_lectura DESC
		LIMIT $2`
	return r.listar(query, usuarioID, limit)
}

// ListarTodas devuelve las últimas lecturas de todos los usuarios.
func (r *LecturaRepository) ListarTodas(limit int) ([]*entity.LecturaResumen, error) {
	query := lecturaSelect + `
		ORDER BY fecha_lectura DESC
		LIMIT $1`
	return r.listar(query, limit)
}

// AlertasPorCuenta devuelve las lecturas en alerta del dueño de la cuenta.
func (r *LecturaRepository) AlertasPorCuenta(cuentaID int64, limit int) ([]*entity.LecturaResumen, error) {
	query := lecturaSelect + `
		WHERE usuario_id = (SELECT id FROM usuarios WHERE cuenta_id = $1)
		  AND ` + filtroAlerta + `
		ORDER BY fecha_lectura DESC
		LIMIT $2`
	return r.listar(query, cuentaID, limit)
}

// AlertasTodas devuelve las lecturas en alerta de todos los usuarios.
func (r *LecturaRepository) AlertasTodas(limit int) ([]*entity.LecturaResumen, error) {
	query := lecturaSelect + `
		WHERE ` + filtroAlerta + `
		ORDER BY fecha_lectura DESC
		LIMIT $1`
	return r.listar(query, limit)
}
