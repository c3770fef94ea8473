package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// EolicoRepository implementación PostgreSQL del registro de eólicos.
type EolicoRepository struct {
	db Querier
}

// NewEolicoRepository construye el repositorio sobre un pool o una transacción.
func NewEolicoRepository(db Querier) repository.EolicoRepository {
	return &EolicoRepository{db: db}
}

const eolicoColumns = `id, codigo, tarifa_mensual, costo_instalacion, deposito,
		costo_operativo_diario, activo, habilitado, usuario_id, fecha_creacion`

func scanEolico(row pgx.Row) (*entity.Eolico, error) {
	var e entity.Eolico
	err := row.Scan(
		&e.ID, &e.Codigo, &e.TarifaMensual, &e.CostoInstalacion, &e.Deposito,
		&e.CostoOperativoDiario, &e.Activo, &e.Habilitado, &e.UsuarioID, &e.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan eolico: %w", err)
	}
	return &e, nil
}

// Crear inserta un eólico nuevo y devuelve su ID.
func (r *EolicoRepository) Crear(e *entity.Eolico) (int64, error) {
	query := `
		INSERT INTO eolicos (codigo, tarifa_mensual, costo_instalacion, deposito, costo_operativo_diario)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(context.Background(), query,
		e.Codigo, e.TarifaMensual, e.CostoInstalacion, e.Deposito, e.CostoOperativoDiario,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("crear eolico: %w", err)
	}
	return id, nil
}

// GetByID obtiene un eólico por ID; (nil, nil) si no existe.
func (r *EolicoRepository) GetByID(id int64) (*entity.Eolico, error) {
	query := `SELECT ` + eolicoColumns + ` FROM eolicos WHERE id = $1`
	return scanEolico(r.db.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate obtiene un eólico bloqueando su fila hasta el fin de la
// transacción.
func (r *EolicoRepository) GetByIDForUpdate(id int64) (*entity.Eolico, error) {
	query := `SELECT ` + eolicoColumns + ` FROM eolicos WHERE id = $1 FOR UPDATE`
	return scanEolico(r.db.QueryRow(context.Background(), query, id))
}

// GetByCodigo obtiene un eólico por código; (nil, nil) si no existe.
func (r *EolicoRepository) GetByCodigo(codigo string) (*entity.Eolico, error) {
	query := `SELECT ` + eolicoColumns + ` FROM eolicos WHERE codigo = $1`
	return scanEolico(r.db.QueryRow(context.Background(), query, codigo))
}

// Listar devuelve todos los eólicos con los datos del usuario asignado.
func (r *EolicoRepository) Listar() ([]*entity.EolicoDetalle, error) {
	query := `
		SELECT e.id, e.codigo, e.tarifa_mensual, e.costo_instalacion, e.deposito,
		       e.costo_operativo_diario, e.activo, e.habilitado, e.usuario_id, e.fecha_creacion,
		       u.nombres, u.primer_apellido, u.segundo_apellido, c.usuario
		FROM eolicos e
		LEFT JOIN usuarios u ON u.id = e.usuario_id
		LEFT JOIN cuentas c ON c.id = u.cuenta_id
		ORDER BY e.codigo`

	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar eolicos: %w", err)
	}
	defer rows.Close()

	var out []*entity.EolicoDetalle
	for rows.Next() {
		var d entity.EolicoDetalle
		err := rows.Scan(
			&d.ID, &d.Codigo, &d.TarifaMensual, &d.CostoInstalacion, &d.Deposito,
			&d.CostoOperativoDiario, &d.Activo, &d.Habilitado, &d.UsuarioID, &d.FechaCreacion,
			&d.Nombres, &d.PrimerApellido, &d.SegundoApellido, &d.Login,
		)
		if err != nil {
			return nil, fmt.Errorf("scan eolico detalle: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// Asignar fija el usuario y enciende activo+habilitado en un solo UPDATE.
func (r *EolicoRepository) Asignar(id, usuarioID int64) error {
	query := `
		UPDATE eolicos
		SET usuario_id = $2, activo = true, habilitado = true
		WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, id, usuarioID)
	if err != nil {
		return fmt.Errorf("asignar eolico: %w", err)
	}
	return nil
}

// Desasignar limpia el usuario y apaga activo+habilitado.
func (r *EolicoRepository) Desasignar(id int64) error {
	query := `
		UPDATE eolicos
		SET usuario_id = NULL, activo = false, habilitado = false
		WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("desasignar eolico: %w", err)
	}
	return nil
}

// SetActivo enciende o apaga un eólico sin tocar la asignación ni la
// habilitación: un equipo asignado que se apaga sigue habilitado.
func (r *EolicoRepository) SetActivo(id int64, activo bool) error {
	query := `UPDATE eolicos SET activo = $2 WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, id, activo)
	if err != nil {
		return fmt.Errorf("set activo eolico: %w", err)
	}
	return nil
}

// ActualizarCostos reemplaza los cuatro campos de costo del eólico.
func (r *EolicoRepository) ActualizarCostos(id int64, costos entity.CostosEolico) error {
	query := `
		UPDATE eolicos
		SET tarifa_mensual = $2, costo_instalacion = $3, deposito = $4, costo_operativo_diario = $5
		WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, id,
		costos.TarifaMensual, costos.CostoInstalacion, costos.Deposito, costos.CostoOperativoDiario)
	if err != nil {
		return fmt.Errorf("actualizar costos eolico: %w", err)
	}
	return nil
}
