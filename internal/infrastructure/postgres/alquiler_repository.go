package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// AlquilerRepository implementación PostgreSQL del historial de alquileres.
type AlquilerRepository struct {
	db Querier
}

// NewAlquilerRepository construye el repositorio sobre un pool o una transacción.
func NewAlquilerRepository(db Querier) repository.AlquilerRepository {
	return &AlquilerRepository{db: db}
}

const alquilerColumns = `id, eolico_id, usuario_id, estado, fecha_inicio, fecha_fin,
		tarifa_mensual, costo_instalacion, deposito`

func scanAlquiler(row pgx.Row) (*entity.Alquiler, error) {
	var a entity.Alquiler
	err := row.Scan(
		&a.ID, &a.EolicoID, &a.UsuarioID, &a.Estado, &a.FechaInicio, &a.FechaFin,
		&a.TarifaMensual, &a.CostoInstalacion, &a.Deposito,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan alquiler: %w", err)
	}
	return &a, nil
}

// Crear inserta un alquiler y devuelve su ID.
func (r *AlquilerRepository) Crear(a *entity.Alquiler) (int64, error) {
	query := `
		INSERT INTO alquileres (eolico_id, usuario_id, estado, fecha_inicio, tarifa_mensual, costo_instalacion, deposito)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(context.Background(), query,
		a.EolicoID, a.UsuarioID, a.Estado, a.FechaInicio,
		a.TarifaMensual, a.CostoInstalacion, a.Deposito,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("crear alquiler: %w", err)
	}
	return id, nil
}

// GetActivoPorEolico obtiene el alquiler activo de un eólico; (nil, nil) si no hay.
func (r *AlquilerRepository) GetActivoPorEolico(eolicoID int64) (*entity.Alquiler, error) {
	query := `SELECT ` + alquilerColumns + `
		FROM alquileres WHERE eolico_id = $1 AND estado = 'activo'`
	return scanAlquiler(r.db.QueryRow(context.Background(), query, eolicoID))
}

// GetActivoPorEolicoForUpdate obtiene el alquiler activo bloqueando la fila.
func (r *AlquilerRepository) GetActivoPorEolicoForUpdate(eolicoID int64) (*entity.Alquiler, error) {
	query := `SELECT ` + alquilerColumns + `
		FROM alquileres WHERE eolico_id = $1 AND estado = 'activo' FOR UPDATE`
	return scanAlquiler(r.db.QueryRow(context.Background(), query, eolicoID))
}

// CerrarActivoPorEolico finaliza el alquiler activo del eólico si existe.
func (r *AlquilerRepository) CerrarActivoPorEolico(eolicoID int64, fin time.Time) (int64, error) {
	query := `
		UPDATE alquileres
		SET estado = 'finalizado', fecha_fin = $2
		WHERE eolico_id = $1 AND estado = 'activo'`

	tag, err := r.db.Exec(context.Background(), query, eolicoID, fin)
	if err != nil {
		return 0, fmt.Errorf("cerrar alquiler por eolico: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CerrarActivoPorUsuario finaliza el alquiler activo del usuario si existe.
func (r *AlquilerRepository) CerrarActivoPorUsuario(usuarioID int64, fin time.Time) (int64, error) {
	query := `
		UPDATE alquileres
		SET estado = 'finalizado', fecha_fin = $2
		WHERE usuario_id = $1 AND estado = 'activo'`

	tag, err := r.db.Exec(context.Background(), query, usuarioID, fin)
	if err != nil {
		return 0, fmt.Errorf("cerrar alquiler por usuario: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ActualizarCostos copia los costos nuevos al snapshot del alquiler.
func (r *AlquilerRepository) ActualizarCostos(alquilerID int64, tarifa, instalacion, deposito decimal.Decimal) error {
	query := `
		UPDATE alquileres
		SET tarifa_mensual = $2, costo_instalacion = $3, deposito = $4
		WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, alquilerID, tarifa, instalacion, deposito)
	if err != nil {
		return fmt.Errorf("actualizar costos alquiler: %w", err)
	}
	return nil
}
