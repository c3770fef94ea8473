package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// CuotaRepository implementación PostgreSQL de los planes de cuotas.
type CuotaRepository struct {
	db Querier
}

// NewCuotaRepository construye el repositorio sobre un pool o una transacción.
func NewCuotaRepository(db Querier) repository.CuotaRepository {
	return &CuotaRepository{db: db}
}

// ExistePlan indica si ya hay cuotas para el par (alquiler, concepto).
func (r *CuotaRepository) ExistePlan(alquilerID int64, concepto string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cuotas WHERE alquiler_id = $1 AND concepto = $2)`

	var existe bool
	err := r.db.QueryRow(context.Background(), query, alquilerID, concepto).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe plan: %w", err)
	}
	return existe, nil
}

// CrearLote inserta todas las cuotas del plan. Se ejecuta dentro de la
// transacción del generador, así que el plan entra completo o no entra.
func (r *CuotaRepository) CrearLote(cuotas []*entity.Cuota) error {
	query := `
		INSERT INTO cuotas (alquiler_id, concepto, numero, descripcion, fecha_vencimiento, monto)
		VALUES ($1, $2, $3, $4, $5, $6)`

	ctx := context.Background()
	for _, c := range cuotas {
		_, err := r.db.Exec(ctx, query,
			c.AlquilerID, c.Concepto, c.Numero, c.Descripcion, c.FechaVencimiento, c.Monto)
		if err != nil {
			return fmt.Errorf("crear cuota %d: %w", c.Numero, err)
		}
	}
	return nil
}

// ListarPorAlquiler devuelve las cuotas de un alquiler ordenadas por concepto y número.
func (r *CuotaRepository) ListarPorAlquiler(alquilerID int64) ([]*entity.Cuota, error) {
	query := `
		SELECT id, alquiler_id, concepto, numero, descripcion, fecha_vencimiento,
		       monto, pagada, fecha_pago, metodo_pago, observaciones
		FROM cuotas
		WHERE alquiler_id = $1
		ORDER BY concepto, numero`

	rows, err := r.db.Query(context.Background(), query, alquilerID)
	if err != nil {
		return nil, fmt.Errorf("listar cuotas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Cuota
	for rows.Next() {
		var c entity.Cuota
		err := rows.Scan(
			&c.ID, &c.AlquilerID, &c.Concepto, &c.Numero, &c.Descripcion, &c.FechaVencimiento,
			&c.Monto, &c.Pagada, &c.FechaPago, &c.MetodoPago, &c.Observaciones,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cuota: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// MarcarPagada es el UPDATE guardado del pago: solo pisa cuotas impagas, así
// un segundo pago concurrente no sobreescribe fecha ni método del primero.
func (r *CuotaRepository) MarcarPagada(id int64, fechaPago time.Time, metodoPago, observaciones *string) (bool, error) {
	query := `
		UPDATE cuotas
		SET pagada = true, fecha_pago = $2, metodo_pago = $3, observaciones = $4
		WHERE id = $1 AND pagada = false`

	tag, err := r.db.Exec(context.Background(), query, id, fechaPago, metodoPago, observaciones)
	if err != nil {
		return false, fmt.Errorf("marcar cuota pagada: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListarVencidas devuelve cuotas impagas vencidas antes del corte, con el
// destinatario del recordatorio resuelto por joins.
func (r *CuotaRepository) ListarVencidas(corte time.Time) ([]*entity.CuotaVencida, error) {
	query := `
		SELECT c.id, c.alquiler_id, c.concepto, c.numero, c.descripcion, c.fecha_vencimiento,
		       c.monto, c.pagada, c.fecha_pago, c.metodo_pago, c.observaciones,
		       e.codigo, u.email,
		       TRIM(u.nombres || ' ' || u.primer_apellido || ' ' || u.segundo_apellido)
		FROM cuotas c
		JOIN alquileres a ON a.id = c.alquiler_id
		JOIN eolicos e ON e.id = a.eolico_id
		JOIN usuarios u ON u.id = a.usuario_id
		WHERE c.pagada = false AND c.fecha_vencimiento < $1
		ORDER BY c.fecha_vencimiento`

	rows, err := r.db.Query(context.Background(), query, corte)
	if err != nil {
		return nil, fmt.Errorf("listar cuotas vencidas: %w", err)
	}
	defer rows.Close()

	var out []*entity.CuotaVencida
	for rows.Next() {
		var v entity.CuotaVencida
		err := rows.Scan(
			&v.ID, &v.AlquilerID, &v.Concepto, &v.Numero, &v.Descripcion, &v.FechaVencimiento,
			&v.Monto, &v.Pagada, &v.FechaPago, &v.MetodoPago, &v.Observaciones,
			&v.EolicoCodigo, &v.Email, &v.NombreCompleto,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cuota vencida: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
