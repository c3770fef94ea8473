package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vientosur/eolico-api/internal/application/assignment"
	"github.com/vientosur/eolico-api/internal/application/installments"
	"github.com/vientosur/eolico-api/internal/application/usecase"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de la aplicación.
var _ assignment.TxRunner = (*TxRunner)(nil)
var _ installments.TxRunner = (*TxRunner)(nil)
var _ usecase.UsuariosTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Cualquier
// error del callback (o del commit) deja la transacción revertida: el caller
// nunca observa estado parcial.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del orquestador de asignaciones.
func (r *TxRunner) Run(ctx context.Context, fn func(
	eolicoRepo repository.EolicoRepository,
	alquilerRepo repository.AlquilerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEolicoRepository(tx), NewAlquilerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInstallments inicia una transacción con los repos del generador de cuotas.
func (r *TxRunner) RunInstallments(ctx context.Context, fn func(
	eolicoRepo repository.EolicoRepository,
	alquilerRepo repository.AlquilerRepository,
	cuotaRepo repository.CuotaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEolicoRepository(tx), NewAlquilerRepository(tx), NewCuotaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunUsuarios inicia una transacción con los repos del alta/edición de usuarios.
func (r *TxRunner) RunUsuarios(ctx context.Context, fn func(
	cuentaRepo repository.CuentaRepository,
	usuarioRepo repository.UsuarioRepository,
	auditoriaRepo repository.AuditoriaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCuentaRepository(tx), NewUsuarioRepository(tx), NewAuditoriaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
