package postgres

import (
	"context"
	"fmt"

	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// BitacoraRepository implementación PostgreSQL de la bitácora de accesos.
type BitacoraRepository struct {
	db Querier
}

// NewBitacoraRepository construye el repositorio.
func NewBitacoraRepository(db Querier) repository.BitacoraRepository {
	return &BitacoraRepository{db: db}
}

// Insertar registra un intento de acceso.
func (r *BitacoraRepository) Insertar(b *entity.BitacoraAcceso) error {
	query := `
		INSERT INTO bitacora_accesos (cuenta_id, usuario_intento, ip, agente_usuario, exito, motivo)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(context.Background(), query,
		b.CuentaID, b.UsuarioIntento, b.IP, b.AgenteUsuario, b.Exito, b.Motivo)
	if err != nil {
		return fmt.Errorf("insertar bitacora: %w", err)
	}
	return nil
}

// AuditoriaRepository implementación PostgreSQL de la auditoría de usuarios.
type AuditoriaRepository struct {
	db Querier
}

// NewAuditoriaRepository construye el repositorio.
func NewAuditoriaRepository(db Querier) repository.AuditoriaRepository {
	return &AuditoriaRepository{db: db}
}

// Insertar registra una acción administrativa sobre un usuario.
func (r *AuditoriaRepository) Insertar(a *entity.AuditoriaUsuario) error {
	query := `
		INSERT INTO auditoria_usuarios (actor_cuenta_id, accion, objetivo_cuenta_id, detalle)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(context.Background(), query,
		a.ActorCuentaID, a.Accion, a.ObjetivoCuentaID, a.Detalle)
	if err != nil {
		return fmt.Errorf("insertar auditoria: %w", err)
	}
	return nil
}
