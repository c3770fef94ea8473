package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// CuentaRepository implementación PostgreSQL de cuentas y su estado de acceso.
type CuentaRepository struct {
	db Querier
}

// NewCuentaRepository construye el repositorio sobre un pool o una transacción.
func NewCuentaRepository(db Querier) repository.CuentaRepository {
	return &CuentaRepository{db: db}
}

// GetCredenciales devuelve la cuenta con el rol resuelto; (nil, nil) si el
// login no existe.
func (r *CuentaRepository) GetCredenciales(login string) (*repository.CredencialesLogin, error) {
	query := `
		SELECT c.id, c.usuario, c.contrasena, c.intentos_fallidos, c.bloqueado_hasta,
		       c.ultimo_acceso, c.reset_token, c.reset_expira, r.nombre_rol
		FROM cuentas c
		JOIN usuarios u ON u.cuenta_id = c.id
		JOIN roles r ON r.id = u.rol_id
		WHERE c.usuario = $1`

	var cred repository.CredencialesLogin
	err := r.db.QueryRow(context.Background(), query, login).Scan(
		&cred.Cuenta.ID, &cred.Cuenta.Usuario, &cred.Cuenta.Contrasena,
		&cred.Cuenta.IntentosFallidos, &cred.Cuenta.BloqueadoHasta,
		&cred.Cuenta.UltimoAcceso, &cred.Cuenta.ResetToken, &cred.Cuenta.ResetExpira,
		&cred.Rol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credenciales: %w", err)
	}
	return &cred, nil
}

// ExisteLogin indica si el login ya está tomado.
func (r *CuentaRepository) ExisteLogin(login string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cuentas WHERE usuario = $1)`

	var existe bool
	err := r.db.QueryRow(context.Background(), query, login).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe login: %w", err)
	}
	return existe, nil
}

// Crear inserta la cuenta y devuelve su ID.
func (r *CuentaRepository) Crear(login, hash string) (int64, error) {
	query := `INSERT INTO cuentas (usuario, contrasena) VALUES ($1, $2) RETURNING id`

	var id int64
	err := r.db.QueryRow(context.Background(), query, login, hash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("crear cuenta: %w", err)
	}
	return id, nil
}

// RegistrarFallo fija el contador de intentos fallidos de la cuenta.
func (r *CuentaRepository) RegistrarFallo(cuentaID int64, intentos int) error {
	query := `UPDATE cuentas SET intentos_fallidos = $2 WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, cuentaID, intentos)
	if err != nil {
		return fmt.Errorf("registrar fallo: %w", err)
	}
	return nil
}

// Bloquear resetea el contador y fija la ventana de bloqueo.
func (r *CuentaRepository) Bloquear(cuentaID int64, hasta time.Time) error {
	query := `UPDATE cuentas SET intentos_fallidos = 0, bloqueado_hasta = $2 WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, cuentaID, hasta)
	if err != nil {
		return fmt.Errorf("bloquear cuenta: %w", err)
	}
	return nil
}

// RegistrarAcceso limpia contador y bloqueo y estampa el último acceso.
func (r *CuentaRepository) RegistrarAcceso(cuentaID int64, momento time.Time) error {
	query := `
		UPDATE cuentas
		SET intentos_fallidos = 0, bloqueado_hasta = NULL, ultimo_acceso = $2
		WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, cuentaID, momento)
	if err != nil {
		return fmt.Errorf("registrar acceso: %w", err)
	}
	return nil
}

// BuscarParaReset devuelve cuenta y email para el envío del correo de reset;
// (nil, nil) si el login no existe.
func (r *CuentaRepository) BuscarParaReset(login string) (*repository.DestinatarioReset, error) {
	query := `
		SELECT c.id, c.usuario, u.email
		FROM cuentas c
		JOIN usuarios u ON u.cuenta_id = c.id
		WHERE c.usuario = $1`

	var d repository.DestinatarioReset
	err := r.db.QueryRow(context.Background(), query, login).Scan(&d.CuentaID, &d.Login, &d.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar para reset: %w", err)
	}
	return &d, nil
}

// GuardarResetToken asocia token y expiración a la cuenta.
func (r *CuentaRepository) GuardarResetToken(cuentaID int64, token string, expira time.Time) error {
	query := `UPDATE cuentas SET reset_token = $2, reset_expira = $3 WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, cuentaID, token, expira)
	if err != nil {
		return fmt.Errorf("guardar reset token: %w", err)
	}
	return nil
}

// GetPorResetToken devuelve la cuenta solo si el token sigue vigente.
func (r *CuentaRepository) GetPorResetToken(token string) (*entity.Cuenta, error) {
	query := `
		SELECT id, usuario, contrasena, intentos_fallidos, bloqueado_hasta,
		       ultimo_acceso, reset_token, reset_expira
		FROM cuentas
		WHERE reset_token = $1 AND reset_expira > NOW()`

	var c entity.Cuenta
	err := r.db.QueryRow(context.Background(), query, token).Scan(
		&c.ID, &c.Usuario, &c.Contrasena, &c.IntentosFallidos, &c.BloqueadoHasta,
		&c.UltimoAcceso, &c.ResetToken, &c.ResetExpira,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get por reset token: %w", err)
	}
	return &c, nil
}

// ActualizarContrasena guarda el hash nuevo e invalida el token de reset.
func (r *CuentaRepository) ActualizarContrasena(cuentaID int64, hash string) error {
	query := `
		UPDATE cuentas
		SET contrasena = $2, reset_token = NULL, reset_expira = NULL
		WHERE id = $1`

	_, err := r.db.Exec(context.Background(), query, cuentaID, hash)
	if err != nil {
		return fmt.Errorf("actualizar contrasena: %w", err)
	}
	return nil
}
