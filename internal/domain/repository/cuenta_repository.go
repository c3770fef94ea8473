package repository

import (
	"time"

	"github.com/vientosur/eolico-api/internal/domain/entity"
)

// CredencialesLogin es la proyección que necesita el login: la cuenta con el
// nombre de rol ya resuelto (join cuentas-usuarios-roles).
type CredencialesLogin struct {
	Cuenta entity.Cuenta
	Rol    string
}

// DestinatarioReset es la proyección para forgot-password: cuenta + email.
type DestinatarioReset struct {
	CuentaID int64
	Login    string
	Email    string
}

// CuentaRepository puerto de persistencia para cuentas y su estado de acceso.
type CuentaRepository interface {
	GetCredenciales(login string) (*CredencialesLogin, error)
	ExisteLogin(login string) (bool, error)
	Crear(login, hash string) (int64, error)
	// RegistrarFallo fija el contador de intentos fallidos.
	RegistrarFallo(cuentaID int64, intentos int) error
	// Bloquear resetea el contador y fija bloqueado_hasta.
	Bloquear(cuentaID int64, hasta time.Time) error
	// RegistrarAcceso limpia contador y bloqueo y estampa ultimo_acceso.
	RegistrarAcceso(cuentaID int64, momento time.Time) error
	BuscarParaReset(login string) (*DestinatarioReset, error)
	GuardarResetToken(cuentaID int64, token string, expira time.Time) error
	// GetPorResetToken solo devuelve la cuenta si el token no expiró.
	GetPorResetToken(token string) (*entity.Cuenta, error)
	// ActualizarContrasena guarda el nuevo hash y limpia el token de reset.
	ActualizarContrasena(cuentaID int64, hash string) error
}
