package entity

import "time"

// Motivos registrados en la bitácora de accesos.
const (
	MotivoUsuarioNoEncontrado  = "usuario_no_encontrado"
	MotivoBloqueado            = "bloqueado"
	MotivoContrasenaIncorrecta = "contrasena_incorrecta"
	MotivoLoginOK              = "login_ok"
)

// BitacoraAcceso es una entrada del registro de intentos de inicio de sesión.
type BitacoraAcceso struct {
	ID             int64
	CuentaID       *int64 // nil cuando el login no corresponde a ninguna cuenta
	UsuarioIntento string
	IP             string
	AgenteUsuario  string
	Exito          bool
	Motivo         string
	Fecha          time.Time
}

// Acciones de auditoría sobre usuarios.
const (
	AccionCrear      = "CREAR"
	AccionActualizar = "ACTUALIZAR"
)

// AuditoriaUsuario registra acciones administrativas sobre cuentas de usuario.
type AuditoriaUsuario struct {
	ID               int64
	ActorCuentaID    int64
	Accion           string
	ObjetivoCuentaID *int64
	Detalle          []byte // JSON con el contexto de la acción
	Fecha            time.Time
}
