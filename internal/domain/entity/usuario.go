package entity

import "time"

// Roles del sistema.
const (
	RolAdministrador = "administrador"
	RolUsuario       = "usuario"
)

// Cuenta es la credencial de acceso: login, hash bcrypt y estado de bloqueo.
// El contador de intentos fallidos y bloqueado_hasta implementan el bloqueo
// temporal (5 intentos → 15 minutos).
type Cuenta struct {
	ID               int64
	Usuario          string // login (correo)
	Contrasena       string // hash bcrypt
	IntentosFallidos int
	BloqueadoHasta   *time.Time
	UltimoAcceso     *time.Time
	ResetToken       *string
	ResetExpira      *time.Time
}

// Bloqueada indica si la cuenta está en ventana de bloqueo temporal.
func (c *Cuenta) Bloqueada(ahora time.Time) bool {
	return c.BloqueadoHasta != nil && c.BloqueadoHasta.After(ahora)
}

// Usuario son los datos personales asociados a una cuenta, con su rol.
type Usuario struct {
	ID              int64
	CuentaID        int64
	RolID           int64
	Rol             string // nombre del rol, resuelto por join
	Login           string // login de la cuenta, resuelto por join
	Nombres         string
	PrimerApellido  string
	SegundoApellido string
	CI              string
	FechaNacimiento *time.Time
	Telefono        string
	Direccion       string
	Email           string
	// Eólico asignado actualmente (join opcional para listados admin).
	EolicoID     *int64
	EolicoCodigo *string
}

// NombreCompleto concatena nombres y apellidos no vacíos.
func (u *Usuario) NombreCompleto() string {
	out := ""
	for _, p := range []string{u.Nombres, u.PrimerApellido, u.SegundoApellido} {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
