package dto

import "time"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse token emitido tras un login correcto.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Rol     string `json:"rol"`
	Usuario string `json:"usuario"`
}

// MeResponse claims mínimos de la sesión.
type MeResponse struct {
	CuentaID int64  `json:"cuenta_id"`
	Rol      string `json:"rol"`
}

// MeDetalleResponse perfil completo del usuario logueado.
type MeDetalleResponse struct {
	CuentaID        int64      `json:"cuenta_id"`
	IDUsuario       int64      `json:"id_usuario"`
	Login           string     `json:"login"`
	Rol             string     `json:"rol"`
	Nombres         string     `json:"nombres"`
	PrimerApellido  string     `json:"primer_apellido"`
	SegundoApellido string     `json:"segundo_apellido"`
	Telefono        string     `json:"telefono"`
	Direccion       string     `json:"direccion"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento"`
	Email           string     `json:"email"`
	NombreCompleto  string     `json:"nombre_completo"`
}

// ForgotPasswordRequest solicitud de enlace de recuperación.
type ForgotPasswordRequest struct {
	Usuario string `json:"usuario"`
}

// ResetPasswordRequest canje del token de recuperación.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NuevaContrasena string `json:"nueva_contrasena"`
}
