package dto

import "time"

// CrearUsuarioRequest alta de usuario por un administrador.
type CrearUsuarioRequest struct {
	Usuario         string `json:"usuario"` // login (correo)
	Contrasena      string `json:"contrasena"`
	Rol             string `json:"rol"`
	Nombres         string `json:"nombres"`
	PrimerApellido  string `json:"primer_apellido"`
	SegundoApellido string `json:"segundo_apellido"`
	CI              string `json:"ci"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"`
	FechaNacimiento string `json:"fecha_nacimiento"` // ISO-8601, opcional
	Email           string `json:"email"`
}

// ActualizarUsuarioRequest edición de datos personales; Rol es opcional y
// cambia el rol cuando viene presente.
type ActualizarUsuarioRequest struct {
	Nombres         string `json:"nombres"`
	PrimerApellido  string `json:"primer_apellido"`
	SegundoApellido string `json:"segundo_apellido"`
	CI              string `json:"ci"`
	Telefono        string `json:"telefono"`
	Direccion       string `json:"direccion"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Rol             string `json:"rol"`
	Email           string `json:"email"`
}

// UsuarioResponse fila del listado admin de usuarios.
type UsuarioResponse struct {
	IDUsuario       int64      `json:"id_usuario"`
	Usuario         string     `json:"usuario"`
	Rol             string     `json:"nombre_rol"`
	Nombres         string     `json:"nombres"`
	PrimerApellido  string     `json:"primer_apellido"`
	SegundoApellido string     `json:"segundo_apellido"`
	CI              string     `json:"ci"`
	Telefono        string     `json:"telefono"`
	Direccion       string     `json:"direccion"`
	FechaNacimiento *time.Time `json:"fecha_nacimiento"`
	Email           string     `json:"email"`
	EolicoID        *int64     `json:"eolico_id"`
	EolicoCodigo    *string    `json:"eolico_codigo"`
}
