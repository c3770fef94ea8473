package repository

import "github.com/vientosur/eolico-api/internal/domain/entity"

// BitacoraRepository registra intentos de acceso. Los fallos al insertar no
// deben abortar el login: el caso de uso solo los loguea.
type BitacoraRepository interface {
	Insertar(b *entity.BitacoraAcceso) error
}

// AuditoriaRepository registra acciones administrativas sobre usuarios.
type AuditoriaRepository interface {
	Insertar(a *entity.AuditoriaUsuario) error
}
