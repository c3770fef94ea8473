package repository

import "github.com/vientosur/eolico-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para datos personales y roles.
type UsuarioRepository interface {
	// Listar devuelve todos los usuarios (join cuenta, rol y eólico asignado),
	// opcionalmente filtrados por un término de búsqueda libre.
	Listar(busqueda string) ([]*entity.Usuario, error)
	GetDetallePorCuenta(cuentaID int64) (*entity.Usuario, error)
	GetPorID(usuarioID int64) (*entity.Usuario, error)
	// GetRolID devuelve (0, nil) cuando el rol no existe.
	GetRolID(nombreRol string) (int64, error)
	Crear(u *entity.Usuario) (int64, error)
	// Actualizar modifica los datos personales; cuando rolID > 0 también
	// cambia el rol. Devuelve si la fila existía.
	Actualizar(u *entity.Usuario, rolID int64) (bool, error)
	Eliminar(id int64) (bool, error)
}
