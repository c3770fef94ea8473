package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// UsuarioRepository implementación PostgreSQL de datos personales y roles.
type UsuarioRepository struct {
	db Querier
}

// NewUsuarioRepository construye el repositorio sobre un pool o una transacción.
func NewUsuarioRepository(db Querier) repository.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

const usuarioSelect = `
		SELECT u.id, u.cuenta_id, u.rol_id, r.nombre_rol, c.usuario,
		       u.nombres, u.primer_apellido, u.segundo_apellido, u.ci,
		       u.fecha_nacimiento, u.telefono, u.direccion, u.email,
		       e.id, e.codigo
		FROM usuarios u
		JOIN cuentas c ON c.id = u.cuenta_id
		JOIN roles r ON r.id = u.rol_id
		LEFT JOIN eolicos e ON e.usuario_id = u.id`

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.CuentaID, &u.RolID, &u.Rol, &u.Login,
		&u.Nombres, &u.PrimerApellido, &u.SegundoApellido, &u.CI,
		&u.FechaNacimiento, &u.Telefono, &u.Direccion, &u.Email,
		&u.EolicoID, &u.EolicoCodigo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan usuario: %w", err)
	}
	return &u, nil
}

// Listar devuelve todos los usuarios, opcionalmente filtrados por un término
// libre. El término llega ya sin acentos (la app lo normaliza) y el lado SQL
// compara contra unaccent(lower(...)), así "María" matchea "maria".
func (r *UsuarioRepository) Listar(busqueda string) ([]*entity.Usuario, error) {
	query := usuarioSelect
	args := []any{}
	if busqueda != "" {
		query += `
		WHERE unaccent(lower(u.nombres || ' ' || u.primer_apellido || ' ' || u.segundo_apellido)) LIKE $1
		   OR unaccent(lower(c.usuario)) LIKE $1
		   OR unaccent(lower(u.email)) LIKE $1
		   OR u.ci LIKE $1
		   OR u.telefono LIKE $1
		   OR unaccent(lower(u.direccion)) LIKE $1
		   OR lower(e.codigo) LIKE $1
		   OR u.id::text LIKE $1`
		args = append(args, "%"+busqueda+"%")
	}
	query += `
		ORDER BY u.primer_apellido, u.nombres`

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()

	var out []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		err := rows.Scan(
			&u.ID, &u.CuentaID, &u.RolID, &u.Rol, &u.Login,
			&u.Nombres, &u.PrimerApellido, &u.SegundoApellido, &u.CI,
			&u.FechaNacimiento, &u.Telefono, &u.Direccion, &u.Email,
			&u.EolicoID, &u.EolicoCodigo,
		)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// GetDetallePorCuenta obtiene el usuario dueño de una cuenta; (nil, nil) si no hay.
func (r *UsuarioRepository) GetDetallePorCuenta(cuentaID int64) (*entity.Usuario, error) {
	query := usuarioSelect + `
		WHERE u.cuenta_id = $1`
	return scanUsuario(r.db.QueryRow(context.Background(), query, cuentaID))
}

// GetPorID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UsuarioRepository) GetPorID(usuarioID int64) (*entity.Usuario, error) {
	query := usuarioSelect + `
		WHERE u.id = $1`
	return scanUsuario(r.db.QueryRow(context.Background(), query, usuarioID))
}

// GetRolID resuelve el ID de un rol por nombre; (0, nil) si no existe.
func (r *UsuarioRepository) GetRolID(nombreRol string) (int64, error) {
	query := `SELECT id FROM roles WHERE nombre_rol = $1`

	var id int64
	err := r.db.QueryRow(context.Background(), query, nombreRol).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get rol id: %w", err)
	}
	return id, nil
}

// Crear inserta los datos personales y devuelve el ID del usuario.
func (r *UsuarioRepository) Crear(u *entity.Usuario) (int64, error) {
	query := `
		INSERT INTO usuarios (cuenta_id, rol_id, nombres, primer_apellido, segundo_apellido,
		                      ci, fecha_nacimiento, telefono, direccion, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(context.Background(), query,
		u.CuentaID, u.RolID, u.Nombres, u.PrimerApellido, u.SegundoApellido,
		u.CI, u.FechaNacimiento, u.Telefono, u.Direccion, u.Email,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("crear usuario: %w", err)
	}
	return id, nil
}

// Actualizar modifica los datos personales; con rolID > 0 también el rol.
// Devuelve si la fila existía.
func (r *UsuarioRepository) Actualizar(u *entity.Usuario, rolID int64) (bool, error) {
	query := `
		UPDATE usuarios
		SET nombres = $2, primer_apellido = $3, segundo_apellido = $4, ci = $5,
		    fecha_nacimiento = $6, telefono = $7, direccion = $8, email = $9,
		    rol_id = CASE WHEN $10::bigint > 0 THEN $10::bigint ELSE rol_id END
		WHERE id = $1`

	tag, err := r.db.Exec(context.Background(), query,
		u.ID, u.Nombres, u.PrimerApellido, u.SegundoApellido, u.CI,
		u.FechaNacimiento, u.Telefono, u.Direccion, u.Email, rolID)
	if err != nil {
		return false, fmt.Errorf("actualizar usuario: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Eliminar borra el registro de usuario. La cuenta queda: la bitácora de
// accesos la referencia.
func (r *UsuarioRepository) Eliminar(id int64) (bool, error) {
	query := `DELETE FROM usuarios WHERE id = $1`

	tag, err := r.db.Exec(context.Background(), query, id)
	if err != nil {
		return false, fmt.Errorf("eliminar usuario: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
