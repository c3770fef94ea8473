package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// UsuariosTxRunner ejecuta el alta/edición de usuarios (cuenta + datos +
// auditoría) dentro de una sola transacción.
type UsuariosTxRunner interface {
	RunUsuarios(ctx context.Context, fn func(
		cuentaRepo repository.CuentaRepository,
		usuarioRepo repository.UsuarioRepository,
		auditoriaRepo repository.AuditoriaRepository,
	) error) error
}

// UsuarioUseCase administración de usuarios (solo rol administrador).
type UsuarioUseCase struct {
	txRunner    UsuariosTxRunner
	cuentaRepo  repository.CuentaRepository
	usuarioRepo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(txRunner UsuariosTxRunner, cuentaRepo repository.CuentaRepository, usuarioRepo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{txRunner: txRunner, cuentaRepo: cuentaRepo, usuarioRepo: usuarioRepo}
}

// Listar devuelve el listado admin, con búsqueda libre insensible a acentos
// sobre id, login, nombres, CI, teléfono, dirección y código de eólico.
func (uc *UsuarioUseCase) Listar(busqueda string) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.Listar(NormalizarBusqueda(busqueda))
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, dto.UsuarioResponse{
			IDUsuario:       u.ID,
			Usuario:         u.Login,
			Rol:             u.Rol,
			Nombres:         u.Nombres,
			PrimerApellido:  u.PrimerApellido,
			SegundoApellido: u.SegundoApellido,
			CI:              u.CI,
			Telefono:        u.Telefono,
			Direccion:       u.Direccion,
			FechaNacimiento: u.FechaNacimiento,
			Email:           u.Email,
			EolicoID:        u.EolicoID,
			EolicoCodigo:    u.EolicoCodigo,
		})
	}
	return out, nil
}

// Crear da de alta cuenta + usuario + registro de auditoría en una
// transacción. ErrDuplicate si el login ya existe.
func (uc *UsuarioUseCase) Crear(ctx context.Context, actorCuentaID int64, in dto.CrearUsuarioRequest) error {
	login := strings.ToLower(strings.TrimSpace(in.Usuario))
	if len(login) < 3 || len(login) > 120 || !strings.Contains(login, "@") {
		return domain.ErrInvalidInput
	}
	if len(in.Contrasena) < 8 || len(in.Contrasena) > 100 {
		return domain.ErrInvalidInput
	}
	rol := strings.ToLower(strings.TrimSpace(in.Rol))
	if rol != entity.RolAdministrador && rol != entity.RolUsuario {
		return domain.ErrInvalidInput
	}
	fechaNac, err := parseFechaOpcional(in.FechaNacimiento)
	if err != nil {
		return domain.ErrInvalidInput
	}

	rolID, err := uc.usuarioRepo.GetRolID(rol)
	if err != nil {
		return err
	}
	if rolID == 0 {
		return domain.ErrInvalidInput
	}
	existe, err := uc.cuentaRepo.ExisteLogin(login)
	if err != nil {
		return err
	}
	if existe {
		return domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), 12)
	if err != nil {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		email = login
	}

	return uc.txRunner.RunUsuarios(ctx, func(
		cuentaRepo repository.CuentaRepository,
		usuarioRepo repository.UsuarioRepository,
		auditoriaRepo repository.AuditoriaRepository,
	) error {
		cuentaID, err := cuentaRepo.Crear(login, string(hash))
		if err != nil {
			return err
		}
		if _, err := usuarioRepo.Crear(&entity.Usuario{
			CuentaID:        cuentaID,
			RolID:           rolID,
			Nombres:         in.Nombres,
			PrimerApellido:  in.PrimerApellido,
			SegundoApellido: in.SegundoApellido,
			CI:              in.CI,
			FechaNacimiento: fechaNac,
			Telefono:        in.Telefono,
			Direccion:       in.Direccion,
			Email:           email,
		}); err != nil {
			return err
		}
		detalle, _ := json.Marshal(map[string]string{"usuario": login, "rol": rol})
		return auditoriaRepo.Insertar(&entity.AuditoriaUsuario{
			ActorCuentaID:    actorCuentaID,
			Accion:           entity.AccionCrear,
			ObjetivoCuentaID: &cuentaID,
			Detalle:          detalle,
		})
	})
}

// Actualizar edita datos personales; si viene un rol, el cambio de rol y su
// registro de auditoría corren en la misma transacción.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, actorCuentaID, usuarioID int64, in dto.ActualizarUsuarioRequest) error {
	if usuarioID < 1 {
		return domain.ErrInvalidInput
	}
	fechaNac, err := parseFechaOpcional(in.FechaNacimiento)
	if err != nil {
		return domain.ErrInvalidInput
	}
	u := &entity.Usuario{
		ID:              usuarioID,
		Nombres:         in.Nombres,
		PrimerApellido:  in.PrimerApellido,
		SegundoApellido: in.SegundoApellido,
		CI:              in.CI,
		FechaNacimiento: fechaNac,
		Telefono:        in.Telefono,
		Direccion:       in.Direccion,
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
	}

	rol := strings.ToLower(strings.TrimSpace(in.Rol))
	if rol == "" {
		existia, err := uc.usuarioRepo.Actualizar(u, 0)
		if err != nil {
			return err
		}
		if !existia {
			return domain.ErrNotFound
		}
		return nil
	}
	if rol != entity.RolAdministrador && rol != entity.RolUsuario {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.RunUsuarios(ctx, func(
		_ repository.CuentaRepository,
		usuarioRepo repository.UsuarioRepository,
		auditoriaRepo repository.AuditoriaRepository,
	) error {
		rolID, err := usuarioRepo.GetRolID(rol)
		if err != nil {
			return err
		}
		if rolID == 0 {
			return domain.ErrInvalidInput
		}
		existia, err := usuarioRepo.Actualizar(u, rolID)
		if err != nil {
			return err
		}
		if !existia {
			return domain.ErrNotFound
		}
		detalle, _ := json.Marshal(map[string]interface{}{"id_usuario": usuarioID, "nuevo_rol": rol})
		return auditoriaRepo.Insertar(&entity.AuditoriaUsuario{
			ActorCuentaID: actorCuentaID,
			Accion:        entity.AccionActualizar,
			Detalle:       detalle,
		})
	})
}

// Eliminar borra el registro de usuario (la cuenta se conserva para la
// bitácora histórica).
func (uc *UsuarioUseCase) Eliminar(usuarioID int64) error {
	if usuarioID < 1 {
		return domain.ErrInvalidInput
	}
	existia, err := uc.usuarioRepo.Eliminar(usuarioID)
	if err != nil {
		return err
	}
	if !existia {
		return domain.ErrNotFound
	}
	return nil
}

func parseFechaOpcional(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// NormalizarBusqueda baja a minúsculas y quita marcas diacríticas, para que
// "pérez" y "perez" encuentren lo mismo (el SQL usa unaccent del lado de la
// base para la otra mitad de la comparación).
func NormalizarBusqueda(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
