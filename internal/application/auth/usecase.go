package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
	"github.com/vientosur/eolico-api/pkg/jwt"
	"github.com/vientosur/eolico-api/pkg/logger"
)

// Política de bloqueo y de recuperación de contraseña.
const (
	maxIntentosFallidos = 5
	ventanaBloqueo      = 15 * time.Minute
	vigenciaReset       = 15 * time.Minute
	costoBcrypt         = 12
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: login con bloqueo temporal y
// bitácora, perfil de sesión y recuperación de contraseña.
type UseCase struct {
	cuentaRepo   repository.CuentaRepository
	usuarioRepo  repository.UsuarioRepository
	bitacoraRepo repository.BitacoraRepository
	mailer       Mailer // puede ser nil
	jwtCfg       JWTConfig
	baseURL      string
	log          *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(
	cuentaRepo repository.CuentaRepository,
	usuarioRepo repository.UsuarioRepository,
	bitacoraRepo repository.BitacoraRepository,
	mailer Mailer,
	jwtCfg JWTConfig,
	baseURL string,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		cuentaRepo:   cuentaRepo,
		usuarioRepo:  usuarioRepo,
		bitacoraRepo: bitacoraRepo,
		mailer:       mailer,
		jwtCfg:       jwtCfg,
		baseURL:      baseURL,
		log:          log,
	}
}

// Login verifica credenciales con bcrypt, aplica la política de bloqueo
// (5 fallos → 15 minutos) y registra cada intento en la bitácora de accesos.
func (uc *UseCase) Login(in dto.LoginRequest, ip, agente string) (*dto.LoginResponse, error) {
	usuario := strings.TrimSpace(in.Usuario)
	if len(usuario) < 3 || len(usuario) > 120 || len(in.Contrasena) < 3 || len(in.Contrasena) > 100 {
		return nil, domain.ErrInvalidInput
	}

	cred, err := uc.cuentaRepo.GetCredenciales(usuario)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		uc.registrarAcceso(nil, usuario, ip, agente, false, entity.MotivoUsuarioNoEncontrado)
		return nil, domain.ErrCredenciales
	}

	cta := cred.Cuenta
	ahora := time.Now()
	if cta.Bloqueada(ahora) {
		uc.registrarAcceso(&cta.ID, usuario, ip, agente, false, entity.MotivoBloqueado)
		return nil, domain.ErrCuentaBloqueada
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cta.Contrasena), []byte(in.Contrasena)); err != nil {
		fallos := cta.IntentosFallidos + 1
		if fallos >= maxIntentosFallidos {
			if err := uc.cuentaRepo.Bloquear(cta.ID, ahora.Add(ventanaBloqueo)); err != nil {
				return nil, err
			}
		} else {
			if err := uc.cuentaRepo.RegistrarFallo(cta.ID, fallos); err != nil {
				return nil, err
			}
		}
		uc.registrarAcceso(&cta.ID, usuario, ip, agente, false, entity.MotivoContrasenaIncorrecta)
		return nil, domain.ErrCredenciales
	}

	if err := uc.cuentaRepo.RegistrarAcceso(cta.ID, ahora); err != nil {
		return nil, err
	}
	uc.registrarAcceso(&cta.ID, usuario, ip, agente, true, entity.MotivoLoginOK)

	rol := strings.ToLower(strings.TrimSpace(cred.Rol))
	token, err := jwt.Generate(uc.jwtCfg.Secret, cta.ID, rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Success: true, Token: token, Rol: rol, Usuario: cta.Usuario}, nil
}

// registrarAcceso inserta en la bitácora; un fallo aquí no aborta el login.
func (uc *UseCase) registrarAcceso(cuentaID *int64, usuario, ip, agente string, exito bool, motivo string) {
	err := uc.bitacoraRepo.Insertar(&entity.BitacoraAcceso{
		CuentaID:       cuentaID,
		UsuarioIntento: usuario,
		IP:             recortar(ip, 45),
		AgenteUsuario:  recortar(agente, 255),
		Exito:          exito,
		Motivo:         motivo,
	})
	if err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("motivo", motivo).Msg("no se pudo registrar el acceso en bitácora")
	}
}

func recortar(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// MeDetalle devuelve el perfil completo del usuario de la sesión.
func (uc *UseCase) MeDetalle(cuentaID int64) (*dto.MeDetalleResponse, error) {
	u, err := uc.usuarioRepo.GetDetallePorCuenta(cuentaID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.MeDetalleResponse{
		CuentaID:        u.CuentaID,
		IDUsuario:       u.ID,
		Login:           u.Login,
		Rol:             strings.ToLower(u.Rol),
		Nombres:         u.Nombres,
		PrimerApellido:  u.PrimerApellido,
		SegundoApellido: u.SegundoApellido,
		Telefono:        u.Telefono,
		Direccion:       u.Direccion,
		FechaNacimiento: u.FechaNacimiento,
		Email:           u.Email,
		NombreCompleto:  u.NombreCompleto(),
	}, nil
}

// ForgotPassword genera un token de recuperación con vigencia de 15 minutos y
// envía el enlace por correo. La respuesta al cliente es siempre genérica:
// no revela si el usuario existe.
func (uc *UseCase) ForgotPassword(ctx context.Context, login string) error {
	login = strings.TrimSpace(login)
	if len(login) < 3 || len(login) > 120 {
		return domain.ErrInvalidInput
	}
	dest, err := uc.cuentaRepo.BuscarParaReset(login)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil // respuesta genérica, sin filtrar existencia
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := uc.cuentaRepo.GuardarResetToken(dest.CuentaID, token, time.Now().Add(vigenciaReset)); err != nil {
		return err
	}

	resetURL := strings.TrimRight(uc.baseURL, "/") + "/reset-password/" + token
	destino := strings.TrimSpace(dest.Email)
	if destino == "" {
		destino = dest.Login
	}
	if uc.mailer != nil && destino != "" {
		if err := uc.mailer.EnviarResetPassword(ctx, destino, dest.Login, resetURL); err == nil {
			return nil
		} else if uc.log != nil {
			uc.log.Warn().Err(err).Msg("fallo el envío del correo de recuperación")
		}
	}
	if uc.log != nil {
		uc.log.Info().Str("reset_url", resetURL).Msg("enlace de recuperación (SMTP no disponible)")
	}
	return nil
}

// ResetPassword canjea un token vigente por una contraseña nueva.
func (uc *UseCase) ResetPassword(token, nuevaContrasena string) error {
	token = strings.TrimSpace(token)
	if len(token) < 10 || len(nuevaContrasena) < 8 || len(nuevaContrasena) > 100 {
		return domain.ErrInvalidInput
	}
	cta, err := uc.cuentaRepo.GetPorResetToken(token)
	if err != nil {
		return err
	}
	if cta == nil {
		return domain.ErrTokenReset
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nuevaContrasena), costoBcrypt)
	if err != nil {
		return err
	}
	return uc.cuentaRepo.ActualizarContrasena(cta.ID, string(hash))
}
