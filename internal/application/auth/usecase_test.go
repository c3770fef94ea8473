package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vientosur/eolico-api/internal/application/auth"
	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type cuentaFake struct {
	cuenta *entity.Cuenta
	rol    string
	email  string
}

func (r *cuentaFake) GetCredenciales(login string) (*repository.CredencialesLogin, error) {
	if r.cuenta == nil || r.cuenta.Usuario != login {
		return nil, nil
	}
	copia := *r.cuenta
	return &repository.CredencialesLogin{Cuenta: copia, Rol: r.rol}, nil
}
func (r *cuentaFake) ExisteLogin(login string) (bool, error) {
	return r.cuenta != nil && r.cuenta.Usuario == login, nil
}
func (r *cuentaFake) Crear(string, string) (int64, error) { return 0, nil }
func (r *cuentaFake) RegistrarFallo(_ int64, intentos int) error {
	r.cuenta.IntentosFallidos = intentos
	return nil
}
func (r *cuentaFake) Bloquear(_ int64, hasta time.Time) error {
	r.cuenta.IntentosFallidos = 0
	r.cuenta.BloqueadoHasta = &hasta
	return nil
}
func (r *cuentaFake) RegistrarAcceso(_ int64, momento time.Time) error {
	r.cuenta.IntentosFallidos = 0
	r.cuenta.BloqueadoHasta = nil
	r.cuenta.UltimoAcceso = &momento
	return nil
}
func (r *cuentaFake) BuscarParaReset(login string) (*repository.DestinatarioReset, error) {
	if r.cuenta == nil || r.cuenta.Usuario != login {
		return nil, nil
	}
	return &repository.DestinatarioReset{CuentaID: r.cuenta.ID, Login: r.cuenta.Usuario, Email: r.email}, nil
}
func (r *cuentaFake) GuardarResetToken(_ int64, token string, expira time.Time) error {
	r.cuenta.ResetToken = &token
	r.cuenta.ResetExpira = &expira
	return nil
}
func (r *cuentaFake) GetPorResetToken(token string) (*entity.Cuenta, error) {
	if r.cuenta == nil || r.cuenta.ResetToken == nil || *r.cuenta.ResetToken != token {
		return nil, nil
	}
	if r.cuenta.ResetExpira == nil || r.cuenta.ResetExpira.Before(time.Now()) {
		return nil, nil
	}
	return r.cuenta, nil
}
func (r *cuentaFake) ActualizarContrasena(_ int64, hash string) error {
	r.cuenta.Contrasena = hash
	r.cuenta.ResetToken = nil
	r.cuenta.ResetExpira = nil
	return nil
}

type usuarioFake struct{}

func (usuarioFake) Listar(string) ([]*entity.Usuario, error) { return nil, nil }
func (usuarioFake) GetDetallePorCuenta(cuentaID int64) (*entity.Usuario, error) {
	return &entity.Usuario{ID: 1, CuentaID: cuentaID, Rol: "usuario", Nombres: "Ana", PrimerApellido: "Pérez"}, nil
}
func (usuarioFake) GetPorID(int64) (*entity.Usuario, error)          { return nil, nil }
func (usuarioFake) GetRolID(string) (int64, error)                   { return 0, nil }
func (usuarioFake) Crear(*entity.Usuario) (int64, error)             { return 0, nil }
func (usuarioFake) Actualizar(*entity.Usuario, int64) (bool, error)  { return false, nil }
func (usuarioFake) Eliminar(int64) (bool, error)                     { return false, nil }

type bitacoraFake struct {
	entradas []*entity.BitacoraAcceso
}

func (r *bitacoraFake) Insertar(b *entity.BitacoraAcceso) error {
	r.entradas = append(r.entradas, b)
	return nil
}

type mailerFake struct {
	destinatario string
	resetURL     string
}

func (m *mailerFake) EnviarResetPassword(_ context.Context, destinatario, _, resetURL string) error {
	m.destinatario = destinatario
	m.resetURL = resetURL
	return nil
}

const contrasenaOK = "secreta123"

func escenario(t *testing.T) (*cuentaFake, *bitacoraFake, *mailerFake, *auth.UseCase) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasenaOK), bcrypt.MinCost)
	require.NoError(t, err)

	cuentas := &cuentaFake{
		cuenta: &entity.Cuenta{ID: 1, Usuario: "ana@example.com", Contrasena: string(hash)},
		rol:    "Usuario",
		email:  "ana@example.com",
	}
	bitacora := &bitacoraFake{}
	mailer := &mailerFake{}
	uc := auth.NewUseCase(cuentas, usuarioFake{}, bitacora, mailer, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "test",
	}, "http://localhost:3000", nil)
	return cuentas, bitacora, mailer, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso: credenciales correctas → token, rol en minúsculas, contador limpio y
// bitácora con login_ok.
func TestLogin_OK(t *testing.T) {
	cuentas, bitacora, _, uc := escenario(t)
	cuentas.cuenta.IntentosFallidos = 3

	out, err := uc.Login(dto.LoginRequest{Usuario: "ana@example.com", Contrasena: contrasenaOK}, "127.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "usuario", out.Rol)
	assert.Equal(t, 0, cuentas.cuenta.IntentosFallidos)

	require.Len(t, bitacora.entradas, 1)
	assert.Equal(t, entity.MotivoLoginOK, bitacora.entradas[0].Motivo)
	assert.True(t, bitacora.entradas[0].Exito)
}

// Caso: contraseña incorrecta incrementa el contador y no emite token.
func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	cuentas, bitacora, _, uc := escenario(t)

	_, err := uc.Login(dto.LoginRequest{Usuario: "ana@example.com", Contrasena: "malamalamala"}, "", "")
	assert.ErrorIs(t, err, domain.ErrCredenciales)
	assert.Equal(t, 1, cuentas.cuenta.IntentosFallidos)
	require.Len(t, bitacora.entradas, 1)
	assert.Equal(t, entity.MotivoContrasenaIncorrecta, bitacora.entradas[0].Motivo)
}

// Caso: el quinto fallo consecutivo bloquea la cuenta por 15 minutos.
func TestLogin_BloqueoAlQuintoFallo(t *testing.T) {
	cuentas, _, _, uc := escenario(t)
	cuentas.cuenta.IntentosFallidos = 4

	_, err := uc.Login(dto.LoginRequest{Usuario: "ana@example.com", Contrasena: "malamalamala"}, "", "")
	assert.ErrorIs(t, err, domain.ErrCredenciales)
	require.NotNil(t, cuentas.cuenta.BloqueadoHasta)
	assert.True(t, cuentas.cuenta.BloqueadoHasta.After(time.Now().Add(14*time.Minute)))
	assert.Equal(t, 0, cuentas.cuenta.IntentosFallidos, "el bloqueo resetea el contador")
}

// Caso: cuenta en ventana de bloqueo rechaza incluso la contraseña correcta.
func TestLogin_CuentaBloqueada(t *testing.T) {
	cuentas, bitacora, _, uc := escenario(t)
	hasta := time.Now().Add(10 * time.Minute)
	cuentas.cuenta.BloqueadoHasta = &hasta

	_, err := uc.Login(dto.LoginRequest{Usuario: "ana@example.com", Contrasena: contrasenaOK}, "", "")
	assert.ErrorIs(t, err, domain.ErrCuentaBloqueada)
	require.Len(t, bitacora.entradas, 1)
	assert.Equal(t, entity.MotivoBloqueado, bitacora.entradas[0].Motivo)
}

// Caso: bloqueo expirado → el login correcto vuelve a funcionar.
func TestLogin_BloqueoExpirado(t *testing.T) {
	cuentas, _, _, uc := escenario(t)
	hasta := time.Now().Add(-time.Minute)
	cuentas.cuenta.BloqueadoHasta = &hasta

	out, err := uc.Login(dto.LoginRequest{Usuario: "ana@example.com", Contrasena: contrasenaOK}, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

// Caso: usuario inexistente → mismo error genérico, con bitácora específica.
func TestLogin_UsuarioInexistente(t *testing.T) {
	_, bitacora, _, uc := escenario(t)

	_, err := uc.Login(dto.LoginRequest{Usuario: "nadie@example.com", Contrasena: contrasenaOK}, "", "")
	assert.ErrorIs(t, err, domain.ErrCredenciales)
	require.Len(t, bitacora.entradas, 1)
	assert.Equal(t, entity.MotivoUsuarioNoEncontrado, bitacora.entradas[0].Motivo)
	assert.Nil(t, bitacora.entradas[0].CuentaID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

// Caso: forgot-password guarda el token y envía el enlace al correo.
func TestForgotPassword_EnviaEnlace(t *testing.T) {
	cuentas, _, mailer, uc := escenario(t)

	require.NoError(t, uc.ForgotPassword(context.Background(), "ana@example.com"))
	require.NotNil(t, cuentas.cuenta.ResetToken)
	assert.Equal(t, "ana@example.com", mailer.destinatario)
	assert.Contains(t, mailer.resetURL, "/reset-password/"+*cuentas.cuenta.ResetToken)
}

// Caso: usuario inexistente no devuelve error (respuesta genérica) ni envía nada.
func TestForgotPassword_UsuarioInexistente(t *testing.T) {
	_, _, mailer, uc := escenario(t)

	require.NoError(t, uc.ForgotPassword(context.Background(), "nadie@example.com"))
	assert.Empty(t, mailer.destinatario)
}

// Caso: el ciclo completo — token emitido, canje, y login con la nueva clave.
func TestResetPassword_CicloCompleto(t *testing.T) {
	cuentas, _, _, uc := escenario(t)
	require.NoError(t, uc.ForgotPassword(context.Background(), "ana@example.com"))
	token := *cuentas.cuenta.ResetToken

	require.NoError(t, uc.ResetPassword(token, "nueva-clave-123"))
	assert.Nil(t, cuentas.cuenta.ResetToken, "el token se invalida al canjearse")

	out, err := uc.Login(dto.LoginRequest{Usuario: "ana@example.com", Contrasena: "nueva-clave-123"}, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

// Caso: token desconocido o expirado → ErrTokenReset.
func TestResetPassword_TokenInvalido(t *testing.T) {
	cuentas, _, _, uc := escenario(t)

	err := uc.ResetPassword("token-desconocido-123", "nueva-clave-123")
	assert.ErrorIs(t, err, domain.ErrTokenReset)

	// Token expirado
	require.NoError(t, uc.ForgotPassword(context.Background(), "ana@example.com"))
	expirado := time.Now().Add(-time.Minute)
	cuentas.cuenta.ResetExpira = &expirado
	err = uc.ResetPassword(*cuentas.cuenta.ResetToken, "nueva-clave-123")
	assert.ErrorIs(t, err, domain.ErrTokenReset)
}
