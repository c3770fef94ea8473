package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vientosur/eolico-api/internal/application/auth"
	"github.com/vientosur/eolico-api/internal/application/dto"
)

// AuthHandler maneja login, sesión y recuperación de contraseña.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login verifica credenciales y emite el token de sesión.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in, c.IP(), c.Get("User-Agent"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Me devuelve los claims mínimos de la sesión.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.MeResponse{CuentaID: GetCuentaID(c), Rol: GetRol(c)})
}

// MeDetalle devuelve el perfil completo del usuario logueado.
// GET /api/auth/me/detalle
func (h *AuthHandler) MeDetalle(c *fiber.Ctx) error {
	out, err := h.uc.MeDetalle(GetCuentaID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ForgotPassword genera y envía el enlace de recuperación. La respuesta es
// genérica siempre: no revela si el usuario existe.
// POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ForgotPassword(c.Context(), in.Usuario); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Si el usuario existe, se envió un enlace de recuperación"})
}

// ResetPassword canjea el token de recuperación por una contraseña nueva.
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ResetPassword(in.Token, in.NuevaContrasena); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Contraseña actualizada"})
}
