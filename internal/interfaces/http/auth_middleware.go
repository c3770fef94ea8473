package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/pkg/jwt"
)

// Locals keys para CuentaID y Rol en Fiber.
const (
	LocalCuentaID = "cuenta_id"
	LocalRol      = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y extrae CuentaID y Rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		cuentaID, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalCuentaID, cuentaID)
		c.Locals(LocalRol, strings.ToLower(rol))
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol de la sesión no es el requerido.
// Se encadena después de AuthMiddleware.
func RequireRole(rol string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRol(c) != rol {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere rol " + rol})
		}
		return c.Next()
	}
}

// GetCuentaID devuelve el CuentaID del contexto (después del middleware de auth).
func GetCuentaID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalCuentaID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetRol devuelve el Rol del contexto (después del middleware de auth).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
