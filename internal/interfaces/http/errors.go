package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/domain"
)

// responderError traduce los errores de dominio a códigos de estado HTTP.
// Todo lo que no sea un sentinel conocido es un 500 genérico: el detalle
// queda en el log del servidor, no en la respuesta.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrCredenciales):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "CREDENTIALS", Message: "usuario o contraseña incorrectos"})
	case errors.Is(err, domain.ErrCuentaBloqueada):
		return c.Status(fiber.StatusLocked).JSON(dto.ErrorResponse{Code: "ACCOUNT_LOCKED", Message: "cuenta bloqueada temporalmente; intenta más tarde"})
	case errors.Is(err, domain.ErrTokenReset):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "RESET_TOKEN", Message: "token de recuperación inválido o expirado"})
	case errors.Is(err, domain.ErrSinUsuarioAsignado):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_USER_ASSIGNED", Message: "el eólico no tiene usuario asignado"})
	case errors.Is(err, domain.ErrSinAlquilerActivo):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_RENTAL", Message: "el eólico no tiene alquiler activo"})
	case errors.Is(err, domain.ErrPlanExistente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PLAN_EXISTS", Message: "ya existe un plan de cuotas para ese concepto"})
	case errors.Is(err, domain.ErrMontoRequerido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "AMOUNT_REQUIRED", Message: "totalAmount es requerido para este concepto"})
	case errors.Is(err, domain.ErrCuotaPagada):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ALREADY_PAID", Message: "cuota no encontrada o ya pagada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
