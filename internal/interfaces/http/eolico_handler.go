package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vientosur/eolico-api/internal/application/assignment"
	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/application/usecase"
	"github.com/vientosur/eolico-api/internal/domain/entity"
)

// EolicoHandler registro y ciclo de asignación de eólicos (solo administrador).
type EolicoHandler struct {
	registroUC   *usecase.EolicoUseCase
	asignacionUC *assignment.UseCase
}

// NewEolicoHandler construye el handler.
func NewEolicoHandler(registroUC *usecase.EolicoUseCase, asignacionUC *assignment.UseCase) *EolicoHandler {
	return &EolicoHandler{registroUC: registroUC, asignacionUC: asignacionUC}
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// List lista todos los eólicos con su usuario asignado.
// GET /api/equipment
func (h *EolicoHandler) List(c *fiber.Ctx) error {
	out, err := h.registroUC.Listar()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create da de alta un eólico por código.
// POST /api/equipment
func (h *EolicoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearEolicoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registroUC.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Assign asigna el eólico a un usuario (cierra alquileres previos y abre uno nuevo).
// PUT /api/equipment/:id/assign
func (h *EolicoHandler) Assign(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.AssignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.asignacionUC.AssignByEquipment(c.Context(), id, in.UserID); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Eólico asignado"})
}

// AssignByCode asigna por código de eólico en lugar de ID.
// POST /api/equipment/assign-by-code
func (h *EolicoHandler) AssignByCode(c *fiber.Ctx) error {
	var in dto.AssignByCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.asignacionUC.AssignByCode(c.Context(), in.Code, in.UserID); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Eólico asignado"})
}

// Unassign quita el usuario y cierra el alquiler activo.
// PUT /api/equipment/:id/unassign
func (h *EolicoHandler) Unassign(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.asignacionUC.Unassign(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Eólico desasignado"})
}

// Toggle enciende o apaga un eólico asignado.
// PUT /api/equipment/:id/toggle
func (h *EolicoHandler) Toggle(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.ToggleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "active es requerido"})
	}
	if err := h.asignacionUC.ToggleActive(c.Context(), id, *in.Active); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Estado actualizado"})
}

// UpdateCosts actualiza los costos del eólico y, opcionalmente, el snapshot
// del alquiler activo.
// PUT /api/equipment/:id/costs
func (h *EolicoHandler) UpdateCosts(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateCostsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	nota, err := h.asignacionUC.UpdateCosts(c.Context(), id, entity.CostosEolico{
		TarifaMensual:        in.Tariff,
		CostoInstalacion:     in.InstallCost,
		Deposito:             in.Deposit,
		CostoOperativoDiario: in.DailyOpCost,
	}, in.ApplyToActiveRental)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Costos actualizados", Nota: nota})
}
