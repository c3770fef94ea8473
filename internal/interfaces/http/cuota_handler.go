package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/application/installments"
)

// CuotaHandler generación, listado y pago de planes de cuotas (solo administrador).
type CuotaHandler struct {
	uc *installments.UseCase
}

// NewCuotaHandler construye el handler.
func NewCuotaHandler(uc *installments.UseCase) *CuotaHandler {
	return &CuotaHandler{uc: uc}
}

// Generate genera el plan de cuotas del alquiler activo del eólico.
// POST /api/equipment/:id/installments/generate
func (h *CuotaHandler) Generate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.GenerarPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.GeneratePlan(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve el alquiler activo del eólico y todas sus cuotas.
// GET /api/equipment/:id/installments
func (h *CuotaHandler) List(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.List(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Pay marca una cuota como pagada (transición terminal).
// PUT /api/installments/:id/pay
func (h *CuotaHandler) Pay(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.PagarCuotaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.MarkPaid(c.Context(), id, in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Cuota pagada"})
}
