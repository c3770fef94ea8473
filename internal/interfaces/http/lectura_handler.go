package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vientosur/eolico-api/internal/application/usecase"
)

// LecturaHandler dashboards de sensores: resumen y alertas.
type LecturaHandler struct {
	uc *usecase.LecturaUseCase
}

// NewLecturaHandler construye el handler.
func NewLecturaHandler(uc *usecase.LecturaUseCase) *LecturaHandler {
	return &LecturaHandler{uc: uc}
}

// Resumen devuelve las últimas lecturas según el rol de la sesión. Un
// administrador puede filtrar por usuario con ?usuario_id=.
// GET /api/lecturas/resumen
func (h *LecturaHandler) Resumen(c *fiber.Ctx) error {
	filtro, _ := strconv.ParseInt(c.Query("usuario_id"), 10, 64)
	out, err := h.uc.Resumen(GetCuentaID(c), GetRol(c), filtro)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Alertas devuelve las lecturas fuera de umbral según el rol de la sesión.
// GET /api/lecturas/alertas
func (h *LecturaHandler) Alertas(c *fiber.Ctx) error {
	out, err := h.uc.Alertas(GetCuentaID(c), GetRol(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
