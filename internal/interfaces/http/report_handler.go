package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/application/report"
)

// ReportHandler reportes descargables (solo administrador).
type ReportHandler struct {
	csvUC *report.CSVUseCase
	pdfUC *report.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(csvUC *report.CSVUseCase, pdfUC *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{csvUC: csvUC, pdfUC: pdfUC}
}

// UsuariosCSV descarga el padrón de usuarios en CSV.
// GET /api/reportes/usuarios.csv
func (h *ReportHandler) UsuariosCSV(c *fiber.Ctx) error {
	data, err := h.csvUC.ReporteUsuarios()
	if err != nil {
		return responderError(c, err)
	}
	nombre := fmt.Sprintf("usuarios_%s.csv", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(data)
}

// EstadoCuentaPDF descarga el estado de cuenta del alquiler activo de un eólico.
// GET /api/reportes/eolicos/:id/estado-cuenta.pdf
func (h *ReportHandler) EstadoCuentaPDF(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	data, err := h.pdfUC.EstadoCuenta(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="estado_cuenta_%d.pdf"`, id))
	return c.Send(data)
}
