package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vientosur/eolico-api/internal/application/assignment"
	"github.com/vientosur/eolico-api/internal/application/auth"
	"github.com/vientosur/eolico-api/internal/application/installments"
	"github.com/vientosur/eolico-api/internal/application/report"
	"github.com/vientosur/eolico-api/internal/application/usecase"
	"github.com/vientosur/eolico-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	UsuarioUC    *usecase.UsuarioUseCase
	EolicoUC     *usecase.EolicoUseCase
	AsignacionUC *assignment.UseCase
	CuotaUC      *installments.UseCase
	LecturaUC    *usecase.LecturaUseCase
	CSVReportUC  *report.CSVUseCase
	PDFReportUC  *report.PDFUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión
	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/auth/me/detalle", authHandler.MeDetalle)

	// Lecturas de sensores (alcance por rol dentro del caso de uso)
	lecturas := protected.Group("/lecturas")
	lecturaHandler := NewLecturaHandler(deps.LecturaUC)
	lecturas.Get("/resumen", lecturaHandler.Resumen)
	lecturas.Get("/alertas", lecturaHandler.Alertas)

	// Rutas de administración
	admin := protected.Group("/", RequireRole(entity.RolAdministrador))

	// Usuarios
	usuarios := admin.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Eólicos: registro y ciclo de asignación
	equipment := admin.Group("/equipment")
	eolicoHandler := NewEolicoHandler(deps.EolicoUC, deps.AsignacionUC)
	equipment.Get("/", eolicoHandler.List)
	equipment.Post("/", eolicoHandler.Create)
	equipment.Post("/assign-by-code", eolicoHandler.AssignByCode)
	equipment.Put("/:id/assign", eolicoHandler.Assign)
	equipment.Put("/:id/unassign", eolicoHandler.Unassign)
	equipment.Put("/:id/toggle", eolicoHandler.Toggle)
	equipment.Put("/:id/costs", eolicoHandler.UpdateCosts)

	// Planes de cuotas
	cuotaHandler := NewCuotaHandler(deps.CuotaUC)
	equipment.Post("/:id/installments/generate", cuotaHandler.Generate)
	equipment.Get("/:id/installments", cuotaHandler.List)
	admin.Put("/installments/:id/pay", cuotaHandler.Pay)

	// Reportes
	reportes := admin.Group("/reportes")
	reportHandler := NewReportHandler(deps.CSVReportUC, deps.PDFReportUC)
	reportes.Get("/usuarios.csv", reportHandler.UsuariosCSV)
	reportes.Get("/eolicos/:id/estado-cuenta.pdf", reportHandler.EstadoCuentaPDF)
}
