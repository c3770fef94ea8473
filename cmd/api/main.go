package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vientosur/eolico-api/internal/application/assignment"
	"github.com/vientosur/eolico-api/internal/application/auth"
	"github.com/vientosur/eolico-api/internal/application/installments"
	"github.com/vientosur/eolico-api/internal/application/report"
	"github.com/vientosur/eolico-api/internal/application/usecase"
	"github.com/vientosur/eolico-api/internal/infrastructure/mail"
	infrapdf "github.com/vientosur/eolico-api/internal/infrastructure/pdf"
	"github.com/vientosur/eolico-api/internal/infrastructure/postgres"
	httpRouter "github.com/vientosur/eolico-api/internal/interfaces/http"
	"github.com/vientosur/eolico-api/internal/scheduler"
	"github.com/vientosur/eolico-api/pkg/config"
	"github.com/vientosur/eolico-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	eolicoRepo := postgres.NewEolicoRepository(pool)
	alquilerRepo := postgres.NewAlquilerRepository(pool)
	cuotaRepo := postgres.NewCuotaRepository(pool)
	cuentaRepo := postgres.NewCuentaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	bitacoraRepo := postgres.NewBitacoraRepository(pool)
	lecturaRepo := postgres.NewLecturaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Mailer: solo si hay SMTP configurado. Con nil, el enlace de reset se
	// imprime en el log y el recordatorio de cuotas no envía correo.
	var mailer *mail.SMTPMailer
	if cfg.SMTP.Habilitado() {
		mailer = mail.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP no configurado: los correos quedan deshabilitados")
	}

	var authMailer auth.Mailer
	if mailer != nil {
		authMailer = mailer
	}
	authUC := auth.NewUseCase(cuentaRepo, usuarioRepo, bitacoraRepo, authMailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.BaseURL, log)

	usuarioUC := usecase.NewUsuarioUseCase(txRunner, cuentaRepo, usuarioRepo)
	eolicoUC := usecase.NewEolicoUseCase(eolicoRepo)
	asignacionUC := assignment.NewUseCase(txRunner)
	cuotaUC := installments.NewUseCase(txRunner, alquilerRepo, cuotaRepo)
	lecturaUC := usecase.NewLecturaUseCase(lecturaRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	csvReportUC := report.NewCSVUseCase(usuarioRepo)
	pdfReportUC := report.NewPDFUseCase(eolicoRepo, alquilerRepo, cuotaRepo, usuarioRepo, pdfGenerator)

	// Recordatorio diario de cuotas vencidas
	if cfg.Scheduler.Enabled {
		var recordatorioMailer scheduler.RecordatorioMailer
		if mailer != nil {
			recordatorioMailer = mailer
		}
		sched, err := scheduler.New(cfg.Scheduler, cuotaRepo, recordatorioMailer, log.Componente("scheduler"))
		if err != nil {
			log.Fatal().Err(err).Msg("configurar scheduler")
		}
		sched.Start()
		defer sched.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sistema Eólico API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UsuarioUC:    usuarioUC,
		EolicoUC:     eolicoUC,
		AsignacionUC: asignacionUC,
		CuotaUC:      cuotaUC,
		LecturaUC:    lecturaUC,
		CSVReportUC:  csvReportUC,
		PDFReportUC:  pdfReportUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
