// Package scheduler corre los trabajos programados de la aplicación. Por ahora
// hay uno solo: el recordatorio diario de cuotas vencidas.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
	"github.com/vientosur/eolico-api/pkg/config"
	"github.com/vientosur/eolico-api/pkg/logger"
)

// RecordatorioMailer envía el aviso de cuota vencida a su titular.
type RecordatorioMailer interface {
	EnviarRecordatorioCuota(ctx context.Context, v *entity.CuotaVencida) error
}

// Scheduler registra y corre los cron jobs.
type Scheduler struct {
	cron      *cron.Cron
	cuotaRepo repository.CuotaRepository
	mailer    RecordatorioMailer
	log       *logger.Logger
}

// New construye el scheduler y registra los jobs según la configuración.
// Con mailer nil el recordatorio solo loguea las cuotas vencidas.
func New(cfg config.SchedulerConfig, cuotaRepo repository.CuotaRepository, mailer RecordatorioMailer, log *logger.Logger) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.Local),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:      c,
		cuotaRepo: cuotaRepo,
		mailer:    mailer,
		log:       log,
	}

	if _, err := c.AddFunc(cfg.RecordatorioCuotas, s.recordarCuotasVencidas); err != nil {
		return nil, err
	}
	return s, nil
}

// recordarCuotasVencidas busca cuotas impagas vencidas y avisa a cada titular.
// Un fallo de envío no corta el lote: se loguea y se sigue con el resto.
func (s *Scheduler) recordarCuotasVencidas() {
	vencidas, err := s.cuotaRepo.ListarVencidas(time.Now())
	if err != nil {
		s.log.Error().Err(err).Msg("recordatorio de cuotas: error listando vencidas")
		return
	}
	if len(vencidas) == 0 {
		s.log.Debug().Msg("recordatorio de cuotas: sin cuotas vencidas")
		return
	}

	ctx := context.Background()
	enviados := 0
	for _, v := range vencidas {
		if v.Email == "" {
			s.log.Warn().Int64("cuota_id", v.ID).Msg("recordatorio de cuotas: titular sin email")
			continue
		}
		if s.mailer == nil {
			s.log.Info().
				Int64("cuota_id", v.ID).
				Str("eolico", v.EolicoCodigo).
				Str("email", v.Email).
				Msg("recordatorio de cuotas: SMTP deshabilitado, aviso omitido")
			continue
		}
		if err := s.mailer.EnviarRecordatorioCuota(ctx, v); err != nil {
			s.log.Error().Err(err).Int64("cuota_id", v.ID).Msg("recordatorio de cuotas: fallo el envio")
			continue
		}
		enviados++
	}
	s.log.Info().
		Int("vencidas", len(vencidas)).
		Int("enviados", enviados).
		Msg("recordatorio de cuotas completado")
}

// Start arranca el cron en background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler iniciado")
}

// Stop detiene el cron y espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}
