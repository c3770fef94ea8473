// Package mail implementa el envío de correos transaccionales vía SMTP:
// el enlace de recuperación de contraseña y los recordatorios de cuotas
// vencidas.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/pkg/config"
)

// SMTPMailer envía correo plano a través de un servidor SMTP.
type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// EnviarResetPassword envía el enlace de recuperación de contraseña.
func (s *SMTPMailer) EnviarResetPassword(_ context.Context, destinatario, usuario, resetURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", destinatario)
	m.SetHeader("Subject", "Recuperación de contraseña")

	body := fmt.Sprintf(
		"Hola %s,\n\nRecibimos una solicitud para restablecer tu contraseña."+
			"\n\nIngresa al siguiente enlace para elegir una nueva (vence en 15 minutos):\n\n%s"+
			"\n\nSi no solicitaste este cambio, ignora este correo.",
		usuario, resetURL)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo de reset: %w", err)
	}
	return nil
}

// EnviarRecordatorioCuota avisa al titular que tiene una cuota vencida impaga.
func (s *SMTPMailer) EnviarRecordatorioCuota(_ context.Context, v *entity.CuotaVencida) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", v.Email)
	m.SetHeader("Subject", fmt.Sprintf("Cuota vencida - Eólico %s", v.EolicoCodigo))

	body := fmt.Sprintf(
		"Hola %s,\n\nLa cuota %q del eólico %s venció el %s y sigue pendiente de pago."+
			"\n\nMonto: $%s\n\nPor favor regulariza el pago a la brevedad.",
		v.NombreCompleto, v.Descripcion, v.EolicoCodigo,
		v.FechaVencimiento.Format("02/01/2006"), v.Monto.StringFixed(2))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar recordatorio de cuota: %w", err)
	}
	return nil
}
