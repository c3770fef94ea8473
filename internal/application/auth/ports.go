package auth

import "context"

// Mailer envía el enlace de recuperación de contraseña. Cuando no hay SMTP
// configurado la implementación puede ser nil y el caso de uso imprime el
// enlace en el log, igual que hacía el sistema original.
type Mailer interface {
	EnviarResetPassword(ctx context.Context, destinatario, usuario, resetURL string) error
}
