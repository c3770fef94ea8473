package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado; los repositorios los producen a partir de
// errores del storage (p.ej. 23505 → ErrDuplicate).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Autenticación
	ErrCredenciales    = errors.New("usuario o contraseña incorrectos")
	ErrCuentaBloqueada = errors.New("cuenta bloqueada temporalmente")
	ErrTokenReset      = errors.New("token de recuperación inválido o expirado")

	// Asignación de eólicos
	ErrSinUsuarioAsignado = errors.New("el eólico no tiene usuario asignado")

	// Planes de cuotas
	ErrSinAlquilerActivo = errors.New("el eólico no tiene alquiler activo")
	ErrPlanExistente     = errors.New("ya existe un plan de cuotas para ese concepto")
	ErrMontoRequerido    = errors.New("monto_total es requerido para este concepto")
	ErrCuotaPagada       = errors.New("cuota no encontrada o ya pagada")
)
