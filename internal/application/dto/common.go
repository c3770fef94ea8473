package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensajeResponse respuesta de confirmación simple.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
	// Nota opcional de éxito parcial (p.ej. costos actualizados sin alquiler activo).
	Nota string `json:"nota,omitempty"`
}
