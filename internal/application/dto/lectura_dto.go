package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LecturaResponse una lectura de sensores para dashboards y alertas.
type LecturaResponse struct {
	ID           int64           `json:"id,omitempty"`
	UsuarioID    int64           `json:"usuario_id,omitempty"`
	Voltaje      decimal.Decimal `json:"voltaje"`
	Bateria      decimal.Decimal `json:"bateria"`
	Consumo      decimal.Decimal `json:"consumo"`
	FechaLectura time.Time       `json:"fecha_lectura"`
}
