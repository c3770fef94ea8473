package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Umbrales de alerta sobre lecturas de sensores.
var (
	UmbralBateriaBaja = decimal.NewFromInt(20) // porcentaje
	UmbralVoltajeBajo = decimal.NewFromInt(10) // volts
)

// LecturaResumen es una lectura agregada de sensores de un eólico asignado,
// consumida por los dashboards y por el módulo de alertas.
type LecturaResumen struct {
	ID           int64
	UsuarioID    int64
	Voltaje      decimal.Decimal
	Bateria      decimal.Decimal
	Consumo      decimal.Decimal
	FechaLectura time.Time
}

// EnAlerta indica si la lectura cruza algún umbral (batería < 20% o voltaje < 10V).
func (l *LecturaResumen) EnAlerta() bool {
	return l.Bateria.LessThan(UmbralBateriaBaja) || l.Voltaje.LessThan(UmbralVoltajeBajo)
}
