package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conceptos de un plan de cuotas. Por cada par (alquiler, concepto) puede
// existir a lo sumo un plan generado.
const (
	ConceptoTarifa      = "tarifa"
	ConceptoInstalacion = "instalacion"
	ConceptoDeposito    = "deposito"
	ConceptoOperativo   = "operativo"
	ConceptoOtro        = "otro"
)

// Periodicidades de vencimiento entre cuotas consecutivas.
const (
	PeriodicidadMensual = "mensual"
	PeriodicidadSemanal = "semanal"
	PeriodicidadDiaria  = "diaria"
)

// ConceptoValido verifica que el concepto pertenezca al catálogo.
func ConceptoValido(c string) bool {
	switch c {
	case ConceptoTarifa, ConceptoInstalacion, ConceptoDeposito, ConceptoOperativo, ConceptoOtro:
		return true
	}
	return false
}

// PeriodicidadValida verifica que la periodicidad pertenezca al catálogo.
func PeriodicidadValida(p string) bool {
	switch p {
	case PeriodicidadMensual, PeriodicidadSemanal, PeriodicidadDiaria:
		return true
	}
	return false
}

// Cuota es una obligación de pago programada dentro del plan de un alquiler.
// Máquina de estados: pendiente → pagada (terminal, sin reversa).
type Cuota struct {
	ID               int64
	AlquilerID       int64
	Concepto         string
	Numero           int // secuencia 1..n dentro del plan
	Descripcion      string
	FechaVencimiento time.Time
	Monto            decimal.Decimal
	Pagada           bool
	FechaPago        *time.Time
	MetodoPago       *string
	Observaciones    *string
}

// Vencida indica si la cuota está impaga y con fecha de vencimiento pasada.
func (c *Cuota) Vencida(ahora time.Time) bool {
	return !c.Pagada && c.FechaVencimiento.Before(ahora)
}

// CuotaVencida es la vista que consume el recordatorio nocturno: la cuota
// impaga junto con el destinatario del aviso.
type CuotaVencida struct {
	Cuota
	EolicoCodigo   string
	Email          string
	NombreCompleto string
}
