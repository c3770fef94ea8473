package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearEolicoRequest alta de un eólico por código.
type CrearEolicoRequest struct {
	Codigo string `json:"codigo"`
}

// CrearEolicoResponse confirmación del alta.
type CrearEolicoResponse struct {
	IDEolico int64  `json:"id_eolico"`
	Mensaje  string `json:"mensaje"`
}

// EolicoResponse fila del listado admin de eólicos.
type EolicoResponse struct {
	IDEolico             int64           `json:"id_eolico"`
	Codigo               string          `json:"codigo"`
	Activo               bool            `json:"activo"`
	Habilitado           bool            `json:"habilitado"`
	UsuarioID            *int64          `json:"usuario_id"`
	FechaCreacion        time.Time       `json:"fecha_creacion"`
	TarifaMensual        decimal.Decimal `json:"tarifa_mensual"`
	CostoInstalacion     decimal.Decimal `json:"costo_instalacion"`
	Deposito             decimal.Decimal `json:"deposito"`
	CostoOperativoDiario decimal.Decimal `json:"costo_operativo_diario"`
	Nombres              *string         `json:"nombres"`
	PrimerApellido       *string         `json:"primer_apellido"`
	SegundoApellido      *string         `json:"segundo_apellido"`
	Login                *string         `json:"login"`
}

// AssignRequest cuerpo de PUT /equipment/{id}/assign.
type AssignRequest struct {
	UserID int64 `json:"userId"`
}

// AssignByCodeRequest cuerpo de POST /equipment/assign-by-code.
type AssignByCodeRequest struct {
	Code   string `json:"code"`
	UserID int64  `json:"userId"`
}

// ToggleRequest cuerpo de PUT /equipment/{id}/toggle. Puntero para
// distinguir "ausente" de false.
type ToggleRequest struct {
	Active *bool `json:"active"`
}

// UpdateCostsRequest cuerpo de PUT /equipment/{id}/costs.
type UpdateCostsRequest struct {
	Tariff              decimal.Decimal `json:"tariff"`
	InstallCost         decimal.Decimal `json:"installCost"`
	Deposit             decimal.Decimal `json:"deposit"`
	DailyOpCost         decimal.Decimal `json:"dailyOpCost"`
	ApplyToActiveRental bool            `json:"applyToActiveRental"`
}
