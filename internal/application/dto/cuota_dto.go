package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerarPlanRequest cuerpo de POST /equipment/{id}/installments/generate.
type GenerarPlanRequest struct {
	Concept              string           `json:"concept"`
	NumberOfInstallments int              `json:"numberOfInstallments"`
	Periodicity          string           `json:"periodicity"`
	FirstDueDate         string           `json:"firstDueDate"` // YYYY-MM-DD, opcional
	TotalAmount          *decimal.Decimal `json:"totalAmount"`
	Description          string           `json:"description"`
}

// GenerarPlanResponse confirmación: cuántas cuotas se crearon y por qué total.
type GenerarPlanResponse struct {
	CreatedCount int             `json:"createdCount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// PagarCuotaRequest cuerpo de PUT /installments/{id}/pay.
type PagarCuotaRequest struct {
	PaymentMethod *string `json:"paymentMethod"`
	Notes         *string `json:"notes"`
}

// AlquilerResponse vista del alquiler activo.
type AlquilerResponse struct {
	ID               int64           `json:"id"`
	EquipmentID      int64           `json:"equipmentId"`
	UserID           int64           `json:"userId"`
	Status           string          `json:"status"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          *time.Time      `json:"endDate"`
	Tariff           decimal.Decimal `json:"tariff"`
	InstallCost      decimal.Decimal `json:"installCost"`
	Deposit          decimal.Decimal `json:"deposit"`
}

// CuotaResponse una cuota del plan.
type CuotaResponse struct {
	ID            int64           `json:"id"`
	Concept       string          `json:"concept"`
	Number        int             `json:"number"`
	Description   string          `json:"description"`
	DueDate       time.Time       `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          bool            `json:"paid"`
	PaidAt        *time.Time      `json:"paidAt"`
	PaymentMethod *string         `json:"paymentMethod"`
	Notes         *string         `json:"notes"`
}

// ListaCuotasResponse respuesta de GET /equipment/{id}/installments.
type ListaCuotasResponse struct {
	Rental       AlquilerResponse `json:"rental"`
	Installments []CuotaResponse  `json:"installments"`
}
