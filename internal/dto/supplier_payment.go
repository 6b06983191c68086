package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CreateSupplierPaymentRequest defines the data needed to record a payment
// out to a supplier.
type CreateSupplierPaymentRequest struct {
	Date     string          `json:"date" binding:"required"`
	Supplier int64           `json:"supplier" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Method   string          `json:"method" binding:"omitempty,oneof=cash bank other"`
	Note     string          `json:"note"`
}

// UpdateSupplierPaymentRequest defines the data allowed for updating a
// supplier payment.
type UpdateSupplierPaymentRequest struct {
	Date     *string          `json:"date"`
	Supplier *int64           `json:"supplier"`
	Amount   *decimal.Decimal `json:"amount"`
	Method   *string          `json:"method" binding:"omitempty,oneof=cash bank other"`
	Note     *string          `json:"note"`
}

// SupplierPaymentResponse defines the data returned for a supplier payment.
type SupplierPaymentResponse struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"`
	Supplier     int64           `json:"supplier"`
	SupplierName string          `json:"supplier_name"`
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	Note         string          `json:"note"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToSupplierPaymentResponse converts a domain.SupplierPayment to its DTO
func ToSupplierPaymentResponse(p *domain.SupplierPayment) SupplierPaymentResponse {
	return SupplierPaymentResponse{
		ID:           p.PaymentID,
		Date:         fmtDate(p.Date),
		Supplier:     p.SupplierID,
		SupplierName: p.SupplierName,
		Amount:       p.Amount,
		Method:       string(p.Method),
		Note:         p.Note,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToListSupplierPaymentResponse converts a slice of domain.SupplierPayment to response DTOs
func ToListSupplierPaymentResponse(payments []domain.SupplierPayment) []SupplierPaymentResponse {
	res := make([]SupplierPaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToSupplierPaymentResponse(&payments[i])
	}
	return res
}
