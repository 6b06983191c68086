package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a customer payment.
type CreatePaymentRequest struct {
	Date     string          `json:"date" binding:"required"`
	Customer int64           `json:"customer" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Method   string          `json:"method" binding:"omitempty,oneof=cash bank other"`
	Note     string          `json:"note"`
}

// UpdatePaymentRequest defines the data allowed for updating a payment.
// Auto-allocated payments cannot be updated.
type UpdatePaymentRequest struct {
	Date     *string          `json:"date"`
	Customer *int64           `json:"customer"`
	Amount   *decimal.Decimal `json:"amount"`
	Method   *string          `json:"method" binding:"omitempty,oneof=cash bank other"`
	Note     *string          `json:"note"`
}

// PaymentResponse defines the data returned for a customer payment.
type PaymentResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	Customer      int64           `json:"customer"`
	CustomerName  string          `json:"customer_name"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Note          string          `json:"note"`
	AutoAllocated bool            `json:"auto_allocated"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AllocatePaymentResponse returns the allocated payment together with the
// sales its amount was spread across.
type AllocatePaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Sales   []SaleResponse  `json:"sales"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.PaymentID,
		Date:          fmtDate(p.Date),
		Customer:      p.CustomerID,
		CustomerName:  p.CustomerName,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Note:          p.Note,
		AutoAllocated: p.AutoAllocated,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to response DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
