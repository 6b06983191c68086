package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CreateDeductionRequest defines the data needed to record a customer
// deduction (return, discount or damage credit).
type CreateDeductionRequest struct {
	Date          string          `json:"date" binding:"required"`
	Customer      int64           `json:"customer" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	DeductionType string          `json:"deduction_type" binding:"omitempty,oneof=return discount damage other"`
	Note          string          `json:"note"`
}

// UpdateDeductionRequest defines the data allowed for updating a deduction.
type UpdateDeductionRequest struct {
	Date          *string          `json:"date"`
	Customer      *int64           `json:"customer"`
	Amount        *decimal.Decimal `json:"amount"`
	DeductionType *string          `json:"deduction_type" binding:"omitempty,oneof=return discount damage other"`
	Note          *string          `json:"note"`
}

// DeductionResponse defines the data returned for a customer deduction.
type DeductionResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	Customer      int64           `json:"customer"`
	CustomerName  string          `json:"customer_name"`
	Amount        decimal.Decimal `json:"amount"`
	DeductionType string          `json:"deduction_type"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToDeductionResponse converts a domain.CustomerDeduction to its DTO
func ToDeductionResponse(d *domain.CustomerDeduction) DeductionResponse {
	return DeductionResponse{
		ID:            d.DeductionID,
		Date:          fmtDate(d.Date),
		Customer:      d.CustomerID,
		CustomerName:  d.CustomerName,
		Amount:        d.Amount,
		DeductionType: string(d.DeductionType),
		Note:          d.Note,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToListDeductionResponse converts a slice of domain.CustomerDeduction to response DTOs
func ToListDeductionResponse(deductions []domain.CustomerDeduction) []DeductionResponse {
	res := make([]DeductionResponse, len(deductions))
	for i := range deductions {
		res[i] = ToDeductionResponse(&deductions[i])
	}
	return res
}
