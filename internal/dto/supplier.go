package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to create a new supplier.
type CreateSupplierRequest struct {
	Name           string          `json:"name" binding:"required"`
	Phone          string          `json:"phone"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	IsActive       *bool           `json:"is_active"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name           *string          `json:"name"`
	Phone          *string          `json:"phone"`
	OpeningBalance *decimal.Decimal `json:"opening_balance"`
	IsActive       *bool            `json:"is_active"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:             s.SupplierID,
		Name:           s.Name,
		Phone:          s.Phone,
		OpeningBalance: s.OpeningBalance,
		ClosingBalance: s.ClosingBalance,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ToListSupplierResponse converts a slice of domain.Supplier to response DTOs
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return res
}
