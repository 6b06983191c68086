package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CreateSaleRequest defines the data needed to record a sale. When the rates
// are omitted they default from the daily rate of the sale date.
type CreateSaleRequest struct {
	Date             string          `json:"date" binding:"required"`
	Customer         int64           `json:"customer" binding:"required"`
	Kg               decimal.Decimal `json:"kg" binding:"required"`
	SaleRatePerKg    decimal.Decimal `json:"sale_rate_per_kg"`
	CostRateSnapshot decimal.Decimal `json:"cost_rate_snapshot"`
	AmountReceived   decimal.Decimal `json:"amount_received"`
	Note             string          `json:"note"`
}

// UpdateSaleRequest defines the data allowed for updating a sale.
type UpdateSaleRequest struct {
	Date             *string          `json:"date"`
	Customer         *int64           `json:"customer"`
	Kg               *decimal.Decimal `json:"kg"`
	SaleRatePerKg    *decimal.Decimal `json:"sale_rate_per_kg"`
	CostRateSnapshot *decimal.Decimal `json:"cost_rate_snapshot"`
	AmountReceived   *decimal.Decimal `json:"amount_received"`
	Note             *string          `json:"note"`
}

// SaleResponse defines the data returned for a sale. TotalAmount,
// BorrowAmount and Profit are derived, never stored.
type SaleResponse struct {
	ID               int64           `json:"id"`
	Date             string          `json:"date"`
	Customer         int64           `json:"customer"`
	CustomerName     string          `json:"customer_name"`
	Kg               decimal.Decimal `json:"kg"`
	SaleRatePerKg    decimal.Decimal `json:"sale_rate_per_kg"`
	CostRateSnapshot decimal.Decimal `json:"cost_rate_snapshot"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AmountReceived   decimal.Decimal `json:"amount_received"`
	BorrowAmount     decimal.Decimal `json:"borrow_amount"`
	Profit           decimal.Decimal `json:"profit"`
	Note             string          `json:"note"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		ID:               s.SaleID,
		Date:             fmtDate(s.Date),
		Customer:         s.CustomerID,
		CustomerName:     s.CustomerName,
		Kg:               s.Kg,
		SaleRatePerKg:    s.SaleRatePerKg,
		CostRateSnapshot: s.CostRateSnapshot,
		TotalAmount:      s.TotalAmount(),
		AmountReceived:   s.AmountReceived,
		BorrowAmount:     s.BorrowAmount(),
		Profit:           s.Profit(),
		Note:             s.Note,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToListSaleResponse converts a slice of domain.Sale to response DTOs
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return res
}
