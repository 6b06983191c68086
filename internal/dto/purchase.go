package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CreatePurchaseRequest defines the data needed to record a purchase.
// Supplier is optional: legacy entries only carry a free-text supplier name.
type CreatePurchaseRequest struct {
	Date          string          `json:"date" binding:"required"`
	Supplier      *int64          `json:"supplier"`
	SupplierName  string          `json:"supplier_name"`
	VehicleNumber string          `json:"vehicle_number"`
	Kg            decimal.Decimal `json:"kg" binding:"required"`
	CostRatePerKg decimal.Decimal `json:"cost_rate_per_kg"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Note          string          `json:"note"`
}

// UpdatePurchaseRequest defines the data allowed for updating a purchase.
type UpdatePurchaseRequest struct {
	Date          *string          `json:"date"`
	Supplier      *int64           `json:"supplier"`
	SupplierName  *string          `json:"supplier_name"`
	VehicleNumber *string          `json:"vehicle_number"`
	Kg            *decimal.Decimal `json:"kg"`
	CostRatePerKg *decimal.Decimal `json:"cost_rate_per_kg"`
	AmountPaid    *decimal.Decimal `json:"amount_paid"`
	Note          *string          `json:"note"`
}

// PurchaseResponse defines the data returned for a purchase. TotalCost and
// BorrowAmount are derived, never stored.
type PurchaseResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	Supplier      *int64          `json:"supplier"`
	SupplierName  string          `json:"supplier_name"`
	VehicleNumber string          `json:"vehicle_number"`
	Kg            decimal.Decimal `json:"kg"`
	CostRatePerKg decimal.Decimal `json:"cost_rate_per_kg"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	BorrowAmount  decimal.Decimal `json:"borrow_amount"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:            p.PurchaseID,
		Date:          fmtDate(p.Date),
		Supplier:      p.SupplierID,
		SupplierName:  p.SupplierName,
		VehicleNumber: p.VehicleNumber,
		Kg:            p.Kg,
		CostRatePerKg: p.CostRatePerKg,
		TotalCost:     p.TotalCost(),
		AmountPaid:    p.AmountPaid,
		BorrowAmount:  p.BorrowAmount(),
		Note:          p.Note,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToListPurchaseResponse converts a slice of domain.Purchase to response DTOs
func ToListPurchaseResponse(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		res[i] = ToPurchaseResponse(&purchases[i])
	}
	return res
}
