package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CreateDailyRateRequest defines the data needed to record a day's rates.
type CreateDailyRateRequest struct {
	Date            string          `json:"date" binding:"required"`
	DefaultCostRate decimal.Decimal `json:"default_cost_rate"`
	DefaultSaleRate decimal.Decimal `json:"default_sale_rate"`
}

// UpdateDailyRateRequest defines the data allowed for updating a daily rate.
type UpdateDailyRateRequest struct {
	Date            *string          `json:"date"`
	DefaultCostRate *decimal.Decimal `json:"default_cost_rate"`
	DefaultSaleRate *decimal.Decimal `json:"default_sale_rate"`
}

// DailyRateResponse defines the data returned for a daily rate.
type DailyRateResponse struct {
	ID              int64           `json:"id"`
	Date            string          `json:"date"`
	DefaultCostRate decimal.Decimal `json:"default_cost_rate"`
	DefaultSaleRate decimal.Decimal `json:"default_sale_rate"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToDailyRateResponse converts a domain.DailyRate to DailyRateResponse DTO
func ToDailyRateResponse(r *domain.DailyRate) DailyRateResponse {
	return DailyRateResponse{
		ID:              r.RateID,
		Date:            fmtDate(r.Date),
		DefaultCostRate: r.DefaultCostRate,
		DefaultSaleRate: r.DefaultSaleRate,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToListDailyRateResponse converts a slice of domain.DailyRate to response DTOs
func ToListDailyRateResponse(rates []domain.DailyRate) []DailyRateResponse {
	res := make([]DailyRateResponse, len(rates))
	for i := range rates {
		res[i] = ToDailyRateResponse(&rates[i])
	}
	return res
}
