package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRate stores the default cost and sale rates for one calendar day.
// Forms are pre-filled from the rate of the requested date, falling back to
// the most recent earlier date when no exact match exists.
type DailyRate struct {
	RateID          int64           `json:"id"`
	Date            time.Time       `json:"date"`
	DefaultCostRate decimal.Decimal `json:"defaultCostRate"`
	DefaultSaleRate decimal.Decimal `json:"defaultSaleRate"`
	Timestamps
}
