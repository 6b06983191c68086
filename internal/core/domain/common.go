package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timestamps holds the standard creation/update audit times carried by every
// entity.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// round3 truncates derived products to the stored precision of amounts.
// All monetary columns are NUMERIC(..,3).
func round3(d decimal.Decimal) decimal.Decimal {
	return d.Round(3)
}
