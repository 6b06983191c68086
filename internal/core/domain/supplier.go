package domain

import (
	"github.com/shopspring/decimal"
)

// Supplier is a poultry farm the business buys from. ClosingBalance is the
// amount the business still owes the supplier, derived from the opening
// balance plus purchase borrows minus supplier payments.
type Supplier struct {
	SupplierID     int64           `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	IsActive       bool            `json:"isActive"`
	Timestamps
}
