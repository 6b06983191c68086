package domain

import (
	"github.com/shopspring/decimal"
)

// Customer is a buyer of stock. RunningBalance is derived from the opening
// balance plus all subsequent ledger events and is persisted alongside the
// customer row; positive means the customer owes the business.
type Customer struct {
	CustomerID     int64           `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	IsActive       bool            `json:"isActive"`
	Timestamps
}
