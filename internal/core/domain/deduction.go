package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionType classifies why a customer's balance was reduced.
type DeductionType string

const (
	DeductionReturn   DeductionType = "return"
	DeductionDiscount DeductionType = "discount"
	DeductionDamage   DeductionType = "damage"
	DeductionOther    DeductionType = "other"
)

// DeductionTypes lists the accepted deduction types.
var DeductionTypes = []DeductionType{DeductionReturn, DeductionDiscount, DeductionDamage, DeductionOther}

// CustomerDeduction reduces a customer's balance without cash changing hands
// (returns, discounts, damaged goods). Treated like a payment in the ledger.
type CustomerDeduction struct {
	DeductionID   int64           `json:"id"`
	Date          time.Time       `json:"date"`
	CustomerID    int64           `json:"customer"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	DeductionType DeductionType   `json:"deductionType"`
	Note          string          `json:"note"`
	Timestamps
}
