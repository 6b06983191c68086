package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records stock sold to a customer. CostRateSnapshot freezes the cost
// rate in effect at sale time so later rate changes never rewrite historical
// profit.
type Sale struct {
	SaleID           int64           `json:"id"`
	Date             time.Time       `json:"date"`
	CustomerID       int64           `json:"customer"`
	CustomerName     string          `json:"customerName"`
	Kg               decimal.Decimal `json:"kg"`
	SaleRatePerKg    decimal.Decimal `json:"saleRatePerKg"`
	CostRateSnapshot decimal.Decimal `json:"costRateSnapshot"`
	AmountReceived   decimal.Decimal `json:"amountReceived"`
	Note             string          `json:"note"`
	Timestamps
}

// TotalAmount is kg × sale rate, rounded to the stored precision.
func (s Sale) TotalAmount() decimal.Decimal {
	return round3(s.Kg.Mul(s.SaleRatePerKg))
}

// BorrowAmount is the unpaid portion of the sale. Overpayment is allowed and
// yields a negative borrow, i.e. a credit held by the customer.
func (s Sale) BorrowAmount() decimal.Decimal {
	return s.TotalAmount().Sub(s.AmountReceived)
}

// Profit is kg × (sale rate − cost rate snapshot), rounded to the stored
// precision.
func (s Sale) Profit() decimal.Decimal {
	return round3(s.Kg.Mul(s.SaleRatePerKg.Sub(s.CostRateSnapshot)))
}
