package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records stock bought from a supplier. SupplierID is nullable:
// older entries only carried a free-text supplier name that was never
// migrated to a party record.
type Purchase struct {
	PurchaseID    int64           `json:"id"`
	Date          time.Time       `json:"date"`
	SupplierID    *int64          `json:"supplier"`
	SupplierName  string          `json:"supplierName"`
	VehicleNumber string          `json:"vehicleNumber"`
	Kg            decimal.Decimal `json:"kg"`
	CostRatePerKg decimal.Decimal `json:"costRatePerKg"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Note          string          `json:"note"`
	Timestamps
}

// TotalCost is kg × cost rate, rounded to the stored precision.
func (p Purchase) TotalCost() decimal.Decimal {
	return round3(p.Kg.Mul(p.CostRatePerKg))
}

// BorrowAmount is the portion of the purchase not settled at purchase time.
// Negative means the supplier was overpaid (a credit held with the supplier).
func (p Purchase) BorrowAmount() decimal.Decimal {
	return p.TotalCost().Sub(p.AmountPaid)
}
