package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierPayment is money paid out to a supplier against the business's
// closing balance with that supplier.
type SupplierPayment struct {
	PaymentID    int64           `json:"id"`
	Date         time.Time       `json:"date"`
	SupplierID   int64           `json:"supplier"`
	SupplierName string          `json:"supplierName"`
	Amount       decimal.Decimal `json:"amount"`
	Method       PaymentMethod   `json:"method"`
	Note         string          `json:"note"`
	Timestamps
}
