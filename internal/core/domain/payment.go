package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a settlement was received.
type PaymentMethod string

const (
	MethodCash  PaymentMethod = "cash"
	MethodBank  PaymentMethod = "bank"
	MethodOther PaymentMethod = "other"
)

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{MethodCash, MethodBank, MethodOther}

// Payment is money received from a customer outside of a sale. Once
// AutoAllocated is set the amount has been folded into sales' amountReceived
// and the payment no longer participates in the balance sum.
type Payment struct {
	PaymentID     int64           `json:"id"`
	Date          time.Time       `json:"date"`
	CustomerID    int64           `json:"customer"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	Note          string          `json:"note"`
	AutoAllocated bool            `json:"autoAllocated"`
	Timestamps
}
