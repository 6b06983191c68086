package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementEntryKind tags a statement line with the ledger entry it came from.
type StatementEntryKind string

const (
	StatementSale      StatementEntryKind = "sale"
	StatementPayment   StatementEntryKind = "payment"
	StatementDeduction StatementEntryKind = "deduction"
)

// StatementLine is one ledger entry in a customer statement. Debit increases
// what the customer owes, credit decreases it, and Balance is the running
// balance after this line.
type StatementLine struct {
	Date        time.Time
	Kind        StatementEntryKind
	RefID       int64
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
	CreatedAt   time.Time
}

// CustomerStatement is a customer's chronological ledger over an optional
// range. StartingBalance folds the opening balance with every entry before
// the range, so the last line's Balance equals the running balance as of the
// range end.
type CustomerStatement struct {
	Customer        Customer
	From            *time.Time
	To              *time.Time
	StartingBalance decimal.Decimal
	Lines           []StatementLine
	ClosingBalance  decimal.Decimal
}
