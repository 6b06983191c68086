// Package ledger holds the balance arithmetic shared by services, repositories
// and reports. Every mutation of a trade or settlement row maps to a signed
// delta against exactly one party balance; folding the deltas in any order
// yields the same balance because addition commutes.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// SaleDelta is the effect of a sale on its customer's running balance.
func SaleDelta(s domain.Sale) decimal.Decimal {
	return s.BorrowAmount()
}

// PaymentDelta is the effect of a payment on its customer's running balance.
// An auto-allocated payment has already been folded into sales, so it
// contributes nothing on its own.
func PaymentDelta(p domain.Payment) decimal.Decimal {
	if p.AutoAllocated {
		return decimal.Zero
	}
	return p.Amount.Neg()
}

// DeductionDelta is the effect of a deduction on its customer's running balance.
func DeductionDelta(d domain.CustomerDeduction) decimal.Decimal {
	return d.Amount.Neg()
}

// PurchaseDelta is the effect of a purchase on its supplier's closing balance.
func PurchaseDelta(p domain.Purchase) decimal.Decimal {
	return p.BorrowAmount()
}

// SupplierPaymentDelta is the effect of a supplier payment on the supplier's
// closing balance.
func SupplierPaymentDelta(p domain.SupplierPayment) decimal.Decimal {
	return p.Amount.Neg()
}

// CustomerBalance folds a customer's full history into a balance. The
// persisted running_balance column is maintained incrementally with the same
// deltas, so recomputing from scratch must always agree with it.
func CustomerBalance(opening decimal.Decimal, sales []domain.Sale, payments []domain.Payment, deductions []domain.CustomerDeduction) decimal.Decimal {
	balance := opening
	for _, s := range sales {
		balance = balance.Add(SaleDelta(s))
	}
	for _, p := range payments {
		balance = balance.Add(PaymentDelta(p))
	}
	for _, d := range deductions {
		balance = balance.Add(DeductionDelta(d))
	}
	return balance
}

// SupplierBalance folds a supplier's full history into a closing balance.
func SupplierBalance(opening decimal.Decimal, purchases []domain.Purchase, payments []domain.SupplierPayment) decimal.Decimal {
	balance := opening
	for _, p := range purchases {
		balance = balance.Add(PurchaseDelta(p))
	}
	for _, sp := range payments {
		balance = balance.Add(SupplierPaymentDelta(sp))
	}
	return balance
}
