package repositories

import (
	"context"
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// PaymentReader defines read operations for customer payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its identifier.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// ListPayments retrieves a filtered, paginated list of payments plus the
	// total row count before paging.
	ListPayments(ctx context.Context, filter ListFilter) ([]domain.Payment, int64, error)

	// ListPaymentsByCustomer retrieves all of a customer's payments within the
	// optional date bounds, ordered by date then creation time.
	ListPaymentsByCustomer(ctx context.Context, customerID int64, from, to *time.Time) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for customer payment data. Each
// write runs in a transaction that also adjusts the customer's running
// balance. Auto-allocated payments are frozen: updating or deleting one
// returns a conflict because its amount already lives inside sales.
type PaymentWriter interface {
	// SavePayment persists a new payment and subtracts its amount from the
	// customer's running balance.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)

	// UpdatePayment updates an existing unallocated payment and applies the
	// amount difference to the affected customer balances.
	UpdatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)

	// DeletePayment removes an unallocated payment and adds its amount back to
	// the customer's running balance.
	DeletePayment(ctx context.Context, paymentID int64) error

	// AllocatePayment spreads a payment across the customer's sales: same-date
	// sales first in creation order, then oldest outstanding first, with any
	// remainder credited to the most recent sale. Returns the updated payment
	// and the sales it touched. The customer's running balance is unchanged.
	AllocatePayment(ctx context.Context, paymentID int64) (*domain.Payment, []domain.Sale, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
