package repositories

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// SupplierPaymentReader defines read operations for supplier payment data
type SupplierPaymentReader interface {
	// FindSupplierPaymentByID retrieves a specific supplier payment.
	FindSupplierPaymentByID(ctx context.Context, paymentID int64) (*domain.SupplierPayment, error)

	// ListSupplierPayments retrieves a filtered, paginated list of supplier
	// payments plus the total row count before paging.
	ListSupplierPayments(ctx context.Context, filter ListFilter) ([]domain.SupplierPayment, int64, error)
}

// SupplierPaymentWriter defines write operations for supplier payment data.
// Each write runs in a transaction that also adjusts the supplier's closing
// balance.
type SupplierPaymentWriter interface {
	// SaveSupplierPayment persists a new supplier payment and subtracts its
	// amount from the supplier's closing balance.
	SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) (*domain.SupplierPayment, error)

	// UpdateSupplierPayment updates an existing supplier payment and applies
	// the amount difference to the affected supplier balances.
	UpdateSupplierPayment(ctx context.Context, payment domain.SupplierPayment) (*domain.SupplierPayment, error)

	// DeleteSupplierPayment removes a supplier payment and adds its amount
	// back to the supplier's closing balance.
	DeleteSupplierPayment(ctx context.Context, paymentID int64) error
}

// SupplierPaymentRepositoryFacade combines all supplier payment repository interfaces
type SupplierPaymentRepositoryFacade interface {
	SupplierPaymentReader
	SupplierPaymentWriter
}
