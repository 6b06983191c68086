package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	// FindSupplierByID retrieves a specific supplier by its identifier.
	FindSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error)

	// ListSuppliers retrieves a filtered, paginated list of suppliers plus the
	// total row count before paging.
	ListSuppliers(ctx context.Context, filter ListFilter) ([]domain.Supplier, int64, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	// SaveSupplier persists a new supplier and returns it with generated fields.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error)

	// UpdateSupplier updates an existing supplier. A change to the opening
	// balance shifts the closing balance by the same difference.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier that has no ledger entries.
	DeleteSupplier(ctx context.Context, supplierID int64) error
}

// SupplierTransactionSupport defines operations used by ledger entry
// repositories inside their transactions.
type SupplierTransactionSupport interface {
	// FindSupplierForUpdate selects a supplier and locks its row for update.
	FindSupplierForUpdate(ctx context.Context, tx pgx.Tx, supplierID int64) (*domain.Supplier, error)

	// AdjustSupplierBalanceInTx shifts a supplier's closing balance by delta
	// within the given transaction.
	AdjustSupplierBalanceInTx(ctx context.Context, tx pgx.Tx, supplierID int64, delta decimal.Decimal, now time.Time) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
	SupplierTransactionSupport
}

// SupplierRepositoryWithTx extends SupplierRepositoryFacade with transaction capabilities
type SupplierRepositoryWithTx interface {
	SupplierRepositoryFacade
	TransactionManager
}
