package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its identifier.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers retrieves a filtered, paginated list of customers plus the
	// total row count before paging.
	ListCustomers(ctx context.Context, filter ListFilter) ([]domain.Customer, int64, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer and returns it with generated fields.
	SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// UpdateCustomer updates an existing customer. A change to the opening
	// balance shifts the running balance by the same difference.
	UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// DeleteCustomer removes a customer that has no ledger entries.
	DeleteCustomer(ctx context.Context, customerID int64) error
}

// CustomerTransactionSupport defines operations used by ledger entry
// repositories inside their transactions.
type CustomerTransactionSupport interface {
	// FindCustomerForUpdate selects a customer and locks its row for update.
	FindCustomerForUpdate(ctx context.Context, tx pgx.Tx, customerID int64) (*domain.Customer, error)

	// AdjustCustomerBalanceInTx shifts a customer's running balance by delta
	// within the given transaction.
	AdjustCustomerBalanceInTx(ctx context.Context, tx pgx.Tx, customerID int64, delta decimal.Decimal, now time.Time) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
	CustomerTransactionSupport
}

// CustomerRepositoryWithTx extends CustomerRepositoryFacade with transaction capabilities
type CustomerRepositoryWithTx interface {
	CustomerRepositoryFacade
	TransactionManager
}
