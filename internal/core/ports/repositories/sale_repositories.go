package repositories

import (
	"context"
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a specific sale by its identifier.
	FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)

	// ListSales retrieves a filtered, paginated list of sales plus the total
	// row count before paging.
	ListSales(ctx context.Context, filter ListFilter) ([]domain.Sale, int64, error)

	// ListSalesByCustomer retrieves all of a customer's sales within the
	// optional date bounds, ordered by date then creation time.
	ListSalesByCustomer(ctx context.Context, customerID int64, from, to *time.Time) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data. Each write runs in a
// transaction that also adjusts the customer's running balance.
type SaleWriter interface {
	// SaveSale persists a new sale and applies its borrow to the customer's
	// running balance.
	SaveSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)

	// UpdateSale updates an existing sale and applies the difference between
	// the new and old borrow to the affected customer balances.
	UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)

	// DeleteSale removes a sale and reverses its borrow from the customer's
	// running balance.
	DeleteSale(ctx context.Context, saleID int64) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
