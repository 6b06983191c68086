package repositories

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// PurchaseReader defines read operations for purchase data
type PurchaseReader interface {
	// FindPurchaseByID retrieves a specific purchase by its identifier.
	FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error)

	// ListPurchases retrieves a filtered, paginated list of purchases plus the
	// total row count before paging.
	ListPurchases(ctx context.Context, filter ListFilter) ([]domain.Purchase, int64, error)
}

// PurchaseWriter defines write operations for purchase data. Each write runs
// in a transaction that also adjusts the supplier's closing balance when the
// purchase names a supplier.
type PurchaseWriter interface {
	// SavePurchase persists a new purchase and applies its borrow to the
	// supplier's closing balance.
	SavePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)

	// UpdatePurchase updates an existing purchase and applies the difference
	// between the new and old borrow to the affected supplier balances.
	UpdatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)

	// DeletePurchase removes a purchase and reverses its borrow from the
	// supplier's closing balance.
	DeletePurchase(ctx context.Context, purchaseID int64) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
