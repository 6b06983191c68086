package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// PurchaseSvcFacade defines operations for managing purchases.
type PurchaseSvcFacade interface {
	// CreatePurchase records a purchase and applies its borrow to the
	// supplier's closing balance.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)

	// GetPurchaseByID retrieves a specific purchase.
	GetPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error)

	// ListPurchases retrieves a filtered, paginated list of purchases.
	ListPurchases(ctx context.Context, filter repositories.ListFilter) ([]domain.Purchase, int64, error)

	// UpdatePurchase updates a purchase and rebalances the affected suppliers.
	UpdatePurchase(ctx context.Context, purchaseID int64, req dto.UpdatePurchaseRequest) (*domain.Purchase, error)

	// DeletePurchase removes a purchase and reverses its borrow.
	DeletePurchase(ctx context.Context, purchaseID int64) error
}
