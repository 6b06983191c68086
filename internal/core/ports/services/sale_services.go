package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// SaleSvcFacade defines operations for managing sales.
type SaleSvcFacade interface {
	// CreateSale records a sale and applies its borrow to the customer's
	// running balance. Omitted rates default from the daily rate of the sale
	// date.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)

	// GetSaleByID retrieves a specific sale.
	GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)

	// ListSales retrieves a filtered, paginated list of sales.
	ListSales(ctx context.Context, filter repositories.ListFilter) ([]domain.Sale, int64, error)

	// UpdateSale updates a sale and rebalances the affected customers.
	UpdateSale(ctx context.Context, saleID int64, req dto.UpdateSaleRequest) (*domain.Sale, error)

	// DeleteSale removes a sale and reverses its borrow.
	DeleteSale(ctx context.Context, saleID int64) error
}
