package repositories

import (
	"context"
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// DeductionReader defines read operations for customer deduction data
type DeductionReader interface {
	// FindDeductionByID retrieves a specific deduction by its identifier.
	FindDeductionByID(ctx context.Context, deductionID int64) (*domain.CustomerDeduction, error)

	// ListDeductions retrieves a filtered, paginated list of deductions plus
	// the total row count before paging.
	ListDeductions(ctx context.Context, filter ListFilter) ([]domain.CustomerDeduction, int64, error)

	// ListDeductionsByCustomer retrieves all of a customer's deductions within
	// the optional date bounds, ordered by date then creation time.
	ListDeductionsByCustomer(ctx context.Context, customerID int64, from, to *time.Time) ([]domain.CustomerDeduction, error)
}

// DeductionWriter defines write operations for customer deduction data. Each
// write runs in a transaction that also adjusts the customer's running
// balance.
type DeductionWriter interface {
	// SaveDeduction persists a new deduction and subtracts its amount from the
	// customer's running balance.
	SaveDeduction(ctx context.Context, deduction domain.CustomerDeduction) (*domain.CustomerDeduction, error)

	// UpdateDeduction updates an existing deduction and applies the amount
	// difference to the affected customer balances.
	UpdateDeduction(ctx context.Context, deduction domain.CustomerDeduction) (*domain.CustomerDeduction, error)

	// DeleteDeduction removes a deduction and adds its amount back to the
	// customer's running balance.
	DeleteDeduction(ctx context.Context, deductionID int64) error
}

// DeductionRepositoryFacade combines all deduction-related repository interfaces
type DeductionRepositoryFacade interface {
	DeductionReader
	DeductionWriter
}
