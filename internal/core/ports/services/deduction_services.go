package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// DeductionSvcFacade defines operations for managing customer deductions.
type DeductionSvcFacade interface {
	// CreateDeduction records a deduction and subtracts it from the customer's
	// running balance.
	CreateDeduction(ctx context.Context, req dto.CreateDeductionRequest) (*domain.CustomerDeduction, error)

	// GetDeductionByID retrieves a specific deduction.
	GetDeductionByID(ctx context.Context, deductionID int64) (*domain.CustomerDeduction, error)

	// ListDeductions retrieves a filtered, paginated list of deductions.
	ListDeductions(ctx context.Context, filter repositories.ListFilter) ([]domain.CustomerDeduction, int64, error)

	// UpdateDeduction updates a deduction and rebalances the affected
	// customers.
	UpdateDeduction(ctx context.Context, deductionID int64, req dto.UpdateDeductionRequest) (*domain.CustomerDeduction, error)

	// DeleteDeduction removes a deduction and reverses it.
	DeleteDeduction(ctx context.Context, deductionID int64) error
}
