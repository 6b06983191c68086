package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// SupplierPaymentSvcFacade defines operations for managing supplier payments.
type SupplierPaymentSvcFacade interface {
	// CreateSupplierPayment records a payment out to a supplier and subtracts
	// it from the supplier's closing balance.
	CreateSupplierPayment(ctx context.Context, req dto.CreateSupplierPaymentRequest) (*domain.SupplierPayment, error)

	// GetSupplierPaymentByID retrieves a specific supplier payment.
	GetSupplierPaymentByID(ctx context.Context, paymentID int64) (*domain.SupplierPayment, error)

	// ListSupplierPayments retrieves a filtered, paginated list of supplier
	// payments.
	ListSupplierPayments(ctx context.Context, filter repositories.ListFilter) ([]domain.SupplierPayment, int64, error)

	// UpdateSupplierPayment updates a supplier payment and rebalances the
	// affected suppliers.
	UpdateSupplierPayment(ctx context.Context, paymentID int64, req dto.UpdateSupplierPaymentRequest) (*domain.SupplierPayment, error)

	// DeleteSupplierPayment removes a supplier payment and reverses it.
	DeleteSupplierPayment(ctx context.Context, paymentID int64) error
}
