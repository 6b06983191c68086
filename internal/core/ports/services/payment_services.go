package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// PaymentSvcFacade defines operations for managing customer payments.
type PaymentSvcFacade interface {
	// CreatePayment records a payment and subtracts it from the customer's
	// running balance.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// GetPaymentByID retrieves a specific payment.
	GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// ListPayments retrieves a filtered, paginated list of payments.
	ListPayments(ctx context.Context, filter repositories.ListFilter) ([]domain.Payment, int64, error)

	// UpdatePayment updates an unallocated payment and rebalances the affected
	// customers.
	UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error)

	// DeletePayment removes an unallocated payment and reverses it.
	DeletePayment(ctx context.Context, paymentID int64) error

	// AllocatePayment spreads a payment across the customer's sales and marks
	// it allocated. The customer's running balance is unchanged.
	AllocatePayment(ctx context.Context, paymentID int64) (*domain.Payment, []domain.Sale, error)
}
