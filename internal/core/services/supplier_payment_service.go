package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

type supplierPaymentService struct {
	BaseService
	paymentRepo portsrepo.SupplierPaymentRepositoryFacade
}

// NewSupplierPaymentService creates the supplier payment service.
func NewSupplierPaymentService(paymentRepo portsrepo.SupplierPaymentRepositoryFacade) portssvc.SupplierPaymentSvcFacade {
	return &supplierPaymentService{paymentRepo: paymentRepo}
}

func (s *supplierPaymentService) CreateSupplierPayment(ctx context.Context, req dto.CreateSupplierPaymentRequest) (*domain.SupplierPayment, error) {
	ve := apperrors.ValidationErrors{}
	date := parseDate(ve, "date", req.Date)
	requirePositive(ve, "amount", req.Amount)
	if len(ve) > 0 {
		return nil, ve
	}

	method := domain.PaymentMethod(req.Method)
	if method == "" {
		method = domain.MethodCash
	}

	payment := domain.SupplierPayment{
		Date:       date,
		SupplierID: req.Supplier,
		Amount:     req.Amount,
		Method:     method,
		Note:       req.Note,
	}

	saved, err := s.paymentRepo.SaveSupplierPayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "failed to create supplier payment")
		return nil, err
	}
	return saved, nil
}

func (s *supplierPaymentService) GetSupplierPaymentByID(ctx context.Context, paymentID int64) (*domain.SupplierPayment, error) {
	return s.paymentRepo.FindSupplierPaymentByID(ctx, paymentID)
}

func (s *supplierPaymentService) ListSupplierPayments(ctx context.Context, filter portsrepo.ListFilter) ([]domain.SupplierPayment, int64, error) {
	return s.paymentRepo.ListSupplierPayments(ctx, filter)
}

func (s *supplierPaymentService) UpdateSupplierPayment(ctx context.Context, paymentID int64, req dto.UpdateSupplierPaymentRequest) (*domain.SupplierPayment, error) {
	existing, err := s.paymentRepo.FindSupplierPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	ve := apperrors.ValidationErrors{}
	if req.Date != nil {
		existing.Date = parseDate(ve, "date", *req.Date)
	}
	if req.Supplier != nil {
		existing.SupplierID = *req.Supplier
	}
	if req.Amount != nil {
		requirePositive(ve, "amount", *req.Amount)
		existing.Amount = *req.Amount
	}
	if req.Method != nil {
		existing.Method = domain.PaymentMethod(*req.Method)
	}
	if req.Note != nil {
		existing.Note = *req.Note
	}
	if len(ve) > 0 {
		return nil, ve
	}

	updated, err := s.paymentRepo.UpdateSupplierPayment(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "failed to update supplier payment")
		return nil, err
	}
	return updated, nil
}

func (s *supplierPaymentService) DeleteSupplierPayment(ctx context.Context, paymentID int64) error {
	return s.paymentRepo.DeleteSupplierPayment(ctx, paymentID)
}
