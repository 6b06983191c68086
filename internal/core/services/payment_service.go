package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates the customer payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
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

	payment := domain.Payment{
		Date:       date,
		CustomerID: req.Customer,
		Amount:     req.Amount,
		Method:     method,
		Note:       req.Note,
	}

	saved, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "failed to create payment")
		return nil, err
	}
	return saved, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) ListPayments(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Payment, int64, error) {
	return s.paymentRepo.ListPayments(ctx, filter)
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	existing, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	ve := apperrors.ValidationErrors{}
	if req.Date != nil {
		existing.Date = parseDate(ve, "date", *req.Date)
	}
	if req.Customer != nil {
		existing.CustomerID = *req.Customer
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

	updated, err := s.paymentRepo.UpdatePayment(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "failed to update payment")
		return nil, err
	}
	return updated, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	return s.paymentRepo.DeletePayment(ctx, paymentID)
}

func (s *paymentService) AllocatePayment(ctx context.Context, paymentID int64) (*domain.Payment, []domain.Sale, error) {
	payment, sales, err := s.paymentRepo.AllocatePayment(ctx, paymentID)
	if err != nil {
		s.LogError(ctx, err, "failed to allocate payment")
		return nil, nil, err
	}
	return payment, sales, nil
}
