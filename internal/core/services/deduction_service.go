package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

type deductionService struct {
	BaseService
	deductionRepo portsrepo.DeductionRepositoryFacade
}

// NewDeductionService creates the customer deduction service.
func NewDeductionService(deductionRepo portsrepo.DeductionRepositoryFacade) portssvc.DeductionSvcFacade {
	return &deductionService{deductionRepo: deductionRepo}
}

func (s *deductionService) CreateDeduction(ctx context.Context, req dto.CreateDeductionRequest) (*domain.CustomerDeduction, error) {
	ve := apperrors.ValidationErrors{}
	date := parseDate(ve, "date", req.Date)
	requirePositive(ve, "amount", req.Amount)
	if len(ve) > 0 {
		return nil, ve
	}

	dType := domain.DeductionType(req.DeductionType)
	if dType == "" {
		dType = domain.DeductionOther
	}

	deduction := domain.CustomerDeduction{
		Date:          date,
		CustomerID:    req.Customer,
		Amount:        req.Amount,
		DeductionType: dType,
		Note:          req.Note,
	}

	saved, err := s.deductionRepo.SaveDeduction(ctx, deduction)
	if err != nil {
		s.LogError(ctx, err, "failed to create deduction")
		return nil, err
	}
	return saved, nil
}

func (s *deductionService) GetDeductionByID(ctx context.Context, deductionID int64) (*domain.CustomerDeduction, error) {
	return s.deductionRepo.FindDeductionByID(ctx, deductionID)
}

func (s *deductionService) ListDeductions(ctx context.Context, filter portsrepo.ListFilter) ([]domain.CustomerDeduction, int64, error) {
	return s.deductionRepo.ListDeductions(ctx, filter)
}

func (s *deductionService) UpdateDeduction(ctx context.Context, deductionID int64, req dto.UpdateDeductionRequest) (*domain.CustomerDeduction, error) {
	existing, err := s.deductionRepo.FindDeductionByID(ctx, deductionID)
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
	if req.DeductionType != nil {
		existing.DeductionType = domain.DeductionType(*req.DeductionType)
	}
	if req.Note != nil {
		existing.Note = *req.Note
	}
	if len(ve) > 0 {
		return nil, ve
	}

	updated, err := s.deductionRepo.UpdateDeduction(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "failed to update deduction")
		return nil, err
	}
	return updated, nil
}

func (s *deductionService) DeleteDeduction(ctx context.Context, deductionID int64) error {
	return s.deductionRepo.DeleteDeduction(ctx, deductionID)
}
