package services

import (
	"context"
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

type dailyRateService struct {
	BaseService
	rateRepo portsrepo.DailyRateRepositoryFacade
}

// NewDailyRateService creates the daily rate service.
func NewDailyRateService(rateRepo portsrepo.DailyRateRepositoryFacade) portssvc.DailyRateSvcFacade {
	return &dailyRateService{rateRepo: rateRepo}
}

func (s *dailyRateService) CreateDailyRate(ctx context.Context, req dto.CreateDailyRateRequest) (*domain.DailyRate, error) {
	ve := apperrors.ValidationErrors{}
	date := parseDate(ve, "date", req.Date)
	requireNonNegative(ve, "default_cost_rate", req.DefaultCostRate)
	requireNonNegative(ve, "default_sale_rate", req.DefaultSaleRate)
	if len(ve) > 0 {
		return nil, ve
	}

	rate := domain.DailyRate{
		Date:            date,
		DefaultCostRate: req.DefaultCostRate,
		DefaultSaleRate: req.DefaultSaleRate,
	}

	saved, err := s.rateRepo.SaveDailyRate(ctx, rate)
	if err != nil {
		s.LogError(ctx, err, "failed to create daily rate")
		return nil, err
	}
	return saved, nil
}

func (s *dailyRateService) GetDailyRateByID(ctx context.Context, rateID int64) (*domain.DailyRate, error) {
	return s.rateRepo.FindDailyRateByID(ctx, rateID)
}

func (s *dailyRateService) RateForDate(ctx context.Context, date time.Time) (*domain.DailyRate, error) {
	return s.rateRepo.FindRateForDate(ctx, date)
}

func (s *dailyRateService) ListDailyRates(ctx context.Context, filter portsrepo.ListFilter) ([]domain.DailyRate, int64, error) {
	return s.rateRepo.ListDailyRates(ctx, filter)
}

func (s *dailyRateService) UpdateDailyRate(ctx context.Context, rateID int64, req dto.UpdateDailyRateRequest) (*domain.DailyRate, error) {
	existing, err := s.rateRepo.FindDailyRateByID(ctx, rateID)
	if err != nil {
		return nil, err
	}

	ve := apperrors.ValidationErrors{}
	if req.Date != nil {
		existing.Date = parseDate(ve, "date", *req.Date)
	}
	if req.DefaultCostRate != nil {
		requireNonNegative(ve, "default_cost_rate", *req.DefaultCostRate)
		existing.DefaultCostRate = *req.DefaultCostRate
	}
	if req.DefaultSaleRate != nil {
		requireNonNegative(ve, "default_sale_rate", *req.DefaultSaleRate)
		existing.DefaultSaleRate = *req.DefaultSaleRate
	}
	if len(ve) > 0 {
		return nil, ve
	}

	updated, err := s.rateRepo.UpdateDailyRate(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "failed to update daily rate")
		return nil, err
	}
	return updated, nil
}

func (s *dailyRateService) DeleteDailyRate(ctx context.Context, rateID int64) error {
	return s.rateRepo.DeleteDailyRate(ctx, rateID)
}
