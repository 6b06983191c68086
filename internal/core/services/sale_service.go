package services

import (
	"context"
	"errors"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
	rateRepo portsrepo.DailyRateRepositoryFacade
}

// NewSaleService creates the sale service. The daily rate repository supplies
// defaults for omitted rates.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, rateRepo portsrepo.DailyRateRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo, rateRepo: rateRepo}
}

// fillRates defaults zero rates from the daily rate in effect on the sale
// date. Explicit rates always win.
func (s *saleService) fillRates(ctx context.Context, sale *domain.Sale, ve apperrors.ValidationErrors) error {
	if !sale.SaleRatePerKg.IsZero() && !sale.CostRateSnapshot.IsZero() {
		return nil
	}

	rate, err := s.rateRepo.FindRateForDate(ctx, sale.Date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if sale.SaleRatePerKg.IsZero() {
				ve.Add("sale_rate_per_kg", "is required when no daily rate exists on or before the sale date")
			}
			if sale.CostRateSnapshot.IsZero() {
				ve.Add("cost_rate_snapshot", "is required when no daily rate exists on or before the sale date")
			}
			return nil
		}
		return err
	}

	if sale.SaleRatePerKg.IsZero() {
		sale.SaleRatePerKg = rate.DefaultSaleRate
	}
	if sale.CostRateSnapshot.IsZero() {
		sale.CostRateSnapshot = rate.DefaultCostRate
	}
	return nil
}

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	ve := apperrors.ValidationErrors{}
	date := parseDate(ve, "date", req.Date)
	requireKg(ve, "kg", req.Kg)
	requireNonNegative(ve, "amount_received", req.AmountReceived)
	requireNonNegative(ve, "sale_rate_per_kg", req.SaleRatePerKg)
	requireNonNegative(ve, "cost_rate_snapshot", req.CostRateSnapshot)
	if len(ve) > 0 {
		return nil, ve
	}

	sale := domain.Sale{
		Date:             date,
		CustomerID:       req.Customer,
		Kg:               req.Kg,
		SaleRatePerKg:    req.SaleRatePerKg,
		CostRateSnapshot: req.CostRateSnapshot,
		AmountReceived:   req.AmountReceived,
		Note:             req.Note,
	}
	if err := s.fillRates(ctx, &sale, ve); err != nil {
		return nil, err
	}
	if len(ve) > 0 {
		return nil, ve
	}

	saved, err := s.saleRepo.SaveSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "failed to create sale")
		return nil, err
	}
	return saved, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

func (s *saleService) ListSales(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Sale, int64, error) {
	return s.saleRepo.ListSales(ctx, filter)
}

func (s *saleService) UpdateSale(ctx context.Context, saleID int64, req dto.UpdateSaleRequest) (*domain.Sale, error) {
	existing, err := s.saleRepo.FindSaleByID(ctx, saleID)
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
	if req.Kg != nil {
		requireKg(ve, "kg", *req.Kg)
		existing.Kg = *req.Kg
	}
	if req.SaleRatePerKg != nil {
		requireNonNegative(ve, "sale_rate_per_kg", *req.SaleRatePerKg)
		existing.SaleRatePerKg = *req.SaleRatePerKg
	}
	if req.CostRateSnapshot != nil {
		requireNonNegative(ve, "cost_rate_snapshot", *req.CostRateSnapshot)
		existing.CostRateSnapshot = *req.CostRateSnapshot
	}
	if req.AmountReceived != nil {
		requireNonNegative(ve, "amount_received", *req.AmountReceived)
		existing.AmountReceived = *req.AmountReceived
	}
	if req.Note != nil {
		existing.Note = *req.Note
	}
	if len(ve) > 0 {
		return nil, ve
	}

	updated, err := s.saleRepo.UpdateSale(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "failed to update sale")
		return nil, err
	}
	return updated, nil
}

func (s *saleService) DeleteSale(ctx context.Context, saleID int64) error {
	return s.saleRepo.DeleteSale(ctx, saleID)
}
