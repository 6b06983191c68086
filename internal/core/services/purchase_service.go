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

type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	rateRepo     portsrepo.DailyRateRepositoryFacade
}

// NewPurchaseService creates the purchase service. The daily rate repository
// supplies a default cost rate when one is omitted.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, rateRepo portsrepo.DailyRateRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: purchaseRepo, rateRepo: rateRepo}
}

func (s *purchaseService) fillCostRate(ctx context.Context, purchase *domain.Purchase, ve apperrors.ValidationErrors) error {
	if !purchase.CostRatePerKg.IsZero() {
		return nil
	}

	rate, err := s.rateRepo.FindRateForDate(ctx, purchase.Date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ve.Add("cost_rate_per_kg", "is required when no daily rate exists on or before the purchase date")
			return nil
		}
		return err
	}
	purchase.CostRatePerKg = rate.DefaultCostRate
	return nil
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	ve := apperrors.ValidationErrors{}
	date := parseDate(ve, "date", req.Date)
	requireKg(ve, "kg", req.Kg)
	requireNonNegative(ve, "cost_rate_per_kg", req.CostRatePerKg)
	requireNonNegative(ve, "amount_paid", req.AmountPaid)
	if req.Supplier == nil && req.SupplierName == "" {
		ve.Add("supplier", "either a supplier or a supplier name is required")
	}
	if len(ve) > 0 {
		return nil, ve
	}

	purchase := domain.Purchase{
		Date:          date,
		SupplierID:    req.Supplier,
		SupplierName:  req.SupplierName,
		VehicleNumber: req.VehicleNumber,
		Kg:            req.Kg,
		CostRatePerKg: req.CostRatePerKg,
		AmountPaid:    req.AmountPaid,
		Note:          req.Note,
	}
	if err := s.fillCostRate(ctx, &purchase, ve); err != nil {
		return nil, err
	}
	if len(ve) > 0 {
		return nil, ve
	}

	saved, err := s.purchaseRepo.SavePurchase(ctx, purchase)
	if err != nil {
		s.LogError(ctx, err, "failed to create purchase")
		return nil, err
	}
	return saved, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

func (s *purchaseService) ListPurchases(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Purchase, int64, error) {
	return s.purchaseRepo.ListPurchases(ctx, filter)
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, purchaseID int64, req dto.UpdatePurchaseRequest) (*domain.Purchase, error) {
	existing, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	ve := apperrors.ValidationErrors{}
	if req.Date != nil {
		existing.Date = parseDate(ve, "date", *req.Date)
	}
	if req.Supplier != nil {
		existing.SupplierID = req.Supplier
	}
	if req.SupplierName != nil {
		existing.SupplierName = *req.SupplierName
	}
	if req.VehicleNumber != nil {
		existing.VehicleNumber = *req.VehicleNumber
	}
	if req.Kg != nil {
		requireKg(ve, "kg", *req.Kg)
		existing.Kg = *req.Kg
	}
	if req.CostRatePerKg != nil {
		requireNonNegative(ve, "cost_rate_per_kg", *req.CostRatePerKg)
		existing.CostRatePerKg = *req.CostRatePerKg
	}
	if req.AmountPaid != nil {
		requireNonNegative(ve, "amount_paid", *req.AmountPaid)
		existing.AmountPaid = *req.AmountPaid
	}
	if req.Note != nil {
		existing.Note = *req.Note
	}
	if len(ve) > 0 {
		return nil, ve
	}

	updated, err := s.purchaseRepo.UpdatePurchase(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "failed to update purchase")
		return nil, err
	}
	return updated, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID int64) error {
	return s.purchaseRepo.DeletePurchase(ctx, purchaseID)
}
