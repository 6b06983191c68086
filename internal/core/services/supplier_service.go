package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates the supplier service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	ve := apperrors.ValidationErrors{}
	if req.Name == "" {
		ve.Add("name", "is required")
	}
	if len(ve) > 0 {
		return nil, ve
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	supplier := domain.Supplier{
		Name:           req.Name,
		Phone:          req.Phone,
		OpeningBalance: req.OpeningBalance,
		ClosingBalance: req.OpeningBalance,
		IsActive:       isActive,
	}

	saved, err := s.supplierRepo.SaveSupplier(ctx, supplier)
	if err != nil {
		s.LogError(ctx, err, "failed to create supplier")
		return nil, err
	}
	return saved, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

func (s *supplierService) ListSuppliers(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Supplier, int64, error) {
	return s.supplierRepo.ListSuppliers(ctx, filter)
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID int64, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	existing, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	ve := apperrors.ValidationErrors{}
	if req.Name != nil {
		if *req.Name == "" {
			ve.Add("name", "must not be empty")
		}
		existing.Name = *req.Name
	}
	if len(ve) > 0 {
		return nil, ve
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.OpeningBalance != nil {
		// The repository shifts the closing balance by the same difference.
		existing.OpeningBalance = *req.OpeningBalance
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.supplierRepo.UpdateSupplier(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "failed to update supplier")
		return nil, err
	}
	return updated, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID int64) error {
	return s.supplierRepo.DeleteSupplier(ctx, supplierID)
}
