package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// SupplierReaderSvc defines read operations for supplier data
type SupplierReaderSvc interface {
	// GetSupplierByID retrieves a specific supplier by its identifier.
	GetSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error)

	// ListSuppliers retrieves a filtered, paginated list of suppliers plus the
	// total row count.
	ListSuppliers(ctx context.Context, filter repositories.ListFilter) ([]domain.Supplier, int64, error)
}

// SupplierWriterSvc defines write operations for supplier data
type SupplierWriterSvc interface {
	// CreateSupplier persists a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)

	// UpdateSupplier updates an existing supplier's details.
	UpdateSupplier(ctx context.Context, supplierID int64, req dto.UpdateSupplierRequest) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier with no ledger entries.
	DeleteSupplier(ctx context.Context, supplierID int64) error
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
