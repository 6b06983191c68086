package services

import (
	"context"
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer by its identifier.
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers retrieves a filtered, paginated list of customers plus the
	// total row count.
	ListCustomers(ctx context.Context, filter repositories.ListFilter) ([]domain.Customer, int64, error)

	// CustomerStatement assembles a customer's chronological ledger over the
	// optional date bounds.
	CustomerStatement(ctx context.Context, customerID int64, from, to *time.Time) (*domain.CustomerStatement, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer with no ledger entries.
	DeleteCustomer(ctx context.Context, customerID int64) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
