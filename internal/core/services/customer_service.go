package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/utils/ledger"
)

type customerService struct {
	BaseService
	customerRepo  portsrepo.CustomerRepositoryFacade
	saleRepo      portsrepo.SaleRepositoryFacade
	paymentRepo   portsrepo.PaymentRepositoryFacade
	deductionRepo portsrepo.DeductionRepositoryFacade
}

// NewCustomerService creates the customer service. The sale, payment and
// deduction repositories feed the statement assembly.
func NewCustomerService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	deductionRepo portsrepo.DeductionRepositoryFacade,
) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo:  customerRepo,
		saleRepo:      saleRepo,
		paymentRepo:   paymentRepo,
		deductionRepo: deductionRepo,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
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

	customer := domain.Customer{
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		OpeningBalance: req.OpeningBalance,
		RunningBalance: req.OpeningBalance,
		IsActive:       isActive,
	}

	saved, err := s.customerRepo.SaveCustomer(ctx, customer)
	if err != nil {
		s.LogError(ctx, err, "failed to create customer")
		return nil, err
	}
	return saved, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Customer, int64, error) {
	return s.customerRepo.ListCustomers(ctx, filter)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	existing, err := s.customerRepo.FindCustomerByID(ctx, customerID)
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
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.OpeningBalance != nil {
		// The repository shifts the running balance by the same difference.
		existing.OpeningBalance = *req.OpeningBalance
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.customerRepo.UpdateCustomer(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "failed to update customer")
		return nil, err
	}
	return updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	return s.customerRepo.DeleteCustomer(ctx, customerID)
}

// statementEntry is one ledger row before the balance fold.
type statementEntry struct {
	date        time.Time
	createdAt   time.Time
	kind        domain.StatementEntryKind
	refID       int64
	description string
	delta       decimal.Decimal
}

// CustomerStatement assembles a customer's chronological ledger. Entries
// before the range start are folded into the starting balance so the last
// line's balance equals the running balance as of the range end.
func (s *customerService) CustomerStatement(ctx context.Context, customerID int64, from, to *time.Time) (*domain.CustomerStatement, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// Everything up to the range end; the range start splits the entries
	// between the starting balance and the visible lines.
	sales, err := s.saleRepo.ListSalesByCustomer(ctx, customerID, nil, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByCustomer(ctx, customerID, nil, to)
	if err != nil {
		return nil, err
	}
	deductions, err := s.deductionRepo.ListDeductionsByCustomer(ctx, customerID, nil, to)
	if err != nil {
		return nil, err
	}

	entries := make([]statementEntry, 0, len(sales)+len(payments)+len(deductions))
	for _, sale := range sales {
		entries = append(entries, statementEntry{
			date:        sale.Date,
			createdAt:   sale.CreatedAt,
			kind:        domain.StatementSale,
			refID:       sale.SaleID,
			description: fmt.Sprintf("sale of %s kg @ %s", sale.Kg, sale.SaleRatePerKg),
			delta:       ledger.SaleDelta(sale),
		})
	}
	for _, p := range payments {
		desc := fmt.Sprintf("payment (%s)", p.Method)
		if p.AutoAllocated {
			desc = fmt.Sprintf("payment (%s, allocated into sales)", p.Method)
		}
		entries = append(entries, statementEntry{
			date:        p.Date,
			createdAt:   p.CreatedAt,
			kind:        domain.StatementPayment,
			refID:       p.PaymentID,
			description: desc,
			delta:       ledger.PaymentDelta(p),
		})
	}
	for _, d := range deductions {
		entries = append(entries, statementEntry{
			date:        d.Date,
			createdAt:   d.CreatedAt,
			kind:        domain.StatementDeduction,
			refID:       d.DeductionID,
			description: fmt.Sprintf("deduction (%s)", d.DeductionType),
			delta:       ledger.DeductionDelta(d),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].date.Equal(entries[j].date) {
			return entries[i].date.Before(entries[j].date)
		}
		return entries[i].createdAt.Before(entries[j].createdAt)
	})

	statement := &domain.CustomerStatement{
		Customer:        *customer,
		From:            from,
		To:              to,
		StartingBalance: customer.OpeningBalance,
		Lines:           make([]domain.StatementLine, 0, len(entries)),
	}

	balance := customer.OpeningBalance
	for _, e := range entries {
		balance = balance.Add(e.delta)
		if from != nil && e.date.Before(*from) {
			statement.StartingBalance = balance
			continue
		}
		line := domain.StatementLine{
			Date:        e.date,
			Kind:        e.kind,
			RefID:       e.refID,
			Description: e.description,
			Balance:     balance,
			CreatedAt:   e.createdAt,
		}
		if e.delta.IsNegative() {
			line.Credit = e.delta.Neg()
		} else {
			line.Debit = e.delta
		}
		statement.Lines = append(statement.Lines, line)
	}
	statement.ClosingBalance = balance

	return statement, nil
}
