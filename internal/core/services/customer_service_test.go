package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/core/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo  *MockCustomerRepository
	mockSaleRepo      *MockSaleRepository
	mockPaymentRepo   *MockPaymentRepository
	mockDeductionRepo *MockDeductionRepository
	service           portssvc.CustomerSvcFacade
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.mockSaleRepo = new(MockSaleRepository)
	s.mockPaymentRepo = new(MockPaymentRepository)
	s.mockDeductionRepo = new(MockDeductionRepository)
	s.service = services.NewCustomerService(s.mockCustomerRepo, s.mockSaleRepo, s.mockPaymentRepo, s.mockDeductionRepo)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	opening := decimal.NewFromInt(500)
	req := dto.CreateCustomerRequest{Name: "Ali Traders", Phone: "0300-1234567", OpeningBalance: opening}

	s.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Ali Traders" &&
			c.IsActive &&
			c.OpeningBalance.Equal(opening) &&
			c.RunningBalance.Equal(opening)
	})).Return(&domain.Customer{CustomerID: 1, Name: "Ali Traders"}, nil).Once()

	created, err := s.service.CreateCustomer(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Equal(int64(1), created.CustomerID)
	s.mockCustomerRepo.AssertExpectations(s.T())
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_MissingName() {
	ctx := context.Background()

	created, err := s.service.CreateCustomer(ctx, dto.CreateCustomerRequest{})

	s.Require().Error(err)
	s.Nil(created)
	s.ErrorIs(err, apperrors.ErrValidation)
	var ve apperrors.ValidationErrors
	s.Require().ErrorAs(err, &ve)
	s.Contains(ve, "name")
	s.mockCustomerRepo.AssertNotCalled(s.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_ExplicitInactive() {
	ctx := context.Background()
	inactive := false

	s.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return !c.IsActive
	})).Return(&domain.Customer{CustomerID: 2}, nil).Once()

	_, err := s.service.CreateCustomer(ctx, dto.CreateCustomerRequest{Name: "Dormant", IsActive: &inactive})

	s.Require().NoError(err)
	s.mockCustomerRepo.AssertExpectations(s.T())
}

func (s *CustomerServiceTestSuite) TestCustomerStatement_FoldsBalances() {
	ctx := context.Background()
	customerID := int64(7)
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	customer := &domain.Customer{
		CustomerID:     customerID,
		Name:           "Karim Poultry",
		OpeningBalance: decimal.NewFromInt(1000),
	}
	sales := []domain.Sale{
		{
			SaleID:         11,
			Date:           day1,
			Kg:             decimal.NewFromInt(10),
			SaleRatePerKg:  decimal.NewFromInt(200),
			AmountReceived: decimal.NewFromInt(1500), // borrow +500
			Timestamps:     domain.Timestamps{CreatedAt: day1.Add(9 * time.Hour)},
		},
	}
	payments := []domain.Payment{
		{
			PaymentID:  21,
			Date:       day2,
			Amount:     decimal.NewFromInt(400),
			Method:     domain.MethodCash,
			Timestamps: domain.Timestamps{CreatedAt: day2.Add(10 * time.Hour)},
		},
	}
	deductions := []domain.CustomerDeduction{
		{
			DeductionID:   31,
			Date:          day2,
			Amount:        decimal.NewFromInt(100),
			DeductionType: domain.DeductionReturn,
			Timestamps:    domain.Timestamps{CreatedAt: day2.Add(11 * time.Hour)},
		},
	}

	s.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()
	s.mockSaleRepo.On("ListSalesByCustomer", ctx, customerID, (*time.Time)(nil), (*time.Time)(nil)).Return(sales, nil).Once()
	s.mockPaymentRepo.On("ListPaymentsByCustomer", ctx, customerID, (*time.Time)(nil), (*time.Time)(nil)).Return(payments, nil).Once()
	s.mockDeductionRepo.On("ListDeductionsByCustomer", ctx, customerID, (*time.Time)(nil), (*time.Time)(nil)).Return(deductions, nil).Once()

	statement, err := s.service.CustomerStatement(ctx, customerID, nil, nil)

	s.Require().NoError(err)
	s.Require().NotNil(statement)
	s.Require().Len(statement.Lines, 3)

	s.True(statement.StartingBalance.Equal(decimal.NewFromInt(1000)))

	// Sale line: debit of 500, balance 1500.
	s.Equal(domain.StatementSale, statement.Lines[0].Kind)
	s.True(statement.Lines[0].Debit.Equal(decimal.NewFromInt(500)))
	s.True(statement.Lines[0].Balance.Equal(decimal.NewFromInt(1500)))

	// Payment line: credit of 400, balance 1100.
	s.Equal(domain.StatementPayment, statement.Lines[1].Kind)
	s.True(statement.Lines[1].Credit.Equal(decimal.NewFromInt(400)))
	s.True(statement.Lines[1].Balance.Equal(decimal.NewFromInt(1100)))

	// Deduction line: credit of 100, balance 1000.
	s.Equal(domain.StatementDeduction, statement.Lines[2].Kind)
	s.True(statement.Lines[2].Credit.Equal(decimal.NewFromInt(100)))
	s.True(statement.Lines[2].Balance.Equal(decimal.NewFromInt(1000)))

	s.True(statement.ClosingBalance.Equal(decimal.NewFromInt(1000)))
}

func (s *CustomerServiceTestSuite) TestCustomerStatement_RangeStartFoldsIntoStartingBalance() {
	ctx := context.Background()
	customerID := int64(7)
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	from := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	customer := &domain.Customer{CustomerID: customerID, OpeningBalance: decimal.NewFromInt(100)}
	sales := []domain.Sale{
		{SaleID: 1, Date: day1, Kg: decimal.NewFromInt(2), SaleRatePerKg: decimal.NewFromInt(100)}, // +200, before range
		{SaleID: 2, Date: day2, Kg: decimal.NewFromInt(1), SaleRatePerKg: decimal.NewFromInt(100)}, // +100, in range
	}

	s.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()
	s.mockSaleRepo.On("ListSalesByCustomer", ctx, customerID, (*time.Time)(nil), (*time.Time)(nil)).Return(sales, nil).Once()
	s.mockPaymentRepo.On("ListPaymentsByCustomer", ctx, customerID, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Payment{}, nil).Once()
	s.mockDeductionRepo.On("ListDeductionsByCustomer", ctx, customerID, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.CustomerDeduction{}, nil).Once()

	statement, err := s.service.CustomerStatement(ctx, customerID, &from, nil)

	s.Require().NoError(err)
	s.Require().Len(statement.Lines, 1)
	s.True(statement.StartingBalance.Equal(decimal.NewFromInt(300)), "got %s", statement.StartingBalance)
	s.Equal(int64(2), statement.Lines[0].RefID)
	s.True(statement.ClosingBalance.Equal(decimal.NewFromInt(400)))
}

func (s *CustomerServiceTestSuite) TestCustomerStatement_AllocatedPaymentHasZeroDelta() {
	ctx := context.Background()
	customerID := int64(3)
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	customer := &domain.Customer{CustomerID: customerID, OpeningBalance: decimal.NewFromInt(0)}
	payments := []domain.Payment{
		{PaymentID: 5, Date: day, Amount: decimal.NewFromInt(900), Method: domain.MethodBank, AutoAllocated: true},
	}

	s.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()
	s.mockSaleRepo.On("ListSalesByCustomer", ctx, customerID, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Sale{}, nil).Once()
	s.mockPaymentRepo.On("ListPaymentsByCustomer", ctx, customerID, (*time.Time)(nil), (*time.Time)(nil)).Return(payments, nil).Once()
	s.mockDeductionRepo.On("ListDeductionsByCustomer", ctx, customerID, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.CustomerDeduction{}, nil).Once()

	statement, err := s.service.CustomerStatement(ctx, customerID, nil, nil)

	s.Require().NoError(err)
	s.Require().Len(statement.Lines, 1)
	s.Contains(statement.Lines[0].Description, "allocated into sales")
	s.True(statement.Lines[0].Debit.IsZero())
	s.True(statement.Lines[0].Credit.IsZero())
	s.True(statement.ClosingBalance.IsZero())
}

func (s *CustomerServiceTestSuite) TestCustomerStatement_CustomerNotFound() {
	ctx := context.Background()

	s.mockCustomerRepo.On("FindCustomerByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	statement, err := s.service.CustomerStatement(ctx, int64(99), nil, nil)

	s.Require().Error(err)
	s.Nil(statement)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
