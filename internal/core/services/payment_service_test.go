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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	service         portssvc.PaymentSvcFacade
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockPaymentRepo = new(MockPaymentRepository)
	s.service = services.NewPaymentService(s.mockPaymentRepo)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) TestCreatePayment_DefaultsToCash() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Date:     "2024-03-02",
		Customer: 1,
		Amount:   decimal.NewFromInt(500),
	}

	s.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Method == domain.MethodCash && p.Amount.Equal(decimal.NewFromInt(500))
	})).Return(&domain.Payment{PaymentID: 1, Method: domain.MethodCash}, nil).Once()

	created, err := s.service.CreatePayment(ctx, req)

	s.Require().NoError(err)
	s.Equal(domain.MethodCash, created.Method)
	s.mockPaymentRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestCreatePayment_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Date:     "2024-03-02",
		Customer: 1,
		Amount:   decimal.Zero,
	}

	created, err := s.service.CreatePayment(ctx, req)

	s.Require().Error(err)
	s.Nil(created)
	var ve apperrors.ValidationErrors
	s.Require().ErrorAs(err, &ve)
	s.Contains(ve, "amount")
	s.mockPaymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestAllocatePayment_Passthrough() {
	ctx := context.Background()
	allocated := &domain.Payment{
		PaymentID:     9,
		Date:          time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(900),
		AutoAllocated: true,
	}
	touched := []domain.Sale{{SaleID: 4}, {SaleID: 5}}

	s.mockPaymentRepo.On("AllocatePayment", ctx, int64(9)).Return(allocated, touched, nil).Once()

	payment, sales, err := s.service.AllocatePayment(ctx, 9)

	s.Require().NoError(err)
	s.True(payment.AutoAllocated)
	s.Len(sales, 2)
	s.mockPaymentRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestAllocatePayment_AlreadyAllocated() {
	ctx := context.Background()

	s.mockPaymentRepo.On("AllocatePayment", ctx, int64(9)).Return(nil, nil, apperrors.ErrConflict).Once()

	payment, sales, err := s.service.AllocatePayment(ctx, 9)

	s.Require().Error(err)
	s.Nil(payment)
	s.Nil(sales)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *PaymentServiceTestSuite) TestUpdatePayment_MergesFields() {
	ctx := context.Background()
	existing := &domain.Payment{
		PaymentID:  3,
		Date:       time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		CustomerID: 1,
		Amount:     decimal.NewFromInt(500),
		Method:     domain.MethodCash,
	}
	newMethod := "bank"

	s.mockPaymentRepo.On("FindPaymentByID", ctx, int64(3)).Return(existing, nil).Once()
	s.mockPaymentRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Method == domain.MethodBank && p.Amount.Equal(decimal.NewFromInt(500))
	})).Return(existing, nil).Once()

	_, err := s.service.UpdatePayment(ctx, 3, dto.UpdatePaymentRequest{Method: &newMethod})

	s.Require().NoError(err)
	s.mockPaymentRepo.AssertExpectations(s.T())
}
