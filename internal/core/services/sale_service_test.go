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

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo *MockSaleRepository
	mockRateRepo *MockDailyRateRepository
	service      portssvc.SaleSvcFacade
}

func (s *SaleServiceTestSuite) SetupTest() {
	s.mockSaleRepo = new(MockSaleRepository)
	s.mockRateRepo = new(MockDailyRateRepository)
	s.service = services.NewSaleService(s.mockSaleRepo, s.mockRateRepo)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

func (s *SaleServiceTestSuite) TestCreateSale_ExplicitRates() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Date:             "2024-03-01",
		Customer:         1,
		Kg:               decimal.NewFromInt(10),
		SaleRatePerKg:    decimal.NewFromInt(200),
		CostRateSnapshot: decimal.NewFromInt(150),
		AmountReceived:   decimal.NewFromInt(1500),
	}

	s.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(sale domain.Sale) bool {
		return sale.SaleRatePerKg.Equal(decimal.NewFromInt(200)) &&
			sale.CostRateSnapshot.Equal(decimal.NewFromInt(150))
	})).Return(&domain.Sale{SaleID: 1}, nil).Once()

	created, err := s.service.CreateSale(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(created)
	// Explicit rates must never hit the rate lookup.
	s.mockRateRepo.AssertNotCalled(s.T(), "FindRateForDate", mock.Anything, mock.Anything)
	s.mockSaleRepo.AssertExpectations(s.T())
}

func (s *SaleServiceTestSuite) TestCreateSale_RatesDefaultFromDailyRate() {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateSaleRequest{
		Date:     "2024-03-01",
		Customer: 1,
		Kg:       decimal.NewFromInt(10),
	}

	rate := &domain.DailyRate{
		Date:            date,
		DefaultCostRate: decimal.NewFromInt(150),
		DefaultSaleRate: decimal.NewFromInt(200),
	}
	s.mockRateRepo.On("FindRateForDate", ctx, date).Return(rate, nil).Once()
	s.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(sale domain.Sale) bool {
		return sale.SaleRatePerKg.Equal(decimal.NewFromInt(200)) &&
			sale.CostRateSnapshot.Equal(decimal.NewFromInt(150))
	})).Return(&domain.Sale{SaleID: 2}, nil).Once()

	created, err := s.service.CreateSale(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.mockRateRepo.AssertExpectations(s.T())
	s.mockSaleRepo.AssertExpectations(s.T())
}

func (s *SaleServiceTestSuite) TestCreateSale_PartialDefaultKeepsExplicitRate() {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateSaleRequest{
		Date:          "2024-03-01",
		Customer:      1,
		Kg:            decimal.NewFromInt(5),
		SaleRatePerKg: decimal.NewFromInt(210),
	}

	rate := &domain.DailyRate{
		Date:            date,
		DefaultCostRate: decimal.NewFromInt(150),
		DefaultSaleRate: decimal.NewFromInt(200),
	}
	s.mockRateRepo.On("FindRateForDate", ctx, date).Return(rate, nil).Once()
	s.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(sale domain.Sale) bool {
		return sale.SaleRatePerKg.Equal(decimal.NewFromInt(210)) &&
			sale.CostRateSnapshot.Equal(decimal.NewFromInt(150))
	})).Return(&domain.Sale{SaleID: 3}, nil).Once()

	_, err := s.service.CreateSale(ctx, req)

	s.Require().NoError(err)
	s.mockSaleRepo.AssertExpectations(s.T())
}

func (s *SaleServiceTestSuite) TestCreateSale_NoRateAnywhere() {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateSaleRequest{
		Date:     "2024-03-01",
		Customer: 1,
		Kg:       decimal.NewFromInt(10),
	}

	s.mockRateRepo.On("FindRateForDate", ctx, date).Return(nil, apperrors.ErrNotFound).Once()

	created, err := s.service.CreateSale(ctx, req)

	s.Require().Error(err)
	s.Nil(created)
	var ve apperrors.ValidationErrors
	s.Require().ErrorAs(err, &ve)
	s.Contains(ve, "sale_rate_per_kg")
	s.Contains(ve, "cost_rate_snapshot")
	s.mockSaleRepo.AssertNotCalled(s.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (s *SaleServiceTestSuite) TestCreateSale_RejectsTinyKg() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Date:          "2024-03-01",
		Customer:      1,
		Kg:            decimal.NewFromFloat(0.0005),
		SaleRatePerKg: decimal.NewFromInt(200),
	}

	created, err := s.service.CreateSale(ctx, req)

	s.Require().Error(err)
	s.Nil(created)
	var ve apperrors.ValidationErrors
	s.Require().ErrorAs(err, &ve)
	s.Contains(ve, "kg")
}

func (s *SaleServiceTestSuite) TestCreateSale_RejectsBadDate() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Date:     "01-03-2024",
		Customer: 1,
		Kg:       decimal.NewFromInt(10),
	}

	created, err := s.service.CreateSale(ctx, req)

	s.Require().Error(err)
	s.Nil(created)
	var ve apperrors.ValidationErrors
	s.Require().ErrorAs(err, &ve)
	s.Contains(ve, "date")
}

func (s *SaleServiceTestSuite) TestUpdateSale_MergesFields() {
	ctx := context.Background()
	existing := &domain.Sale{
		SaleID:           4,
		Date:             time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CustomerID:       1,
		Kg:               decimal.NewFromInt(10),
		SaleRatePerKg:    decimal.NewFromInt(200),
		CostRateSnapshot: decimal.NewFromInt(150),
		AmountReceived:   decimal.NewFromInt(1000),
	}
	newReceived := decimal.NewFromInt(2000)

	s.mockSaleRepo.On("FindSaleByID", ctx, int64(4)).Return(existing, nil).Once()
	s.mockSaleRepo.On("UpdateSale", ctx, mock.MatchedBy(func(sale domain.Sale) bool {
		return sale.AmountReceived.Equal(newReceived) &&
			sale.Kg.Equal(decimal.NewFromInt(10)) &&
			sale.SaleRatePerKg.Equal(decimal.NewFromInt(200))
	})).Return(existing, nil).Once()

	_, err := s.service.UpdateSale(ctx, 4, dto.UpdateSaleRequest{AmountReceived: &newReceived})

	s.Require().NoError(err)
	s.mockSaleRepo.AssertExpectations(s.T())
}

func (s *SaleServiceTestSuite) TestUpdateSale_NotFound() {
	ctx := context.Background()

	s.mockSaleRepo.On("FindSaleByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := s.service.UpdateSale(ctx, 99, dto.UpdateSaleRequest{})

	s.Require().Error(err)
	s.Nil(updated)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
