package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/core/services"
)

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) PurchaseTotals(ctx context.Context, from, to time.Time) (*domain.PurchaseTotals, error) {
	args := m.Called(ctx, from, to)
	var totals *domain.PurchaseTotals
	if args.Get(0) != nil {
		totals = args.Get(0).(*domain.PurchaseTotals)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) SaleTotals(ctx context.Context, from, to time.Time) (*domain.SaleTotals, error) {
	args := m.Called(ctx, from, to)
	var totals *domain.SaleTotals
	if args.Get(0) != nil {
		totals = args.Get(0).(*domain.SaleTotals)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) PurchasesByVehicle(ctx context.Context, from, to time.Time) ([]domain.VehicleTotals, error) {
	args := m.Called(ctx, from, to)
	var rows []domain.VehicleTotals
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.VehicleTotals)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) PaymentsTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) ExpensesTotal(ctx context.Context, from, to *time.Time, category string) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to, category)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) ExpensesByCategory(ctx context.Context, from, to *time.Time, category string) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, from, to, category)
	var rows []domain.CategoryTotal
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.CategoryTotal)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) ExpensesByDate(ctx context.Context, from, to *time.Time, category string) ([]domain.DateTotal, error) {
	args := m.Called(ctx, from, to, category)
	var rows []domain.DateTotal
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.DateTotal)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) SalesByCustomer(ctx context.Context, from, to time.Time) ([]domain.CustomerSalesRow, error) {
	args := m.Called(ctx, from, to)
	var rows []domain.CustomerSalesRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.CustomerSalesRow)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) SalesByDay(ctx context.Context, from, to time.Time) ([]domain.DailySalesRow, error) {
	args := m.Called(ctx, from, to)
	var rows []domain.DailySalesRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.DailySalesRow)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) TopCustomersByRevenue(ctx context.Context, from, to time.Time, limit int) ([]domain.CustomerVolumeRow, error) {
	args := m.Called(ctx, from, to, limit)
	var rows []domain.CustomerVolumeRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.CustomerVolumeRow)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) StockTotals(ctx context.Context) (*domain.StockTotals, error) {
	args := m.Called(ctx)
	var totals *domain.StockTotals
	if args.Get(0) != nil {
		totals = args.Get(0).(*domain.StockTotals)
	}
	return totals, args.Error(1)
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockCustomerRepo  *MockCustomerRepository
	mockSaleRepo      *MockSaleRepository
	mockPaymentRepo   *MockPaymentRepository
	service           portssvc.ReportingService
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockReportingRepo = new(MockReportingRepository)
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.mockSaleRepo = new(MockSaleRepository)
	s.mockPaymentRepo = new(MockPaymentRepository)
	s.service = services.NewReportingService(s.mockReportingRepo, s.mockCustomerRepo, s.mockSaleRepo, s.mockPaymentRepo)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) TestCustomerReport_OutstandingIsPeriodScoped() {
	ctx := context.Background()
	customerID := int64(4)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	customer := &domain.Customer{CustomerID: customerID, Name: "Bismillah Chicken"}
	sales := []domain.Sale{
		{Kg: decimal.NewFromInt(10), SaleRatePerKg: decimal.NewFromInt(200)}, // 2000
		{Kg: decimal.NewFromInt(5), SaleRatePerKg: decimal.NewFromInt(180)},  // 900
	}
	payments := []domain.Payment{
		{Amount: decimal.NewFromInt(1500)},
	}

	s.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()
	s.mockSaleRepo.On("ListSalesByCustomer", ctx, customerID, &from, &to).Return(sales, nil).Once()
	s.mockPaymentRepo.On("ListPaymentsByCustomer", ctx, customerID, &from, &to).Return(payments, nil).Once()

	report, err := s.service.CustomerReport(ctx, customerID, &from, &to)

	s.Require().NoError(err)
	s.True(report.TotalSalesAmount.Equal(decimal.NewFromInt(2900)), "got %s", report.TotalSalesAmount)
	s.True(report.TotalKg.Equal(decimal.NewFromInt(15)))
	s.True(report.TotalPayments.Equal(decimal.NewFromInt(1500)))
	s.True(report.Outstanding.Equal(decimal.NewFromInt(1400)), "got %s", report.Outstanding)
}

func (s *ReportingServiceTestSuite) TestSalesAnalytics_AverageRateAndCount() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	totals := &domain.SaleTotals{
		Kg:      decimal.NewFromInt(20),
		Revenue: decimal.NewFromInt(4000),
		Profit:  decimal.NewFromInt(600),
	}
	daily := []domain.DailySalesRow{
		{Date: from, Count: 3},
		{Date: to, Count: 2},
	}
	top := []domain.CustomerVolumeRow{{CustomerID: 1, Kg: decimal.NewFromInt(12)}}

	s.mockReportingRepo.On("SaleTotals", ctx, from, to).Return(totals, nil).Once()
	s.mockReportingRepo.On("SalesByDay", ctx, from, to).Return(daily, nil).Once()
	s.mockReportingRepo.On("TopCustomersByRevenue", ctx, from, to, 10).Return(top, nil).Once()

	analytics, err := s.service.SalesAnalytics(ctx, from, to)

	s.Require().NoError(err)
	s.Equal(int64(5), analytics.SalesCount)
	s.True(analytics.AverageRate.Equal(decimal.NewFromInt(200)), "got %s", analytics.AverageRate)
	s.True(analytics.TotalProfit.Equal(decimal.NewFromInt(600)))
	s.Len(analytics.TopCustomers, 1)
}

func (s *ReportingServiceTestSuite) TestSalesAnalytics_ZeroKgAverageRate() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from

	totals := &domain.SaleTotals{}

	s.mockReportingRepo.On("SaleTotals", ctx, from, to).Return(totals, nil).Once()
	s.mockReportingRepo.On("SalesByDay", ctx, from, to).Return([]domain.DailySalesRow{}, nil).Once()
	s.mockReportingRepo.On("TopCustomersByRevenue", ctx, from, to, 10).Return([]domain.CustomerVolumeRow{}, nil).Once()

	analytics, err := s.service.SalesAnalytics(ctx, from, to)

	s.Require().NoError(err)
	s.True(analytics.AverageRate.IsZero())
	s.Equal(int64(0), analytics.SalesCount)
}
