package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
)

// topCustomersLimit caps the customer ranking in sales analytics.
const topCustomersLimit = 10

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
	customerRepo  portsrepo.CustomerRepositoryFacade
	saleRepo      portsrepo.SaleRepositoryFacade
	paymentRepo   portsrepo.PaymentRepositoryFacade
}

// NewReportingService creates the reporting service. The customer, sale and
// payment repositories feed the per-customer report.
func NewReportingService(
	reportingRepo portsrepo.ReportingRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		customerRepo:  customerRepo,
		saleRepo:      saleRepo,
		paymentRepo:   paymentRepo,
	}
}

func (s *reportingService) DailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	purchases, err := s.reportingRepo.PurchaseTotals(ctx, date, date)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.reportingRepo.PurchasesByVehicle(ctx, date, date)
	if err != nil {
		return nil, err
	}
	sales, err := s.reportingRepo.SaleTotals(ctx, date, date)
	if err != nil {
		return nil, err
	}
	payments, err := s.reportingRepo.PaymentsTotal(ctx, date, date)
	if err != nil {
		return nil, err
	}
	expenses, err := s.reportingRepo.ExpensesTotal(ctx, &date, &date, "")
	if err != nil {
		return nil, err
	}
	stock, err := s.reportingRepo.StockTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DailyReport{
		Date:             date,
		Purchases:        *purchases,
		Vehicles:         vehicles,
		Sales:            *sales,
		CashFromPayments: payments,
		ExpensesTotal:    expenses,
		Stock:            *stock,
	}, nil
}

func (s *reportingService) PeriodReport(ctx context.Context, from, to time.Time) (*domain.PeriodReport, error) {
	purchases, err := s.reportingRepo.PurchaseTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales, err := s.reportingRepo.SaleTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expensesTotal, err := s.reportingRepo.ExpensesTotal(ctx, &from, &to, "")
	if err != nil {
		return nil, err
	}
	byCategory, err := s.reportingRepo.ExpensesByCategory(ctx, &from, &to, "")
	if err != nil {
		return nil, err
	}
	customers, err := s.reportingRepo.SalesByCustomer(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.PeriodReport{
		From:               from,
		To:                 to,
		Purchases:          *purchases,
		Sales:              *sales,
		ExpensesTotal:      expensesTotal,
		ExpensesByCategory: byCategory,
		Customers:          customers,
	}, nil
}

func (s *reportingService) ExpenseReport(ctx context.Context, from, to *time.Time, category string) (*domain.ExpenseReport, error) {
	total, err := s.reportingRepo.ExpensesTotal(ctx, from, to, category)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.reportingRepo.ExpensesByCategory(ctx, from, to, category)
	if err != nil {
		return nil, err
	}
	byDate, err := s.reportingRepo.ExpensesByDate(ctx, from, to, category)
	if err != nil {
		return nil, err
	}

	return &domain.ExpenseReport{
		From:       from,
		To:         to,
		Category:   domain.ExpenseCategory(category),
		Total:      total,
		ByCategory: byCategory,
		ByDate:     byDate,
	}, nil
}

// CustomerReport sums one customer's trade within the bounds. Outstanding is
// range sales minus range payments, not the all-time running balance.
func (s *reportingService) CustomerReport(ctx context.Context, customerID int64, from, to *time.Time) (*domain.CustomerReport, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListSalesByCustomer(ctx, customerID, from, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByCustomer(ctx, customerID, from, to)
	if err != nil {
		return nil, err
	}

	report := &domain.CustomerReport{
		Customer: *customer,
		From:     from,
		To:       to,
	}
	for _, sale := range sales {
		report.TotalSalesAmount = report.TotalSalesAmount.Add(sale.TotalAmount())
		report.TotalKg = report.TotalKg.Add(sale.Kg)
	}
	for _, p := range payments {
		report.TotalPayments = report.TotalPayments.Add(p.Amount)
	}
	report.Outstanding = report.TotalSalesAmount.Sub(report.TotalPayments)

	return report, nil
}

func (s *reportingService) SalesAnalytics(ctx context.Context, from, to time.Time) (*domain.SalesAnalytics, error) {
	totals, err := s.reportingRepo.SaleTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	daily, err := s.reportingRepo.SalesByDay(ctx, from, to)
	if err != nil {
		return nil, err
	}
	top, err := s.reportingRepo.TopCustomersByRevenue(ctx, from, to, topCustomersLimit)
	if err != nil {
		return nil, err
	}

	var count int64
	for _, day := range daily {
		count += day.Count
	}

	averageRate := decimal.Zero
	if totals.Kg.IsPositive() {
		averageRate = totals.Revenue.Div(totals.Kg).Round(3)
	}

	return &domain.SalesAnalytics{
		From:         from,
		To:           to,
		TotalKg:      totals.Kg,
		TotalRevenue: totals.Revenue,
		SalesCount:   count,
		AverageRate:  averageRate,
		TotalProfit:  totals.Profit,
		Daily:        daily,
		TopCustomers: top,
	}, nil
}
