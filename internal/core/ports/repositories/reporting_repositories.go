package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// ReportingRepositoryFacade defines the read-only aggregations behind the
// report endpoints. All ranges are inclusive on both ends.
type ReportingRepositoryFacade interface {
	// PurchaseTotals aggregates purchases between from and to.
	PurchaseTotals(ctx context.Context, from, to time.Time) (*domain.PurchaseTotals, error)

	// SaleTotals aggregates sales between from and to.
	SaleTotals(ctx context.Context, from, to time.Time) (*domain.SaleTotals, error)

	// PurchasesByVehicle groups purchases between from and to by vehicle.
	// Purchases without a vehicle number group under "Not Specified".
	PurchasesByVehicle(ctx context.Context, from, to time.Time) ([]domain.VehicleTotals, error)

	// PaymentsTotal sums customer payments between from and to.
	PaymentsTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// ExpensesTotal sums expenses between the optional bounds, optionally
	// restricted to one category.
	ExpensesTotal(ctx context.Context, from, to *time.Time, category string) (decimal.Decimal, error)

	// ExpensesByCategory sums expenses per category between the optional bounds.
	ExpensesByCategory(ctx context.Context, from, to *time.Time, category string) ([]domain.CategoryTotal, error)

	// ExpensesByDate sums expenses per day between the optional bounds,
	// optionally restricted to one category.
	ExpensesByDate(ctx context.Context, from, to *time.Time, category string) ([]domain.DateTotal, error)

	// SalesByCustomer groups sales between from and to by customer, carrying
	// each customer's current running balance.
	SalesByCustomer(ctx context.Context, from, to time.Time) ([]domain.CustomerSalesRow, error)

	// SalesByDay groups sales between from and to by calendar day.
	SalesByDay(ctx context.Context, from, to time.Time) ([]domain.DailySalesRow, error)

	// TopCustomersByRevenue ranks customers by sale revenue between from and
	// to, returning at most limit rows.
	TopCustomersByRevenue(ctx context.Context, from, to time.Time, limit int) ([]domain.CustomerVolumeRow, error)

	// StockTotals returns the all-time purchased and sold weights.
	StockTotals(ctx context.Context) (*domain.StockTotals, error)
}
