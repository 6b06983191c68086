package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseTotals aggregates purchase rows over a date range.
type PurchaseTotals struct {
	Kg       decimal.Decimal
	Cost     decimal.Decimal
	Borrow   decimal.Decimal
	CashPaid decimal.Decimal
}

// SaleTotals aggregates sale rows over a date range.
type SaleTotals struct {
	Kg       decimal.Decimal
	Revenue  decimal.Decimal
	Received decimal.Decimal
	Borrow   decimal.Decimal
	Profit   decimal.Decimal
}

// VehicleTotals groups purchases by the vehicle that carried them.
type VehicleTotals struct {
	Vehicle string
	Kg      decimal.Decimal
	Cost    decimal.Decimal
	Count   int64
}

// CategoryTotal is an expense sum for one category.
type CategoryTotal struct {
	Category ExpenseCategory
	Total    decimal.Decimal
}

// DateTotal is an expense sum for one calendar day.
type DateTotal struct {
	Date  time.Time
	Total decimal.Decimal
}

// CustomerSalesRow is one customer's slice of a period's sales.
type CustomerSalesRow struct {
	CustomerID     int64
	CustomerName   string
	Kg             decimal.Decimal
	Revenue        decimal.Decimal
	Profit         decimal.Decimal
	RunningBalance decimal.Decimal
}

// DailySalesRow is one day's slice of a sales analytics range.
type DailySalesRow struct {
	Date    time.Time
	Kg      decimal.Decimal
	Revenue decimal.Decimal
	Profit  decimal.Decimal
	Count   int64
}

// CustomerVolumeRow ranks a customer by kg bought over a range.
type CustomerVolumeRow struct {
	CustomerID   int64
	CustomerName string
	Kg           decimal.Decimal
	Revenue      decimal.Decimal
	Count        int64
}

// StockTotals carries the all-time purchased and sold weights used to derive
// closing stock.
type StockTotals struct {
	PurchasedKg decimal.Decimal
	SoldKg      decimal.Decimal
}

// ClosingStock is purchased weight minus sold weight over all time.
func (s StockTotals) ClosingStock() decimal.Decimal {
	return s.PurchasedKg.Sub(s.SoldKg)
}

// DailyReport is the assembled single-day business report.
type DailyReport struct {
	Date             time.Time
	Purchases        PurchaseTotals
	Vehicles         []VehicleTotals
	Sales            SaleTotals
	CashFromPayments decimal.Decimal
	ExpensesTotal    decimal.Decimal
	Stock            StockTotals
}

// PeriodReport is the assembled date-range business report.
type PeriodReport struct {
	From               time.Time
	To                 time.Time
	Purchases          PurchaseTotals
	Sales              SaleTotals
	ExpensesTotal      decimal.Decimal
	ExpensesByCategory []CategoryTotal
	Customers          []CustomerSalesRow
}

// ExpenseReport breaks expenses down by category and day over an optional
// range.
type ExpenseReport struct {
	From       *time.Time
	To         *time.Time
	Category   ExpenseCategory
	Total      decimal.Decimal
	ByCategory []CategoryTotal
	ByDate     []DateTotal
}

// CustomerReport summarizes one customer's trade over an optional range.
// Outstanding is sales minus payments within the range, independent of the
// customer's all-time running balance.
type CustomerReport struct {
	Customer         Customer
	From             *time.Time
	To               *time.Time
	TotalSalesAmount decimal.Decimal
	TotalPayments    decimal.Decimal
	TotalKg          decimal.Decimal
	Outstanding      decimal.Decimal
}

// SalesAnalytics summarizes sale volume and pricing over a range.
type SalesAnalytics struct {
	From         time.Time
	To           time.Time
	TotalKg      decimal.Decimal
	TotalRevenue decimal.Decimal
	SalesCount   int64
	AverageRate  decimal.Decimal
	TotalProfit  decimal.Decimal
	Daily        []DailySalesRow
	TopCustomers []CustomerVolumeRow
}
