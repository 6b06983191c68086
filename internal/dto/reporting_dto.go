package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// VehicleSummaryResponse is one vehicle's share of a day's purchases.
type VehicleSummaryResponse struct {
	Kg    decimal.Decimal `json:"kg"`
	Cost  decimal.Decimal `json:"cost"`
	Count int64           `json:"count"`
}

// DailyReportResponse represents the single-day business report.
type DailyReportResponse struct {
	Date               string                            `json:"date"`
	PurchasesKg        decimal.Decimal                   `json:"purchases_kg"`
	PurchasesCost      decimal.Decimal                   `json:"purchases_cost"`
	PurchasesByVehicle map[string]VehicleSummaryResponse `json:"purchases_by_vehicle"`
	SalesKg            decimal.Decimal                   `json:"sales_kg"`
	SalesRevenue       decimal.Decimal                   `json:"sales_revenue"`
	Profit             decimal.Decimal                   `json:"profit"`
	CashReceived       decimal.Decimal                   `json:"cash_received"`
	CashFromSales      decimal.Decimal                   `json:"cash_from_sales"`
	CashFromPayments   decimal.Decimal                   `json:"cash_from_payments"`
	Borrow             decimal.Decimal                   `json:"borrow"`
	ExpensesTotal      decimal.Decimal                   `json:"expenses_total"`
	ClosingStock       decimal.Decimal                   `json:"closing_stock"`
}

// ToDailyReportResponse converts a domain daily report to its DTO.
func ToDailyReportResponse(r *domain.DailyReport) DailyReportResponse {
	vehicles := make(map[string]VehicleSummaryResponse, len(r.Vehicles))
	for _, v := range r.Vehicles {
		vehicles[v.Vehicle] = VehicleSummaryResponse{Kg: v.Kg, Cost: v.Cost, Count: v.Count}
	}
	return DailyReportResponse{
		Date:               fmtDate(r.Date),
		PurchasesKg:        r.Purchases.Kg,
		PurchasesCost:      r.Purchases.Cost,
		PurchasesByVehicle: vehicles,
		SalesKg:            r.Sales.Kg,
		SalesRevenue:       r.Sales.Revenue,
		Profit:             r.Sales.Profit,
		CashReceived:       r.Sales.Received.Add(r.CashFromPayments),
		CashFromSales:      r.Sales.Received,
		CashFromPayments:   r.CashFromPayments,
		Borrow:             r.Sales.Revenue.Sub(r.Sales.Received),
		ExpensesTotal:      r.ExpensesTotal,
		ClosingStock:       r.Stock.ClosingStock(),
	}
}

// CustomerSalesSummaryResponse is one customer's slice of a period report.
// RunningBalance is the customer's current all-time balance, not a period
// figure.
type CustomerSalesSummaryResponse struct {
	Kg             decimal.Decimal `json:"kg"`
	Revenue        decimal.Decimal `json:"revenue"`
	Profit         decimal.Decimal `json:"profit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// PeriodReportResponse represents the date-range business report.
type PeriodReportResponse struct {
	StartDate          string                                  `json:"start_date"`
	EndDate            string                                  `json:"end_date"`
	PurchasesKg        decimal.Decimal                         `json:"purchases_kg"`
	PurchasesCost      decimal.Decimal                         `json:"purchases_cost"`
	SalesKg            decimal.Decimal                         `json:"sales_kg"`
	SalesRevenue       decimal.Decimal                         `json:"sales_revenue"`
	Profit             decimal.Decimal                         `json:"profit"`
	CashReceived       decimal.Decimal                         `json:"cash_received"`
	Borrow             decimal.Decimal                         `json:"borrow"`
	ExpensesTotal      decimal.Decimal                         `json:"expenses_total"`
	ExpensesByCategory map[string]decimal.Decimal              `json:"expenses_by_category"`
	CustomerBreakdown  map[string]CustomerSalesSummaryResponse `json:"customer_breakdown"`
}

// ToPeriodReportResponse converts a domain period report to its DTO.
func ToPeriodReportResponse(r *domain.PeriodReport) PeriodReportResponse {
	byCategory := make(map[string]decimal.Decimal, len(r.ExpensesByCategory))
	for _, ct := range r.ExpensesByCategory {
		byCategory[string(ct.Category)] = ct.Total
	}
	customers := make(map[string]CustomerSalesSummaryResponse, len(r.Customers))
	for _, row := range r.Customers {
		customers[row.CustomerName] = CustomerSalesSummaryResponse{
			Kg:             row.Kg,
			Revenue:        row.Revenue,
			Profit:         row.Profit,
			RunningBalance: row.RunningBalance,
		}
	}
	return PeriodReportResponse{
		StartDate:          fmtDate(r.From),
		EndDate:            fmtDate(r.To),
		PurchasesKg:        r.Purchases.Kg,
		PurchasesCost:      r.Purchases.Cost,
		SalesKg:            r.Sales.Kg,
		SalesRevenue:       r.Sales.Revenue,
		Profit:             r.Sales.Profit,
		CashReceived:       r.Sales.Received,
		Borrow:             r.Sales.Revenue.Sub(r.Sales.Received),
		ExpensesTotal:      r.ExpensesTotal,
		ExpensesByCategory: byCategory,
		CustomerBreakdown:  customers,
	}
}

// ExpenseReportResponse represents the expense breakdown report.
type ExpenseReportResponse struct {
	StartDate   *string                    `json:"start_date"`
	EndDate     *string                    `json:"end_date"`
	Category    string                     `json:"category"`
	TotalAmount decimal.Decimal            `json:"total_amount"`
	ByCategory  map[string]decimal.Decimal `json:"by_category"`
	ByDate      map[string]decimal.Decimal `json:"by_date"`
}

// ToExpenseReportResponse converts a domain expense report to its DTO.
func ToExpenseReportResponse(r *domain.ExpenseReport) ExpenseReportResponse {
	byCategory := make(map[string]decimal.Decimal, len(r.ByCategory))
	for _, ct := range r.ByCategory {
		byCategory[string(ct.Category)] = ct.Total
	}
	byDate := make(map[string]decimal.Decimal, len(r.ByDate))
	for _, dt := range r.ByDate {
		byDate[fmtDate(dt.Date)] = dt.Total
	}
	return ExpenseReportResponse{
		StartDate:   fmtDatePtr(r.From),
		EndDate:     fmtDatePtr(r.To),
		Category:    string(r.Category),
		TotalAmount: r.Total,
		ByCategory:  byCategory,
		ByDate:      byDate,
	}
}

// CustomerBriefResponse identifies a customer inside a report payload.
type CustomerBriefResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// CustomerReportResponse represents the per-customer trade report.
type CustomerReportResponse struct {
	Customer         CustomerBriefResponse `json:"customer"`
	StartDate        *string               `json:"start_date"`
	EndDate          *string               `json:"end_date"`
	TotalSalesAmount decimal.Decimal       `json:"total_sales_amount"`
	TotalPayments    decimal.Decimal       `json:"total_payments"`
	TotalKg          decimal.Decimal       `json:"total_kg"`
	Outstanding      decimal.Decimal       `json:"outstanding"`
}

// ToCustomerReportResponse converts a domain customer report to its DTO.
func ToCustomerReportResponse(r *domain.CustomerReport) CustomerReportResponse {
	return CustomerReportResponse{
		Customer: CustomerBriefResponse{
			ID:             r.Customer.CustomerID,
			Name:           r.Customer.Name,
			OpeningBalance: r.Customer.OpeningBalance,
			RunningBalance: r.Customer.RunningBalance,
		},
		StartDate:        fmtDatePtr(r.From),
		EndDate:          fmtDatePtr(r.To),
		TotalSalesAmount: r.TotalSalesAmount,
		TotalPayments:    r.TotalPayments,
		TotalKg:          r.TotalKg,
		Outstanding:      r.Outstanding,
	}
}

// DateRangeResponse echoes the requested range of an analytics report.
type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SalesAnalyticsSummaryResponse holds the headline analytics figures.
type SalesAnalyticsSummaryResponse struct {
	TotalKgsSold     decimal.Decimal `json:"total_kgs_sold"`
	TotalSalePrice   decimal.Decimal `json:"total_sale_price"`
	TotalSalesCount  int64           `json:"total_sales_count"`
	AverageRatePerKg decimal.Decimal `json:"average_rate_per_kg"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
}

// DailySalesResponse is one day's slice of the analytics range.
type DailySalesResponse struct {
	TotalKgs       decimal.Decimal `json:"total_kgs"`
	TotalSalePrice decimal.Decimal `json:"total_sale_price"`
	SalesCount     int64           `json:"sales_count"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
}

// TopCustomerResponse ranks one customer by sale revenue.
type TopCustomerResponse struct {
	Name           string          `json:"name"`
	TotalKgs       decimal.Decimal `json:"total_kgs"`
	TotalSalePrice decimal.Decimal `json:"total_sale_price"`
	SalesCount     int64           `json:"sales_count"`
}

// SalesAnalyticsResponse represents the sales analytics report.
type SalesAnalyticsResponse struct {
	DateRange      DateRangeResponse             `json:"date_range"`
	Analytics      SalesAnalyticsSummaryResponse `json:"analytics"`
	DailyBreakdown map[string]DailySalesResponse `json:"daily_breakdown"`
	TopCustomers   []TopCustomerResponse         `json:"top_customers"`
}

// ToSalesAnalyticsResponse converts domain sales analytics to its DTO.
func ToSalesAnalyticsResponse(r *domain.SalesAnalytics) SalesAnalyticsResponse {
	daily := make(map[string]DailySalesResponse, len(r.Daily))
	for _, d := range r.Daily {
		daily[fmtDate(d.Date)] = DailySalesResponse{
			TotalKgs:       d.Kg,
			TotalSalePrice: d.Revenue,
			SalesCount:     d.Count,
			TotalProfit:    d.Profit,
		}
	}
	top := make([]TopCustomerResponse, len(r.TopCustomers))
	for i, c := range r.TopCustomers {
		top[i] = TopCustomerResponse{
			Name:           c.CustomerName,
			TotalKgs:       c.Kg,
			TotalSalePrice: c.Revenue,
			SalesCount:     c.Count,
		}
	}
	return SalesAnalyticsResponse{
		DateRange: DateRangeResponse{
			StartDate: fmtDate(r.From),
			EndDate:   fmtDate(r.To),
		},
		Analytics: SalesAnalyticsSummaryResponse{
			TotalKgsSold:     r.TotalKg,
			TotalSalePrice:   r.TotalRevenue,
			TotalSalesCount:  r.SalesCount,
			AverageRatePerKg: r.AverageRate,
			TotalProfit:      r.TotalProfit,
		},
		DailyBreakdown: daily,
		TopCustomers:   top,
	}
}
