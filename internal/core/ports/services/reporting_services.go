package services

import (
	"context"
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// ReportingService defines operations for generating business reports
type ReportingService interface {
	// DailyReport generates the single-day report for the given date.
	DailyReport(ctx context.Context, date time.Time) (*domain.DailyReport, error)

	// PeriodReport generates the report for an inclusive date range.
	PeriodReport(ctx context.Context, from, to time.Time) (*domain.PeriodReport, error)

	// ExpenseReport breaks expenses down by category and day over an optional
	// range, optionally restricted to one category.
	ExpenseReport(ctx context.Context, from, to *time.Time, category string) (*domain.ExpenseReport, error)

	// CustomerReport summarizes one customer's trade over an optional range.
	CustomerReport(ctx context.Context, customerID int64, from, to *time.Time) (*domain.CustomerReport, error)

	// SalesAnalytics summarizes sale volume and pricing over a range.
	SalesAnalytics(ctx context.Context, from, to time.Time) (*domain.SalesAnalytics, error)
}
