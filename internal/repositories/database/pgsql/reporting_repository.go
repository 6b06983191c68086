package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
)

type ReportingRepository struct {
	pool *pgxpool.Pool
}

// newReportingRepository creates a read-only repository for report
// aggregations.
func newReportingRepository(pool *pgxpool.Pool) *ReportingRepository {
	return &ReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepositoryFacade = (*ReportingRepository)(nil)

// PurchaseTotals aggregates purchases between from and to. Derived products
// are rounded per row before summing so totals match the per-row figures the
// API returns.
func (r *ReportingRepository) PurchaseTotals(ctx context.Context, from, to time.Time) (*domain.PurchaseTotals, error) {
	var t domain.PurchaseTotals
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(kg), 0),
		       COALESCE(SUM(ROUND(kg * cost_rate_per_kg, 3)), 0),
		       COALESCE(SUM(ROUND(kg * cost_rate_per_kg, 3) - amount_paid), 0),
		       COALESCE(SUM(amount_paid), 0)
		FROM purchases
		WHERE purchase_date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&t.Kg, &t.Cost, &t.Borrow, &t.CashPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate purchases: %w", err)
	}
	return &t, nil
}

// SaleTotals aggregates sales between from and to.
func (r *ReportingRepository) SaleTotals(ctx context.Context, from, to time.Time) (*domain.SaleTotals, error) {
	var t domain.SaleTotals
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(kg), 0),
		       COALESCE(SUM(ROUND(kg * sale_rate_per_kg, 3)), 0),
		       COALESCE(SUM(amount_received), 0),
		       COALESCE(SUM(ROUND(kg * sale_rate_per_kg, 3) - amount_received), 0),
		       COALESCE(SUM(ROUND(kg * (sale_rate_per_kg - cost_rate_snapshot), 3)), 0)
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&t.Kg, &t.Revenue, &t.Received, &t.Borrow, &t.Profit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	return &t, nil
}

// PurchasesByVehicle groups purchases between from and to by vehicle.
func (r *ReportingRepository) PurchasesByVehicle(ctx context.Context, from, to time.Time) ([]domain.VehicleTotals, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT COALESCE(NULLIF(vehicle_number, ''), 'Not Specified') AS vehicle,
		       COALESCE(SUM(kg), 0),
		       COALESCE(SUM(ROUND(kg * cost_rate_per_kg, 3)), 0),
		       COUNT(*)
		FROM purchases
		WHERE purchase_date BETWEEN $1 AND $2
		GROUP BY vehicle
		ORDER BY vehicle`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to group purchases by vehicle: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.VehicleTotals, 0)
	for rows.Next() {
		var v domain.VehicleTotals
		if err := rows.Scan(&v.Vehicle, &v.Kg, &v.Cost, &v.Count); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		totals = append(totals, v)
	}
	return totals, rows.Err()
}

// PaymentsTotal sums customer payments between from and to.
func (r *ReportingRepository) PaymentsTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE payment_date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}

func expenseConds(from, to *time.Time, category string) *condBuilder {
	b := &condBuilder{}
	if from != nil {
		b.add(`expense_date >= $%d`, *from)
	}
	if to != nil {
		b.add(`expense_date <= $%d`, *to)
	}
	if category != "" {
		b.add(`category = $%d`, category)
	}
	return b
}

// ExpensesTotal sums expenses between the optional bounds.
func (r *ReportingRepository) ExpensesTotal(ctx context.Context, from, to *time.Time, category string) (decimal.Decimal, error) {
	b := expenseConds(from, to, category)
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`+b.where(), b.args...).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

// ExpensesByCategory sums expenses per category between the optional bounds.
func (r *ReportingRepository) ExpensesByCategory(ctx context.Context, from, to *time.Time, category string) ([]domain.CategoryTotal, error) {
	b := expenseConds(from, to, category)
	rows, err := r.pool.Query(ctx,
		`SELECT category, COALESCE(SUM(amount), 0) FROM expenses`+b.where()+` GROUP BY category ORDER BY category`,
		b.args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by category: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.CategoryTotal, 0)
	for rows.Next() {
		var ct domain.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		totals = append(totals, ct)
	}
	return totals, rows.Err()
}

// ExpensesByDate sums expenses per day between the optional bounds.
func (r *ReportingRepository) ExpensesByDate(ctx context.Context, from, to *time.Time, category string) ([]domain.DateTotal, error) {
	b := expenseConds(from, to, category)
	rows, err := r.pool.Query(ctx,
		`SELECT expense_date, COALESCE(SUM(amount), 0) FROM expenses`+b.where()+` GROUP BY expense_date ORDER BY expense_date`,
		b.args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by date: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.DateTotal, 0)
	for rows.Next() {
		var dt domain.DateTotal
		if err := rows.Scan(&dt.Date, &dt.Total); err != nil {
			return nil, fmt.Errorf("failed to scan date row: %w", err)
		}
		totals = append(totals, dt)
	}
	return totals, rows.Err()
}

// SalesByCustomer groups sales between from and to by customer. The running
// balance carried on each row is the customer's current all-time balance.
func (r *ReportingRepository) SalesByCustomer(ctx context.Context, from, to time.Time) ([]domain.CustomerSalesRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.customer_id, c.name,
		       COALESCE(SUM(s.kg), 0),
		       COALESCE(SUM(ROUND(s.kg * s.sale_rate_per_kg, 3)), 0),
		       COALESCE(SUM(ROUND(s.kg * (s.sale_rate_per_kg - s.cost_rate_snapshot), 3)), 0),
		       c.running_balance
		FROM sales s
		JOIN customers c ON c.customer_id = s.customer_id
		WHERE s.sale_date BETWEEN $1 AND $2
		GROUP BY c.customer_id, c.name, c.running_balance
		ORDER BY c.name`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to group sales by customer: %w", err)
	}
	defer rows.Close()

	result := make([]domain.CustomerSalesRow, 0)
	for rows.Next() {
		var row domain.CustomerSalesRow
		if err := rows.Scan(&row.CustomerID, &row.CustomerName, &row.Kg, &row.Revenue, &row.Profit, &row.RunningBalance); err != nil {
			return nil, fmt.Errorf("failed to scan customer sales row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// SalesByDay groups sales between from and to by calendar day.
func (r *ReportingRepository) SalesByDay(ctx context.Context, from, to time.Time) ([]domain.DailySalesRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT sale_date,
		       COALESCE(SUM(kg), 0),
		       COALESCE(SUM(ROUND(kg * sale_rate_per_kg, 3)), 0),
		       COALESCE(SUM(ROUND(kg * (sale_rate_per_kg - cost_rate_snapshot), 3)), 0),
		       COUNT(*)
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2
		GROUP BY sale_date
		ORDER BY sale_date`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to group sales by day: %w", err)
	}
	defer rows.Close()

	result := make([]domain.DailySalesRow, 0)
	for rows.Next() {
		var row domain.DailySalesRow
		if err := rows.Scan(&row.Date, &row.Kg, &row.Revenue, &row.Profit, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily sales row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// TopCustomersByRevenue ranks customers by sale revenue between from and to.
func (r *ReportingRepository) TopCustomersByRevenue(ctx context.Context, from, to time.Time, limit int) ([]domain.CustomerVolumeRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.customer_id, c.name,
		       COALESCE(SUM(s.kg), 0),
		       COALESCE(SUM(ROUND(s.kg * s.sale_rate_per_kg, 3)), 0),
		       COUNT(*)
		FROM sales s
		JOIN customers c ON c.customer_id = s.customer_id
		WHERE s.sale_date BETWEEN $1 AND $2
		GROUP BY c.customer_id, c.name
		ORDER BY SUM(ROUND(s.kg * s.sale_rate_per_kg, 3)) DESC
		LIMIT $3`,
		from, to, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rank customers: %w", err)
	}
	defer rows.Close()

	result := make([]domain.CustomerVolumeRow, 0)
	for rows.Next() {
		var row domain.CustomerVolumeRow
		if err := rows.Scan(&row.CustomerID, &row.CustomerName, &row.Kg, &row.Revenue, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan customer volume row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// StockTotals returns the all-time purchased and sold weights.
func (r *ReportingRepository) StockTotals(ctx context.Context) (*domain.StockTotals, error) {
	var t domain.StockTotals
	err := r.pool.QueryRow(ctx, `
		SELECT (SELECT COALESCE(SUM(kg), 0) FROM purchases),
		       (SELECT COALESCE(SUM(kg), 0) FROM sales)`,
	).Scan(&t.PurchasedKg, &t.SoldKg)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stock totals: %w", err)
	}
	return &t, nil
}
