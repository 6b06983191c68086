package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
)

type BackupRepository struct {
	pool *pgxpool.Pool
}

func newBackupRepository(pool *pgxpool.Pool) *BackupRepository {
	return &BackupRepository{pool: pool}
}

var _ portsrepo.BackupRepositoryFacade = (*BackupRepository)(nil)

// backupTables lists every table covered by the export, in the order the
// workbook sheets are generated.
var backupTables = []string{
	"customers",
	"suppliers",
	"daily_rates",
	"purchases",
	"sales",
	"payments",
	"supplier_payments",
	"customer_deductions",
	"expenses",
}

func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *BackupRepository) AllCustomers(ctx context.Context) ([]domain.Customer, error) {
	items, err := queryAll(ctx, r.pool, `SELECT `+customerColumns+` FROM customers ORDER BY customer_id`,
		func(rows pgx.Rows) (domain.Customer, error) {
			c, err := scanCustomer(rows)
			if err != nil {
				return domain.Customer{}, err
			}
			return *c, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read customers for export: %w", err)
	}
	return items, nil
}

func (r *BackupRepository) AllSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	items, err := queryAll(ctx, r.pool, `SELECT `+supplierColumns+` FROM suppliers ORDER BY supplier_id`,
		func(rows pgx.Rows) (domain.Supplier, error) {
			s, err := scanSupplier(rows)
			if err != nil {
				return domain.Supplier{}, err
			}
			return *s, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read suppliers for export: %w", err)
	}
	return items, nil
}

func (r *BackupRepository) AllDailyRates(ctx context.Context) ([]domain.DailyRate, error) {
	items, err := queryAll(ctx, r.pool, `SELECT `+dailyRateColumns+` FROM daily_rates ORDER BY rate_date`,
		func(rows pgx.Rows) (domain.DailyRate, error) {
			dr, err := scanDailyRate(rows)
			if err != nil {
				return domain.DailyRate{}, err
			}
			return *dr, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read daily rates for export: %w", err)
	}
	return items, nil
}

func (r *BackupRepository) AllPurchases(ctx context.Context) ([]domain.Purchase, error) {
	items, err := queryAll(ctx, r.pool, purchaseSelect+` ORDER BY p.purchase_date, p.created_at`,
		func(rows pgx.Rows) (domain.Purchase, error) {
			p, err := scanPurchase(rows)
			if err != nil {
				return domain.Purchase{}, err
			}
			return *p, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read purchases for export: %w", err)
	}
	return items, nil
}

func (r *BackupRepository) AllSales(ctx context.Context) ([]domain.Sale, error) {
	items, err := queryAll(ctx, r.pool, saleSelect+` ORDER BY s.sale_date, s.created_at`,
		func(rows pgx.Rows) (domain.Sale, error) {
			s, err := scanSale(rows)
			if err != nil {
				return domain.Sale{}, err
			}
			return *s, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read sales for export: %w", err)
	}
	return items, nil
}

func (r *BackupRepository) AllPayments(ctx context.Context) ([]domain.Payment, error) {
	items, err := queryAll(ctx, r.pool, paymentSelect+` ORDER BY p.payment_date, p.created_at`,
		func(rows pgx.Rows) (domain.Payment, error) {
			p, err := scanPayment(rows)
			if err != nil {
				return domain.Payment{}, err
			}
			return *p, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read payments for export: %w", err)
	}
	return items, nil
}

func (r *BackupRepository) AllSupplierPayments(ctx context.Context) ([]domain.SupplierPayment, error) {
	items, err := queryAll(ctx, r.pool, supplierPaymentSelect+` ORDER BY p.payment_date, p.created_at`,
		func(rows pgx.Rows) (domain.SupplierPayment, error) {
			p, err := scanSupplierPayment(rows)
			if err != nil {
				return domain.SupplierPayment{}, err
			}
			return *p, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read supplier payments for export: %w", err)
	}
	return items, nil
}

func (r *BackupRepository) AllDeductions(ctx context.Context) ([]domain.CustomerDeduction, error) {
	items, err := queryAll(ctx, r.pool, deductionSelect+` ORDER BY d.deduction_date, d.created_at`,
		func(rows pgx.Rows) (domain.CustomerDeduction, error) {
			d, err := scanDeduction(rows)
			if err != nil {
				return domain.CustomerDeduction{}, err
			}
			return *d, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read deductions for export: %w", err)
	}
	return items, nil
}

func (r *BackupRepository) AllExpenses(ctx context.Context) ([]domain.Expense, error) {
	items, err := queryAll(ctx, r.pool, `SELECT `+expenseColumns+` FROM expenses ORDER BY expense_date, created_at`,
		func(rows pgx.Rows) (domain.Expense, error) {
			e, err := scanExpense(rows)
			if err != nil {
				return domain.Expense{}, err
			}
			return *e, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read expenses for export: %w", err)
	}
	return items, nil
}

// TableCounts returns the row count per exported table.
func (r *BackupRepository) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(backupTables))
	for _, table := range backupTables {
		var count int64
		if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}
