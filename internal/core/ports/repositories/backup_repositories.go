package repositories

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// BackupRepositoryFacade exposes the full-table reads the workbook export is
// built from. Rows come back in date order so the export is stable.
type BackupRepositoryFacade interface {
	AllCustomers(ctx context.Context) ([]domain.Customer, error)
	AllSuppliers(ctx context.Context) ([]domain.Supplier, error)
	AllDailyRates(ctx context.Context) ([]domain.DailyRate, error)
	AllPurchases(ctx context.Context) ([]domain.Purchase, error)
	AllSales(ctx context.Context) ([]domain.Sale, error)
	AllPayments(ctx context.Context) ([]domain.Payment, error)
	AllSupplierPayments(ctx context.Context) ([]domain.SupplierPayment, error)
	AllDeductions(ctx context.Context) ([]domain.CustomerDeduction, error)
	AllExpenses(ctx context.Context) ([]domain.Expense, error)

	// TableCounts returns the row count per exported table.
	TableCounts(ctx context.Context) (map[string]int64, error)
}
