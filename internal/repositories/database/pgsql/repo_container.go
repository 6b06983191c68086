package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider creates all pgsql-backed repositories sharing the
// given pool. Repositories that move money are handed the customer or
// supplier repository so balance adjustments run inside their transactions.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	customerRepo := newPgxCustomerRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)

	return &portsrepo.RepositoryProvider{
		CustomerRepo:        customerRepo,
		SupplierRepo:        supplierRepo,
		DailyRateRepo:       newPgxDailyRateRepository(dbPool),
		PurchaseRepo:        newPgxPurchaseRepository(dbPool, supplierRepo),
		SaleRepo:            newPgxSaleRepository(dbPool, customerRepo),
		PaymentRepo:         newPgxPaymentRepository(dbPool, customerRepo),
		SupplierPaymentRepo: newPgxSupplierPaymentRepository(dbPool, supplierRepo),
		DeductionRepo:       newPgxDeductionRepository(dbPool, customerRepo),
		ExpenseRepo:         newPgxExpenseRepository(dbPool),
		UserRepo:            newPgxUserRepository(dbPool),
		ReportingRepo:       newReportingRepository(dbPool),
		BackupRepo:          newBackupRepository(dbPool),
	}
}
