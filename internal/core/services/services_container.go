package services

import (
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo, repos.SaleRepo, repos.PaymentRepo, repos.DeductionRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.DailyRate = NewDailyRateService(repos.DailyRateRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.DailyRateRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.DailyRateRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo)
	container.SupplierPayment = NewSupplierPaymentService(repos.SupplierPaymentRepo)
	container.Deduction = NewDeductionService(repos.DeductionRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.CustomerRepo, repos.SaleRepo, repos.PaymentRepo)
	container.Backup = NewBackupService(repos.BackupRepo)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.CustomerSvcFacade  = (*customerService)(nil)
	_ portssvc.SupplierSvcFacade  = (*supplierService)(nil)
	_ portssvc.SaleSvcFacade      = (*saleService)(nil)
	_ portssvc.PaymentSvcFacade   = (*paymentService)(nil)
	_ portssvc.ReportingService   = (*reportingService)(nil)
	_ portssvc.BackupService      = (*backupService)(nil)
	_ portssvc.DailyRateSvcFacade = (*dailyRateService)(nil)
)
