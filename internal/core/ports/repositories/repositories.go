package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CustomerRepo        CustomerRepositoryFacade
	SupplierRepo        SupplierRepositoryFacade
	DailyRateRepo       DailyRateRepositoryFacade
	PurchaseRepo        PurchaseRepositoryFacade
	SaleRepo            SaleRepositoryFacade
	PaymentRepo         PaymentRepositoryFacade
	SupplierPaymentRepo SupplierPaymentRepositoryFacade
	DeductionRepo       DeductionRepositoryFacade
	ExpenseRepo         ExpenseRepositoryFacade
	UserRepo            UserRepositoryFacade
	ReportingRepo       ReportingRepositoryFacade
	BackupRepo          BackupRepositoryFacade
}
