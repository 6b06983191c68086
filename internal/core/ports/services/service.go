package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Customer        CustomerSvcFacade
	Supplier        SupplierSvcFacade
	DailyRate       DailyRateSvcFacade
	Purchase        PurchaseSvcFacade
	Sale            SaleSvcFacade
	Payment         PaymentSvcFacade
	SupplierPayment SupplierPaymentSvcFacade
	Deduction       DeductionSvcFacade
	Expense         ExpenseSvcFacade
	User            UserSvcFacade
	Reporting       ReportingService
	Backup          BackupService
}
