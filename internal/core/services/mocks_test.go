package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
)

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Customer, int64, error) {
	args := m.Called(ctx, filter)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	return customers, args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	var saved *domain.Customer
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Customer)
	}
	return saved, args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	var updated *domain.Customer
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Customer)
	}
	return updated, args.Error(1)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerForUpdate(ctx context.Context, tx pgx.Tx, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, tx, customerID)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) AdjustCustomerBalanceInTx(ctx context.Context, tx pgx.Tx, customerID int64, delta decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, customerID, delta, now)
	return args.Error(0)
}

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	var sale *domain.Sale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.Sale)
	}
	return sale, args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Sale, int64, error) {
	args := m.Called(ctx, filter)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Get(1).(int64), args.Error(2)
}

func (m *MockSaleRepository) ListSalesByCustomer(ctx context.Context, customerID int64, from, to *time.Time) ([]domain.Sale, error) {
	args := m.Called(ctx, customerID, from, to)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	args := m.Called(ctx, sale)
	var saved *domain.Sale
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Sale)
	}
	return saved, args.Error(1)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	args := m.Called(ctx, sale)
	var updated *domain.Sale
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Sale)
	}
	return updated, args.Error(1)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, saleID int64) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Payment, int64, error) {
	args := m.Called(ctx, filter)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) ListPaymentsByCustomer(ctx context.Context, customerID int64, from, to *time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, customerID, from, to)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	var saved *domain.Payment
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Payment)
	}
	return saved, args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	var updated *domain.Payment
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Payment)
	}
	return updated, args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentRepository) AllocatePayment(ctx context.Context, paymentID int64) (*domain.Payment, []domain.Sale, error) {
	args := m.Called(ctx, paymentID)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	var sales []domain.Sale
	if args.Get(1) != nil {
		sales = args.Get(1).([]domain.Sale)
	}
	return payment, sales, args.Error(2)
}

// --- Mock DeductionRepository ---

type MockDeductionRepository struct {
	mock.Mock
}

func (m *MockDeductionRepository) FindDeductionByID(ctx context.Context, deductionID int64) (*domain.CustomerDeduction, error) {
	args := m.Called(ctx, deductionID)
	var deduction *domain.CustomerDeduction
	if args.Get(0) != nil {
		deduction = args.Get(0).(*domain.CustomerDeduction)
	}
	return deduction, args.Error(1)
}

func (m *MockDeductionRepository) ListDeductions(ctx context.Context, filter portsrepo.ListFilter) ([]domain.CustomerDeduction, int64, error) {
	args := m.Called(ctx, filter)
	var deductions []domain.CustomerDeduction
	if args.Get(0) != nil {
		deductions = args.Get(0).([]domain.CustomerDeduction)
	}
	return deductions, args.Get(1).(int64), args.Error(2)
}

func (m *MockDeductionRepository) ListDeductionsByCustomer(ctx context.Context, customerID int64, from, to *time.Time) ([]domain.CustomerDeduction, error) {
	args := m.Called(ctx, customerID, from, to)
	var deductions []domain.CustomerDeduction
	if args.Get(0) != nil {
		deductions = args.Get(0).([]domain.CustomerDeduction)
	}
	return deductions, args.Error(1)
}

func (m *MockDeductionRepository) SaveDeduction(ctx context.Context, deduction domain.CustomerDeduction) (*domain.CustomerDeduction, error) {
	args := m.Called(ctx, deduction)
	var saved *domain.CustomerDeduction
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.CustomerDeduction)
	}
	return saved, args.Error(1)
}

func (m *MockDeductionRepository) UpdateDeduction(ctx context.Context, deduction domain.CustomerDeduction) (*domain.CustomerDeduction, error) {
	args := m.Called(ctx, deduction)
	var updated *domain.CustomerDeduction
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.CustomerDeduction)
	}
	return updated, args.Error(1)
}

func (m *MockDeductionRepository) DeleteDeduction(ctx context.Context, deductionID int64) error {
	args := m.Called(ctx, deductionID)
	return args.Error(0)
}

// --- Mock DailyRateRepository ---

type MockDailyRateRepository struct {
	mock.Mock
}

func (m *MockDailyRateRepository) FindDailyRateByID(ctx context.Context, rateID int64) (*domain.DailyRate, error) {
	args := m.Called(ctx, rateID)
	var rate *domain.DailyRate
	if args.Get(0) != nil {
		rate = args.Get(0).(*domain.DailyRate)
	}
	return rate, args.Error(1)
}

func (m *MockDailyRateRepository) FindRateForDate(ctx context.Context, date time.Time) (*domain.DailyRate, error) {
	args := m.Called(ctx, date)
	var rate *domain.DailyRate
	if args.Get(0) != nil {
		rate = args.Get(0).(*domain.DailyRate)
	}
	return rate, args.Error(1)
}

func (m *MockDailyRateRepository) ListDailyRates(ctx context.Context, filter portsrepo.ListFilter) ([]domain.DailyRate, int64, error) {
	args := m.Called(ctx, filter)
	var rates []domain.DailyRate
	if args.Get(0) != nil {
		rates = args.Get(0).([]domain.DailyRate)
	}
	return rates, args.Get(1).(int64), args.Error(2)
}

func (m *MockDailyRateRepository) SaveDailyRate(ctx context.Context, rate domain.DailyRate) (*domain.DailyRate, error) {
	args := m.Called(ctx, rate)
	var saved *domain.DailyRate
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.DailyRate)
	}
	return saved, args.Error(1)
}

func (m *MockDailyRateRepository) UpdateDailyRate(ctx context.Context, rate domain.DailyRate) (*domain.DailyRate, error) {
	args := m.Called(ctx, rate)
	var updated *domain.DailyRate
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.DailyRate)
	}
	return updated, args.Error(1)
}

func (m *MockDailyRateRepository) DeleteDailyRate(ctx context.Context, rateID int64) error {
	args := m.Called(ctx, rateID)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
