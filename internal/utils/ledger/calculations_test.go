package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/utils/ledger"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSaleDelta(t *testing.T) {
	sale := domain.Sale{
		Kg:             dec("10"),
		SaleRatePerKg:  dec("200"),
		AmountReceived: dec("1500"),
	}
	assert.True(t, dec("500").Equal(ledger.SaleDelta(sale)))
}

func TestPaymentDelta(t *testing.T) {
	payment := domain.Payment{Amount: dec("300")}
	assert.True(t, dec("-300").Equal(ledger.PaymentDelta(payment)))

	// An allocated payment already lives inside sales, so it must not be
	// counted against the balance a second time.
	payment.AutoAllocated = true
	assert.True(t, ledger.PaymentDelta(payment).IsZero())
}

func TestDeductionDelta(t *testing.T) {
	deduction := domain.CustomerDeduction{Amount: dec("75.5")}
	assert.True(t, dec("-75.5").Equal(ledger.DeductionDelta(deduction)))
}

func TestCustomerBalance(t *testing.T) {
	opening := dec("1000")
	sales := []domain.Sale{
		{Kg: dec("10"), SaleRatePerKg: dec("200"), AmountReceived: dec("1500")}, // +500
		{Kg: dec("5"), SaleRatePerKg: dec("180"), AmountReceived: dec("0")},     // +900
	}
	payments := []domain.Payment{
		{Amount: dec("400")},                      // -400
		{Amount: dec("999"), AutoAllocated: true}, // 0
	}
	deductions := []domain.CustomerDeduction{
		{Amount: dec("100")}, // -100
	}

	balance := ledger.CustomerBalance(opening, sales, payments, deductions)
	assert.True(t, dec("1900").Equal(balance), "got %s", balance)
}

func TestCustomerBalance_OrderIndependent(t *testing.T) {
	opening := dec("0")
	sales := []domain.Sale{
		{Kg: dec("3"), SaleRatePerKg: dec("100"), AmountReceived: dec("50")},
		{Kg: dec("7"), SaleRatePerKg: dec("120"), AmountReceived: dec("840")},
	}
	payments := []domain.Payment{{Amount: dec("25")}, {Amount: dec("125")}}
	deductions := []domain.CustomerDeduction{{Amount: dec("10")}}

	forward := ledger.CustomerBalance(opening, sales, payments, deductions)

	reversedSales := []domain.Sale{sales[1], sales[0]}
	reversedPayments := []domain.Payment{payments[1], payments[0]}
	backward := ledger.CustomerBalance(opening, reversedSales, reversedPayments, deductions)

	assert.True(t, forward.Equal(backward))
	assert.True(t, dec("90").Equal(forward), "got %s", forward)
}

func TestSupplierBalance(t *testing.T) {
	opening := dec("500")
	purchases := []domain.Purchase{
		{Kg: dec("100"), CostRatePerKg: dec("150"), AmountPaid: dec("10000")}, // +5000
	}
	payments := []domain.SupplierPayment{
		{Amount: dec("2000")}, // -2000
	}

	balance := ledger.SupplierBalance(opening, purchases, payments)
	assert.True(t, dec("3500").Equal(balance), "got %s", balance)
}
