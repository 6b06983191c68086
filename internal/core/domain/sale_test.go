package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSale_DerivedAmounts(t *testing.T) {
	tests := []struct {
		name       string
		sale       domain.Sale
		wantTotal  string
		wantBorrow string
		wantProfit string
	}{
		{
			name: "partially paid sale",
			sale: domain.Sale{
				Kg:               dec("10"),
				SaleRatePerKg:    dec("200"),
				CostRateSnapshot: dec("150"),
				AmountReceived:   dec("1500"),
			},
			wantTotal:  "2000",
			wantBorrow: "500",
			wantProfit: "500",
		},
		{
			name: "fully paid sale has zero borrow",
			sale: domain.Sale{
				Kg:               dec("5.5"),
				SaleRatePerKg:    dec("180"),
				CostRateSnapshot: dec("160"),
				AmountReceived:   dec("990"),
			},
			wantTotal:  "990",
			wantBorrow: "0",
			wantProfit: "110",
		},
		{
			name: "overpaid sale yields negative borrow",
			sale: domain.Sale{
				Kg:               dec("2"),
				SaleRatePerKg:    dec("100"),
				CostRateSnapshot: dec("90"),
				AmountReceived:   dec("250"),
			},
			wantTotal:  "200",
			wantBorrow: "-50",
			wantProfit: "20",
		},
		{
			name: "fractional kg rounds to three decimals",
			sale: domain.Sale{
				Kg:               dec("3.333"),
				SaleRatePerKg:    dec("151.515"),
				CostRateSnapshot: dec("151.515"),
				AmountReceived:   dec("0"),
			},
			wantTotal:  "504.999",
			wantBorrow: "504.999",
			wantProfit: "0",
		},
		{
			name: "selling below cost gives negative profit",
			sale: domain.Sale{
				Kg:               dec("4"),
				SaleRatePerKg:    dec("140"),
				CostRateSnapshot: dec("150"),
				AmountReceived:   dec("560"),
			},
			wantTotal:  "560",
			wantBorrow: "0",
			wantProfit: "-40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, dec(tt.wantTotal).Equal(tt.sale.TotalAmount()), "total: got %s", tt.sale.TotalAmount())
			assert.True(t, dec(tt.wantBorrow).Equal(tt.sale.BorrowAmount()), "borrow: got %s", tt.sale.BorrowAmount())
			assert.True(t, dec(tt.wantProfit).Equal(tt.sale.Profit()), "profit: got %s", tt.sale.Profit())
		})
	}
}

func TestPurchase_DerivedAmounts(t *testing.T) {
	tests := []struct {
		name       string
		purchase   domain.Purchase
		wantCost   string
		wantBorrow string
	}{
		{
			name: "partially settled purchase",
			purchase: domain.Purchase{
				Kg:            dec("100"),
				CostRatePerKg: dec("150"),
				AmountPaid:    dec("10000"),
			},
			wantCost:   "15000",
			wantBorrow: "5000",
		},
		{
			name: "overpaid purchase yields negative borrow",
			purchase: domain.Purchase{
				Kg:            dec("10"),
				CostRatePerKg: dec("150"),
				AmountPaid:    dec("1600"),
			},
			wantCost:   "1500",
			wantBorrow: "-100",
		},
		{
			name: "fractional product rounds to three decimals",
			purchase: domain.Purchase{
				Kg:            dec("7.777"),
				CostRatePerKg: dec("142.857"),
				AmountPaid:    dec("0"),
			},
			wantCost:   "1110.999",
			wantBorrow: "1110.999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, dec(tt.wantCost).Equal(tt.purchase.TotalCost()), "cost: got %s", tt.purchase.TotalCost())
			assert.True(t, dec(tt.wantBorrow).Equal(tt.purchase.BorrowAmount()), "borrow: got %s", tt.purchase.BorrowAmount())
		})
	}
}
