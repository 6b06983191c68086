package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a business expense.
type ExpenseCategory string

const (
	ExpenseVanRepair ExpenseCategory = "van_repair"
	ExpenseFeed      ExpenseCategory = "feed"
	ExpenseSalary    ExpenseCategory = "salary"
	ExpensePetrol    ExpenseCategory = "petrol"
	ExpenseOther     ExpenseCategory = "other"
)

// ExpenseCategories lists the accepted categories in display order. Report
// breakdowns iterate this slice so output ordering is deterministic.
var ExpenseCategories = []ExpenseCategory{ExpenseVanRepair, ExpenseFeed, ExpenseSalary, ExpensePetrol, ExpenseOther}

// CategoryDisplay returns the human label for an expense category.
func CategoryDisplay(c ExpenseCategory) string {
	switch c {
	case ExpenseVanRepair:
		return "Van Repair"
	case ExpenseFeed:
		return "Feed"
	case ExpenseSalary:
		return "Salary"
	case ExpensePetrol:
		return "Petrol"
	default:
		return "Other"
	}
}

// Expense is a business cost not tied to any customer or supplier. It only
// affects period profit/cash reporting, never a party balance.
type Expense struct {
	ExpenseID int64           `json:"id"`
	Date      time.Time       `json:"date"`
	Category  ExpenseCategory `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	Timestamps
}
