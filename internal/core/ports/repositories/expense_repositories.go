package repositories

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its identifier.
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpenses retrieves a filtered, paginated list of expenses plus the
	// total row count before paging.
	ListExpenses(ctx context.Context, filter ListFilter) ([]domain.Expense, int64, error)
}

// ExpenseWriter defines write operations for expense data. Expenses touch no
// party balance, so these are plain row writes.
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
