package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// ExpenseSvcFacade defines operations for managing expenses.
type ExpenseSvcFacade interface {
	// CreateExpense records a business expense.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// GetExpenseByID retrieves a specific expense.
	GetExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpenses retrieves a filtered, paginated list of expenses.
	ListExpenses(ctx context.Context, filter repositories.ListFilter) ([]domain.Expense, int64, error)

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expenseID int64, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID int64) error
}
