package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
)

const expenseColumns = `expense_id, expense_date, category, amount, note, created_at, updated_at`

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.Date,
		&e.Category,
		&e.Amount,
		&e.Note,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveExpense inserts a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	query := `
		INSERT INTO expenses (expense_date, category, amount, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + expenseColumns

	saved, err := scanExpense(r.Pool.QueryRow(ctx, query,
		expense.Date,
		expense.Category,
		expense.Amount,
		expense.Note,
		time.Now().UTC(),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return saved, nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1`
	e, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense %d not found", expenseID))
		}
		return nil, fmt.Errorf("failed to find expense %d: %w", expenseID, err)
	}
	return e, nil
}

// ListExpenses retrieves a filtered page of expenses and the total count.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Expense, int64, error) {
	b := &condBuilder{}
	if filter.Date != nil {
		b.add(`expense_date = $%d`, *filter.Date)
	}
	if filter.DateFrom != nil {
		b.add(`expense_date >= $%d`, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		b.add(`expense_date <= $%d`, *filter.DateTo)
	}
	if filter.Category != "" {
		b.add(`category = $%d`, filter.Category)
	}
	if filter.Search != "" {
		b.add(`note ILIKE '%%' || $%d || '%%'`, filter.Search)
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM expenses` + b.where()
	if err := r.Pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := b.paged(`SELECT `+expenseColumns+` FROM expenses`, ` ORDER BY expense_date DESC, created_at DESC`, filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *e)
	}
	return expenses, count, rows.Err()
}

// UpdateExpense updates an existing expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	query := `
		UPDATE expenses
		SET expense_date = $2, category = $3, amount = $4, note = $5, updated_at = $6
		WHERE expense_id = $1
		RETURNING ` + expenseColumns

	updated, err := scanExpense(r.Pool.QueryRow(ctx, query,
		expense.ExpenseID,
		expense.Date,
		expense.Category,
		expense.Amount,
		expense.Note,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense %d not found", expense.ExpenseID))
		}
		return nil, fmt.Errorf("failed to update expense %d: %w", expense.ExpenseID, err)
	}
	return updated, nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("expense %d not found", expenseID))
	}
	return nil
}
