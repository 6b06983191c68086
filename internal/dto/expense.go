package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record a business expense.
type CreateExpenseRequest struct {
	Date     string          `json:"date" binding:"required"`
	Category string          `json:"category" binding:"omitempty,oneof=van_repair feed salary petrol other"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Note     string          `json:"note"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
type UpdateExpenseRequest struct {
	Date     *string          `json:"date"`
	Category *string          `json:"category" binding:"omitempty,oneof=van_repair feed salary petrol other"`
	Amount   *decimal.Decimal `json:"amount"`
	Note     *string          `json:"note"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ID              int64           `json:"id"`
	Date            string          `json:"date"`
	Category        string          `json:"category"`
	CategoryDisplay string          `json:"category_display"`
	Amount          decimal.Decimal `json:"amount"`
	Note            string          `json:"note"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:              e.ExpenseID,
		Date:            fmtDate(e.Date),
		Category:        string(e.Category),
		CategoryDisplay: domain.CategoryDisplay(e.Category),
		Amount:          e.Amount,
		Note:            e.Note,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to response DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
