package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name           string          `json:"name" binding:"required"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	IsActive       *bool           `json:"is_active"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCustomerRequest struct {
	Name           *string          `json:"name"`
	Phone          *string          `json:"phone"`
	Address        *string          `json:"address"`
	OpeningBalance *decimal.Decimal `json:"opening_balance"`
	IsActive       *bool            `json:"is_active"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.CustomerID,
		Name:           c.Name,
		Phone:          c.Phone,
		Address:        c.Address,
		OpeningBalance: c.OpeningBalance,
		RunningBalance: c.RunningBalance,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to response DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}

// StatementLineResponse is one row of a customer statement.
type StatementLineResponse struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Reference   int64           `json:"reference"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// CustomerStatementResponse is a customer's chronological ledger.
type CustomerStatementResponse struct {
	Customer        CustomerResponse        `json:"customer"`
	StartDate       *string                 `json:"start_date"`
	EndDate         *string                 `json:"end_date"`
	StartingBalance decimal.Decimal         `json:"starting_balance"`
	Lines           []StatementLineResponse `json:"lines"`
	ClosingBalance  decimal.Decimal         `json:"closing_balance"`
}

// ToCustomerStatementResponse converts a domain statement to its DTO.
func ToCustomerStatementResponse(st *domain.CustomerStatement) CustomerStatementResponse {
	lines := make([]StatementLineResponse, len(st.Lines))
	for i, l := range st.Lines {
		lines[i] = StatementLineResponse{
			Date:        fmtDate(l.Date),
			Type:        string(l.Kind),
			Reference:   l.RefID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Balance:     l.Balance,
		}
	}
	return CustomerStatementResponse{
		Customer:        ToCustomerResponse(&st.Customer),
		StartDate:       fmtDatePtr(st.From),
		EndDate:         fmtDatePtr(st.To),
		StartingBalance: st.StartingBalance,
		Lines:           lines,
		ClosingBalance:  st.ClosingBalance,
	}
}
