package services

import (
	"context"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates the expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	ve := apperrors.ValidationErrors{}
	date := parseDate(ve, "date", req.Date)
	requirePositive(ve, "amount", req.Amount)
	if len(ve) > 0 {
		return nil, ve
	}

	category := domain.ExpenseCategory(req.Category)
	if category == "" {
		category = domain.ExpenseOther
	}

	expense := domain.Expense{
		Date:     date,
		Category: category,
		Amount:   req.Amount,
		Note:     req.Note,
	}

	saved, err := s.expenseRepo.SaveExpense(ctx, expense)
	if err != nil {
		s.LogError(ctx, err, "failed to create expense")
		return nil, err
	}
	return saved, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

func (s *expenseService) ListExpenses(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Expense, int64, error) {
	return s.expenseRepo.ListExpenses(ctx, filter)
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID int64, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	existing, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	ve := apperrors.ValidationErrors{}
	if req.Date != nil {
		existing.Date = parseDate(ve, "date", *req.Date)
	}
	if req.Category != nil {
		existing.Category = domain.ExpenseCategory(*req.Category)
	}
	if req.Amount != nil {
		requirePositive(ve, "amount", *req.Amount)
		existing.Amount = *req.Amount
	}
	if req.Note != nil {
		existing.Note = *req.Note
	}
	if len(ve) > 0 {
		return nil, ve
	}

	updated, err := s.expenseRepo.UpdateExpense(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "failed to update expense")
		return nil, err
	}
	return updated, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID int64) error {
	return s.expenseRepo.DeleteExpense(ctx, expenseID)
}
