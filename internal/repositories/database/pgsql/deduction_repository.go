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

const deductionSelect = `
	SELECT d.deduction_id, d.deduction_date, d.customer_id, c.name, d.amount,
	       d.deduction_type, d.note, d.created_at, d.updated_at
	FROM customer_deductions d
	JOIN customers c ON c.customer_id = d.customer_id`

type PgxDeductionRepository struct {
	BaseRepository
	customers portsrepo.CustomerTransactionSupport
}

// newPgxDeductionRepository creates a new repository for customer deduction
// data.
func newPgxDeductionRepository(pool *pgxpool.Pool, customers portsrepo.CustomerTransactionSupport) *PgxDeductionRepository {
	return &PgxDeductionRepository{BaseRepository: BaseRepository{Pool: pool}, customers: customers}
}

var _ portsrepo.DeductionRepositoryFacade = (*PgxDeductionRepository)(nil)

func scanDeduction(row pgx.Row) (*domain.CustomerDeduction, error) {
	var d domain.CustomerDeduction
	err := row.Scan(
		&d.DeductionID,
		&d.Date,
		&d.CustomerID,
		&d.CustomerName,
		&d.Amount,
		&d.DeductionType,
		&d.Note,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDeductionRepository) findDeductionForUpdate(ctx context.Context, tx pgx.Tx, deductionID int64) (*domain.CustomerDeduction, error) {
	var d domain.CustomerDeduction
	err := tx.QueryRow(ctx, `
		SELECT deduction_id, deduction_date, customer_id, amount, deduction_type, note
		FROM customer_deductions WHERE deduction_id = $1 FOR UPDATE`, deductionID,
	).Scan(&d.DeductionID, &d.Date, &d.CustomerID, &d.Amount, &d.DeductionType, &d.Note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("deduction %d not found", deductionID))
		}
		return nil, fmt.Errorf("failed to lock deduction %d: %w", deductionID, err)
	}
	return &d, nil
}

// SaveDeduction inserts a deduction and subtracts its amount from the
// customer's running balance in one transaction.
func (r *PgxDeductionRepository) SaveDeduction(ctx context.Context, deduction domain.CustomerDeduction) (*domain.CustomerDeduction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	customer, err := r.customers.FindCustomerForUpdate(ctx, tx, deduction.CustomerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = tx.QueryRow(ctx, `
		INSERT INTO customer_deductions (deduction_date, customer_id, amount, deduction_type, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING deduction_id, created_at, updated_at`,
		deduction.Date, deduction.CustomerID, deduction.Amount, deduction.DeductionType, deduction.Note, now,
	).Scan(&deduction.DeductionID, &deduction.CreatedAt, &deduction.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save deduction: %w", err)
	}

	if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, deduction.CustomerID, deduction.Amount.Neg(), now); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	deduction.CustomerName = customer.Name
	return &deduction, nil
}

// FindDeductionByID retrieves a deduction with its customer name.
func (r *PgxDeductionRepository) FindDeductionByID(ctx context.Context, deductionID int64) (*domain.CustomerDeduction, error) {
	d, err := scanDeduction(r.Pool.QueryRow(ctx, deductionSelect+` WHERE d.deduction_id = $1`, deductionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("deduction %d not found", deductionID))
		}
		return nil, fmt.Errorf("failed to find deduction %d: %w", deductionID, err)
	}
	return d, nil
}

// ListDeductions retrieves a filtered page of deductions and the total count.
func (r *PgxDeductionRepository) ListDeductions(ctx context.Context, filter portsrepo.ListFilter) ([]domain.CustomerDeduction, int64, error) {
	b := &condBuilder{}
	if filter.Date != nil {
		b.add(`d.deduction_date = $%d`, *filter.Date)
	}
	if filter.DateFrom != nil {
		b.add(`d.deduction_date >= $%d`, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		b.add(`d.deduction_date <= $%d`, *filter.DateTo)
	}
	if filter.CustomerID != nil {
		b.add(`d.customer_id = $%d`, *filter.CustomerID)
	}
	if filter.DeductionType != "" {
		b.add(`d.deduction_type = $%d`, filter.DeductionType)
	}
	if filter.Search != "" {
		b.add(`(c.name || ' ' || d.note) ILIKE '%%' || $%d || '%%'`, filter.Search)
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM customer_deductions d JOIN customers c ON c.customer_id = d.customer_id` + b.where()
	if err := r.Pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count deductions: %w", err)
	}

	query := b.paged(deductionSelect, ` ORDER BY d.deduction_date DESC, d.created_at DESC`, filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	deductions := make([]domain.CustomerDeduction, 0)
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan deduction row: %w", err)
		}
		deductions = append(deductions, *d)
	}
	return deductions, count, rows.Err()
}

// ListDeductionsByCustomer retrieves a customer's deductions in
// chronological order.
func (r *PgxDeductionRepository) ListDeductionsByCustomer(ctx context.Context, customerID int64, from, to *time.Time) ([]domain.CustomerDeduction, error) {
	b := &condBuilder{}
	b.add(`d.customer_id = $%d`, customerID)
	if from != nil {
		b.add(`d.deduction_date >= $%d`, *from)
	}
	if to != nil {
		b.add(`d.deduction_date <= $%d`, *to)
	}

	rows, err := r.Pool.Query(ctx, deductionSelect+b.where()+` ORDER BY d.deduction_date ASC, d.created_at ASC`, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions of customer %d: %w", customerID, err)
	}
	defer rows.Close()

	deductions := make([]domain.CustomerDeduction, 0)
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction row: %w", err)
		}
		deductions = append(deductions, *d)
	}
	return deductions, rows.Err()
}

// UpdateDeduction rewrites a deduction and applies the amount difference to
// the affected customers.
func (r *PgxDeductionRepository) UpdateDeduction(ctx context.Context, deduction domain.CustomerDeduction) (*domain.CustomerDeduction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findDeductionForUpdate(ctx, tx, deduction.DeductionID)
	if err != nil {
		return nil, err
	}

	ids := []int64{old.CustomerID}
	if deduction.CustomerID != old.CustomerID {
		if deduction.CustomerID < old.CustomerID {
			ids = []int64{deduction.CustomerID, old.CustomerID}
		} else {
			ids = append(ids, deduction.CustomerID)
		}
	}
	names := make(map[int64]string, len(ids))
	for _, id := range ids {
		c, err := r.customers.FindCustomerForUpdate(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		names[id] = c.Name
	}

	now := time.Now().UTC()
	err = tx.QueryRow(ctx, `
		UPDATE customer_deductions
		SET deduction_date = $2, customer_id = $3, amount = $4, deduction_type = $5, note = $6, updated_at = $7
		WHERE deduction_id = $1
		RETURNING created_at, updated_at`,
		deduction.DeductionID, deduction.Date, deduction.CustomerID, deduction.Amount, deduction.DeductionType, deduction.Note, now,
	).Scan(&deduction.CreatedAt, &deduction.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update deduction %d: %w", deduction.DeductionID, err)
	}

	if deduction.CustomerID == old.CustomerID {
		delta := old.Amount.Sub(deduction.Amount)
		if !delta.IsZero() {
			if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, deduction.CustomerID, delta, now); err != nil {
				return nil, err
			}
		}
	} else {
		if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, old.CustomerID, old.Amount, now); err != nil {
			return nil, err
		}
		if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, deduction.CustomerID, deduction.Amount.Neg(), now); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	deduction.CustomerName = names[deduction.CustomerID]
	return &deduction, nil
}

// DeleteDeduction removes a deduction and adds its amount back to the
// customer's running balance.
func (r *PgxDeductionRepository) DeleteDeduction(ctx context.Context, deductionID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findDeductionForUpdate(ctx, tx, deductionID)
	if err != nil {
		return err
	}
	if _, err := r.customers.FindCustomerForUpdate(ctx, tx, old.CustomerID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM customer_deductions WHERE deduction_id = $1`, deductionID); err != nil {
		return fmt.Errorf("failed to delete deduction %d: %w", deductionID, err)
	}
	if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, old.CustomerID, old.Amount, time.Now().UTC()); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
