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

const supplierPaymentSelect = `
	SELECT p.payment_id, p.payment_date, p.supplier_id, s.name, p.amount, p.method,
	       p.note, p.created_at, p.updated_at
	FROM supplier_payments p
	JOIN suppliers s ON s.supplier_id = p.supplier_id`

type PgxSupplierPaymentRepository struct {
	BaseRepository
	suppliers portsrepo.SupplierTransactionSupport
}

// newPgxSupplierPaymentRepository creates a new repository for supplier
// payment data.
func newPgxSupplierPaymentRepository(pool *pgxpool.Pool, suppliers portsrepo.SupplierTransactionSupport) *PgxSupplierPaymentRepository {
	return &PgxSupplierPaymentRepository{BaseRepository: BaseRepository{Pool: pool}, suppliers: suppliers}
}

var _ portsrepo.SupplierPaymentRepositoryFacade = (*PgxSupplierPaymentRepository)(nil)

func scanSupplierPayment(row pgx.Row) (*domain.SupplierPayment, error) {
	var p domain.SupplierPayment
	err := row.Scan(
		&p.PaymentID,
		&p.Date,
		&p.SupplierID,
		&p.SupplierName,
		&p.Amount,
		&p.Method,
		&p.Note,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxSupplierPaymentRepository) findSupplierPaymentForUpdate(ctx context.Context, tx pgx.Tx, paymentID int64) (*domain.SupplierPayment, error) {
	var p domain.SupplierPayment
	err := tx.QueryRow(ctx, `
		SELECT payment_id, payment_date, supplier_id, amount, method, note
		FROM supplier_payments WHERE payment_id = $1 FOR UPDATE`, paymentID,
	).Scan(&p.PaymentID, &p.Date, &p.SupplierID, &p.Amount, &p.Method, &p.Note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("supplier payment %d not found", paymentID))
		}
		return nil, fmt.Errorf("failed to lock supplier payment %d: %w", paymentID, err)
	}
	return &p, nil
}

// SaveSupplierPayment inserts a supplier payment and subtracts its amount
// from the supplier's closing balance in one transaction.
func (r *PgxSupplierPaymentRepository) SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) (*domain.SupplierPayment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	supplier, err := r.suppliers.FindSupplierForUpdate(ctx, tx, payment.SupplierID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = tx.QueryRow(ctx, `
		INSERT INTO supplier_payments (payment_date, supplier_id, amount, method, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING payment_id, created_at, updated_at`,
		payment.Date, payment.SupplierID, payment.Amount, payment.Method, payment.Note, now,
	).Scan(&payment.PaymentID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save supplier payment: %w", err)
	}

	if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, payment.SupplierID, payment.Amount.Neg(), now); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	payment.SupplierName = supplier.Name
	return &payment, nil
}

// FindSupplierPaymentByID retrieves a supplier payment with its supplier name.
func (r *PgxSupplierPaymentRepository) FindSupplierPaymentByID(ctx context.Context, paymentID int64) (*domain.SupplierPayment, error) {
	p, err := scanSupplierPayment(r.Pool.QueryRow(ctx, supplierPaymentSelect+` WHERE p.payment_id = $1`, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("supplier payment %d not found", paymentID))
		}
		return nil, fmt.Errorf("failed to find supplier payment %d: %w", paymentID, err)
	}
	return p, nil
}

// ListSupplierPayments retrieves a filtered page of supplier payments and the
// total count.
func (r *PgxSupplierPaymentRepository) ListSupplierPayments(ctx context.Context, filter portsrepo.ListFilter) ([]domain.SupplierPayment, int64, error) {
	b := &condBuilder{}
	if filter.Date != nil {
		b.add(`p.payment_date = $%d`, *filter.Date)
	}
	if filter.DateFrom != nil {
		b.add(`p.payment_date >= $%d`, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		b.add(`p.payment_date <= $%d`, *filter.DateTo)
	}
	if filter.SupplierID != nil {
		b.add(`p.supplier_id = $%d`, *filter.SupplierID)
	}
	if filter.Method != "" {
		b.add(`p.method = $%d`, filter.Method)
	}
	if filter.Search != "" {
		b.add(`(s.name || ' ' || p.note) ILIKE '%%' || $%d || '%%'`, filter.Search)
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM supplier_payments p JOIN suppliers s ON s.supplier_id = p.supplier_id` + b.where()
	if err := r.Pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count supplier payments: %w", err)
	}

	query := b.paged(supplierPaymentSelect, ` ORDER BY p.payment_date DESC, p.created_at DESC`, filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list supplier payments: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.SupplierPayment, 0)
	for rows.Next() {
		p, err := scanSupplierPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan supplier payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, count, rows.Err()
}

// UpdateSupplierPayment rewrites a supplier payment and applies the amount
// difference to the affected suppliers.
func (r *PgxSupplierPaymentRepository) UpdateSupplierPayment(ctx context.Context, payment domain.SupplierPayment) (*domain.SupplierPayment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findSupplierPaymentForUpdate(ctx, tx, payment.PaymentID)
	if err != nil {
		return nil, err
	}

	ids := []int64{old.SupplierID}
	if payment.SupplierID != old.SupplierID {
		if payment.SupplierID < old.SupplierID {
			ids = []int64{payment.SupplierID, old.SupplierID}
		} else {
			ids = append(ids, payment.SupplierID)
		}
	}
	names := make(map[int64]string, len(ids))
	for _, id := range ids {
		s, err := r.suppliers.FindSupplierForUpdate(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		names[id] = s.Name
	}

	now := time.Now().UTC()
	err = tx.QueryRow(ctx, `
		UPDATE supplier_payments
		SET payment_date = $2, supplier_id = $3, amount = $4, method = $5, note = $6, updated_at = $7
		WHERE payment_id = $1
		RETURNING created_at, updated_at`,
		payment.PaymentID, payment.Date, payment.SupplierID, payment.Amount, payment.Method, payment.Note, now,
	).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update supplier payment %d: %w", payment.PaymentID, err)
	}

	if payment.SupplierID == old.SupplierID {
		delta := old.Amount.Sub(payment.Amount)
		if !delta.IsZero() {
			if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, payment.SupplierID, delta, now); err != nil {
				return nil, err
			}
		}
	} else {
		if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, old.SupplierID, old.Amount, now); err != nil {
			return nil, err
		}
		if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, payment.SupplierID, payment.Amount.Neg(), now); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	payment.SupplierName = names[payment.SupplierID]
	return &payment, nil
}

// DeleteSupplierPayment removes a supplier payment and adds its amount back
// to the supplier's closing balance.
func (r *PgxSupplierPaymentRepository) DeleteSupplierPayment(ctx context.Context, paymentID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findSupplierPaymentForUpdate(ctx, tx, paymentID)
	if err != nil {
		return err
	}
	if _, err := r.suppliers.FindSupplierForUpdate(ctx, tx, old.SupplierID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM supplier_payments WHERE payment_id = $1`, paymentID); err != nil {
		return fmt.Errorf("failed to delete supplier payment %d: %w", paymentID, err)
	}
	if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, old.SupplierID, old.Amount, time.Now().UTC()); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
