package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
)

const paymentSelect = `
	SELECT p.payment_id, p.payment_date, p.customer_id, c.name, p.amount, p.method,
	       p.note, p.auto_allocated, p.created_at, p.updated_at
	FROM payments p
	JOIN customers c ON c.customer_id = p.customer_id`

type PgxPaymentRepository struct {
	BaseRepository
	customers portsrepo.CustomerTransactionSupport
}

// newPgxPaymentRepository creates a new repository for customer payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool, customers portsrepo.CustomerTransactionSupport) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}, customers: customers}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.PaymentID,
		&p.Date,
		&p.CustomerID,
		&p.CustomerName,
		&p.Amount,
		&p.Method,
		&p.Note,
		&p.AutoAllocated,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPaymentRepository) findPaymentForUpdate(ctx context.Context, tx pgx.Tx, paymentID int64) (*domain.Payment, error) {
	var p domain.Payment
	err := tx.QueryRow(ctx, `
		SELECT payment_id, payment_date, customer_id, amount, method, note, auto_allocated
		FROM payments WHERE payment_id = $1 FOR UPDATE`, paymentID,
	).Scan(&p.PaymentID, &p.Date, &p.CustomerID, &p.Amount, &p.Method, &p.Note, &p.AutoAllocated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("payment %d not found", paymentID))
		}
		return nil, fmt.Errorf("failed to lock payment %d: %w", paymentID, err)
	}
	return &p, nil
}

// SavePayment inserts a payment and subtracts its amount from the customer's
// running balance in one transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	customer, err := r.customers.FindCustomerForUpdate(ctx, tx, payment.CustomerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = tx.QueryRow(ctx, `
		INSERT INTO payments (payment_date, customer_id, amount, method, note, auto_allocated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, $6)
		RETURNING payment_id, created_at, updated_at`,
		payment.Date, payment.CustomerID, payment.Amount, payment.Method, payment.Note, now,
	).Scan(&payment.PaymentID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, payment.CustomerID, payment.Amount.Neg(), now); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	payment.AutoAllocated = false
	payment.CustomerName = customer.Name
	return &payment, nil
}

// FindPaymentByID retrieves a payment with its customer name.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	p, err := scanPayment(r.Pool.QueryRow(ctx, paymentSelect+` WHERE p.payment_id = $1`, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("payment %d not found", paymentID))
		}
		return nil, fmt.Errorf("failed to find payment %d: %w", paymentID, err)
	}
	return p, nil
}

// ListPayments retrieves a filtered page of payments and the total count.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Payment, int64, error) {
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
	if filter.CustomerID != nil {
		b.add(`p.customer_id = $%d`, *filter.CustomerID)
	}
	if filter.Method != "" {
		b.add(`p.method = $%d`, filter.Method)
	}
	if filter.Search != "" {
		b.add(`(c.name || ' ' || p.note) ILIKE '%%' || $%d || '%%'`, filter.Search)
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM payments p JOIN customers c ON c.customer_id = p.customer_id` + b.where()
	if err := r.Pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := b.paged(paymentSelect, ` ORDER BY p.payment_date DESC, p.created_at DESC`, filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, count, rows.Err()
}

// ListPaymentsByCustomer retrieves a customer's payments in chronological order.
func (r *PgxPaymentRepository) ListPaymentsByCustomer(ctx context.Context, customerID int64, from, to *time.Time) ([]domain.Payment, error) {
	b := &condBuilder{}
	b.add(`p.customer_id = $%d`, customerID)
	if from != nil {
		b.add(`p.payment_date >= $%d`, *from)
	}
	if to != nil {
		b.add(`p.payment_date <= $%d`, *to)
	}

	rows, err := r.Pool.Query(ctx, paymentSelect+b.where()+` ORDER BY p.payment_date ASC, p.created_at ASC`, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments of customer %d: %w", customerID, err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

// UpdatePayment rewrites an unallocated payment and applies the amount
// difference to the affected customers. An allocated payment is frozen.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findPaymentForUpdate(ctx, tx, payment.PaymentID)
	if err != nil {
		return nil, err
	}
	if old.AutoAllocated {
		return nil, fmt.Errorf("%w: payment %d is allocated into sales", apperrors.ErrConflict, payment.PaymentID)
	}

	ids := []int64{old.CustomerID}
	if payment.CustomerID != old.CustomerID {
		if payment.CustomerID < old.CustomerID {
			ids = []int64{payment.CustomerID, old.CustomerID}
		} else {
			ids = append(ids, payment.CustomerID)
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
		UPDATE payments
		SET payment_date = $2, customer_id = $3, amount = $4, method = $5, note = $6, updated_at = $7
		WHERE payment_id = $1
		RETURNING created_at, updated_at`,
		payment.PaymentID, payment.Date, payment.CustomerID, payment.Amount, payment.Method, payment.Note, now,
	).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment %d: %w", payment.PaymentID, err)
	}

	if payment.CustomerID == old.CustomerID {
		delta := old.Amount.Sub(payment.Amount)
		if !delta.IsZero() {
			if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, payment.CustomerID, delta, now); err != nil {
				return nil, err
			}
		}
	} else {
		if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, old.CustomerID, old.Amount, now); err != nil {
			return nil, err
		}
		if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, payment.CustomerID, payment.Amount.Neg(), now); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	payment.AutoAllocated = false
	payment.CustomerName = names[payment.CustomerID]
	return &payment, nil
}

// DeletePayment removes an unallocated payment and adds its amount back to
// the customer's running balance.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findPaymentForUpdate(ctx, tx, paymentID)
	if err != nil {
		return err
	}
	if old.AutoAllocated {
		return fmt.Errorf("%w: payment %d is allocated into sales", apperrors.ErrConflict, paymentID)
	}
	if _, err := r.customers.FindCustomerForUpdate(ctx, tx, old.CustomerID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1`, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment %d: %w", paymentID, err)
	}
	if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, old.CustomerID, old.Amount, time.Now().UTC()); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// AllocatePayment folds a payment's amount into the customer's sales. Sales
// dated the same day as the payment absorb it first in creation order, then
// older outstanding sales, oldest first. Whatever remains lands on the most
// recent sale as a credit. The running balance is untouched: the payment
// stops counting against it the moment the sales start counting less.
func (r *PgxPaymentRepository) AllocatePayment(ctx context.Context, paymentID int64) (*domain.Payment, []domain.Sale, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	payment, err := r.findPaymentForUpdate(ctx, tx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if payment.AutoAllocated {
		return nil, nil, fmt.Errorf("%w: payment %d is already allocated", apperrors.ErrConflict, paymentID)
	}
	customer, err := r.customers.FindCustomerForUpdate(ctx, tx, payment.CustomerID)
	if err != nil {
		return nil, nil, err
	}

	// Fetch and lock every sale of the customer in allocation order:
	// payment-date sales first by creation time, then the rest oldest first.
	rows, err := tx.Query(ctx, `
		SELECT sale_id, sale_date, customer_id, kg, sale_rate_per_kg, cost_rate_snapshot, amount_received, note, created_at, updated_at
		FROM sales
		WHERE customer_id = $1
		ORDER BY (sale_date = $2) DESC, sale_date ASC, created_at ASC
		FOR UPDATE`,
		payment.CustomerID, payment.Date,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock sales of customer %d: %w", payment.CustomerID, err)
	}
	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.SaleID, &s.Date, &s.CustomerID, &s.Kg, &s.SaleRatePerKg, &s.CostRateSnapshot, &s.AmountReceived, &s.Note, &s.CreatedAt, &s.UpdatedAt); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if len(sales) == 0 {
		return nil, nil, fmt.Errorf("%w: customer %d has no sales to allocate against", apperrors.ErrConflict, payment.CustomerID)
	}

	remaining := payment.Amount
	touched := make(map[int64]bool)
	for i := range sales {
		if remaining.IsZero() {
			break
		}
		borrow := sales[i].BorrowAmount()
		if borrow.IsPositive() {
			pay := decimal.Min(borrow, remaining)
			sales[i].AmountReceived = sales[i].AmountReceived.Add(pay)
			remaining = remaining.Sub(pay)
			touched[sales[i].SaleID] = true
		}
	}
	if remaining.IsPositive() {
		// Credit the surplus to the most recent sale.
		latest := 0
		for i := range sales {
			if sales[i].Date.After(sales[latest].Date) ||
				(sales[i].Date.Equal(sales[latest].Date) && sales[i].CreatedAt.After(sales[latest].CreatedAt)) {
				latest = i
			}
		}
		sales[latest].AmountReceived = sales[latest].AmountReceived.Add(remaining)
		touched[sales[latest].SaleID] = true
	}

	now := time.Now().UTC()
	affected := make([]domain.Sale, 0, len(touched))
	for i := range sales {
		if !touched[sales[i].SaleID] {
			continue
		}
		if _, err := tx.Exec(ctx,
			`UPDATE sales SET amount_received = $2, updated_at = $3 WHERE sale_id = $1`,
			sales[i].SaleID, sales[i].AmountReceived, now,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to update sale %d: %w", sales[i].SaleID, err)
		}
		sales[i].UpdatedAt = now
		sales[i].CustomerName = customer.Name
		affected = append(affected, sales[i])
	}
	sort.Slice(affected, func(i, j int) bool { return affected[i].SaleID < affected[j].SaleID })

	err = tx.QueryRow(ctx,
		`UPDATE payments SET auto_allocated = TRUE, updated_at = $2 WHERE payment_id = $1 RETURNING created_at, updated_at`,
		paymentID, now,
	).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to mark payment %d allocated: %w", paymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	payment.AutoAllocated = true
	payment.CustomerName = customer.Name
	return payment, affected, nil
}
