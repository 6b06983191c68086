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

const saleSelect = `
	SELECT s.sale_id, s.sale_date, s.customer_id, c.name, s.kg, s.sale_rate_per_kg,
	       s.cost_rate_snapshot, s.amount_received, s.note, s.created_at, s.updated_at
	FROM sales s
	JOIN customers c ON c.customer_id = s.customer_id`

type PgxSaleRepository struct {
	BaseRepository
	customers portsrepo.CustomerTransactionSupport
}

// newPgxSaleRepository creates a new repository for sale data. Writes lock
// and rebalance customers through the customer repository.
func newPgxSaleRepository(pool *pgxpool.Pool, customers portsrepo.CustomerTransactionSupport) *PgxSaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}, customers: customers}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.SaleID,
		&s.Date,
		&s.CustomerID,
		&s.CustomerName,
		&s.Kg,
		&s.SaleRatePerKg,
		&s.CostRateSnapshot,
		&s.AmountReceived,
		&s.Note,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// findSaleForUpdate loads a sale row with its lock held, without the
// customer join.
func (r *PgxSaleRepository) findSaleForUpdate(ctx context.Context, tx pgx.Tx, saleID int64) (*domain.Sale, error) {
	var s domain.Sale
	err := tx.QueryRow(ctx, `
		SELECT sale_id, sale_date, customer_id, kg, sale_rate_per_kg, cost_rate_snapshot, amount_received, note
		FROM sales WHERE sale_id = $1 FOR UPDATE`, saleID,
	).Scan(&s.SaleID, &s.Date, &s.CustomerID, &s.Kg, &s.SaleRatePerKg, &s.CostRateSnapshot, &s.AmountReceived, &s.Note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("sale %d not found", saleID))
		}
		return nil, fmt.Errorf("failed to lock sale %d: %w", saleID, err)
	}
	return &s, nil
}

// SaveSale inserts a sale and applies its borrow to the customer's running
// balance in one transaction.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	customer, err := r.customers.FindCustomerForUpdate(ctx, tx, sale.CustomerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = tx.QueryRow(ctx, `
		INSERT INTO sales (sale_date, customer_id, kg, sale_rate_per_kg, cost_rate_snapshot, amount_received, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING sale_id, created_at, updated_at`,
		sale.Date, sale.CustomerID, sale.Kg, sale.SaleRatePerKg, sale.CostRateSnapshot, sale.AmountReceived, sale.Note, now,
	).Scan(&sale.SaleID, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, sale.CustomerID, sale.BorrowAmount(), now); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	sale.CustomerName = customer.Name
	return &sale, nil
}

// FindSaleByID retrieves a sale with its customer name.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	s, err := scanSale(r.Pool.QueryRow(ctx, saleSelect+` WHERE s.sale_id = $1`, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("sale %d not found", saleID))
		}
		return nil, fmt.Errorf("failed to find sale %d: %w", saleID, err)
	}
	return s, nil
}

// ListSales retrieves a filtered page of sales and the total count.
func (r *PgxSaleRepository) ListSales(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Sale, int64, error) {
	b := &condBuilder{}
	if filter.Date != nil {
		b.add(`s.sale_date = $%d`, *filter.Date)
	}
	if filter.DateFrom != nil {
		b.add(`s.sale_date >= $%d`, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		b.add(`s.sale_date <= $%d`, *filter.DateTo)
	}
	if filter.CustomerID != nil {
		b.add(`s.customer_id = $%d`, *filter.CustomerID)
	}
	if filter.Search != "" {
		b.add(`(c.name || ' ' || s.note) ILIKE '%%' || $%d || '%%'`, filter.Search)
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM sales s JOIN customers c ON c.customer_id = s.customer_id` + b.where()
	if err := r.Pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	query := b.paged(saleSelect, ` ORDER BY s.sale_date DESC, s.created_at DESC`, filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, *s)
	}
	return sales, count, rows.Err()
}

// ListSalesByCustomer retrieves a customer's sales in chronological order.
func (r *PgxSaleRepository) ListSalesByCustomer(ctx context.Context, customerID int64, from, to *time.Time) ([]domain.Sale, error) {
	b := &condBuilder{}
	b.add(`s.customer_id = $%d`, customerID)
	if from != nil {
		b.add(`s.sale_date >= $%d`, *from)
	}
	if to != nil {
		b.add(`s.sale_date <= $%d`, *to)
	}

	rows, err := r.Pool.Query(ctx, saleSelect+b.where()+` ORDER BY s.sale_date ASC, s.created_at ASC`, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales of customer %d: %w", customerID, err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, *s)
	}
	return sales, rows.Err()
}

// UpdateSale rewrites a sale and applies the borrow difference to the
// affected customers. Moving the sale to another customer reverses the full
// borrow on the old one.
func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findSaleForUpdate(ctx, tx, sale.SaleID)
	if err != nil {
		return nil, err
	}

	// Lock customers in id order so concurrent updates cannot deadlock.
	ids := []int64{old.CustomerID}
	if sale.CustomerID != old.CustomerID {
		if sale.CustomerID < old.CustomerID {
			ids = []int64{sale.CustomerID, old.CustomerID}
		} else {
			ids = append(ids, sale.CustomerID)
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
		UPDATE sales
		SET sale_date = $2, customer_id = $3, kg = $4, sale_rate_per_kg = $5,
		    cost_rate_snapshot = $6, amount_received = $7, note = $8, updated_at = $9
		WHERE sale_id = $1
		RETURNING created_at, updated_at`,
		sale.SaleID, sale.Date, sale.CustomerID, sale.Kg, sale.SaleRatePerKg,
		sale.CostRateSnapshot, sale.AmountReceived, sale.Note, now,
	).Scan(&sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update sale %d: %w", sale.SaleID, err)
	}

	if sale.CustomerID == old.CustomerID {
		delta := sale.BorrowAmount().Sub(old.BorrowAmount())
		if !delta.IsZero() {
			if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, sale.CustomerID, delta, now); err != nil {
				return nil, err
			}
		}
	} else {
		if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, old.CustomerID, old.BorrowAmount().Neg(), now); err != nil {
			return nil, err
		}
		if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, sale.CustomerID, sale.BorrowAmount(), now); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	sale.CustomerName = names[sale.CustomerID]
	return &sale, nil
}

// DeleteSale removes a sale and reverses its borrow from the customer's
// running balance.
func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findSaleForUpdate(ctx, tx, saleID)
	if err != nil {
		return err
	}
	if _, err := r.customers.FindCustomerForUpdate(ctx, tx, old.CustomerID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("failed to delete sale %d: %w", saleID, err)
	}
	if err := r.customers.AdjustCustomerBalanceInTx(ctx, tx, old.CustomerID, old.BorrowAmount().Neg(), time.Now().UTC()); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
