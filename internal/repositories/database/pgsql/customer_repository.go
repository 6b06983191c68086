package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
)

const customerColumns = `customer_id, name, phone, address, opening_balance, running_balance, is_active, created_at, updated_at`

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.Name,
		&c.Phone,
		&c.Address,
		&c.OpeningBalance,
		&c.RunningBalance,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveCustomer inserts a new customer. The running balance starts at the
// opening balance.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (name, phone, address, opening_balance, running_balance, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4, $5, $6, $6)
		RETURNING ` + customerColumns

	now := time.Now().UTC()
	saved, err := scanCustomer(r.Pool.QueryRow(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.OpeningBalance,
		customer.IsActive,
		now,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: customer %q already exists", apperrors.ErrDuplicate, customer.Name)
		}
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	return saved, nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
	c, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", customerID))
		}
		return nil, fmt.Errorf("failed to find customer %d: %w", customerID, err)
	}
	return c, nil
}

// ListCustomers retrieves a filtered page of customers and the total count.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Customer, int64, error) {
	b := &condBuilder{}
	if filter.Search != "" {
		b.add(`(name || ' ' || phone) ILIKE '%%' || $%d || '%%'`, filter.Search)
	}
	if filter.IsActive != nil {
		b.add(`is_active = $%d`, *filter.IsActive)
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM customers` + b.where()
	if err := r.Pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query := b.paged(`SELECT `+customerColumns+` FROM customers`, ` ORDER BY name ASC`, filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}
	return customers, count, rows.Err()
}

// UpdateCustomer updates a customer's details. Changing the opening balance
// shifts the running balance by the same difference, so the derived ledger
// history stays consistent.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET name = $2,
		    phone = $3,
		    address = $4,
		    running_balance = running_balance + ($5 - opening_balance),
		    opening_balance = $5,
		    is_active = $6,
		    updated_at = $7
		WHERE customer_id = $1
		RETURNING ` + customerColumns

	updated, err := scanCustomer(r.Pool.QueryRow(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.OpeningBalance,
		customer.IsActive,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", customer.CustomerID))
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: customer %q already exists", apperrors.ErrDuplicate, customer.Name)
		}
		return nil, fmt.Errorf("failed to update customer %d: %w", customer.CustomerID, err)
	}
	return updated, nil
}

// DeleteCustomer removes a customer. The RESTRICT foreign keys turn deletion
// of a customer with ledger entries into a conflict.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, customerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: customer %d still has ledger entries", apperrors.ErrConflict, customerID)
		}
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", customerID))
	}
	return nil
}

// FindCustomerForUpdate selects a customer and locks its row for update.
func (r *PgxCustomerRepository) FindCustomerForUpdate(ctx context.Context, tx pgx.Tx, customerID int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1 FOR UPDATE`
	c, err := scanCustomer(tx.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", customerID))
		}
		return nil, fmt.Errorf("failed to lock customer %d: %w", customerID, err)
	}
	return c, nil
}

// AdjustCustomerBalanceInTx shifts a customer's running balance by delta
// within the given transaction.
func (r *PgxCustomerRepository) AdjustCustomerBalanceInTx(ctx context.Context, tx pgx.Tx, customerID int64, delta decimal.Decimal, now time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE customers SET running_balance = running_balance + $2, updated_at = $3 WHERE customer_id = $1`,
		customerID, delta, now,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of customer %d: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", customerID))
	}
	return nil
}
