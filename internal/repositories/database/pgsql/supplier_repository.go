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

const supplierColumns = `supplier_id, name, phone, opening_balance, closing_balance, is_active, created_at, updated_at`

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) *PgxSupplierRepository {
	return &PgxSupplierRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.Name,
		&s.Phone,
		&s.OpeningBalance,
		&s.ClosingBalance,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSupplier inserts a new supplier. The closing balance starts at the
// opening balance.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error) {
	query := `
		INSERT INTO suppliers (name, phone, opening_balance, closing_balance, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $3, $4, $5, $5)
		RETURNING ` + supplierColumns

	now := time.Now().UTC()
	saved, err := scanSupplier(r.Pool.QueryRow(ctx, query,
		supplier.Name,
		supplier.Phone,
		supplier.OpeningBalance,
		supplier.IsActive,
		now,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: supplier %q already exists", apperrors.ErrDuplicate, supplier.Name)
		}
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}
	return saved, nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1`
	s, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("supplier %d not found", supplierID))
		}
		return nil, fmt.Errorf("failed to find supplier %d: %w", supplierID, err)
	}
	return s, nil
}

// ListSuppliers retrieves a filtered page of suppliers and the total count.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Supplier, int64, error) {
	b := &condBuilder{}
	if filter.Search != "" {
		b.add(`(name || ' ' || phone) ILIKE '%%' || $%d || '%%'`, filter.Search)
	}
	if filter.IsActive != nil {
		b.add(`is_active = $%d`, *filter.IsActive)
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM suppliers` + b.where()
	if err := r.Pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	query := b.paged(`SELECT `+supplierColumns+` FROM suppliers`, ` ORDER BY name ASC`, filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := make([]domain.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, *s)
	}
	return suppliers, count, rows.Err()
}

// UpdateSupplier updates a supplier's details. Changing the opening balance
// shifts the closing balance by the same difference.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error) {
	query := `
		UPDATE suppliers
		SET name = $2,
		    phone = $3,
		    closing_balance = closing_balance + ($4 - opening_balance),
		    opening_balance = $4,
		    is_active = $5,
		    updated_at = $6
		WHERE supplier_id = $1
		RETURNING ` + supplierColumns

	updated, err := scanSupplier(r.Pool.QueryRow(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.Phone,
		supplier.OpeningBalance,
		supplier.IsActive,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("supplier %d not found", supplier.SupplierID))
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: supplier %q already exists", apperrors.ErrDuplicate, supplier.Name)
		}
		return nil, fmt.Errorf("failed to update supplier %d: %w", supplier.SupplierID, err)
	}
	return updated, nil
}

// DeleteSupplier removes a supplier. The RESTRICT foreign keys turn deletion
// of a supplier with ledger entries into a conflict.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1`, supplierID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: supplier %d still has ledger entries", apperrors.ErrConflict, supplierID)
		}
		return fmt.Errorf("failed to delete supplier %d: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("supplier %d not found", supplierID))
	}
	return nil
}

// FindSupplierForUpdate selects a supplier and locks its row for update.
func (r *PgxSupplierRepository) FindSupplierForUpdate(ctx context.Context, tx pgx.Tx, supplierID int64) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1 FOR UPDATE`
	s, err := scanSupplier(tx.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("supplier %d not found", supplierID))
		}
		return nil, fmt.Errorf("failed to lock supplier %d: %w", supplierID, err)
	}
	return s, nil
}

// AdjustSupplierBalanceInTx shifts a supplier's closing balance by delta
// within the given transaction.
func (r *PgxSupplierRepository) AdjustSupplierBalanceInTx(ctx context.Context, tx pgx.Tx, supplierID int64, delta decimal.Decimal, now time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE suppliers SET closing_balance = closing_balance + $2, updated_at = $3 WHERE supplier_id = $1`,
		supplierID, delta, now,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of supplier %d: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("supplier %d not found", supplierID))
	}
	return nil
}
