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

const purchaseSelect = `
	SELECT p.purchase_id, p.purchase_date, p.supplier_id, COALESCE(NULLIF(s.name, ''), p.supplier_name),
	       p.vehicle_number, p.kg, p.cost_rate_per_kg, p.amount_paid, p.note, p.created_at, p.updated_at
	FROM purchases p
	LEFT JOIN suppliers s ON s.supplier_id = p.supplier_id`

type PgxPurchaseRepository struct {
	BaseRepository
	suppliers portsrepo.SupplierTransactionSupport
}

// newPgxPurchaseRepository creates a new repository for purchase data.
// Writes lock and rebalance suppliers through the supplier repository.
func newPgxPurchaseRepository(pool *pgxpool.Pool, suppliers portsrepo.SupplierTransactionSupport) *PgxPurchaseRepository {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}, suppliers: suppliers}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	var p domain.Purchase
	err := row.Scan(
		&p.PurchaseID,
		&p.Date,
		&p.SupplierID,
		&p.SupplierName,
		&p.VehicleNumber,
		&p.Kg,
		&p.CostRatePerKg,
		&p.AmountPaid,
		&p.Note,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPurchaseRepository) findPurchaseForUpdate(ctx context.Context, tx pgx.Tx, purchaseID int64) (*domain.Purchase, error) {
	var p domain.Purchase
	err := tx.QueryRow(ctx, `
		SELECT purchase_id, purchase_date, supplier_id, supplier_name, vehicle_number, kg, cost_rate_per_kg, amount_paid, note
		FROM purchases WHERE purchase_id = $1 FOR UPDATE`, purchaseID,
	).Scan(&p.PurchaseID, &p.Date, &p.SupplierID, &p.SupplierName, &p.VehicleNumber, &p.Kg, &p.CostRatePerKg, &p.AmountPaid, &p.Note)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("purchase %d not found", purchaseID))
		}
		return nil, fmt.Errorf("failed to lock purchase %d: %w", purchaseID, err)
	}
	return &p, nil
}

// SavePurchase inserts a purchase. When a supplier is named, its borrow is
// applied to the supplier's closing balance in the same transaction.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if purchase.SupplierID != nil {
		supplier, err := r.suppliers.FindSupplierForUpdate(ctx, tx, *purchase.SupplierID)
		if err != nil {
			return nil, err
		}
		purchase.SupplierName = supplier.Name
	}

	now := time.Now().UTC()
	err = tx.QueryRow(ctx, `
		INSERT INTO purchases (purchase_date, supplier_id, supplier_name, vehicle_number, kg, cost_rate_per_kg, amount_paid, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING purchase_id, created_at, updated_at`,
		purchase.Date, purchase.SupplierID, purchase.SupplierName, purchase.VehicleNumber,
		purchase.Kg, purchase.CostRatePerKg, purchase.AmountPaid, purchase.Note, now,
	).Scan(&purchase.PurchaseID, &purchase.CreatedAt, &purchase.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	if purchase.SupplierID != nil {
		if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, *purchase.SupplierID, purchase.BorrowAmount(), now); err != nil {
			return nil, err
		}
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// FindPurchaseByID retrieves a purchase with its supplier name.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error) {
	p, err := scanPurchase(r.Pool.QueryRow(ctx, purchaseSelect+` WHERE p.purchase_id = $1`, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("purchase %d not found", purchaseID))
		}
		return nil, fmt.Errorf("failed to find purchase %d: %w", purchaseID, err)
	}
	return p, nil
}

// ListPurchases retrieves a filtered page of purchases and the total count.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Purchase, int64, error) {
	b := &condBuilder{}
	if filter.Date != nil {
		b.add(`p.purchase_date = $%d`, *filter.Date)
	}
	if filter.DateFrom != nil {
		b.add(`p.purchase_date >= $%d`, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		b.add(`p.purchase_date <= $%d`, *filter.DateTo)
	}
	if filter.SupplierID != nil {
		b.add(`p.supplier_id = $%d`, *filter.SupplierID)
	}
	if filter.Search != "" {
		b.add(`(COALESCE(s.name, '') || ' ' || p.supplier_name || ' ' || p.vehicle_number || ' ' || p.note) ILIKE '%%' || $%d || '%%'`, filter.Search)
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM purchases p LEFT JOIN suppliers s ON s.supplier_id = p.supplier_id` + b.where()
	if err := r.Pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	query := b.paged(purchaseSelect, ` ORDER BY p.purchase_date DESC, p.created_at DESC`, filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	purchases := make([]domain.Purchase, 0)
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, *p)
	}
	return purchases, count, rows.Err()
}

// UpdatePurchase rewrites a purchase and applies the borrow difference to the
// affected suppliers.
func (r *PgxPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findPurchaseForUpdate(ctx, tx, purchase.PurchaseID)
	if err != nil {
		return nil, err
	}

	// Lock the involved suppliers in id order.
	var ids []int64
	if old.SupplierID != nil {
		ids = append(ids, *old.SupplierID)
	}
	if purchase.SupplierID != nil && (old.SupplierID == nil || *purchase.SupplierID != *old.SupplierID) {
		ids = append(ids, *purchase.SupplierID)
	}
	if len(ids) == 2 && ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}
	names := make(map[int64]string, len(ids))
	for _, id := range ids {
		s, err := r.suppliers.FindSupplierForUpdate(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		names[id] = s.Name
	}
	if purchase.SupplierID != nil {
		purchase.SupplierName = names[*purchase.SupplierID]
	}

	now := time.Now().UTC()
	err = tx.QueryRow(ctx, `
		UPDATE purchases
		SET purchase_date = $2, supplier_id = $3, supplier_name = $4, vehicle_number = $5,
		    kg = $6, cost_rate_per_kg = $7, amount_paid = $8, note = $9, updated_at = $10
		WHERE purchase_id = $1
		RETURNING created_at, updated_at`,
		purchase.PurchaseID, purchase.Date, purchase.SupplierID, purchase.SupplierName,
		purchase.VehicleNumber, purchase.Kg, purchase.CostRatePerKg, purchase.AmountPaid, purchase.Note, now,
	).Scan(&purchase.CreatedAt, &purchase.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update purchase %d: %w", purchase.PurchaseID, err)
	}

	sameSupplier := old.SupplierID != nil && purchase.SupplierID != nil && *old.SupplierID == *purchase.SupplierID
	switch {
	case sameSupplier:
		delta := purchase.BorrowAmount().Sub(old.BorrowAmount())
		if !delta.IsZero() {
			if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, *purchase.SupplierID, delta, now); err != nil {
				return nil, err
			}
		}
	default:
		if old.SupplierID != nil {
			if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, *old.SupplierID, old.BorrowAmount().Neg(), now); err != nil {
				return nil, err
			}
		}
		if purchase.SupplierID != nil {
			if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, *purchase.SupplierID, purchase.BorrowAmount(), now); err != nil {
				return nil, err
			}
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// DeletePurchase removes a purchase and reverses its borrow from the
// supplier's closing balance.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	old, err := r.findPurchaseForUpdate(ctx, tx, purchaseID)
	if err != nil {
		return err
	}
	if old.SupplierID != nil {
		if _, err := r.suppliers.FindSupplierForUpdate(ctx, tx, *old.SupplierID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1`, purchaseID); err != nil {
		return fmt.Errorf("failed to delete purchase %d: %w", purchaseID, err)
	}
	if old.SupplierID != nil {
		if err := r.suppliers.AdjustSupplierBalanceInTx(ctx, tx, *old.SupplierID, old.BorrowAmount().Neg(), time.Now().UTC()); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}
