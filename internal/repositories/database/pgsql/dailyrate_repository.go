package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
)

const dailyRateColumns = `rate_id, rate_date, default_cost_rate, default_sale_rate, created_at, updated_at`

type PgxDailyRateRepository struct {
	BaseRepository
}

// newPgxDailyRateRepository creates a new repository for daily rate data.
func newPgxDailyRateRepository(pool *pgxpool.Pool) *PgxDailyRateRepository {
	return &PgxDailyRateRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.DailyRateRepositoryFacade = (*PgxDailyRateRepository)(nil)

func scanDailyRate(row pgx.Row) (*domain.DailyRate, error) {
	var r domain.DailyRate
	err := row.Scan(
		&r.RateID,
		&r.Date,
		&r.DefaultCostRate,
		&r.DefaultSaleRate,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveDailyRate inserts the rates for one date. The unique constraint on
// rate_date enforces one row per calendar day.
func (r *PgxDailyRateRepository) SaveDailyRate(ctx context.Context, rate domain.DailyRate) (*domain.DailyRate, error) {
	query := `
		INSERT INTO daily_rates (rate_date, default_cost_rate, default_sale_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING ` + dailyRateColumns

	saved, err := scanDailyRate(r.Pool.QueryRow(ctx, query,
		rate.Date,
		rate.DefaultCostRate,
		rate.DefaultSaleRate,
		time.Now().UTC(),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: a rate for %s already exists", apperrors.ErrDuplicate, rate.Date.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to save daily rate: %w", err)
	}
	return saved, nil
}

// FindDailyRateByID retrieves a daily rate by its ID.
func (r *PgxDailyRateRepository) FindDailyRateByID(ctx context.Context, rateID int64) (*domain.DailyRate, error) {
	query := `SELECT ` + dailyRateColumns + ` FROM daily_rates WHERE rate_id = $1`
	rate, err := scanDailyRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("daily rate %d not found", rateID))
		}
		return nil, fmt.Errorf("failed to find daily rate %d: %w", rateID, err)
	}
	return rate, nil
}

// FindRateForDate retrieves the rate for a date, falling back to the most
// recent earlier date when the exact day has no rate.
func (r *PgxDailyRateRepository) FindRateForDate(ctx context.Context, date time.Time) (*domain.DailyRate, error) {
	query := `SELECT ` + dailyRateColumns + ` FROM daily_rates WHERE rate_date <= $1 ORDER BY rate_date DESC LIMIT 1`
	rate, err := scanDailyRate(r.Pool.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no rate on or before %s", date.Format("2006-01-02")))
		}
		return nil, fmt.Errorf("failed to find rate for %s: %w", date.Format("2006-01-02"), err)
	}
	return rate, nil
}

// ListDailyRates retrieves a filtered page of daily rates and the total count.
func (r *PgxDailyRateRepository) ListDailyRates(ctx context.Context, filter portsrepo.ListFilter) ([]domain.DailyRate, int64, error) {
	b := &condBuilder{}
	if filter.Date != nil {
		b.add(`rate_date = $%d`, *filter.Date)
	}
	if filter.DateFrom != nil {
		b.add(`rate_date >= $%d`, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		b.add(`rate_date <= $%d`, *filter.DateTo)
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM daily_rates` + b.where()
	if err := r.Pool.QueryRow(ctx, countQuery, b.args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily rates: %w", err)
	}

	query := b.paged(`SELECT `+dailyRateColumns+` FROM daily_rates`, ` ORDER BY rate_date DESC`, filter.Limit, filter.Offset)
	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list daily rates: %w", err)
	}
	defer rows.Close()

	rates := make([]domain.DailyRate, 0)
	for rows.Next() {
		rate, err := scanDailyRate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan daily rate row: %w", err)
		}
		rates = append(rates, *rate)
	}
	return rates, count, rows.Err()
}

// UpdateDailyRate updates an existing daily rate.
func (r *PgxDailyRateRepository) UpdateDailyRate(ctx context.Context, rate domain.DailyRate) (*domain.DailyRate, error) {
	query := `
		UPDATE daily_rates
		SET rate_date = $2, default_cost_rate = $3, default_sale_rate = $4, updated_at = $5
		WHERE rate_id = $1
		RETURNING ` + dailyRateColumns

	updated, err := scanDailyRate(r.Pool.QueryRow(ctx, query,
		rate.RateID,
		rate.Date,
		rate.DefaultCostRate,
		rate.DefaultSaleRate,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("daily rate %d not found", rate.RateID))
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: a rate for %s already exists", apperrors.ErrDuplicate, rate.Date.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to update daily rate %d: %w", rate.RateID, err)
	}
	return updated, nil
}

// DeleteDailyRate removes a daily rate.
func (r *PgxDailyRateRepository) DeleteDailyRate(ctx context.Context, rateID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM daily_rates WHERE rate_id = $1`, rateID)
	if err != nil {
		return fmt.Errorf("failed to delete daily rate %d: %w", rateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("daily rate %d not found", rateID))
	}
	return nil
}
