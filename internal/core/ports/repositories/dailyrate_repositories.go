package repositories

import (
	"context"
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// DailyRateReader defines read operations for daily rate data
type DailyRateReader interface {
	// FindDailyRateByID retrieves a specific daily rate by its identifier.
	FindDailyRateByID(ctx context.Context, rateID int64) (*domain.DailyRate, error)

	// FindRateForDate retrieves the rate for the given date, falling back to
	// the most recent earlier date when no exact match exists.
	FindRateForDate(ctx context.Context, date time.Time) (*domain.DailyRate, error)

	// ListDailyRates retrieves a filtered, paginated list of daily rates plus
	// the total row count before paging.
	ListDailyRates(ctx context.Context, filter ListFilter) ([]domain.DailyRate, int64, error)
}

// DailyRateWriter defines write operations for daily rate data
type DailyRateWriter interface {
	// SaveDailyRate persists a new daily rate. At most one rate may exist per
	// calendar date.
	SaveDailyRate(ctx context.Context, rate domain.DailyRate) (*domain.DailyRate, error)

	// UpdateDailyRate updates an existing daily rate.
	UpdateDailyRate(ctx context.Context, rate domain.DailyRate) (*domain.DailyRate, error)

	// DeleteDailyRate removes a daily rate.
	DeleteDailyRate(ctx context.Context, rateID int64) error
}

// DailyRateRepositoryFacade combines all daily rate repository interfaces
type DailyRateRepositoryFacade interface {
	DailyRateReader
	DailyRateWriter
}
