package services

import (
	"context"
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// DailyRateSvcFacade defines operations for managing daily rates.
type DailyRateSvcFacade interface {
	// CreateDailyRate records the rates for one date. At most one rate row may
	// exist per date.
	CreateDailyRate(ctx context.Context, req dto.CreateDailyRateRequest) (*domain.DailyRate, error)

	// GetDailyRateByID retrieves a specific daily rate.
	GetDailyRateByID(ctx context.Context, rateID int64) (*domain.DailyRate, error)

	// RateForDate retrieves the rate in effect on a date, falling back to the
	// most recent earlier date.
	RateForDate(ctx context.Context, date time.Time) (*domain.DailyRate, error)

	// ListDailyRates retrieves a filtered, paginated list of daily rates.
	ListDailyRates(ctx context.Context, filter repositories.ListFilter) ([]domain.DailyRate, int64, error)

	// UpdateDailyRate updates an existing daily rate.
	UpdateDailyRate(ctx context.Context, rateID int64, req dto.UpdateDailyRateRequest) (*domain.DailyRate, error)

	// DeleteDailyRate removes a daily rate.
	DeleteDailyRate(ctx context.Context, rateID int64) error
}
