package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// minKg is the smallest weight a trade row may carry, matching the stored
// precision of NUMERIC(10,3).
var minKg = decimal.NewFromFloat(0.001)

// parseDate validates a "YYYY-MM-DD" string, recording a field error on the
// map when it does not parse.
func parseDate(ve apperrors.ValidationErrors, field, value string) time.Time {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		ve.Add(field, "must be a date in YYYY-MM-DD format")
	}
	return t
}

func requireKg(ve apperrors.ValidationErrors, field string, kg decimal.Decimal) {
	if kg.LessThan(minKg) {
		ve.Add(field, "must be at least 0.001")
	}
}

func requirePositive(ve apperrors.ValidationErrors, field string, amount decimal.Decimal) {
	if !amount.IsPositive() {
		ve.Add(field, "must be greater than zero")
	}
}

func requireNonNegative(ve apperrors.ValidationErrors, field string, amount decimal.Decimal) {
	if amount.IsNegative() {
		ve.Add(field, "must not be negative")
	}
}
