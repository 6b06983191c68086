package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// BackupService defines operations for exporting the full dataset.
type BackupService interface {
	// BuildWorkbook assembles a spreadsheet with one sheet per table plus a
	// summary sheet, and returns it with a timestamped filename.
	BuildWorkbook(ctx context.Context) (*excelize.File, string, error)

	// SaveWorkbook builds the workbook and writes it into dir, returning the
	// filename.
	SaveWorkbook(ctx context.Context, dir string) (string, error)

	// Status returns the row count per exported table.
	Status(ctx context.Context) (map[string]int64, error)

	// LatestBackup returns metadata for the newest workbook in dir, or nil
	// when none exists.
	LatestBackup(dir string) (*domain.BackupFile, error)
}
