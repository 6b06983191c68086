package dto

import (
	"time"

	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
)

// BackupFileResponse describes one workbook in the backup directory.
type BackupFileResponse struct {
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}

// BackupCreatedResponse is returned after a workbook has been written to the
// backup directory.
type BackupCreatedResponse struct {
	File        string `json:"file"`
	GeneratedAt string `json:"generated_at"`
}

// BackupStatusResponse reports how many rows each table would export plus the
// most recent workbook on disk.
type BackupStatusResponse struct {
	Tables       map[string]int64    `json:"tables"`
	TotalRecords int64               `json:"total_records"`
	LastBackup   *BackupFileResponse `json:"last_backup"`
	GeneratedAt  string              `json:"generated_at"`
}

// ToBackupFileResponse converts a domain.BackupFile to its DTO.
func ToBackupFileResponse(f *domain.BackupFile) *BackupFileResponse {
	if f == nil {
		return nil
	}
	return &BackupFileResponse{
		Name:       f.Name,
		SizeBytes:  f.SizeBytes,
		ModifiedAt: f.ModifiedAt,
	}
}
