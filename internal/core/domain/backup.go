package domain

import "time"

// BackupFile describes one workbook written to the backup directory.
type BackupFile struct {
	Name       string
	SizeBytes  int64
	ModifiedAt time.Time
}
