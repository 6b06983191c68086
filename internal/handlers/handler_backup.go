package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/middleware"
	"github.com/ahmadps/poultry_ledger_app/internal/platform/config"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// backupHandler handles HTTP requests for the dataset export.
type backupHandler struct {
	backupService portssvc.BackupService
	cfg           *config.Config
}

func newBackupHandler(bs portssvc.BackupService, cfg *config.Config) *backupHandler {
	return &backupHandler{backupService: bs, cfg: cfg}
}

// registerBackupRoutes registers routes related to backups.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupService, cfg *config.Config) {
	h := newBackupHandler(backupService, cfg)

	backup := rg.Group("/backup")
	{
		backup.POST("", h.createBackup)
		backup.GET("/export", h.exportBackup)
		backup.GET("/status", h.backupStatus)
	}
}

// createBackup godoc
// @Summary Write a backup workbook to the server backup directory
// @Tags backup
// @Produce  json
// @Success 201 {object} dto.BackupCreatedResponse
// @Security BearerAuth
// @Router /backup [post]
func (h *backupHandler) createBackup(c *gin.Context) {
	filename, err := h.backupService.SaveWorkbook(c.Request.Context(), h.cfg.BackupDir)
	if err != nil {
		handleServiceError(c, err, "Failed to write backup workbook")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Backup created", "file", filename)
	c.JSON(http.StatusCreated, dto.BackupCreatedResponse{
		File:        filename,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// exportBackup godoc
// @Summary Download the full dataset as a spreadsheet
// @Description Streams an xlsx workbook with one sheet per table plus a summary sheet
// @Tags backup
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Security BearerAuth
// @Router /backup/export [get]
func (h *backupHandler) exportBackup(c *gin.Context) {
	f, filename, err := h.backupService.BuildWorkbook(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to build backup workbook")
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		handleServiceError(c, err, "Failed to write backup workbook")
	}
}

// backupStatus godoc
// @Summary Backup status
// @Description Reports the row count per exported table and the newest workbook on disk
// @Tags backup
// @Produce  json
// @Success 200 {object} dto.BackupStatusResponse
// @Security BearerAuth
// @Router /backup/status [get]
func (h *backupHandler) backupStatus(c *gin.Context) {
	counts, err := h.backupService.Status(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to read backup status")
		return
	}
	latest, err := h.backupService.LatestBackup(h.cfg.BackupDir)
	if err != nil {
		handleServiceError(c, err, "Failed to inspect backup directory")
		return
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, dto.BackupStatusResponse{
		Tables:       counts,
		TotalRecords: total,
		LastBackup:   dto.ToBackupFileResponse(latest),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	})
}
