package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	portsrepo "github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/middleware"
	"github.com/ahmadps/poultry_ledger_app/internal/platform/config"
	"github.com/ahmadps/poultry_ledger_app/internal/utils/pagination"
)

// parseIDParam reads the :id path parameter as an int64. On failure it writes
// a 400 response and returns false.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return id, true
}

// parseQueryDate validates an optional date query value, recording a field
// error when it does not parse.
func parseQueryDate(ve apperrors.ValidationErrors, field, value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		ve.Add(field, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &t
}

// bindListFilter parses the shared list query parameters into a repository
// filter plus the clamped page. On failure it writes a 400 response and
// returns false.
func bindListFilter(c *gin.Context, cfg *config.Config) (portsrepo.ListFilter, pagination.Page, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return portsrepo.ListFilter{}, pagination.Page{}, false
	}

	ve := apperrors.ValidationErrors{}
	filter := portsrepo.ListFilter{
		Date:          parseQueryDate(ve, "date", q.Date),
		DateFrom:      parseQueryDate(ve, "date_from", q.DateFrom),
		DateTo:        parseQueryDate(ve, "date_to", q.DateTo),
		Search:        q.Search,
		CustomerID:    q.Customer,
		SupplierID:    q.Supplier,
		Method:        q.Method,
		Category:      q.Category,
		DeductionType: q.DeductionType,
		IsActive:      q.IsActive,
	}
	if len(ve) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve})
		return portsrepo.ListFilter{}, pagination.Page{}, false
	}

	page := pagination.Clamp(q.Limit, q.Offset, cfg.DefaultPageSize, cfg.MaxPageSize)
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	return filter, page, true
}

// absoluteRequestURL rebuilds the request URL with scheme and host so the
// pagination links come back absolute.
func absoluteRequestURL(c *gin.Context) *url.URL {
	u := *c.Request.URL
	u.Host = c.Request.Host
	u.Scheme = "http"
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}
	return &u
}

// listEnvelope wraps a page of results in the count/next/previous envelope.
func listEnvelope(c *gin.Context, count int64, page pagination.Page, results interface{}) dto.ListResponse {
	next, previous := pagination.Links(absoluteRequestURL(c), count, page)
	return dto.ListResponse{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}

// handleServiceError translates service errors into HTTP responses. Field
// validation maps come back verbatim under "errors" so the UI can render
// per-field feedback.
func handleServiceError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
