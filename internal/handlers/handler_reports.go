package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
)

// reportsHandler handles HTTP requests for the business reports.
type reportsHandler struct {
	reportingService portssvc.ReportingService
}

func newReportsHandler(rs portssvc.ReportingService) *reportsHandler {
	return &reportsHandler{reportingService: rs}
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportsHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/daily", h.dailyReport)
		reports.GET("/period", h.periodReport)
		reports.GET("/expenses", h.expenseReport)
		reports.GET("/customers/:id", h.customerReport)
		reports.GET("/analytics/sales", h.salesAnalytics)
	}

	// The UI also reaches the customer report from the customer page.
	rg.GET("/customers/:id/report", h.customerReport)
}

// parseRequiredDate reads a mandatory date query parameter. On failure it
// writes a 400 response and returns false.
func parseRequiredDate(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " query parameter is required"})
		return time.Time{}, false
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a date in YYYY-MM-DD format"})
		return time.Time{}, false
	}
	return t, true
}

// dailyReport godoc
// @Summary Single-day business report
// @Description Purchases, sales, cash received, expenses and closing stock for one date
// @Tags reports
// @Produce  json
// @Param   date query string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyReportResponse
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *reportsHandler) dailyReport(c *gin.Context) {
	date, ok := parseRequiredDate(c, "date")
	if !ok {
		return
	}

	report, err := h.reportingService.DailyReport(c.Request.Context(), date)
	if err != nil {
		handleServiceError(c, err, "Failed to build daily report")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyReportResponse(report))
}

// periodReport godoc
// @Summary Date-range business report
// @Description Purchases, sales, expense breakdown and per-customer summary for an inclusive range
// @Tags reports
// @Produce  json
// @Param   start_date query string true "Range start (YYYY-MM-DD)"
// @Param   end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.PeriodReportResponse
// @Security BearerAuth
// @Router /reports/period [get]
func (h *reportsHandler) periodReport(c *gin.Context) {
	from, ok := parseRequiredDate(c, "start_date")
	if !ok {
		return
	}
	to, ok := parseRequiredDate(c, "end_date")
	if !ok {
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}

	report, err := h.reportingService.PeriodReport(c.Request.Context(), from, to)
	if err != nil {
		handleServiceError(c, err, "Failed to build period report")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodReportResponse(report))
}

// expenseReport godoc
// @Summary Expense breakdown report
// @Description Expense totals by category and day over an optional range, optionally restricted to one category
// @Tags reports
// @Produce  json
// @Param   start_date query string false "Range start (YYYY-MM-DD)"
// @Param   end_date query string false "Range end (YYYY-MM-DD)"
// @Param   category query string false "Restrict to one category"
// @Success 200 {object} dto.ExpenseReportResponse
// @Security BearerAuth
// @Router /reports/expenses [get]
func (h *reportsHandler) expenseReport(c *gin.Context) {
	ve := apperrors.ValidationErrors{}
	from := parseQueryDate(ve, "start_date", c.Query("start_date"))
	to := parseQueryDate(ve, "end_date", c.Query("end_date"))
	if len(ve) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve})
		return
	}

	report, err := h.reportingService.ExpenseReport(c.Request.Context(), from, to, c.Query("category"))
	if err != nil {
		handleServiceError(c, err, "Failed to build expense report")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseReportResponse(report))
}

// customerReport godoc
// @Summary Per-customer trade report
// @Description One customer's sales, payments and outstanding amount over an optional range
// @Tags reports
// @Produce  json
// @Param   id path int true "Customer ID"
// @Param   start_date query string false "Range start (YYYY-MM-DD)"
// @Param   end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.CustomerReportResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /reports/customers/{id} [get]
func (h *reportsHandler) customerReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ve := apperrors.ValidationErrors{}
	from := parseQueryDate(ve, "start_date", c.Query("start_date"))
	to := parseQueryDate(ve, "end_date", c.Query("end_date"))
	if len(ve) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve})
		return
	}

	report, err := h.reportingService.CustomerReport(c.Request.Context(), id, from, to)
	if err != nil {
		handleServiceError(c, err, "Failed to build customer report")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerReportResponse(report))
}

// salesAnalytics godoc
// @Summary Sales analytics over a range
// @Description Volume, revenue, profit, daily breakdown and top customers
// @Tags reports
// @Produce  json
// @Param   start_date query string true "Range start (YYYY-MM-DD)"
// @Param   end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.SalesAnalyticsResponse
// @Security BearerAuth
// @Router /reports/analytics/sales [get]
func (h *reportsHandler) salesAnalytics(c *gin.Context) {
	from, ok := parseRequiredDate(c, "start_date")
	if !ok {
		return
	}
	to, ok := parseRequiredDate(c, "end_date")
	if !ok {
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
		return
	}

	analytics, err := h.reportingService.SalesAnalytics(c.Request.Context(), from, to)
	if err != nil {
		handleServiceError(c, err, "Failed to build sales analytics")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesAnalyticsResponse(analytics))
}
