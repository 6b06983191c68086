package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/platform/config"
)

// dailyRateHandler handles HTTP requests related to daily rates.
type dailyRateHandler struct {
	rateService portssvc.DailyRateSvcFacade
	cfg         *config.Config
}

func newDailyRateHandler(rs portssvc.DailyRateSvcFacade, cfg *config.Config) *dailyRateHandler {
	return &dailyRateHandler{rateService: rs, cfg: cfg}
}

// registerDailyRateRoutes registers routes related to daily rates.
func registerDailyRateRoutes(rg *gin.RouterGroup, rateService portssvc.DailyRateSvcFacade, cfg *config.Config) {
	h := newDailyRateHandler(rateService, cfg)

	rates := rg.Group("/daily-rates")
	{
		rates.POST("", h.createDailyRate)
		rates.GET("", h.listDailyRates)
		rates.GET("/for-date", h.rateForDate)
		rates.GET("/:id", h.getDailyRate)
		rates.PUT("/:id", h.updateDailyRate)
		rates.PATCH("/:id", h.updateDailyRate)
		rates.DELETE("/:id", h.deleteDailyRate)
	}
}

// createDailyRate godoc
// @Summary Record the rates for one date
// @Description At most one rate row may exist per date
// @Tags daily-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateDailyRateRequest true "Rate details"
// @Success 201 {object} dto.DailyRateResponse
// @Failure 409 {object} map[string]string "A rate already exists for the date"
// @Security BearerAuth
// @Router /daily-rates [post]
func (h *dailyRateHandler) createDailyRate(c *gin.Context) {
	var req dto.CreateDailyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.rateService.CreateDailyRate(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create daily rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDailyRateResponse(created))
}

// listDailyRates godoc
// @Summary List daily rates
// @Tags daily-rates
// @Produce  json
// @Param   date_from query string false "Range start (YYYY-MM-DD)"
// @Param   date_to query string false "Range end (YYYY-MM-DD)"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListResponse
// @Security BearerAuth
// @Router /daily-rates [get]
func (h *dailyRateHandler) listDailyRates(c *gin.Context) {
	filter, page, ok := bindListFilter(c, h.cfg)
	if !ok {
		return
	}

	rates, count, err := h.rateService.ListDailyRates(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list daily rates")
		return
	}
	c.JSON(http.StatusOK, listEnvelope(c, count, page, dto.ToListDailyRateResponse(rates)))
}

// rateForDate godoc
// @Summary Get the rate in effect on a date
// @Description Falls back to the most recent earlier date when the date has no rate of its own
// @Tags daily-rates
// @Produce  json
// @Param   date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyRateResponse
// @Failure 404 {object} map[string]string "No rate on or before the date"
// @Security BearerAuth
// @Router /daily-rates/for-date [get]
func (h *dailyRateHandler) rateForDate(c *gin.Context) {
	date, err := time.Parse(dto.DateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	rate, err := h.rateService.RateForDate(c.Request.Context(), date)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve rate for date")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyRateResponse(rate))
}

// getDailyRate godoc
// @Summary Get a daily rate by ID
// @Tags daily-rates
// @Produce  json
// @Param   id path int true "Rate ID"
// @Success 200 {object} dto.DailyRateResponse
// @Failure 404 {object} map[string]string "Rate not found"
// @Security BearerAuth
// @Router /daily-rates/{id} [get]
func (h *dailyRateHandler) getDailyRate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rate, err := h.rateService.GetDailyRateByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve daily rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyRateResponse(rate))
}

// updateDailyRate godoc
// @Summary Update a daily rate
// @Tags daily-rates
// @Accept  json
// @Produce  json
// @Param   id path int true "Rate ID"
// @Param   rate body dto.UpdateDailyRateRequest true "Fields to update"
// @Success 200 {object} dto.DailyRateResponse
// @Failure 404 {object} map[string]string "Rate not found"
// @Security BearerAuth
// @Router /daily-rates/{id} [patch]
func (h *dailyRateHandler) updateDailyRate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateDailyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.rateService.UpdateDailyRate(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Failed to update daily rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyRateResponse(updated))
}

// deleteDailyRate godoc
// @Summary Delete a daily rate
// @Tags daily-rates
// @Param   id path int true "Rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Rate not found"
// @Security BearerAuth
// @Router /daily-rates/{id} [delete]
func (h *dailyRateHandler) deleteDailyRate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.rateService.DeleteDailyRate(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete daily rate")
		return
	}
	c.Status(http.StatusNoContent)
}
