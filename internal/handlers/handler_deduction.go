package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/platform/config"
)

// deductionHandler handles HTTP requests related to customer deductions.
type deductionHandler struct {
	deductionService portssvc.DeductionSvcFacade
	cfg              *config.Config
}

func newDeductionHandler(ds portssvc.DeductionSvcFacade, cfg *config.Config) *deductionHandler {
	return &deductionHandler{deductionService: ds, cfg: cfg}
}

// registerDeductionRoutes registers routes related to customer deductions.
func registerDeductionRoutes(rg *gin.RouterGroup, deductionService portssvc.DeductionSvcFacade, cfg *config.Config) {
	h := newDeductionHandler(deductionService, cfg)

	deductions := rg.Group("/deductions")
	{
		deductions.POST("", h.createDeduction)
		deductions.GET("", h.listDeductions)
		deductions.GET("/:id", h.getDeduction)
		deductions.PUT("/:id", h.updateDeduction)
		deductions.PATCH("/:id", h.updateDeduction)
		deductions.DELETE("/:id", h.deleteDeduction)
	}
}

// createDeduction godoc
// @Summary Record a customer deduction
// @Description Records a return, discount or damage credit and subtracts it from the running balance
// @Tags deductions
// @Accept  json
// @Produce  json
// @Param   deduction body dto.CreateDeductionRequest true "Deduction details"
// @Success 201 {object} dto.DeductionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /deductions [post]
func (h *deductionHandler) createDeduction(c *gin.Context) {
	var req dto.CreateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.deductionService.CreateDeduction(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create deduction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDeductionResponse(created))
}

// listDeductions godoc
// @Summary List customer deductions
// @Tags deductions
// @Produce  json
// @Param   date query string false "Exact date (YYYY-MM-DD)"
// @Param   date_from query string false "Range start"
// @Param   date_to query string false "Range end"
// @Param   customer query int false "Filter by customer ID"
// @Param   deduction_type query string false "Filter by type (return, discount, damage, other)"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListResponse
// @Security BearerAuth
// @Router /deductions [get]
func (h *deductionHandler) listDeductions(c *gin.Context) {
	filter, page, ok := bindListFilter(c, h.cfg)
	if !ok {
		return
	}

	deductions, count, err := h.deductionService.ListDeductions(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list deductions")
		return
	}
	c.JSON(http.StatusOK, listEnvelope(c, count, page, dto.ToListDeductionResponse(deductions)))
}

// getDeduction godoc
// @Summary Get a deduction by ID
// @Tags deductions
// @Produce  json
// @Param   id path int true "Deduction ID"
// @Success 200 {object} dto.DeductionResponse
// @Failure 404 {object} map[string]string "Deduction not found"
// @Security BearerAuth
// @Router /deductions/{id} [get]
func (h *deductionHandler) getDeduction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deduction, err := h.deductionService.GetDeductionByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve deduction")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeductionResponse(deduction))
}

// updateDeduction godoc
// @Summary Update a deduction
// @Tags deductions
// @Accept  json
// @Produce  json
// @Param   id path int true "Deduction ID"
// @Param   deduction body dto.UpdateDeductionRequest true "Fields to update"
// @Success 200 {object} dto.DeductionResponse
// @Failure 404 {object} map[string]string "Deduction not found"
// @Security BearerAuth
// @Router /deductions/{id} [patch]
func (h *deductionHandler) updateDeduction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.deductionService.UpdateDeduction(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Failed to update deduction")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeductionResponse(updated))
}

// deleteDeduction godoc
// @Summary Delete a deduction
// @Description Removes a deduction and adds its amount back to the running balance
// @Tags deductions
// @Param   id path int true "Deduction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Deduction not found"
// @Security BearerAuth
// @Router /deductions/{id} [delete]
func (h *deductionHandler) deleteDeduction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deductionService.DeleteDeduction(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete deduction")
		return
	}
	c.Status(http.StatusNoContent)
}
