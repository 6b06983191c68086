package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/middleware"
	"github.com/ahmadps/poultry_ledger_app/internal/platform/config"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
	cfg         *config.Config
}

func newSaleHandler(ss portssvc.SaleSvcFacade, cfg *config.Config) *saleHandler {
	return &saleHandler{saleService: ss, cfg: cfg}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, cfg *config.Config) {
	h := newSaleHandler(saleService, cfg)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
		sales.PUT("/:id", h.updateSale)
		sales.PATCH("/:id", h.updateSale)
		sales.DELETE("/:id", h.deleteSale)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale; the unpaid part is added to the customer's running balance. Omitted rates default from the daily rate of the sale date.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create sale")
		return
	}

	logger.Info("Sale created", slog.Int64("sale_id", created.SaleID), slog.Int64("customer_id", created.CustomerID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(created))
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce  json
// @Param   date query string false "Exact date (YYYY-MM-DD)"
// @Param   date_from query string false "Range start"
// @Param   date_to query string false "Range end"
// @Param   customer query int false "Filter by customer ID"
// @Param   search query string false "Match against customer name and note"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	filter, page, ok := bindListFilter(c, h.cfg)
	if !ok {
		return
	}

	sales, count, err := h.saleService.ListSales(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, listEnvelope(c, count, page, dto.ToListSaleResponse(sales)))
}

// getSale godoc
// @Summary Get a sale by ID
// @Tags sales
// @Produce  json
// @Param   id path int true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// updateSale godoc
// @Summary Update a sale
// @Description Updates a sale and rebalances the affected customers
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   id path int true "Sale ID"
// @Param   sale body dto.UpdateSaleRequest true "Fields to update"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [patch]
func (h *saleHandler) updateSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.saleService.UpdateSale(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Failed to update sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(updated))
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Removes a sale and reverses its borrow from the customer's balance
// @Tags sales
// @Param   id path int true "Sale ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete sale")
		return
	}
	c.Status(http.StatusNoContent)
}
