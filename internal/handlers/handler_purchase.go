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

// purchaseHandler handles HTTP requests related to purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
	cfg             *config.Config
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade, cfg *config.Config) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps, cfg: cfg}
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade, cfg *config.Config) {
	h := newPurchaseHandler(purchaseService, cfg)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
		purchases.PUT("/:id", h.updatePurchase)
		purchases.PATCH("/:id", h.updatePurchase)
		purchases.DELETE("/:id", h.deletePurchase)
	}
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Records a stock purchase; the unpaid part is added to the supplier's closing balance
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create purchase")
		return
	}

	logger.Info("Purchase created", slog.Int64("purchase_id", created.PurchaseID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(created))
}

// listPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce  json
// @Param   date query string false "Exact date (YYYY-MM-DD)"
// @Param   date_from query string false "Range start"
// @Param   date_to query string false "Range end"
// @Param   supplier query int false "Filter by supplier ID"
// @Param   search query string false "Match against supplier name, vehicle and note"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	filter, page, ok := bindListFilter(c, h.cfg)
	if !ok {
		return
	}

	purchases, count, err := h.purchaseService.ListPurchases(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list purchases")
		return
	}
	c.JSON(http.StatusOK, listEnvelope(c, count, page, dto.ToListPurchaseResponse(purchases)))
}

// getPurchase godoc
// @Summary Get a purchase by ID
// @Tags purchases
// @Produce  json
// @Param   id path int true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// updatePurchase godoc
// @Summary Update a purchase
// @Description Updates a purchase and rebalances the affected suppliers
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   id path int true "Purchase ID"
// @Param   purchase body dto.UpdatePurchaseRequest true "Fields to update"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Security BearerAuth
// @Router /purchases/{id} [patch]
func (h *purchaseHandler) updatePurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.purchaseService.UpdatePurchase(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Failed to update purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(updated))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Description Removes a purchase and reverses its borrow from the supplier's balance
// @Tags purchases
// @Param   id path int true "Purchase ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete purchase")
		return
	}
	c.Status(http.StatusNoContent)
}
