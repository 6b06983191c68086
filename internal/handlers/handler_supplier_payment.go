package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/platform/config"
)

// supplierPaymentHandler handles HTTP requests related to supplier payments.
type supplierPaymentHandler struct {
	paymentService portssvc.SupplierPaymentSvcFacade
	cfg            *config.Config
}

func newSupplierPaymentHandler(ps portssvc.SupplierPaymentSvcFacade, cfg *config.Config) *supplierPaymentHandler {
	return &supplierPaymentHandler{paymentService: ps, cfg: cfg}
}

// registerSupplierPaymentRoutes registers routes related to supplier payments.
func registerSupplierPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.SupplierPaymentSvcFacade, cfg *config.Config) {
	h := newSupplierPaymentHandler(paymentService, cfg)

	payments := rg.Group("/supplier-payments")
	{
		payments.POST("", h.createSupplierPayment)
		payments.GET("", h.listSupplierPayments)
		payments.GET("/:id", h.getSupplierPayment)
		payments.PUT("/:id", h.updateSupplierPayment)
		payments.PATCH("/:id", h.updateSupplierPayment)
		payments.DELETE("/:id", h.deleteSupplierPayment)
	}
}

// createSupplierPayment godoc
// @Summary Record a payment to a supplier
// @Description Records money paid out to a supplier and subtracts it from the closing balance
// @Tags supplier-payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreateSupplierPaymentRequest true "Payment details"
// @Success 201 {object} dto.SupplierPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Security BearerAuth
// @Router /supplier-payments [post]
func (h *supplierPaymentHandler) createSupplierPayment(c *gin.Context) {
	var req dto.CreateSupplierPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.paymentService.CreateSupplierPayment(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create supplier payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSupplierPaymentResponse(created))
}

// listSupplierPayments godoc
// @Summary List supplier payments
// @Tags supplier-payments
// @Produce  json
// @Param   date query string false "Exact date (YYYY-MM-DD)"
// @Param   date_from query string false "Range start"
// @Param   date_to query string false "Range end"
// @Param   supplier query int false "Filter by supplier ID"
// @Param   method query string false "Filter by method (cash, bank, other)"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListResponse
// @Security BearerAuth
// @Router /supplier-payments [get]
func (h *supplierPaymentHandler) listSupplierPayments(c *gin.Context) {
	filter, page, ok := bindListFilter(c, h.cfg)
	if !ok {
		return
	}

	payments, count, err := h.paymentService.ListSupplierPayments(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list supplier payments")
		return
	}
	c.JSON(http.StatusOK, listEnvelope(c, count, page, dto.ToListSupplierPaymentResponse(payments)))
}

// getSupplierPayment godoc
// @Summary Get a supplier payment by ID
// @Tags supplier-payments
// @Produce  json
// @Param   id path int true "Payment ID"
// @Success 200 {object} dto.SupplierPaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /supplier-payments/{id} [get]
func (h *supplierPaymentHandler) getSupplierPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetSupplierPaymentByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve supplier payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierPaymentResponse(payment))
}

// updateSupplierPayment godoc
// @Summary Update a supplier payment
// @Tags supplier-payments
// @Accept  json
// @Produce  json
// @Param   id path int true "Payment ID"
// @Param   payment body dto.UpdateSupplierPaymentRequest true "Fields to update"
// @Success 200 {object} dto.SupplierPaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /supplier-payments/{id} [patch]
func (h *supplierPaymentHandler) updateSupplierPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateSupplierPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.paymentService.UpdateSupplierPayment(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Failed to update supplier payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierPaymentResponse(updated))
}

// deleteSupplierPayment godoc
// @Summary Delete a supplier payment
// @Description Removes a supplier payment and adds its amount back to the closing balance
// @Tags supplier-payments
// @Param   id path int true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /supplier-payments/{id} [delete]
func (h *supplierPaymentHandler) deleteSupplierPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.paymentService.DeleteSupplierPayment(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete supplier payment")
		return
	}
	c.Status(http.StatusNoContent)
}
