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

// paymentHandler handles HTTP requests related to customer payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
	cfg            *config.Config
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade, cfg *config.Config) *paymentHandler {
	return &paymentHandler{paymentService: ps, cfg: cfg}
}

// registerPaymentRoutes registers routes related to customer payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, cfg *config.Config) {
	h := newPaymentHandler(paymentService, cfg)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.PATCH("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
		payments.POST("/:id/allocate", h.allocatePayment)
	}
}

// createPayment godoc
// @Summary Record a customer payment
// @Description Records money received from a customer and subtracts it from the running balance
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create payment")
		return
	}

	logger.Info("Payment created", slog.Int64("payment_id", created.PaymentID), slog.Int64("customer_id", created.CustomerID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(created))
}

// listPayments godoc
// @Summary List customer payments
// @Tags payments
// @Produce  json
// @Param   date query string false "Exact date (YYYY-MM-DD)"
// @Param   date_from query string false "Range start"
// @Param   date_to query string false "Range end"
// @Param   customer query int false "Filter by customer ID"
// @Param   method query string false "Filter by method (cash, bank, other)"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	filter, page, ok := bindListFilter(c, h.cfg)
	if !ok {
		return
	}

	payments, count, err := h.paymentService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, listEnvelope(c, count, page, dto.ToListPaymentResponse(payments)))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce  json
// @Param   id path int true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// updatePayment godoc
// @Summary Update a payment
// @Description Updates an unallocated payment; allocated payments are frozen
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path int true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment is allocated"
// @Security BearerAuth
// @Router /payments/{id} [patch]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.paymentService.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(updated))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes an unallocated payment and adds its amount back to the running balance
// @Tags payments
// @Param   id path int true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment is allocated"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}

// allocatePayment godoc
// @Summary Allocate a payment across the customer's sales
// @Description Spreads the payment over same-date sales first, then oldest outstanding borrows; any surplus is credited to the most recent sale. The running balance is unchanged.
// @Tags payments
// @Produce  json
// @Param   id path int true "Payment ID"
// @Success 200 {object} dto.AllocatePaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment already allocated or the customer has no sales"
// @Security BearerAuth
// @Router /payments/{id}/allocate [post]
func (h *paymentHandler) allocatePayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, sales, err := h.paymentService.AllocatePayment(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to allocate payment")
		return
	}

	c.JSON(http.StatusOK, dto.AllocatePaymentResponse{
		Payment: dto.ToPaymentResponse(payment),
		Sales:   dto.ToListSaleResponse(sales),
	})
}
