package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/middleware"
	"github.com/ahmadps/poultry_ledger_app/internal/platform/config"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	cfg             *config.Config
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade, cfg *config.Config) *customerHandler {
	return &customerHandler{customerService: cs, cfg: cfg}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, cfg *config.Config) {
	h := newCustomerHandler(customerService, cfg)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomer)
		// The web client updates with PUT; both verbs merge into the stored row.
		customers.PUT("/:id", h.updateCustomer)
		customers.PATCH("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
		customers.GET("/:id/statement", h.customerStatement)
	}
}

// createCustomer godoc
// @Summary Create a new customer
// @Description Adds a customer; the running balance starts at the opening balance
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Customer name already exists"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create customer")
		return
	}

	logger.Info("Customer created", slog.Int64("customer_id", created.CustomerID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(created))
}

// listCustomers godoc
// @Summary List customers
// @Description Retrieves a paginated list of customers, filterable by search text and active flag
// @Tags customers
// @Produce  json
// @Param   search query string false "Match against name and phone"
// @Param   is_active query bool false "Filter by active flag"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	filter, page, ok := bindListFilter(c, h.cfg)
	if !ok {
		return
	}

	customers, count, err := h.customerService.ListCustomers(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, listEnvelope(c, count, page, dto.ToListCustomerResponse(customers)))
}

// getCustomer godoc
// @Summary Get a customer by ID
// @Tags customers
// @Produce  json
// @Param   id path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Updates customer details; changing the opening balance shifts the running balance by the same difference
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id path int true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [patch]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.customerService.UpdateCustomer(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(updated))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Removes a customer that has no sales, payments or deductions
// @Tags customers
// @Param   id path int true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 409 {object} map[string]string "Customer still has ledger entries"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// customerStatement godoc
// @Summary Get a customer's statement
// @Description Returns the customer's chronological ledger between the optional bounds
// @Tags customers
// @Produce  json
// @Param   id path int true "Customer ID"
// @Param   date_from query string false "Range start (YYYY-MM-DD)"
// @Param   date_to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.CustomerStatementResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id}/statement [get]
func (h *customerHandler) customerStatement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ve := apperrors.ValidationErrors{}
	from := parseQueryDate(ve, "date_from", c.Query("date_from"))
	to := parseQueryDate(ve, "date_to", c.Query("date_to"))
	if len(ve) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve})
		return
	}

	statement, err := h.customerService.CustomerStatement(c.Request.Context(), id, from, to)
	if err != nil {
		handleServiceError(c, err, "Failed to build customer statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerStatementResponse(statement))
}
