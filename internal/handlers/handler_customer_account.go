package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shopdesk_erp/internal/core/ports/services"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
	"github.com/SscSPs/shopdesk_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerAccountHandler handles HTTP requests for customer accounts.
type customerAccountHandler struct {
	customerAccountService portssvc.CustomerAccountSvcFacade
}

func newCustomerAccountHandler(cas portssvc.CustomerAccountSvcFacade) *customerAccountHandler {
	return &customerAccountHandler{customerAccountService: cas}
}

// registerCustomerAccountRoutes registers routes related to customer accounts.
func registerCustomerAccountRoutes(rg *gin.RouterGroup, customerAccountService portssvc.CustomerAccountSvcFacade) {
	h := newCustomerAccountHandler(customerAccountService)

	customers := rg.Group("/customers/:customerID")
	{
		customers.POST("/transactions", h.recordTransaction)
		customers.GET("/transactions", h.listTransactions)
		customers.GET("/balance", h.getBalance)
	}
}

// recordTransaction godoc
// @Summary Record a customer transaction
// @Description Records an invoice, payment or refund. A reference is generated when none is given.
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customerID  path string true "Customer ID"
// @Param   transaction body dto.RecordCustomerTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CustomerTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record customer transaction"
// @Router /customers/{customerID}/transactions [post]
func (h *customerAccountHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")
	logger = logger.With(slog.String("customer_id", customerID))

	var req dto.RecordCustomerTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordCustomerTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tx, err := h.customerAccountService.RecordTransaction(c.Request.Context(), customerID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record customer transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerTransactionResponse(*tx))
}

// listTransactions godoc
// @Summary List a customer's transactions
// @Tags customers
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {array} dto.CustomerTransactionResponse
// @Failure 500 {object} map[string]string "Failed to list customer transactions"
// @Router /customers/{customerID}/transactions [get]
func (h *customerAccountHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	txs, err := h.customerAccountService.ListTransactions(c.Request.Context(), customerID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list customer transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomerTransactionResponse(txs))
}

// getBalance godoc
// @Summary Get a customer's balance
// @Description Invoices minus payments and refunds
// @Tags customers
// @Produce  json
// @Param   customerID path string true "Customer ID"
// @Success 200 {object} dto.CustomerBalanceResponse
// @Failure 500 {object} map[string]string "Failed to compute customer balance"
// @Router /customers/{customerID}/balance [get]
func (h *customerAccountHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	balance, err := h.customerAccountService.GetBalance(c.Request.Context(), customerID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute customer balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerBalanceResponse(customerID, balance))
}
