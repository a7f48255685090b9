package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	portssvc "github.com/SscSPs/shopdesk_erp/internal/core/ports/services"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
	"github.com/SscSPs/shopdesk_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashRegisterHandler handles HTTP requests for the cash register.
type cashRegisterHandler struct {
	cashRegisterService portssvc.CashRegisterSvcFacade
}

func newCashRegisterHandler(crs portssvc.CashRegisterSvcFacade) *cashRegisterHandler {
	return &cashRegisterHandler{cashRegisterService: crs}
}

// registerCashRegisterRoutes registers routes related to the cash register.
func registerCashRegisterRoutes(rg *gin.RouterGroup, cashRegisterService portssvc.CashRegisterSvcFacade) {
	h := newCashRegisterHandler(cashRegisterService)

	register := rg.Group("/cash-register")
	{
		register.POST("/transactions", h.recordTransaction)
		register.GET("/transactions", h.listEntries)
		register.POST("/exchanges", h.recordExchange)
		register.GET("/balances", h.getBalanceSummary)
		register.GET("/balances/:currency", h.getBalance)
	}
}

// recordTransaction godoc
// @Summary Record a cash register transaction
// @Description Records a sale, expense, deposit or withdrawal. SYP transactions capture the exchange rate in effect.
// @Tags cash register
// @Accept  json
// @Produce  json
// @Param   transaction body dto.RecordCashTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CashTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Router /cash-register/transactions [post]
func (h *cashRegisterHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordCashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordCashTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tx, err := h.cashRegisterService.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashTransactionResponse(*tx))
}

// recordExchange godoc
// @Summary Record a currency exchange
// @Description Records money leaving one currency and the converted amount arriving in the other
// @Tags cash register
// @Accept  json
// @Produce  json
// @Param   exchange body dto.RecordExchangeRequest true "Exchange details"
// @Success 201 {object} dto.ExchangePairResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 422 {object} map[string]string "No usable exchange rate"
// @Failure 500 {object} map[string]string "Failed to record exchange"
// @Router /cash-register/exchanges [post]
func (h *cashRegisterHandler) recordExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordExchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pair, err := h.cashRegisterService.RecordExchange(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record exchange")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangePairResponse(*pair))
}

// listEntries godoc
// @Summary List cash register entries
// @Description Lists entries newest first. An exchange and both of its legs form one entry.
// @Tags cash register
// @Produce  json
// @Param   type      query string false "Transaction type" Enums(sale, expense, deposit, withdrawal, exchange)
// @Param   currency  query string false "Currency" Enums(USD, SYP)
// @Param   from      query string false "From date (YYYY-MM-DD)"
// @Param   to        query string false "To date (YYYY-MM-DD), inclusive"
// @Param   limit     query int    false "Page size" minimum(1) maximum(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCashEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /cash-register/transactions [get]
func (h *cashRegisterHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCashEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCashEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.cashRegisterService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getBalanceSummary godoc
// @Summary Get cash register balances
// @Description Recomputes the USD and SYP balances and their equivalents at the default rate
// @Tags cash register
// @Produce  json
// @Success 200 {object} dto.BalanceSummaryResponse
// @Failure 422 {object} map[string]string "No usable exchange rate"
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Router /cash-register/balances [get]
func (h *cashRegisterHandler) getBalanceSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.cashRegisterService.GetBalanceSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSummaryResponse(*summary))
}

// getBalance godoc
// @Summary Get a single currency balance
// @Tags cash register
// @Produce  json
// @Param   currency path string true "Currency" Enums(USD, SYP)
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /cash-register/balances/{currency} [get]
func (h *cashRegisterHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency, ok := domain.ParseCurrency(c.Param("currency"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported currency '%s'", c.Param("currency"))})
		return
	}

	balance, err := h.cashRegisterService.GetBalance(c.Request.Context(), currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(currency, balance))
}
