package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	portssvc "github.com/SscSPs/shopdesk_erp/internal/core/ports/services"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
	"github.com/SscSPs/shopdesk_erp/internal/middleware"
	"github.com/SscSPs/shopdesk_erp/internal/utils"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests for the default rate and conversions.
type exchangeRateHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(cs portssvc.CurrencySvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{currencyService: cs}
}

// registerExchangeRateRoutes registers routes related to exchange rates and conversion.
func registerExchangeRateRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newExchangeRateHandler(currencyService)

	settings := rg.Group("/settings")
	{
		settings.GET("/exchange-rate", h.getDefaultRate)
		settings.PUT("/exchange-rate", h.updateDefaultRate)
	}
	rg.GET("/currency/convert", h.convert)
}

// getDefaultRate godoc
// @Summary Get the default exchange rate
// @Description Returns the SYP per USD rate used when a transaction carries no rate of its own
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.DefaultRateResponse
// @Router /settings/exchange-rate [get]
func (h *exchangeRateHandler) getDefaultRate(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToDefaultRateResponse(h.currencyService.GetDefaultRate()))
}

// updateDefaultRate godoc
// @Summary Update the default exchange rate
// @Description Replaces and persists the default rate. Rates captured on earlier transactions are unaffected.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpdateDefaultRateRequest true "New default rate"
// @Success 200 {object} dto.DefaultRateResponse
// @Failure 400 {object} map[string]string "Invalid exchange rate"
// @Router /settings/exchange-rate [put]
func (h *exchangeRateHandler) updateDefaultRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDefaultRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Rejected default exchange rate update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exchange rate. Please enter a valid positive number."})
		return
	}

	h.currencyService.SetDefaultRate(c.Request.Context(), *req.Rate)

	logger.Info("Default exchange rate changed", slog.Float64("rate", *req.Rate))
	c.JSON(http.StatusOK, dto.ToDefaultRateResponse(h.currencyService.GetDefaultRate()))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts between USD and SYP using the given rate, or the default rate when omitted or 0
// @Tags exchange rates
// @Produce  json
// @Param   amount query number true "Amount to convert"
// @Param   from   query string true "Source currency" Enums(USD, SYP)
// @Param   to     query string true "Target currency" Enums(USD, SYP)
// @Param   rate   query number false "SYP per USD; 0 or absent uses the default"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 422 {object} map[string]string "No usable exchange rate"
// @Router /currency/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	from, _ := domain.ParseCurrency(req.From)
	to, _ := domain.ParseCurrency(req.To)

	result, err := h.currencyService.Convert(*req.Amount, from, to, req.Rate)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert amount")
		return
	}

	rate := 1.0
	if from != to {
		rate = h.currencyService.ResolveRate(req.Rate)
	}
	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:        *req.Amount,
		From:          string(from),
		To:            string(to),
		Rate:          rate,
		Result:        result,
		FormattedFrom: utils.FormatAmount(*req.Amount, from),
		FormattedTo:   utils.FormatAmount(result, to),
	})
}
