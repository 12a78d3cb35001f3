package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
	"github.com/SscSPs/trip_settlement_engine/internal/dto"
	"github.com/SscSPs/trip_settlement_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencyReaderSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencyReaderSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyReaderSvc) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves minor-unit scale and display details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode))
	logger.Info("Received request to get currency by code")

	currency, err := h.currencyService.GetCurrencyByCode(currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	logger.Info("Currency retrieved successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves all currencies the engine knows minor-unit scales for, sorted by code
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list currencies")

	currencies := h.currencyService.ListCurrencies()

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
