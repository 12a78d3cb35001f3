package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
	"github.com/SscSPs/trip_settlement_engine/internal/dto"
	"github.com/SscSPs/trip_settlement_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settlementHandler handles HTTP requests for settlement computation.
type settlementHandler struct {
	settlementService portssvc.SettlementSvc
}

// newSettlementHandler creates a new settlementHandler.
func newSettlementHandler(ss portssvc.SettlementSvc) *settlementHandler {
	return &settlementHandler{
		settlementService: ss,
	}
}

// registerSettlementRoutes registers routes related to settlements, including
// the transfer breakdown audit endpoint.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvc, breakdownService portssvc.BreakdownSvc) {
	h := newSettlementHandler(settlementService)
	bh := newBreakdownHandler(breakdownService)

	settlements := rg.Group("/settlements")
	{
		settlements.POST("/compute", h.computeSettlement)
		settlements.POST("/transfers/breakdown", bh.explainTransfer)
	}
}

// computeSettlement godoc
// @Summary Compute a settlement plan for a list of expenses
// @Description Aggregates expenses into per-person summaries and a near-minimal transfer plan, one settlement per currency. An optional currencyCode restricts the computation to that currency alone. Previously recorded settled statuses are merged onto the recomputed transfers by (from, to, currency).
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   request body dto.ComputeSettlementRequest true "Expenses to settle, plus optional settled statuses and currency filter"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Expense data does not balance"
// @Failure 500 {object} map[string]string "Failed to compute settlement"
// @Router /settlements/compute [post]
func (h *settlementHandler) computeSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ComputeSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expenses := dto.ToDomainExpenses(req.Expenses)
	statuses := dto.ToDomainTransferStatuses(req.SettledTransfers)
	logger = logger.With(slog.Int("expense_count", len(expenses)))
	logger.Info("Received request to compute a settlement")

	result, err := h.settle(expenses, req.CurrencyCode)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDivisionByZero):
			logger.Warn("Rejected settlement computation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrReconciliation), errors.Is(err, apperrors.ErrBalanceInvariant):
			logger.Error("Settlement computation rejected, results discarded", slog.String("error", err.Error()))
			requestID, _ := middleware.GetRequestIDFromContext(c)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "requestID": requestID})
		default:
			logger.Error("Failed to compute settlement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute settlement"})
		}
		return
	}

	settlements := make([]dto.CurrencySettlementResponse, len(result.Settlements))
	for i, cs := range result.Settlements {
		merged := h.settlementService.MergeTransferStatus(cs.Transfers, statuses)
		settlements[i] = dto.ToCurrencySettlementResponse(cs, merged)
	}

	logger.Info("Settlement computed", slog.Int("currency_count", len(settlements)))
	c.JSON(http.StatusOK, dto.SettlementResponse{Settlements: settlements})
}

// settle runs the full multi-currency computation, or a single-currency one
// when a currency filter was supplied.
func (h *settlementHandler) settle(expenses []domain.Expense, currencyCode string) (*domain.SettlementResult, error) {
	if currencyCode == "" {
		return h.settlementService.Settle(expenses)
	}
	cs, err := h.settlementService.SettleCurrency(expenses, currencyCode)
	if err != nil {
		return nil, err
	}
	return &domain.SettlementResult{Settlements: []domain.CurrencySettlement{*cs}}, nil
}
