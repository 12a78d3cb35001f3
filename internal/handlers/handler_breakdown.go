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

// breakdownHandler handles HTTP requests for transfer breakdowns.
type breakdownHandler struct {
	breakdownService portssvc.BreakdownSvc
}

// newBreakdownHandler creates a new breakdownHandler.
func newBreakdownHandler(bs portssvc.BreakdownSvc) *breakdownHandler {
	return &breakdownHandler{
		breakdownService: bs,
	}
}

// explainTransfer godoc
// @Summary Explain which expenses produced a transfer
// @Description Re-derives, for every expense involving the transfer's two parties, how much it moved the balance between them. Entries are sorted by absolute contribution, largest first.
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   request body dto.TransferBreakdownRequest true "Transfer to explain, plus the expense list it was computed from"
// @Success 200 {object} dto.TransferBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Receipt does not reconcile with the expense amount"
// @Failure 500 {object} map[string]string "Failed to compute breakdown"
// @Router /settlements/transfers/breakdown [post]
func (h *breakdownHandler) explainTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ExplainTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transfer := req.Transfer.ToDomainTransfer()
	expenses := dto.ToDomainExpenses(req.Expenses)
	logger = logger.With(
		slog.String("from_user_id", transfer.FromUserID),
		slog.String("to_user_id", transfer.ToUserID),
		slog.String("currency_code", transfer.CurrencyCode),
	)
	logger.Info("Received request to explain a transfer", slog.Int("expense_count", len(expenses)))

	breakdown, err := h.breakdownService.ExplainTransfer(transfer, expenses)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDivisionByZero):
			logger.Warn("Rejected transfer breakdown", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrReconciliation):
			logger.Warn("Receipt failed reconciliation during breakdown", slog.String("error", err.Error()))
			requestID, _ := middleware.GetRequestIDFromContext(c)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "requestID": requestID})
		default:
			logger.Error("Failed to compute transfer breakdown", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute transfer breakdown"})
		}
		return
	}

	logger.Info("Transfer breakdown computed", slog.Int("contributing_expenses", len(breakdown.Expenses)))
	c.JSON(http.StatusOK, dto.ToTransferBreakdownResponse(breakdown))
}
