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

// splitHandler handles HTTP requests for previewing expense splits.
type splitHandler struct {
	splitService      portssvc.SplitSvc
	allocationService portssvc.AllocationSvc
}

// newSplitHandler creates a new splitHandler.
func newSplitHandler(ss portssvc.SplitSvc, as portssvc.AllocationSvc) *splitHandler {
	return &splitHandler{
		splitService:      ss,
		allocationService: as,
	}
}

// registerSplitRoutes registers routes related to split previews.
func registerSplitRoutes(rg *gin.RouterGroup, splitService portssvc.SplitSvc, allocationService portssvc.AllocationSvc) {
	h := newSplitHandler(splitService, allocationService)

	splits := rg.Group("/splits")
	{
		splits.POST("/preview", h.previewSplit)
	}
}

// previewSplit godoc
// @Summary Preview the split of a single expense
// @Description Computes each participant's share of one expense without persisting anything. Itemized expenses return the full per-participant breakdown.
// @Tags splits
// @Accept  json
// @Produce  json
// @Param   expense body dto.ExpenseRequest true "Expense to split"
// @Success 200 {object} dto.SplitPreviewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Receipt does not reconcile with the expense amount"
// @Failure 500 {object} map[string]string "Failed to compute split"
// @Router /splits/preview [post]
func (h *splitHandler) previewSplit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewSplit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense := req.ToDomainExpense()
	logger = logger.With(slog.String("expense_id", expense.ExpenseID), slog.String("split_type", string(expense.SplitType)))
	logger.Info("Received request to preview a split")

	if expense.SplitType == domain.SplitItemized {
		result, err := h.allocationService.Allocate(expense)
		if err != nil {
			h.respondComputeError(c, logger, err, "Failed to allocate receipt")
			return
		}
		logger.Info("Itemized split previewed", slog.Int("participant_count", len(result.ParticipantAmounts)), slog.Int("warning_count", len(result.Warnings)))
		c.JSON(http.StatusOK, dto.ToItemizedPreviewResponse(expense, result))
		return
	}

	shares, err := h.splitService.ExpenseShares(expense)
	if err != nil {
		h.respondComputeError(c, logger, err, "Failed to compute split")
		return
	}

	logger.Info("Split previewed", slog.Int("participant_count", len(shares)))
	c.JSON(http.StatusOK, dto.ToSplitPreviewResponse(expense, shares))
}

// respondComputeError maps engine errors onto HTTP statuses. Reconciliation
// failures carry the request ID so the offending computation can be traced.
func (h *splitHandler) respondComputeError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDivisionByZero):
		logger.Warn("Rejected split preview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrReconciliation):
		logger.Warn("Receipt failed reconciliation", slog.String("error", err.Error()))
		requestID, _ := middleware.GetRequestIDFromContext(c)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "requestID": requestID})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
