package services

import (
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
)

// BreakdownSvc explains a settlement transfer in terms of the expenses that
// produced it, for user-facing audit display.
type BreakdownSvc interface {
	// ExplainTransfer re-derives, for every expense involving the transfer's
	// two parties, how much it moved the balance between them. Entries are
	// sorted by absolute contribution, largest first.
	ExplainTransfer(transfer domain.SettlementTransfer, expenses []domain.Expense) (*domain.TransferBreakdown, error)
}
