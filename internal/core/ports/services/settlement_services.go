package services

import (
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
)

// SettlementSvc aggregates a trip's expenses into per-person summaries and a
// near-minimal plan of pairwise transfers. Each currency is settled
// independently; amounts never convert or mix across currencies.
type SettlementSvc interface {
	// Settle computes summaries and transfers for every currency present in
	// the expense list, sorted by currency code.
	Settle(expenses []domain.Expense) (*domain.SettlementResult, error)

	// SettleCurrency computes summaries and transfers for a single currency,
	// considering only that currency's expenses.
	SettleCurrency(expenses []domain.Expense, currencyCode string) (*domain.CurrencySettlement, error)

	// MergeTransferStatus joins externally persisted settled flags onto
	// freshly computed transfers, matching on (from, to, currency). Unmatched
	// statuses are dropped; unmatched transfers come back unsettled.
	MergeTransferStatus(transfers []domain.SettlementTransfer, statuses []domain.TransferStatus) []domain.MinimalTransfer
}
