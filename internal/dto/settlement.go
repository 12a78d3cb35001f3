package dto

import (
	"time"

	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferStatusRequest is the externally-owned settled flag for a transfer,
// keyed by (from, to, currency).
type TransferStatusRequest struct {
	FromUserID   string     `json:"fromUserID" binding:"required"`
	ToUserID     string     `json:"toUserID" binding:"required"`
	CurrencyCode string     `json:"currencyCode" binding:"required"`
	Settled      bool       `json:"settled"`
	SettledAt    *time.Time `json:"settledAt,omitempty"`
}

// ComputeSettlementRequest carries a full expense list to settle, plus any
// previously recorded settled statuses to merge onto the recomputed plan.
// CurrencyCode, when set, restricts the computation to that one currency.
type ComputeSettlementRequest struct {
	Expenses         []ExpenseRequest        `json:"expenses" binding:"required,min=1"`
	SettledTransfers []TransferStatusRequest `json:"settledTransfers,omitempty"`
	CurrencyCode     string                  `json:"currencyCode,omitempty" binding:"omitempty,currencycode"`
}

// PersonSummaryResponse is one participant's position in one currency.
type PersonSummaryResponse struct {
	ParticipantID string          `json:"participantID"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalOwed     decimal.Decimal `json:"totalOwed"`
	Net           decimal.Decimal `json:"net"`
}

// TransferResponse is one debtor-to-creditor payment with its merged status.
type TransferResponse struct {
	FromUserID   string          `json:"fromUserID"`
	ToUserID     string          `json:"toUserID"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Settled      bool            `json:"settled"`
	SettledAt    *time.Time      `json:"settledAt,omitempty"`
}

// CurrencySettlementResponse is the settlement picture for one currency.
type CurrencySettlementResponse struct {
	CurrencyCode string                  `json:"currencyCode"`
	Summaries    []PersonSummaryResponse `json:"summaries"`
	Transfers    []TransferResponse      `json:"transfers"`
}

// SettlementResponse is the per-currency settlement for a whole expense list.
type SettlementResponse struct {
	Settlements []CurrencySettlementResponse `json:"settlements"`
}

// ToDomainTransferStatuses converts wire settled statuses to their domain form.
func ToDomainTransferStatuses(reqs []TransferStatusRequest) []domain.TransferStatus {
	statuses := make([]domain.TransferStatus, len(reqs))
	for i, r := range reqs {
		statuses[i] = domain.TransferStatus{
			FromUserID:   r.FromUserID,
			ToUserID:     r.ToUserID,
			CurrencyCode: r.CurrencyCode,
			Settled:      r.Settled,
			SettledAt:    r.SettledAt,
		}
	}
	return statuses
}

// ToTransferResponses converts status-merged transfers to their wire form.
func ToTransferResponses(transfers []domain.MinimalTransfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		responses[i] = TransferResponse{
			FromUserID:   t.FromUserID,
			ToUserID:     t.ToUserID,
			Amount:       t.Amount,
			CurrencyCode: t.CurrencyCode,
			Settled:      t.Settled,
			SettledAt:    t.SettledAt,
		}
	}
	return responses
}

// ToCurrencySettlementResponse converts one currency's settlement, pairing its
// summaries with the status-merged transfer list.
func ToCurrencySettlementResponse(cs domain.CurrencySettlement, merged []domain.MinimalTransfer) CurrencySettlementResponse {
	summaries := make([]PersonSummaryResponse, len(cs.Summaries))
	for i, s := range cs.Summaries {
		summaries[i] = PersonSummaryResponse{
			ParticipantID: s.ParticipantID,
			TotalPaid:     s.TotalPaid,
			TotalOwed:     s.TotalOwed,
			Net:           s.Net,
		}
	}
	return CurrencySettlementResponse{
		CurrencyCode: cs.CurrencyCode,
		Summaries:    summaries,
		Transfers:    ToTransferResponses(merged),
	}
}
