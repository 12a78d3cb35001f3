package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParticipantAmount is one participant's final owed share of a single expense.
type ParticipantAmount struct {
	ParticipantID string          `json:"participantID"`
	Amount        decimal.Decimal `json:"amount"`
}

// ParticipantBreakdown is the audit trail behind one participant's share of
// an itemized expense.
type ParticipantBreakdown struct {
	ParticipantID string          `json:"participantID"`
	ItemsSubtotal decimal.Decimal `json:"itemsSubtotal"` // Sum of this participant's item portions
	TaxShare      decimal.Decimal `json:"taxShare"`
	TipShare      decimal.Decimal `json:"tipShare"`
	FeeShare      decimal.Decimal `json:"feeShare"`
	DiscountShare decimal.Decimal `json:"discountShare"` // Positive value, subtracted from the total
	Total         decimal.Decimal `json:"total"`         // Equals the matching ParticipantAmount
}

// AllocationResult is the canonical output of an itemized allocation. The
// participant amounts are the persisted record; they are not recomputed from
// items on every read.
type AllocationResult struct {
	ParticipantAmounts   []ParticipantAmount    `json:"participantAmounts"`   // In first-item-appearance order
	ParticipantBreakdown []ParticipantBreakdown `json:"participantBreakdown"` // Same order
	ComputedSubtotal     decimal.Decimal        `json:"computedSubtotal"`     // Sum of item subtotals
	ComputedTotal        decimal.Decimal        `json:"computedTotal"`        // Subtotal plus extras
	Warnings             []string               `json:"warnings,omitempty"`   // Advisory mismatches, non-fatal
}

// PersonSummary is one participant's position across a trip, per currency.
type PersonSummary struct {
	ParticipantID string          `json:"participantID"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalOwed     decimal.Decimal `json:"totalOwed"`
	Net           decimal.Decimal `json:"net"` // TotalPaid - TotalOwed; positive means the group owes them
}

// SettlementTransfer is one debtor-to-creditor payment in the computed
// settlement plan. It is immutable engine output; settled status lives on
// TransferStatus and is merged in by the caller.
type SettlementTransfer struct {
	FromUserID   string          `json:"fromUserID"` // Debtor
	ToUserID     string          `json:"toUserID"`   // Creditor
	Amount       decimal.Decimal `json:"amount"`     // Positive, in CurrencyCode
	CurrencyCode string          `json:"currencyCode"`
}

// TransferStatus is the externally-owned settled flag for a transfer, keyed
// by (from, to, currency). The engine never sets or clears it; the
// persistence layer round-trips it across recomputations.
type TransferStatus struct {
	FromUserID   string     `json:"fromUserID"`
	ToUserID     string     `json:"toUserID"`
	CurrencyCode string     `json:"currencyCode"`
	Settled      bool       `json:"settled"`
	SettledAt    *time.Time `json:"settledAt,omitempty"`
}

// MinimalTransfer is a SettlementTransfer with its externally-owned status
// merged in, ready for presentation.
type MinimalTransfer struct {
	SettlementTransfer
	Settled   bool       `json:"settled"`
	SettledAt *time.Time `json:"settledAt,omitempty"`
}

// CurrencySettlement is the full settlement picture for a single currency.
type CurrencySettlement struct {
	CurrencyCode string               `json:"currencyCode"`
	Summaries    []PersonSummary      `json:"summaries"` // Sorted by participant ID
	Transfers    []SettlementTransfer `json:"transfers"` // In greedy emission order
}

// SettlementResult is the settlement for a whole trip, one entry per currency
// present in the expense list, sorted by currency code. Currencies never mix:
// each entry is computed from that currency's expenses alone.
type SettlementResult struct {
	Settlements []CurrencySettlement `json:"settlements"`
}

// ExpenseBreakdown explains how much one expense contributed to a specific
// transfer. A positive NetContribution means the expense increases what the
// transfer's debtor owes its creditor.
type ExpenseBreakdown struct {
	ExpenseID       string          `json:"expenseID"`
	Description     string          `json:"description"`
	FromPaid        decimal.Decimal `json:"fromPaid"`
	FromOwes        decimal.Decimal `json:"fromOwes"`
	ToPaid          decimal.Decimal `json:"toPaid"`
	ToOwes          decimal.Decimal `json:"toOwes"`
	NetContribution decimal.Decimal `json:"netContribution"`
	Explanation     string          `json:"explanation"`
}

// TransferBreakdown is the ordered audit view of one transfer: which expenses
// produced it and by how much, largest contributors first.
type TransferBreakdown struct {
	Transfer SettlementTransfer `json:"transfer"`
	Expenses []ExpenseBreakdown `json:"expenses"`
}
