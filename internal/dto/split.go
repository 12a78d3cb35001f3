package dto

import (
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParticipantAmountResponse is one participant's owed share of an expense.
type ParticipantAmountResponse struct {
	ParticipantID string          `json:"participantID"`
	Amount        decimal.Decimal `json:"amount"`
}

// ParticipantBreakdownResponse is the audit trail behind one participant's
// share of an itemized expense.
type ParticipantBreakdownResponse struct {
	ParticipantID string          `json:"participantID"`
	ItemsSubtotal decimal.Decimal `json:"itemsSubtotal"`
	TaxShare      decimal.Decimal `json:"taxShare"`
	TipShare      decimal.Decimal `json:"tipShare"`
	FeeShare      decimal.Decimal `json:"feeShare"`
	DiscountShare decimal.Decimal `json:"discountShare"`
	Total         decimal.Decimal `json:"total"`
}

// SplitPreviewResponse is the computed share list for one expense. The
// breakdown fields are only populated for itemized expenses.
type SplitPreviewResponse struct {
	ExpenseID          string                         `json:"expenseID"`
	CurrencyCode       string                         `json:"currencyCode"`
	SplitType          string                         `json:"splitType"`
	ParticipantAmounts []ParticipantAmountResponse    `json:"participantAmounts"`
	Breakdown          []ParticipantBreakdownResponse `json:"breakdown,omitempty"`
	ComputedSubtotal   *decimal.Decimal               `json:"computedSubtotal,omitempty"`
	ComputedTotal      *decimal.Decimal               `json:"computedTotal,omitempty"`
	Warnings           []string                       `json:"warnings,omitempty"`
}

// ToParticipantAmountResponses converts domain shares to their wire form.
func ToParticipantAmountResponses(shares []domain.ParticipantAmount) []ParticipantAmountResponse {
	responses := make([]ParticipantAmountResponse, len(shares))
	for i, s := range shares {
		responses[i] = ParticipantAmountResponse{
			ParticipantID: s.ParticipantID,
			Amount:        s.Amount,
		}
	}
	return responses
}

// ToSplitPreviewResponse builds the preview response for an equal or weighted
// split.
func ToSplitPreviewResponse(expense domain.Expense, shares []domain.ParticipantAmount) SplitPreviewResponse {
	return SplitPreviewResponse{
		ExpenseID:          expense.ExpenseID,
		CurrencyCode:       expense.CurrencyCode,
		SplitType:          string(expense.SplitType),
		ParticipantAmounts: ToParticipantAmountResponses(shares),
	}
}

// ToItemizedPreviewResponse builds the preview response for an itemized
// expense, carrying the full allocation audit trail.
func ToItemizedPreviewResponse(expense domain.Expense, result *domain.AllocationResult) SplitPreviewResponse {
	breakdown := make([]ParticipantBreakdownResponse, len(result.ParticipantBreakdown))
	for i, b := range result.ParticipantBreakdown {
		breakdown[i] = ParticipantBreakdownResponse{
			ParticipantID: b.ParticipantID,
			ItemsSubtotal: b.ItemsSubtotal,
			TaxShare:      b.TaxShare,
			TipShare:      b.TipShare,
			FeeShare:      b.FeeShare,
			DiscountShare: b.DiscountShare,
			Total:         b.Total,
		}
	}

	subtotal := result.ComputedSubtotal
	total := result.ComputedTotal
	return SplitPreviewResponse{
		ExpenseID:          expense.ExpenseID,
		CurrencyCode:       expense.CurrencyCode,
		SplitType:          string(expense.SplitType),
		ParticipantAmounts: ToParticipantAmountResponses(result.ParticipantAmounts),
		Breakdown:          breakdown,
		ComputedSubtotal:   &subtotal,
		ComputedTotal:      &total,
		Warnings:           result.Warnings,
	}
}
