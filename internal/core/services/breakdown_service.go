package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
	"github.com/SscSPs/trip_settlement_engine/internal/utils"
	"github.com/shopspring/decimal"
)

// breakdownService re-derives per-expense contributions behind a transfer.
type breakdownService struct {
	splitSvc portssvc.SplitSvc
}

// NewBreakdownService creates a new breakdown service. Shares are derived
// through the same split service settlement uses, so a breakdown can never
// disagree with the transfer it explains.
func NewBreakdownService(splitSvc portssvc.SplitSvc) portssvc.BreakdownSvc {
	return &breakdownService{splitSvc: splitSvc}
}

// Ensure breakdownService implements the portssvc.BreakdownSvc interface
var _ portssvc.BreakdownSvc = (*breakdownService)(nil)

// ExplainTransfer reconstructs which expenses produced a transfer and by how
// much. Every expense of the transfer's currency that involves either party
// yields one entry; a positive NetContribution means the expense increased
// the debtor's outstanding debt. Entries are sorted by absolute contribution,
// largest first.
func (s *breakdownService) ExplainTransfer(transfer domain.SettlementTransfer, expenses []domain.Expense) (*domain.TransferBreakdown, error) {
	if transfer.FromUserID == "" || transfer.ToUserID == "" {
		return nil, fmt.Errorf("%w: transfer requires both a debtor and a creditor", apperrors.ErrValidation)
	}
	if transfer.FromUserID == transfer.ToUserID {
		return nil, fmt.Errorf("%w: transfer debtor and creditor must differ, both are %s", apperrors.ErrValidation, transfer.FromUserID)
	}
	if transfer.CurrencyCode == "" {
		return nil, fmt.Errorf("%w: transfer currency code is required", apperrors.ErrValidation)
	}
	if !transfer.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive, got %s", apperrors.ErrValidation, transfer.Amount)
	}

	currency := domain.CurrencyOrDefault(transfer.CurrencyCode)
	entries := make([]domain.ExpenseBreakdown, 0, len(expenses))
	for _, expense := range expenses {
		if expense.CurrencyCode != transfer.CurrencyCode {
			continue
		}
		if !expenseInvolves(expense, transfer.FromUserID) && !expenseInvolves(expense, transfer.ToUserID) {
			continue
		}
		shares, err := s.splitSvc.ExpenseShares(expense)
		if err != nil {
			return nil, err
		}

		fromPaid, toPaid := decimal.Zero, decimal.Zero
		if expense.PayerID == transfer.FromUserID {
			fromPaid = expense.Amount
		}
		if expense.PayerID == transfer.ToUserID {
			toPaid = expense.Amount
		}
		fromOwes := shareOf(shares, transfer.FromUserID)
		toOwes := shareOf(shares, transfer.ToUserID)

		entries = append(entries, domain.ExpenseBreakdown{
			ExpenseID:       expense.ExpenseID,
			Description:     expense.Description,
			FromPaid:        fromPaid,
			FromOwes:        fromOwes,
			ToPaid:          toPaid,
			ToOwes:          toOwes,
			NetContribution: fromOwes.Sub(fromPaid),
			Explanation:     buildExplanation(expense, transfer, fromPaid, fromOwes, toPaid, toOwes, currency),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		iAbs, jAbs := entries[i].NetContribution.Abs(), entries[j].NetContribution.Abs()
		if !iAbs.Equal(jAbs) {
			return iAbs.GreaterThan(jAbs)
		}
		return entries[i].ExpenseID < entries[j].ExpenseID
	})

	return &domain.TransferBreakdown{Transfer: transfer, Expenses: entries}, nil
}

// expenseInvolves reports whether the participant paid for, or holds a share
// of, the expense.
func expenseInvolves(expense domain.Expense, participantID string) bool {
	if expense.PayerID == participantID {
		return true
	}
	if expense.SplitType == domain.SplitItemized && expense.Receipt != nil {
		for _, item := range expense.Receipt.Items {
			for _, a := range item.AssignedTo {
				if a.ParticipantID == participantID {
					return true
				}
			}
		}
		return false
	}
	for _, p := range expense.Participants {
		if p.ParticipantID == participantID {
			return true
		}
	}
	return false
}

func shareOf(shares []domain.ParticipantAmount, participantID string) decimal.Decimal {
	for _, share := range shares {
		if share.ParticipantID == participantID {
			return share.Amount
		}
	}
	return decimal.Zero
}

func buildExplanation(expense domain.Expense, transfer domain.SettlementTransfer, fromPaid, fromOwes, toPaid, toOwes decimal.Decimal, currency domain.Currency) string {
	money := func(amount decimal.Decimal) string {
		return utils.FormatWithCurrencyPrecision(amount, currency) + " " + currency.CurrencyCode
	}

	parts := make([]string, 0, 3)
	switch {
	case fromPaid.IsPositive():
		parts = append(parts, fmt.Sprintf("%s paid %s", transfer.FromUserID, money(fromPaid)))
	case toPaid.IsPositive():
		parts = append(parts, fmt.Sprintf("%s paid %s", transfer.ToUserID, money(toPaid)))
	default:
		parts = append(parts, fmt.Sprintf("paid by %s", expense.PayerID))
	}
	if fromOwes.IsPositive() {
		parts = append(parts, fmt.Sprintf("%s owes %s", transfer.FromUserID, money(fromOwes)))
	}
	if toOwes.IsPositive() {
		parts = append(parts, fmt.Sprintf("%s owes %s", transfer.ToUserID, money(toOwes)))
	}
	return strings.Join(parts, "; ")
}
