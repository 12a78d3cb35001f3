package dto

import (
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest identifies the transfer a breakdown is requested for.
type TransferRequest struct {
	FromUserID   string          `json:"fromUserID" binding:"required"`
	ToUserID     string          `json:"toUserID" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
}

// TransferBreakdownRequest asks which expenses produced a transfer.
type TransferBreakdownRequest struct {
	Transfer TransferRequest  `json:"transfer" binding:"required"`
	Expenses []ExpenseRequest `json:"expenses" binding:"required,min=1"`
}

// ExpenseBreakdownResponse explains one expense's contribution to a transfer.
type ExpenseBreakdownResponse struct {
	ExpenseID       string          `json:"expenseID"`
	Description     string          `json:"description"`
	FromPaid        decimal.Decimal `json:"fromPaid"`
	FromOwes        decimal.Decimal `json:"fromOwes"`
	ToPaid          decimal.Decimal `json:"toPaid"`
	ToOwes          decimal.Decimal `json:"toOwes"`
	NetContribution decimal.Decimal `json:"netContribution"`
	Explanation     string          `json:"explanation"`
}

// TransferBreakdownResponse is the ordered audit view of one transfer.
type TransferBreakdownResponse struct {
	Transfer TransferResponse           `json:"transfer"`
	Expenses []ExpenseBreakdownResponse `json:"expenses"`
}

// ToDomainTransfer converts the wire transfer to its domain form.
func (r TransferRequest) ToDomainTransfer() domain.SettlementTransfer {
	return domain.SettlementTransfer{
		FromUserID:   r.FromUserID,
		ToUserID:     r.ToUserID,
		Amount:       r.Amount,
		CurrencyCode: r.CurrencyCode,
	}
}

// ToTransferBreakdownResponse converts a computed breakdown to its wire form.
func ToTransferBreakdownResponse(b *domain.TransferBreakdown) TransferBreakdownResponse {
	expenses := make([]ExpenseBreakdownResponse, len(b.Expenses))
	for i, e := range b.Expenses {
		expenses[i] = ExpenseBreakdownResponse{
			ExpenseID:       e.ExpenseID,
			Description:     e.Description,
			FromPaid:        e.FromPaid,
			FromOwes:        e.FromOwes,
			ToPaid:          e.ToPaid,
			ToOwes:          e.ToOwes,
			NetContribution: e.NetContribution,
			Explanation:     e.Explanation,
		}
	}
	return TransferBreakdownResponse{
		Transfer: TransferResponse{
			FromUserID:   b.Transfer.FromUserID,
			ToUserID:     b.Transfer.ToUserID,
			Amount:       b.Transfer.Amount,
			CurrencyCode: b.Transfer.CurrencyCode,
		},
		Expenses: expenses,
	}
}
