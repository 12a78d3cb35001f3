package dto

import (
	"time"

	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseParticipantRequest is one participant entry in a split request.
// Weight is optional on the wire and defaults to 1.
type ExpenseParticipantRequest struct {
	ParticipantID string           `json:"participantID" binding:"required"`
	Weight        *decimal.Decimal `json:"weight,omitempty"`
}

// ItemAssignmentRequest ties a participant to a line item. Share is optional
// on the wire and defaults to 1.
type ItemAssignmentRequest struct {
	ParticipantID string           `json:"participantID" binding:"required"`
	Share         *decimal.Decimal `json:"share,omitempty"`
}

// LineItemRequest is a single row of an itemized receipt.
type LineItemRequest struct {
	Name       string                  `json:"name"`
	Quantity   int64                   `json:"quantity" binding:"required,min=1"`
	UnitPrice  decimal.Decimal         `json:"unitPrice"`
	AssignedTo []ItemAssignmentRequest `json:"assignedTo" binding:"required,min=1"`
}

// TaxRequest describes the tax charged on a receipt.
type TaxRequest struct {
	Mode      string          `json:"mode" binding:"required,oneof=RATE FIXED"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	Inclusive bool            `json:"inclusive"`
}

// TipRequest describes the tip added to a receipt.
type TipRequest struct {
	Mode   string          `json:"mode" binding:"required,oneof=RATE FIXED"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// FeeRequest describes one surcharge row.
type FeeRequest struct {
	Name   string          `json:"name"`
	Mode   string          `json:"mode" binding:"required,oneof=RATE FIXED"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// DiscountRequest describes one discount row.
type DiscountRequest struct {
	Name   string          `json:"name"`
	Mode   string          `json:"mode" binding:"required,oneof=RATE FIXED"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
	PreTax bool            `json:"preTax"`
}

// ReceiptRequest carries the itemized detail of an ITEMIZED expense.
type ReceiptRequest struct {
	Items            []LineItemRequest `json:"items" binding:"required,min=1"`
	Tax              *TaxRequest       `json:"tax,omitempty"`
	Tip              *TipRequest       `json:"tip,omitempty"`
	Fees             []FeeRequest      `json:"fees,omitempty"`
	Discounts        []DiscountRequest `json:"discounts,omitempty"`
	Allocation       string            `json:"allocation,omitempty" binding:"omitempty,oneof=PROPORTIONAL_TO_SUBTOTAL EQUAL_PER_PARTICIPANT"`
	ExpectedSubtotal *decimal.Decimal  `json:"expectedSubtotal,omitempty"`
	ExpectedTax      *decimal.Decimal  `json:"expectedTax,omitempty"`
}

// ExpenseRequest is the wire form of a single expense.
type ExpenseRequest struct {
	ExpenseID    string                      `json:"expenseID" binding:"required"`
	Description  string                      `json:"description"`
	PayerID      string                      `json:"payerID" binding:"required"`
	CurrencyCode string                      `json:"currencyCode" binding:"required,currencycode"`
	Amount       decimal.Decimal             `json:"amount" binding:"required"`
	Date         time.Time                   `json:"date"`
	SplitType    string                      `json:"splitType" binding:"required,oneof=EQUAL WEIGHTED ITEMIZED"`
	Participants []ExpenseParticipantRequest `json:"participants"`
	Receipt      *ReceiptRequest             `json:"receipt,omitempty"`
}

func defaultShare(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.NewFromInt(1)
	}
	return *d
}

// ToDomainExpense converts the wire expense into its domain form. Omitted
// participant weights and assignment shares default to 1; explicit values are
// passed through for the domain to validate.
func (r ExpenseRequest) ToDomainExpense() domain.Expense {
	participants := make([]domain.SplitParticipant, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = domain.SplitParticipant{
			ParticipantID: p.ParticipantID,
			Weight:        defaultShare(p.Weight),
		}
	}

	expense := domain.Expense{
		ExpenseID:    r.ExpenseID,
		Description:  r.Description,
		PayerID:      r.PayerID,
		CurrencyCode: r.CurrencyCode,
		Amount:       r.Amount,
		Date:         r.Date,
		SplitType:    domain.SplitType(r.SplitType),
		Participants: participants,
	}
	if r.Receipt != nil {
		receipt := r.Receipt.toDomainReceipt()
		expense.Receipt = &receipt
	}
	return expense
}

// ToDomainExpenses converts a slice of wire expenses.
func ToDomainExpenses(reqs []ExpenseRequest) []domain.Expense {
	expenses := make([]domain.Expense, len(reqs))
	for i, r := range reqs {
		expenses[i] = r.ToDomainExpense()
	}
	return expenses
}

func (r ReceiptRequest) toDomainReceipt() domain.Receipt {
	items := make([]domain.LineItem, len(r.Items))
	for i, item := range r.Items {
		assigned := make([]domain.ItemAssignment, len(item.AssignedTo))
		for j, a := range item.AssignedTo {
			assigned[j] = domain.ItemAssignment{
				ParticipantID: a.ParticipantID,
				Share:         defaultShare(a.Share),
			}
		}
		items[i] = domain.LineItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			AssignedTo: assigned,
		}
	}

	receipt := domain.Receipt{
		Items:            items,
		Allocation:       domain.AllocationRule(r.Allocation),
		ExpectedSubtotal: r.ExpectedSubtotal,
		ExpectedTax:      r.ExpectedTax,
	}
	if r.Tax != nil {
		receipt.Tax = &domain.TaxSpec{
			Mode:      domain.ExtraMode(r.Tax.Mode),
			Rate:      r.Tax.Rate,
			Amount:    r.Tax.Amount,
			Inclusive: r.Tax.Inclusive,
		}
	}
	if r.Tip != nil {
		receipt.Tip = &domain.TipSpec{
			Mode:   domain.ExtraMode(r.Tip.Mode),
			Rate:   r.Tip.Rate,
			Amount: r.Tip.Amount,
		}
	}
	for _, fee := range r.Fees {
		receipt.Fees = append(receipt.Fees, domain.FeeSpec{
			Name:   fee.Name,
			Mode:   domain.ExtraMode(fee.Mode),
			Rate:   fee.Rate,
			Amount: fee.Amount,
		})
	}
	for _, d := range r.Discounts {
		receipt.Discounts = append(receipt.Discounts, domain.DiscountSpec{
			Name:   d.Name,
			Mode:   domain.ExtraMode(d.Mode),
			Rate:   d.Rate,
			Amount: d.Amount,
			PreTax: d.PreTax,
		})
	}
	return receipt
}
