package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SplitType indicates how an expense is divided among its participants.
type SplitType string

const (
	SplitEqual    SplitType = "EQUAL"
	SplitWeighted SplitType = "WEIGHTED"
	SplitItemized SplitType = "ITEMIZED"
)

// SplitParticipant is one participant's entry in an expense split. The order
// of participants is significant: leftover minor units go to the earliest
// entries, so callers must supply a stable order.
type SplitParticipant struct {
	ParticipantID string          `json:"participantID"` // Opaque ref; never resolved to a name here
	Weight        decimal.Decimal `json:"weight"`        // 1 for equal splits; > 0 for weighted
}

// Expense is an immutable record of a single payment made by one participant
// on behalf of a group.
type Expense struct {
	ExpenseID    string             `json:"expenseID"`             // Caller-assigned identifier (e.g., UUID)
	Description  string             `json:"description"`           // Nullable user description
	PayerID      string             `json:"payerID"`               // Participant ref of who paid (Not Null)
	CurrencyCode string             `json:"currencyCode"`          // ISO 4217 code (Not Null)
	Amount       decimal.Decimal    `json:"amount"`                // Positive value; precise decimal type
	Date         time.Time          `json:"date"`                  // Date the expense occurred
	SplitType    SplitType          `json:"splitType"`             // EQUAL, WEIGHTED or ITEMIZED
	Participants []SplitParticipant `json:"participants"`          // Ordered; may be empty for ITEMIZED
	Receipt      *Receipt           `json:"receipt,omitempty"`     // Required for ITEMIZED, nil otherwise
}

// ParticipantIDs returns the participant refs in split order.
func (e Expense) ParticipantIDs() []string {
	ids := make([]string, len(e.Participants))
	for i, p := range e.Participants {
		ids[i] = p.ParticipantID
	}
	return ids
}

// Validate checks the per-record invariants of an expense. All failures wrap
// apperrors.ErrValidation.
func (e Expense) Validate() error {
	if e.PayerID == "" {
		return fmt.Errorf("%w: expense %s has no payer", apperrors.ErrValidation, e.ExpenseID)
	}
	if e.CurrencyCode == "" {
		return fmt.Errorf("%w: expense %s has no currency", apperrors.ErrValidation, e.ExpenseID)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: expense %s amount must be positive, got %s", apperrors.ErrValidation, e.ExpenseID, e.Amount)
	}
	seen := make(map[string]struct{}, len(e.Participants))
	for _, p := range e.Participants {
		if p.ParticipantID == "" {
			return fmt.Errorf("%w: expense %s has a participant with an empty ID", apperrors.ErrValidation, e.ExpenseID)
		}
		if _, dup := seen[p.ParticipantID]; dup {
			return fmt.Errorf("%w: expense %s lists participant %s more than once", apperrors.ErrValidation, e.ExpenseID, p.ParticipantID)
		}
		seen[p.ParticipantID] = struct{}{}
	}

	switch e.SplitType {
	case SplitEqual:
		if len(e.Participants) == 0 {
			return fmt.Errorf("%w: expense %s has no participants for an equal split", apperrors.ErrValidation, e.ExpenseID)
		}
		one := decimal.NewFromInt(1)
		for _, p := range e.Participants {
			if !p.Weight.Equal(one) {
				return fmt.Errorf("%w: equal split requires all weights to be 1, participant %s has %s", apperrors.ErrValidation, p.ParticipantID, p.Weight)
			}
		}
	case SplitWeighted:
		if len(e.Participants) == 0 {
			return fmt.Errorf("%w: expense %s has no participants for a weighted split", apperrors.ErrValidation, e.ExpenseID)
		}
		for _, p := range e.Participants {
			if !p.Weight.IsPositive() {
				return fmt.Errorf("%w: weighted split requires positive weights, participant %s has %s", apperrors.ErrValidation, p.ParticipantID, p.Weight)
			}
		}
	case SplitItemized:
		if e.Receipt == nil {
			return fmt.Errorf("%w: expense %s is itemized but carries no receipt", apperrors.ErrValidation, e.ExpenseID)
		}
		if err := e.Receipt.Validate(); err != nil {
			return fmt.Errorf("expense %s: %w", e.ExpenseID, err)
		}
	default:
		return fmt.Errorf("%w: expense %s has unknown split type %q", apperrors.ErrValidation, e.ExpenseID, e.SplitType)
	}
	return nil
}
