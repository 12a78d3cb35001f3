package services

import (
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SplitSvc computes per-participant shares of an expense. Implementations are
// pure functions: no I/O, no retained state, safe for concurrent use.
type SplitSvc interface {
	// EqualShares divides amount evenly across the participants, handing
	// leftover minor units to the earliest participants. Shares always sum
	// to amount exactly.
	EqualShares(amount decimal.Decimal, currency domain.Currency, participantIDs []string) ([]domain.ParticipantAmount, error)

	// WeightedShares divides amount proportionally to each participant's
	// weight. Shares always sum to amount exactly.
	WeightedShares(amount decimal.Decimal, currency domain.Currency, participants []domain.SplitParticipant) ([]domain.ParticipantAmount, error)

	// ExpenseShares computes the shares for any expense, dispatching on its
	// split type. Settlement and breakdown both derive shares through this
	// single entry point so they can never disagree.
	ExpenseShares(expense domain.Expense) ([]domain.ParticipantAmount, error)
}
