package services

import (
	"fmt"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
	"github.com/SscSPs/trip_settlement_engine/internal/utils/moneymath"
	"github.com/shopspring/decimal"
)

// splitService computes equal and weighted shares of an expense.
type splitService struct {
	allocationSvc portssvc.AllocationSvc
}

// NewSplitService creates a new split service. Itemized expenses dispatched
// through ExpenseShares are delegated to the allocation service.
func NewSplitService(allocationSvc portssvc.AllocationSvc) portssvc.SplitSvc {
	return &splitService{allocationSvc: allocationSvc}
}

// Ensure splitService implements the portssvc.SplitSvc interface
var _ portssvc.SplitSvc = (*splitService)(nil)

// EqualShares divides amount evenly across the participants. Leftover minor
// units go one each to the earliest participants, so shares differ by at most
// one minor unit and always sum to amount exactly.
func (s *splitService) EqualShares(amount decimal.Decimal, currency domain.Currency, participantIDs []string) ([]domain.ParticipantAmount, error) {
	if len(participantIDs) == 0 {
		return nil, fmt.Errorf("%w: equal split requires at least one participant", apperrors.ErrValidation)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: split amount must not be negative, got %s", apperrors.ErrValidation, amount)
	}
	units, err := moneymath.ToMinorUnits(amount, currency)
	if err != nil {
		return nil, err
	}
	portions, err := moneymath.DistributeEvenly(units, len(participantIDs))
	if err != nil {
		return nil, err
	}
	shares := make([]domain.ParticipantAmount, len(participantIDs))
	for i, id := range participantIDs {
		shares[i] = domain.ParticipantAmount{
			ParticipantID: id,
			Amount:        moneymath.FromMinorUnits(portions[i], currency),
		}
	}
	return shares, nil
}

// WeightedShares divides amount proportionally to each participant's weight.
// Shares always sum to amount exactly: uniform weights reduce to an equal
// split, otherwise each share except the last is floored at minor-unit
// precision and the last participant absorbs the remainder.
func (s *splitService) WeightedShares(amount decimal.Decimal, currency domain.Currency, participants []domain.SplitParticipant) ([]domain.ParticipantAmount, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: weighted split requires at least one participant", apperrors.ErrValidation)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: split amount must not be negative, got %s", apperrors.ErrValidation, amount)
	}
	units, err := moneymath.ToMinorUnits(amount, currency)
	if err != nil {
		return nil, err
	}
	weights := make([]decimal.Decimal, len(participants))
	for i, p := range participants {
		weights[i] = p.Weight
	}
	portions, err := moneymath.Distribute(units, weights)
	if err != nil {
		return nil, err
	}
	shares := make([]domain.ParticipantAmount, len(participants))
	for i, p := range participants {
		shares[i] = domain.ParticipantAmount{
			ParticipantID: p.ParticipantID,
			Amount:        moneymath.FromMinorUnits(portions[i], currency),
		}
	}
	return shares, nil
}

// ExpenseShares computes the shares for any expense, dispatching on its split
// type. This is the single entry point settlement and breakdown both use, so
// the two can never derive different share values for the same expense.
func (s *splitService) ExpenseShares(expense domain.Expense) ([]domain.ParticipantAmount, error) {
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	currency := domain.CurrencyOrDefault(expense.CurrencyCode)
	switch expense.SplitType {
	case domain.SplitEqual:
		return s.EqualShares(expense.Amount, currency, expense.ParticipantIDs())
	case domain.SplitWeighted:
		return s.WeightedShares(expense.Amount, currency, expense.Participants)
	case domain.SplitItemized:
		result, err := s.allocationSvc.Allocate(expense)
		if err != nil {
			return nil, err
		}
		return result.ParticipantAmounts, nil
	default:
		return nil, fmt.Errorf("%w: expense %s has unknown split type %q", apperrors.ErrValidation, expense.ExpenseID, expense.SplitType)
	}
}
