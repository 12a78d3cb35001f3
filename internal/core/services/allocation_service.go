package services

import (
	"fmt"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
	"github.com/SscSPs/trip_settlement_engine/internal/utils/moneymath"
	"github.com/shopspring/decimal"
)

// ReconciliationToleranceFn computes the allowed drift, in minor units,
// between the computed receipt total and the declared expense amount.
type ReconciliationToleranceFn func(currency domain.Currency, extrasCount int) int64

// defaultReconciliationTolerance allows one minor unit of drift per rounding
// stage: the item split plus one stage per extra.
func defaultReconciliationTolerance(_ domain.Currency, extrasCount int) int64 {
	return int64(1 + extrasCount)
}

// allocationService implements the itemized allocation engine.
type allocationService struct {
	toleranceFn ReconciliationToleranceFn
}

// AllocationServiceOption is a functional option for configuring the allocation service
type AllocationServiceOption func(*allocationService)

// WithReconciliationTolerance overrides the default reconciliation tolerance
// of (1 + number of extras) minor units.
func WithReconciliationTolerance(fn ReconciliationToleranceFn) AllocationServiceOption {
	return func(s *allocationService) {
		s.toleranceFn = fn
	}
}

// NewAllocationService creates a new allocation service with the provided options
func NewAllocationService(options ...AllocationServiceOption) portssvc.AllocationSvc {
	svc := &allocationService{
		toleranceFn: defaultReconciliationTolerance,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure allocationService implements the portssvc.AllocationSvc interface
var _ portssvc.AllocationSvc = (*allocationService)(nil)

// participantLedger accumulates one participant's pieces in minor units.
type participantLedger struct {
	baseUnits     int64
	taxUnits      int64
	tipUnits      int64
	feeUnits      int64
	discountUnits int64
}

// Allocate computes each participant's share of an itemized expense: every
// line item is split among its assignees, then tax, tip, fees and discounts
// are distributed per the receipt's allocation rule. The returned participant
// amounts sum exactly to the computed receipt total, which must agree with
// the declared expense amount within the reconciliation tolerance.
func (s *allocationService) Allocate(expense domain.Expense) (*domain.AllocationResult, error) {
	if expense.SplitType != domain.SplitItemized {
		return nil, fmt.Errorf("%w: expense %s has split type %q, allocation requires %q", apperrors.ErrValidation, expense.ExpenseID, expense.SplitType, domain.SplitItemized)
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	currency := domain.CurrencyOrDefault(expense.CurrencyCode)
	receipt := *expense.Receipt

	// Split every line item among its assignees. Participants are tracked
	// in first-appearance order so the output is deterministic.
	order := make([]string, 0, 8)
	ledgers := make(map[string]*participantLedger, 8)
	var subtotalUnits int64
	for _, item := range receipt.Items {
		itemUnits := moneymath.QuantizeToMinorUnits(item.Subtotal(), currency)
		subtotalUnits += itemUnits

		shares := make([]decimal.Decimal, len(item.AssignedTo))
		for i, a := range item.AssignedTo {
			shares[i] = a.Share
		}
		portions, err := moneymath.Distribute(itemUnits, shares)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item.Name, err)
		}
		for i, a := range item.AssignedTo {
			led := ledgers[a.ParticipantID]
			if led == nil {
				led = &participantLedger{}
				ledgers[a.ParticipantID] = led
				order = append(order, a.ParticipantID)
			}
			led.baseUnits += portions[i]
		}
	}
	subtotal := moneymath.FromMinorUnits(subtotalUnits, currency)

	// Rate extras produce sub-minor precision and are re-quantized to the
	// currency scale before distribution.
	chargeUnits := func(mode domain.ExtraMode, rate, amount, base decimal.Decimal) int64 {
		if mode == domain.ExtraFixed {
			return moneymath.QuantizeToMinorUnits(amount, currency)
		}
		return moneymath.QuantizeToMinorUnits(base.Mul(rate), currency)
	}

	// Pre-tax discounts shrink the base a rate tax is computed against.
	discountUnits := make([]int64, len(receipt.Discounts))
	var preTaxDiscountUnits, discountTotalUnits int64
	for i, d := range receipt.Discounts {
		discountUnits[i] = chargeUnits(d.Mode, d.Rate, d.Amount, subtotal)
		discountTotalUnits += discountUnits[i]
		if d.PreTax {
			preTaxDiscountUnits += discountUnits[i]
		}
	}
	taxableUnits := subtotalUnits - preTaxDiscountUnits
	if taxableUnits < 0 {
		taxableUnits = 0
	}

	var taxUnits int64
	taxAdds := false
	if receipt.Tax != nil {
		taxUnits = chargeUnits(receipt.Tax.Mode, receipt.Tax.Rate, receipt.Tax.Amount, moneymath.FromMinorUnits(taxableUnits, currency))
		taxAdds = !receipt.Tax.Inclusive
	}
	var tipUnits int64
	if receipt.Tip != nil {
		tipUnits = chargeUnits(receipt.Tip.Mode, receipt.Tip.Rate, receipt.Tip.Amount, subtotal)
	}
	feeUnits := make([]int64, len(receipt.Fees))
	var feeTotalUnits int64
	for i, fee := range receipt.Fees {
		feeUnits[i] = chargeUnits(fee.Mode, fee.Rate, fee.Amount, subtotal)
		feeTotalUnits += feeUnits[i]
	}

	// Extras are distributed by the participants' subtotal shares, or evenly
	// when the rule says so. A receipt of only zero-priced items falls back
	// to an even spread.
	weights := make([]decimal.Decimal, len(order))
	switch receipt.AllocationOrDefault() {
	case domain.AllocationEqual:
		for i := range weights {
			weights[i] = decimal.NewFromInt(1)
		}
	default:
		allZero := true
		for i, id := range order {
			weights[i] = decimal.NewFromInt(ledgers[id].baseUnits)
			if ledgers[id].baseUnits != 0 {
				allZero = false
			}
		}
		if allZero {
			for i := range weights {
				weights[i] = decimal.NewFromInt(1)
			}
		}
	}

	distribute := func(total int64, credit func(led *participantLedger, units int64)) error {
		portions, err := moneymath.Distribute(total, weights)
		if err != nil {
			return err
		}
		for i, id := range order {
			credit(ledgers[id], portions[i])
		}
		return nil
	}

	// Inclusive tax is still distributed so breakdowns can report it, but it
	// never adds to the total: the item prices already carry it.
	if receipt.Tax != nil {
		if err := distribute(taxUnits, func(led *participantLedger, units int64) { led.taxUnits += units }); err != nil {
			return nil, fmt.Errorf("tax: %w", err)
		}
	}
	if receipt.Tip != nil {
		if err := distribute(tipUnits, func(led *participantLedger, units int64) { led.tipUnits += units }); err != nil {
			return nil, fmt.Errorf("tip: %w", err)
		}
	}
	for i, fee := range receipt.Fees {
		if err := distribute(feeUnits[i], func(led *participantLedger, units int64) { led.feeUnits += units }); err != nil {
			return nil, fmt.Errorf("fee %q: %w", fee.Name, err)
		}
	}
	for i, d := range receipt.Discounts {
		if err := distribute(discountUnits[i], func(led *participantLedger, units int64) { led.discountUnits += units }); err != nil {
			return nil, fmt.Errorf("discount %q: %w", d.Name, err)
		}
	}

	computedTotalUnits := subtotalUnits + tipUnits + feeTotalUnits - discountTotalUnits
	if taxAdds {
		computedTotalUnits += taxUnits
	}
	computedTotal := moneymath.FromMinorUnits(computedTotalUnits, currency)

	amounts := make([]domain.ParticipantAmount, len(order))
	breakdowns := make([]domain.ParticipantBreakdown, len(order))
	for i, id := range order {
		led := ledgers[id]
		totalUnits := led.baseUnits + led.tipUnits + led.feeUnits - led.discountUnits
		if taxAdds {
			totalUnits += led.taxUnits
		}
		total := moneymath.FromMinorUnits(totalUnits, currency)
		amounts[i] = domain.ParticipantAmount{ParticipantID: id, Amount: total}
		breakdowns[i] = domain.ParticipantBreakdown{
			ParticipantID: id,
			ItemsSubtotal: moneymath.FromMinorUnits(led.baseUnits, currency),
			TaxShare:      moneymath.FromMinorUnits(led.taxUnits, currency),
			TipShare:      moneymath.FromMinorUnits(led.tipUnits, currency),
			FeeShare:      moneymath.FromMinorUnits(led.feeUnits, currency),
			DiscountShare: moneymath.FromMinorUnits(led.discountUnits, currency),
			Total:         total,
		}
	}

	declaredUnits, err := moneymath.ToMinorUnits(expense.Amount, currency)
	if err != nil {
		return nil, err
	}
	tolerance := s.toleranceFn(currency, receipt.ExtrasCount())
	if diff := abs64(computedTotalUnits - declaredUnits); diff > tolerance {
		return nil, fmt.Errorf("%w: expense %s declares %s but items and extras compute to %s (off by %d minor units, tolerance %d)",
			apperrors.ErrReconciliation, expense.ExpenseID, expense.Amount, computedTotal, diff, tolerance)
	}

	var warnings []string
	if receipt.ExpectedSubtotal != nil {
		expected := *receipt.ExpectedSubtotal
		if moneymath.QuantizeToMinorUnits(expected, currency) != subtotalUnits {
			warnings = append(warnings, fmt.Sprintf("receipt subtotal %s differs from computed subtotal %s", expected, subtotal))
		}
	}
	if receipt.ExpectedTax != nil {
		expected := *receipt.ExpectedTax
		if moneymath.QuantizeToMinorUnits(expected, currency) != taxUnits {
			warnings = append(warnings, fmt.Sprintf("receipt tax %s differs from computed tax %s", expected, moneymath.FromMinorUnits(taxUnits, currency)))
		}
	}

	return &domain.AllocationResult{
		ParticipantAmounts:   amounts,
		ParticipantBreakdown: breakdowns,
		ComputedSubtotal:     subtotal,
		ComputedTotal:        computedTotal,
		Warnings:             warnings,
	}, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
