package services

import (
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
)

// AllocationSvc computes per-participant shares of an itemized receipt:
// line items split among their assignees, extras (tax, tip, fees, discounts)
// distributed per the receipt's allocation rule.
type AllocationSvc interface {
	// Allocate validates the receipt, splits every line item, distributes
	// extras and reconciles the computed total against the expense amount.
	// The returned participant amounts sum exactly to the computed total.
	Allocate(expense domain.Expense) (*domain.AllocationResult, error)
}
