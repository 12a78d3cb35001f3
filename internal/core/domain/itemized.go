package domain

import (
	"fmt"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ExtraMode selects how an extra charge (tax, tip, fee, discount) is expressed.
type ExtraMode string

const (
	ExtraRate  ExtraMode = "RATE"  // fraction of the receipt item subtotal, within [0, 1]
	ExtraFixed ExtraMode = "FIXED" // absolute amount in the receipt currency, >= 0
)

// AllocationRule selects how extras are distributed across participants.
type AllocationRule string

const (
	// AllocationProportional distributes each extra in proportion to every
	// participant's share of the item subtotal. Default.
	AllocationProportional AllocationRule = "PROPORTIONAL_TO_SUBTOTAL"
	// AllocationEqual distributes each extra evenly across the participants
	// that own at least one item.
	AllocationEqual AllocationRule = "EQUAL_PER_PARTICIPANT"
)

// ItemAssignment ties a participant to a line item, with an optional
// consumption weight (e.g., Alice drank 2 of the 3 beers -> Share 2 vs 1).
type ItemAssignment struct {
	ParticipantID string          `json:"participantID"`
	Share         decimal.Decimal `json:"share"` // > 0; 1 for a plain even assignment
}

// LineItem is a single row of an itemized receipt.
type LineItem struct {
	Name       string           `json:"name"`
	Quantity   int64            `json:"quantity"`  // Positive integer
	UnitPrice  decimal.Decimal  `json:"unitPrice"` // Non-negative
	AssignedTo []ItemAssignment `json:"assignedTo"`
}

// Subtotal returns quantity x unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// TaxSpec describes the tax charged on a receipt.
type TaxSpec struct {
	Mode      ExtraMode       `json:"mode"`
	Rate      decimal.Decimal `json:"rate"`      // Used when Mode == RATE
	Amount    decimal.Decimal `json:"amount"`    // Used when Mode == FIXED
	Inclusive bool            `json:"inclusive"` // Item prices already include this tax
}

// TipSpec describes the tip added to a receipt.
type TipSpec struct {
	Mode   ExtraMode       `json:"mode"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// FeeSpec describes one surcharge row (service fee, delivery fee).
type FeeSpec struct {
	Name   string          `json:"name"`
	Mode   ExtraMode       `json:"mode"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// DiscountSpec describes one discount row. PreTax discounts shrink the base a
// rate tax is computed against; post-tax discounts only reduce the total.
type DiscountSpec struct {
	Name   string          `json:"name"`
	Mode   ExtraMode       `json:"mode"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
	PreTax bool            `json:"preTax"`
}

// Receipt carries the itemized detail of an ITEMIZED expense.
type Receipt struct {
	Items            []LineItem       `json:"items"`
	Tax              *TaxSpec         `json:"tax,omitempty"`
	Tip              *TipSpec         `json:"tip,omitempty"`
	Fees             []FeeSpec        `json:"fees,omitempty"`
	Discounts        []DiscountSpec   `json:"discounts,omitempty"`
	Allocation       AllocationRule   `json:"allocation,omitempty"`       // Empty means proportional
	ExpectedSubtotal *decimal.Decimal `json:"expectedSubtotal,omitempty"` // Advisory, from the paper receipt
	ExpectedTax      *decimal.Decimal `json:"expectedTax,omitempty"`      // Advisory, from the paper receipt
}

// ExtrasCount returns how many extras rows apply (tax, tip, each fee, each
// discount). Drives the reconciliation tolerance: each extra is one more
// rounding stage.
func (r Receipt) ExtrasCount() int {
	n := len(r.Fees) + len(r.Discounts)
	if r.Tax != nil {
		n++
	}
	if r.Tip != nil {
		n++
	}
	return n
}

// AllocationOrDefault returns the configured allocation rule, defaulting to
// proportional-to-subtotal.
func (r Receipt) AllocationOrDefault() AllocationRule {
	if r.Allocation == "" {
		return AllocationProportional
	}
	return r.Allocation
}

func validateChargeSpec(kind, name string, mode ExtraMode, rate, amount decimal.Decimal) error {
	label := kind
	if name != "" {
		label = fmt.Sprintf("%s %q", kind, name)
	}
	switch mode {
	case ExtraRate:
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: %s rate must be within [0, 1], got %s", apperrors.ErrValidation, label, rate)
		}
	case ExtraFixed:
		if amount.IsNegative() {
			return fmt.Errorf("%w: %s amount must not be negative, got %s", apperrors.ErrValidation, label, amount)
		}
	default:
		return fmt.Errorf("%w: %s has unknown mode %q", apperrors.ErrValidation, label, mode)
	}
	return nil
}

// Validate checks the per-record invariants of a receipt. All failures wrap
// apperrors.ErrValidation.
func (r Receipt) Validate() error {
	if len(r.Items) == 0 {
		return fmt.Errorf("%w: receipt has no line items", apperrors.ErrValidation)
	}
	for i, item := range r.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %q quantity must be a positive integer, got %d", apperrors.ErrValidation, item.Name, item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %q unit price must not be negative, got %s", apperrors.ErrValidation, item.Name, item.UnitPrice)
		}
		if len(item.AssignedTo) == 0 {
			return fmt.Errorf("%w: item %q (index %d) is not assigned to any participant", apperrors.ErrValidation, item.Name, i)
		}
		for _, a := range item.AssignedTo {
			if a.ParticipantID == "" {
				return fmt.Errorf("%w: item %q has an assignment with an empty participant ID", apperrors.ErrValidation, item.Name)
			}
			if !a.Share.IsPositive() {
				return fmt.Errorf("%w: item %q assignment for %s must have a positive share, got %s", apperrors.ErrValidation, item.Name, a.ParticipantID, a.Share)
			}
		}
	}
	if r.Tax != nil {
		if err := validateChargeSpec("tax", "", r.Tax.Mode, r.Tax.Rate, r.Tax.Amount); err != nil {
			return err
		}
	}
	if r.Tip != nil {
		if err := validateChargeSpec("tip", "", r.Tip.Mode, r.Tip.Rate, r.Tip.Amount); err != nil {
			return err
		}
	}
	for _, fee := range r.Fees {
		if err := validateChargeSpec("fee", fee.Name, fee.Mode, fee.Rate, fee.Amount); err != nil {
			return err
		}
	}
	for _, d := range r.Discounts {
		if err := validateChargeSpec("discount", d.Name, d.Mode, d.Rate, d.Amount); err != nil {
			return err
		}
	}
	switch r.Allocation {
	case "", AllocationProportional, AllocationEqual:
	default:
		return fmt.Errorf("%w: unknown allocation rule %q", apperrors.ErrValidation, r.Allocation)
	}
	return nil
}
