// Package moneymath provides exact minor-unit arithmetic for monetary
// amounts. Every split in the engine goes through the two distribution
// helpers here, so conservation (shares summing back to the original amount)
// is enforced in exactly one place.
package moneymath

import (
	"fmt"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ToMinorUnits converts an amount to integer minor units (cents for USD,
// whole units for VND). It fails when the amount carries precision beyond the
// currency's scale, so the conversion is lossless by construction.
func ToMinorUnits(amount decimal.Decimal, currency domain.Currency) (int64, error) {
	shifted := amount.Shift(int32(currency.DecimalPlaces))
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: amount %s is not a whole number of %s minor units", apperrors.ErrValidation, amount, currency.CurrencyCode)
	}
	return shifted.IntPart(), nil
}

// FromMinorUnits converts integer minor units back to a decimal amount at the
// currency's scale. FromMinorUnits(ToMinorUnits(x)) == x for any x that is an
// exact multiple of the minor unit.
func FromMinorUnits(units int64, currency domain.Currency) decimal.Decimal {
	return decimal.New(units, -int32(currency.DecimalPlaces))
}

// Quantize rounds an intermediate value to the currency's minor-unit scale,
// half away from zero. Rate computations (tax, tip) produce sub-minor
// precision that must be re-quantized before it is treated as a final share.
func Quantize(amount decimal.Decimal, currency domain.Currency) decimal.Decimal {
	return amount.Round(int32(currency.DecimalPlaces))
}

// QuantizeToMinorUnits rounds to the currency's scale and returns the result
// as integer minor units.
func QuantizeToMinorUnits(amount decimal.Decimal, currency domain.Currency) int64 {
	return amount.Round(int32(currency.DecimalPlaces)).Shift(int32(currency.DecimalPlaces)).IntPart()
}

// MinorUnit returns the value of one minor unit of the currency (0.01 for
// USD, 1 for VND).
func MinorUnit(currency domain.Currency) decimal.Decimal {
	return decimal.New(1, -int32(currency.DecimalPlaces))
}

// SafeDiv divides a by b, surfacing division by zero as an error instead of
// panicking.
func SafeDiv(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: cannot divide %s by zero", apperrors.ErrDivisionByZero, a)
	}
	return a.Div(b), nil
}

// DistributeEvenly splits units into n integer portions that differ by at
// most one, with the leftover minor units going to the earliest portions.
// The portions always sum to units.
func DistributeEvenly(units int64, n int) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: cannot distribute across %d participants", apperrors.ErrDivisionByZero, n)
	}
	if units < 0 {
		return nil, fmt.Errorf("%w: cannot distribute a negative amount of %d minor units", apperrors.ErrValidation, units)
	}
	base := units / int64(n)
	remainder := units % int64(n)
	portions := make([]int64, n)
	for i := range portions {
		portions[i] = base
		if int64(i) < remainder {
			portions[i]++
		}
	}
	return portions, nil
}

// Distribute splits units across the given weights. Uniform weights are an
// even split, so leftover minor units go to the earliest portions; otherwise
// portions are floored by weight and the last one absorbs the remainder.
func Distribute(units int64, weights []decimal.Decimal) ([]int64, error) {
	if uniform(weights) {
		return DistributeEvenly(units, len(weights))
	}
	return DistributeByWeight(units, weights)
}

func uniform(weights []decimal.Decimal) bool {
	if len(weights) == 0 {
		return false
	}
	for _, w := range weights[1:] {
		if !w.Equal(weights[0]) {
			return false
		}
	}
	return weights[0].IsPositive()
}

// DistributeByWeight splits units proportionally to the given weights. Every
// portion except the last is floor(units x weight / totalWeight); the last
// absorbs the remainder so the portions always sum to units. Weights must be
// non-negative and must not all be zero.
func DistributeByWeight(units int64, weights []decimal.Decimal) ([]int64, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: cannot distribute across zero weights", apperrors.ErrDivisionByZero)
	}
	if units < 0 {
		return nil, fmt.Errorf("%w: cannot distribute a negative amount of %d minor units", apperrors.ErrValidation, units)
	}
	totalWeight := decimal.Zero
	for _, w := range weights {
		if w.IsNegative() {
			return nil, fmt.Errorf("%w: weights must not be negative, got %s", apperrors.ErrValidation, w)
		}
		totalWeight = totalWeight.Add(w)
	}
	if totalWeight.IsZero() {
		return nil, fmt.Errorf("%w: total weight is zero", apperrors.ErrDivisionByZero)
	}

	portions := make([]int64, len(weights))
	unitsDec := decimal.NewFromInt(units)
	var assigned int64
	for i, w := range weights {
		if i == len(weights)-1 {
			portions[i] = units - assigned
			break
		}
		// QuoRem with precision 0 truncates toward zero, which is floor
		// for the non-negative operands here.
		q, _ := unitsDec.Mul(w).QuoRem(totalWeight, 0)
		portions[i] = q.IntPart()
		assigned += portions[i]
	}
	return portions, nil
}
