package moneymath_test

import (
	"testing"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	"github.com/SscSPs/trip_settlement_engine/internal/utils/moneymath"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	usd = domain.CurrencyOrDefault("USD")
	jpy = domain.CurrencyOrDefault("JPY")
	bhd = domain.CurrencyOrDefault("BHD")
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency domain.Currency
		want     int64
		wantErr  bool
	}{
		{name: "whole dollars", amount: "100", currency: usd, want: 10000},
		{name: "dollars and cents", amount: "33.33", currency: usd, want: 3333},
		{name: "negative amount", amount: "-5.25", currency: usd, want: -525},
		{name: "zero decimal currency", amount: "250", currency: jpy, want: 250},
		{name: "three decimal currency", amount: "1.234", currency: bhd, want: 1234},
		{name: "sub-minor precision rejected", amount: "10.005", currency: usd, wantErr: true},
		{name: "fractional yen rejected", amount: "10.5", currency: jpy, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := moneymath.ToMinorUnits(decimal.RequireFromString(tt.amount), tt.currency)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromMinorUnitsRoundTrip(t *testing.T) {
	amounts := []string{"0", "0.01", "33.33", "100", "-12.50", "99999.99"}
	for _, a := range amounts {
		amount := decimal.RequireFromString(a)
		units, err := moneymath.ToMinorUnits(amount, usd)
		require.NoError(t, err)
		assert.True(t, amount.Equal(moneymath.FromMinorUnits(units, usd)), "round trip should be lossless for %s", a)
	}

	assert.True(t, decimal.RequireFromString("1.234").Equal(moneymath.FromMinorUnits(1234, bhd)))
	assert.True(t, decimal.NewFromInt(250).Equal(moneymath.FromMinorUnits(250, jpy)))
}

func TestQuantize(t *testing.T) {
	assert.True(t, decimal.RequireFromString("16.67").Equal(moneymath.Quantize(decimal.RequireFromString("16.665"), usd)))
	assert.True(t, decimal.RequireFromString("16.66").Equal(moneymath.Quantize(decimal.RequireFromString("16.664"), usd)))
	assert.True(t, decimal.NewFromInt(3).Equal(moneymath.Quantize(decimal.RequireFromString("2.5"), jpy)))
	assert.Equal(t, int64(1667), moneymath.QuantizeToMinorUnits(decimal.RequireFromString("16.665"), usd))
}

func TestSafeDiv(t *testing.T) {
	got, err := moneymath.SafeDiv(decimal.NewFromInt(10), decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.5").Equal(got))

	_, err = moneymath.SafeDiv(decimal.NewFromInt(10), decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDivisionByZero)
}

func TestDistributeEvenly(t *testing.T) {
	tests := []struct {
		name  string
		units int64
		n     int
		want  []int64
	}{
		{name: "no remainder", units: 9000, n: 3, want: []int64{3000, 3000, 3000}},
		{name: "remainder to earliest", units: 10000, n: 3, want: []int64{3334, 3333, 3333}},
		{name: "two-way odd cent", units: 3333, n: 2, want: []int64{1667, 1666}},
		{name: "more participants than units", units: 2, n: 5, want: []int64{1, 1, 0, 0, 0}},
		{name: "zero amount", units: 0, n: 4, want: []int64{0, 0, 0, 0}},
		{name: "single participant", units: 777, n: 1, want: []int64{777}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := moneymath.DistributeEvenly(tt.units, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			var sum int64
			for _, p := range got {
				sum += p
			}
			assert.Equal(t, tt.units, sum, "portions must conserve the amount")
		})
	}

	_, err := moneymath.DistributeEvenly(100, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDivisionByZero)

	_, err = moneymath.DistributeEvenly(-1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDistributeByWeight(t *testing.T) {
	w := func(vals ...string) []decimal.Decimal {
		out := make([]decimal.Decimal, len(vals))
		for i, v := range vals {
			out[i] = decimal.RequireFromString(v)
		}
		return out
	}

	tests := []struct {
		name    string
		units   int64
		weights []decimal.Decimal
		want    []int64
	}{
		{name: "equal weights last absorbs", units: 10000, weights: w("1", "1", "1"), want: []int64{3333, 3333, 3334}},
		{name: "two to one", units: 9000, weights: w("2", "1"), want: []int64{6000, 3000}},
		{name: "floor then remainder to last", units: 101, weights: w("2", "1"), want: []int64{67, 34}},
		{name: "fractional weights", units: 1000, weights: w("0.5", "0.25", "0.25"), want: []int64{500, 250, 250}},
		{name: "single weight takes all", units: 555, weights: w("3"), want: []int64{555}},
		{name: "zero weight participant", units: 100, weights: w("1", "0", "1"), want: []int64{50, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := moneymath.DistributeByWeight(tt.units, tt.weights)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			var sum int64
			for _, p := range got {
				sum += p
			}
			assert.Equal(t, tt.units, sum, "portions must conserve the amount")
		})
	}

	_, err := moneymath.DistributeByWeight(100, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDivisionByZero)

	_, err = moneymath.DistributeByWeight(100, w("0", "0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDivisionByZero)

	_, err = moneymath.DistributeByWeight(100, w("1", "-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDistribute(t *testing.T) {
	w := func(vals ...string) []decimal.Decimal {
		out := make([]decimal.Decimal, len(vals))
		for i, v := range vals {
			out[i] = decimal.RequireFromString(v)
		}
		return out
	}

	// Uniform weights behave exactly like an even split: the leftover goes
	// to the earliest portions, not the last.
	got, err := moneymath.Distribute(10000, w("1", "1", "1"))
	require.NoError(t, err)
	assert.Equal(t, []int64{3334, 3333, 3333}, got)

	got, err = moneymath.Distribute(10000, w("2.5", "2.5", "2.5"))
	require.NoError(t, err)
	assert.Equal(t, []int64{3334, 3333, 3333}, got)

	// Distinct weights floor each portion and let the last absorb.
	got, err = moneymath.Distribute(101, w("2", "1"))
	require.NoError(t, err)
	assert.Equal(t, []int64{67, 34}, got)

	// Uniform negative weights are invalid, not an even split.
	_, err = moneymath.Distribute(100, w("-1", "-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDistributeConservationSweep(t *testing.T) {
	// Every (units, n) pair conserves exactly and spreads portions within
	// one minor unit of each other.
	for units := int64(0); units <= 500; units += 13 {
		for n := 1; n <= 9; n++ {
			portions, err := moneymath.DistributeEvenly(units, n)
			require.NoError(t, err)

			var sum, min, max int64
			min, max = portions[0], portions[0]
			for _, p := range portions {
				sum += p
				if p < min {
					min = p
				}
				if p > max {
					max = p
				}
			}
			require.Equal(t, units, sum, "units=%d n=%d", units, n)
			require.LessOrEqual(t, max-min, int64(1), "units=%d n=%d", units, n)
		}
	}
}
