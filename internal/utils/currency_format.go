package utils

import (
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (2 decimal places) returns "12.35"
// Example: amount 12.3456 with JPY (0 decimal places) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.Round(int32(currency.DecimalPlaces)).StringFixed(int32(currency.DecimalPlaces))
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
