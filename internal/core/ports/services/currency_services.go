package services

import (
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency reference data.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all known currencies, sorted by code.
	ListCurrencies() []domain.Currency
}
