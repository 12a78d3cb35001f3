package services

import (
	"fmt"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
)

// currencyService serves currency reference data from the built-in registry.
type currencyService struct{}

// NewCurrencyService creates a new currency service.
func NewCurrencyService() portssvc.CurrencyReaderSvc {
	return &currencyService{}
}

// Ensure currencyService implements the portssvc.CurrencyReaderSvc interface
var _ portssvc.CurrencyReaderSvc = (*currencyService)(nil)

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *currencyService) GetCurrencyByCode(currencyCode string) (*domain.Currency, error) {
	currency, ok := domain.LookupCurrency(currencyCode)
	if !ok {
		return nil, fmt.Errorf("%w: currency %s is not registered", apperrors.ErrNotFound, currencyCode)
	}
	return &currency, nil
}

// ListCurrencies retrieves all known currencies, sorted by code.
func (s *currencyService) ListCurrencies() []domain.Currency {
	return domain.Currencies()
}
