package dto

import (
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string `json:"currencyCode"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	DecimalPlaces int    `json:"decimalPlaces"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		DecimalPlaces: curr.DecimalPlaces,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr) // Reuse the single converter
	}
	return res
}
