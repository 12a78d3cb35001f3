package domain

import "sort"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode  string `json:"currencyCode"`  // ISO 4217 code (e.g., "USD")
	Symbol        string `json:"symbol"`        // e.g., "$"
	Name          string `json:"name"`          // e.g., "US Dollar"
	DecimalPlaces int    `json:"decimalPlaces"` // Minor-unit scale (0, 2 or 3)
}

// DefaultDecimalPlaces is used for currency codes the registry does not know.
const DefaultDecimalPlaces = 2

// currencyRegistry holds the built-in currencies, keyed by code.
var currencyRegistry = map[string]Currency{
	"USD": {CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", DecimalPlaces: 2},
	"EUR": {CurrencyCode: "EUR", Symbol: "€", Name: "Euro", DecimalPlaces: 2},
	"GBP": {CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", DecimalPlaces: 2},
	"INR": {CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", DecimalPlaces: 2},
	"JPY": {CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", DecimalPlaces: 0},
	"KRW": {CurrencyCode: "KRW", Symbol: "₩", Name: "South Korean Won", DecimalPlaces: 0},
	"VND": {CurrencyCode: "VND", Symbol: "₫", Name: "Vietnamese Dong", DecimalPlaces: 0},
	"CHF": {CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc", DecimalPlaces: 2},
	"CAD": {CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar", DecimalPlaces: 2},
	"AUD": {CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", DecimalPlaces: 2},
	"CNY": {CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan", DecimalPlaces: 2},
	"SGD": {CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar", DecimalPlaces: 2},
	"THB": {CurrencyCode: "THB", Symbol: "฿", Name: "Thai Baht", DecimalPlaces: 2},
	"IDR": {CurrencyCode: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah", DecimalPlaces: 2},
	"AED": {CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham", DecimalPlaces: 2},
	"BHD": {CurrencyCode: "BHD", Symbol: ".د.ب", Name: "Bahraini Dinar", DecimalPlaces: 3},
	"KWD": {CurrencyCode: "KWD", Symbol: "د.ك", Name: "Kuwaiti Dinar", DecimalPlaces: 3},
	"OMR": {CurrencyCode: "OMR", Symbol: "ر.ع.", Name: "Omani Rial", DecimalPlaces: 3},
	"BRL": {CurrencyCode: "BRL", Symbol: "R$", Name: "Brazilian Real", DecimalPlaces: 2},
	"MXN": {CurrencyCode: "MXN", Symbol: "Mex$", Name: "Mexican Peso", DecimalPlaces: 2},
	"ZAR": {CurrencyCode: "ZAR", Symbol: "R", Name: "South African Rand", DecimalPlaces: 2},
	"SEK": {CurrencyCode: "SEK", Symbol: "kr", Name: "Swedish Krona", DecimalPlaces: 2},
	"NOK": {CurrencyCode: "NOK", Symbol: "kr", Name: "Norwegian Krone", DecimalPlaces: 2},
	"DKK": {CurrencyCode: "DKK", Symbol: "kr", Name: "Danish Krone", DecimalPlaces: 2},
	"PLN": {CurrencyCode: "PLN", Symbol: "zł", Name: "Polish Zloty", DecimalPlaces: 2},
	"NZD": {CurrencyCode: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar", DecimalPlaces: 2},
}

// LookupCurrency returns the registered currency for a code.
func LookupCurrency(code string) (Currency, bool) {
	c, ok := currencyRegistry[code]
	return c, ok
}

// CurrencyOrDefault returns the registered currency, or a placeholder with
// DefaultDecimalPlaces when the code is unknown. Share computation only needs
// the minor-unit scale, so unknown codes degrade gracefully.
func CurrencyOrDefault(code string) Currency {
	if c, ok := currencyRegistry[code]; ok {
		return c
	}
	return Currency{CurrencyCode: code, Symbol: code, Name: code, DecimalPlaces: DefaultDecimalPlaces}
}

// Currencies returns all registered currencies sorted by code.
func Currencies() []Currency {
	out := make([]Currency, 0, len(currencyRegistry))
	for _, c := range currencyRegistry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out
}
