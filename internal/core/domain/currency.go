package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency.
type Currency struct {
	CurrencyCode  string          `json:"currencyCode"`  // Primary key (e.g., "USD")
	Symbol        string          `json:"symbol"`        // e.g., "$"
	Name          string          `json:"name"`          // e.g., "US Dollar"
	Rate          decimal.Decimal `json:"rate"`          // Units of this currency per 1 reference unit
	SubunitDigits int32           `json:"subunitDigits"` // Decimal places amounts in this currency are rounded to
}
