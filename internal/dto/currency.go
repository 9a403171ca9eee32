package dto

import (
	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Rate          decimal.Decimal `json:"rate"`
	SubunitDigits int32           `json:"subunitDigits"`
	IsReference   bool            `json:"isReference"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO.
func ToCurrencyResponse(curr domain.Currency, referenceCode string) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		Rate:          curr.Rate,
		SubunitDigits: curr.SubunitDigits,
		IsReference:   curr.CurrencyCode == referenceCode,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of
// CurrencyResponse DTOs.
func ToListCurrencyResponse(currencies []domain.Currency, referenceCode string) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr, referenceCode)
	}
	return res
}
