package dto

import (
	"github.com/shopspring/decimal"
)

// ConvertRequest defines a conversion between two registered currencies.
type ConvertRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"required,uppercase,len=3"`
	ToCurrency   string          `json:"toCurrency" binding:"required,uppercase,len=3"`
}

// ConvertResponse carries the converted amount.
type ConvertResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}
