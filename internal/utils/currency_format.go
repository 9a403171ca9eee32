package utils

import (
	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount padded to the subunit digits of
// the given currency.
// Example: amount 740 with USD (2 subunit digits) returns "740.00"
// Example: amount 12.3456789 with BTC (8 subunit digits) returns "12.34567890"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.SubunitDigits)
}

// FormatWithPrecision formats an amount padded to the given number of digits
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}
