package services

import (
	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read access to the currency registry.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(code string) (domain.Currency, error)

	// ListCurrencies retrieves all registered currencies.
	ListCurrencies() []domain.Currency

	// ReferenceCurrency returns the currency the ledger balance is denominated in.
	ReferenceCurrency() domain.Currency
}

// ConverterSvc defines conversions between registered currencies and the
// reference currency. Conversions are pure; they carry no context because they
// perform no I/O.
type ConverterSvc interface {
	// ToReference converts an amount of the given currency into reference units.
	ToReference(amount decimal.Decimal, fromCode string) (decimal.Decimal, error)

	// FromReference converts reference units into the given currency.
	FromReference(amount decimal.Decimal, toCode string) (decimal.Decimal, error)

	// Convert translates between two registered currencies, pivoting through
	// the reference currency.
	Convert(amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}

// ConverterSvcFacade combines registry reads with conversion operations.
type ConverterSvcFacade interface {
	CurrencyReaderSvc
	ConverterSvc
}
