package services

import (
	"fmt"

	"github.com/openpurse/walletd/internal/apperrors"
	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConverterService converts amounts between registered currencies, pivoting
// through the reference currency. Results are rounded half-to-even so that
// repeated conversions do not drift; downstream balance reconciliation depends
// on this rounding mode staying fixed.
type ConverterService struct {
	registry *domain.Registry
}

// NewConverterService creates a new ConverterService over a built registry.
func NewConverterService(registry *domain.Registry) *ConverterService {
	return &ConverterService{registry: registry}
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *ConverterService) GetCurrencyByCode(code string) (domain.Currency, error) {
	return s.registry.Lookup(code)
}

// ListCurrencies retrieves all registered currencies.
func (s *ConverterService) ListCurrencies() []domain.Currency {
	return s.registry.List()
}

// ReferenceCurrency returns the currency the ledger balance is denominated in.
func (s *ConverterService) ReferenceCurrency() domain.Currency {
	return s.registry.Reference()
}

// conversionGuardDigits is the extra precision carried through division before
// the final half-to-even rounding at the target currency's subunit precision.
const conversionGuardDigits = 4

// maxResultExponent bounds the magnitude of conversion results. Amounts beyond
// 10^27 reference units are outside anything the surrounding payment rails can
// represent and are rejected instead of silently clamped.
const maxResultExponent = 27

// ToReference converts an amount of the given currency into reference units.
// Negative amounts convert like positive ones; rejecting them is the
// authorization layer's job, not the converter's.
func (s *ConverterService) ToReference(amount decimal.Decimal, fromCode string) (decimal.Decimal, error) {
	from, err := s.registry.Lookup(fromCode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	reference := s.registry.Reference()
	quotient := amount.DivRound(from.Rate, reference.SubunitDigits+conversionGuardDigits)
	return roundToSubunit(quotient, amount, reference)
}

// FromReference converts reference units into the given currency. The identity
// case returns the amount untouched: converting the reference currency to
// itself applies no rounding at all.
func (s *ConverterService) FromReference(amount decimal.Decimal, toCode string) (decimal.Decimal, error) {
	to, err := s.registry.Lookup(toCode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if to.CurrencyCode == s.registry.Reference().CurrencyCode {
		return amount, nil
	}
	return roundToSubunit(amount.Mul(to.Rate), amount, to)
}

// Convert translates between two registered currencies, pivoting through the
// reference currency.
func (s *ConverterService) Convert(amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	referenceAmount, err := s.ToReference(amount, fromCode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return s.FromReference(referenceAmount, toCode)
}

var maxResultAbs = decimal.New(1, maxResultExponent)

// roundToSubunit applies half-to-even rounding at the currency's subunit
// precision, reporting overflow and underflow instead of clamping. original is
// the caller-supplied amount before conversion; a nonzero original that rounds
// to zero means the value fell below the smallest representable subunit.
func roundToSubunit(converted, original decimal.Decimal, currency domain.Currency) (decimal.Decimal, error) {
	rounded := converted.RoundBank(currency.SubunitDigits)
	if rounded.Abs().GreaterThan(maxResultAbs) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s exceeds the supported %s range", apperrors.ErrConversionOverflow, rounded, currency.CurrencyCode)
	}
	if rounded.IsZero() && !original.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount is below the smallest %s subunit", apperrors.ErrConversionImprecise, currency.CurrencyCode)
	}
	return rounded, nil
}
