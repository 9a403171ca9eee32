package domain

import (
	"fmt"
	"sort"

	"github.com/openpurse/walletd/internal/apperrors"
)

// Registry is the closed set of currencies the service knows about, keyed by
// code. It is built once at startup and never mutated afterwards, so reads
// need no synchronization.
type Registry struct {
	currencies map[string]Currency
	reference  Currency
}

// NewRegistry validates the currency table and builds the registry. Every rate
// must be strictly positive and every subunit count non-negative; the
// reference currency must be present in the table.
func NewRegistry(currencies []Currency, referenceCode string) (*Registry, error) {
	byCode := make(map[string]Currency, len(currencies))
	for _, c := range currencies {
		if c.CurrencyCode == "" {
			return nil, fmt.Errorf("%w: currency code must not be empty", apperrors.ErrValidation)
		}
		if !c.Rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate for %s must be positive, got %s", apperrors.ErrValidation, c.CurrencyCode, c.Rate)
		}
		if c.SubunitDigits < 0 {
			return nil, fmt.Errorf("%w: subunit digits for %s must not be negative", apperrors.ErrValidation, c.CurrencyCode)
		}
		if _, dup := byCode[c.CurrencyCode]; dup {
			return nil, fmt.Errorf("%w: duplicate currency code %s", apperrors.ErrValidation, c.CurrencyCode)
		}
		byCode[c.CurrencyCode] = c
	}

	reference, ok := byCode[referenceCode]
	if !ok {
		return nil, fmt.Errorf("%w: reference currency %s is not in the currency table", apperrors.ErrValidation, referenceCode)
	}

	return &Registry{currencies: byCode, reference: reference}, nil
}

// Lookup resolves a currency code with a case-sensitive exact match.
func (r *Registry) Lookup(code string) (Currency, error) {
	c, ok := r.currencies[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}
	return c, nil
}

// Reference returns the currency the ledger balance is denominated in.
func (r *Registry) Reference() Currency {
	return r.reference
}

// List returns all registered currencies ordered by code.
func (r *Registry) List() []Currency {
	out := make([]Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out
}
