package domain_test

import (
	"testing"

	"github.com/openpurse/walletd/internal/apperrors"
	"github.com/openpurse/walletd/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoCurrencies() []domain.Currency {
	return []domain.Currency{
		{CurrencyCode: "BTC", Name: "Bitcoin", Rate: decimal.NewFromInt(1), SubunitDigits: 8},
		{CurrencyCode: "USD", Name: "US Dollar", Rate: decimal.NewFromInt(740), SubunitDigits: 2},
		{CurrencyCode: "EUR", Name: "Euro", Rate: decimal.NewFromInt(666), SubunitDigits: 2},
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name          string
		currencies    []domain.Currency
		referenceCode string
		wantErr       bool
	}{
		{
			name:          "valid table",
			currencies:    demoCurrencies(),
			referenceCode: "BTC",
			wantErr:       false,
		},
		{
			name: "zero rate rejected",
			currencies: []domain.Currency{
				{CurrencyCode: "BTC", Rate: decimal.Zero, SubunitDigits: 8},
			},
			referenceCode: "BTC",
			wantErr:       true,
		},
		{
			name: "negative rate rejected",
			currencies: []domain.Currency{
				{CurrencyCode: "BTC", Rate: decimal.NewFromInt(-1), SubunitDigits: 8},
			},
			referenceCode: "BTC",
			wantErr:       true,
		},
		{
			name: "negative subunit digits rejected",
			currencies: []domain.Currency{
				{CurrencyCode: "BTC", Rate: decimal.NewFromInt(1), SubunitDigits: -1},
			},
			referenceCode: "BTC",
			wantErr:       true,
		},
		{
			name:          "reference currency must be registered",
			currencies:    demoCurrencies(),
			referenceCode: "JPY",
			wantErr:       true,
		},
		{
			name: "duplicate code rejected",
			currencies: append(demoCurrencies(), domain.Currency{
				CurrencyCode: "USD", Rate: decimal.NewFromInt(750), SubunitDigits: 2,
			}),
			referenceCode: "BTC",
			wantErr:       true,
		},
		{
			name: "empty code rejected",
			currencies: []domain.Currency{
				{CurrencyCode: "", Rate: decimal.NewFromInt(1), SubunitDigits: 2},
			},
			referenceCode: "BTC",
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := domain.NewRegistry(tt.currencies, tt.referenceCode)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Nil(t, registry)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, registry)
			}
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry, err := domain.NewRegistry(demoCurrencies(), "BTC")
	require.NoError(t, err)

	usd, err := registry.Lookup("USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.CurrencyCode)
	assert.True(t, usd.Rate.Equal(decimal.NewFromInt(740)))

	// Match is case-sensitive and exact.
	_, err = registry.Lookup("usd")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	_, err = registry.Lookup("XYZ")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestRegistry_ReferenceAndList(t *testing.T) {
	registry, err := domain.NewRegistry(demoCurrencies(), "BTC")
	require.NoError(t, err)

	assert.Equal(t, "BTC", registry.Reference().CurrencyCode)

	listed := registry.List()
	require.Len(t, listed, 3)
	assert.Equal(t, "BTC", listed[0].CurrencyCode)
	assert.Equal(t, "EUR", listed[1].CurrencyCode)
	assert.Equal(t, "USD", listed[2].CurrencyCode)
}
