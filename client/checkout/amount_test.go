package checkout_test

import (
	"testing"

	"cko/client/checkout"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewAmount_ExponentClasses(t *testing.T) {
	amount, err := checkout.NewAmount(checkout.CURRENCY_JPY, decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Equal(t, checkout.Amount(100), amount)

	amount, err = checkout.NewAmount(checkout.CURRENCY_KWD, decimal.RequireFromString("1.000"))
	require.NoError(t, err)
	require.Equal(t, checkout.Amount(1000), amount)

	amount, err = checkout.NewAmount(checkout.CURRENCY_USD, decimal.RequireFromString("1.00"))
	require.NoError(t, err)
	require.Equal(t, checkout.Amount(100), amount)
}

func TestNewAmount_RoundTrip(t *testing.T) {
	cases := []struct {
		currency checkout.Currency
		value    string
	}{
		{checkout.CURRENCY_USD, "20.00"},
		{checkout.CURRENCY_USD, "0.01"},
		{checkout.CURRENCY_EUR, "1234.56"},
		{checkout.CURRENCY_JPY, "100"},
		{checkout.CURRENCY_VND, "25000"},
		{checkout.CURRENCY_BHD, "1.001"},
		{checkout.CURRENCY_KWD, "0.999"},
		{checkout.CURRENCY_OMR, "0"},
	}
	for _, tc := range cases {
		value := decimal.RequireFromString(tc.value)
		amount, err := checkout.NewAmount(tc.currency, value)
		require.NoError(t, err, "%s %s", tc.value, tc.currency)
		require.True(t, amount.Decimal(tc.currency).Equal(value),
			"%s %s round-tripped to %s", tc.value, tc.currency, amount.Decimal(tc.currency))
	}
}

func TestNewAmount_RejectsNegative(t *testing.T) {
	_, err := checkout.NewAmount(checkout.CURRENCY_USD, decimal.RequireFromString("-0.01"))
	require.ErrorIs(t, err, checkout.ErrAmountRange)
}

func TestNewAmount_RejectsOverflow(t *testing.T) {
	// Scaled by 100 this no longer fits a uint64.
	huge := decimal.RequireFromString("999999999999999999999")
	_, err := checkout.NewAmount(checkout.CURRENCY_USD, huge)
	require.ErrorIs(t, err, checkout.ErrAmountRange)
}

func TestNewAmount_RejectsSubMinorUnitPrecision(t *testing.T) {
	_, err := checkout.NewAmount(checkout.CURRENCY_USD, decimal.RequireFromString("1.005"))
	require.ErrorIs(t, err, checkout.ErrAmountPrecision)

	_, err = checkout.NewAmount(checkout.CURRENCY_JPY, decimal.RequireFromString("100.5"))
	require.ErrorIs(t, err, checkout.ErrAmountPrecision)

	_, err = checkout.NewAmount(checkout.CURRENCY_BHD, decimal.RequireFromString("1.0001"))
	require.ErrorIs(t, err, checkout.ErrAmountPrecision)
}

func TestAmountDecimal_ArbitraryStoredIntegers(t *testing.T) {
	require.Equal(t, "123.45", checkout.Amount(12345).Decimal(checkout.CURRENCY_USD).String())
	require.Equal(t, "12345", checkout.Amount(12345).Decimal(checkout.CURRENCY_JPY).String())
	require.Equal(t, "12.345", checkout.Amount(12345).Decimal(checkout.CURRENCY_TND).String())
	require.True(t, checkout.Amount(0).Decimal(checkout.CURRENCY_EUR).IsZero())
}
