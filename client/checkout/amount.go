package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value scaled to an integer number of the currency's
// minor units. It carries no currency itself, so it only has a meaning next
// to the Currency it was encoded with.
type Amount uint64

// NewAmount encodes a decimal face value into the minor-unit integer used on
// the wire. The scaling depends on the currency, see Currency.Exponent.
//
// Negative values and values whose scaled form does not fit a uint64 fail
// with ErrAmountRange. Values with a fractional remainder after scaling (for
// example USD 1.005) fail with ErrAmountPrecision instead of being silently
// truncated.
func NewAmount(currency Currency, value decimal.Decimal) (Amount, error) {
	scaled := value.Shift(currency.Exponent())
	if scaled.Sign() < 0 {
		return 0, fmt.Errorf("%w: %s %s is negative", ErrAmountRange, value, currency)
	}
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%w: %s has more than %d decimal places for %s",
			ErrAmountPrecision, value, currency.Exponent(), currency)
	}
	scaled = scaled.Truncate(0)
	big := scaled.BigInt()
	if !big.IsUint64() {
		return 0, fmt.Errorf("%w: %s %s does not fit the wire encoding", ErrAmountRange, value, currency)
	}
	return Amount(big.Uint64()), nil
}

// Decimal decodes the minor-unit integer back into the face value for the
// given currency. The division is exact for any stored integer, so decoding
// never fails.
func (a Amount) Decimal(currency Currency) decimal.Decimal {
	return decimal.NewFromUint64(uint64(a)).Shift(-currency.Exponent())
}
