// Package rates holds the fixed exchange-rate table the converter works
// from. Rates are compiled in; there is no network fetch.
package rates

import (
	"github.com/shopspring/decimal"

	"github.com/wekesamabwi/theboat_backend/internal/apperrors"
)

// SupportedCurrencies is the closed set of currency codes the app trades in.
var SupportedCurrencies = []string{"USD", "EUR", "KES", "GBP", "JPY", "NGN"}

type pair struct {
	from string
	to   string
}

var table = map[pair]decimal.Decimal{
	{"USD", "EUR"}: decimal.RequireFromString("0.93"),
	{"USD", "KES"}: decimal.RequireFromString("130.0"),
	{"USD", "GBP"}: decimal.RequireFromString("0.80"),
	{"USD", "JPY"}: decimal.RequireFromString("150.0"),
	{"USD", "NGN"}: decimal.RequireFromString("1400.0"),
	{"EUR", "USD"}: decimal.RequireFromString("1.08"),
	{"KES", "USD"}: decimal.RequireFromString("0.0077"),
	{"GBP", "USD"}: decimal.RequireFromString("1.25"),
	{"JPY", "USD"}: decimal.RequireFromString("0.0067"),
	{"NGN", "USD"}: decimal.RequireFromString("0.00071"),
}

// IsSupported reports whether code is one of the supported currency codes.
func IsSupported(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// Lookup returns the conversion factor for the ordered pair (from, to).
// A same-currency pair is always parity, regardless of table contents.
// An unknown pair returns apperrors.ErrUnsupportedPair; callers decide
// whether to surface that or fall back to parity.
func Lookup(from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := table[pair{from, to}]
	if !ok {
		return decimal.Decimal{}, apperrors.ErrUnsupportedPair
	}
	return rate, nil
}
