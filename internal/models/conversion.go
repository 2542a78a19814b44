package models

import "github.com/shopspring/decimal"

// ConversionTimestampLayout is the wall-clock format stored with every
// ledger record, second precision, local time.
const ConversionTimestampLayout = "2006-01-02 15:04:05"

// ConversionRecord is one immutable entry in the conversion ledger.
// Amount keeps the input text exactly as the user submitted it;
// ConvertedAmount is always rendered with two fractional digits.
type ConversionRecord struct {
	ID              int64  `json:"id" db:"id"`
	Amount          string `json:"amount" db:"amount"`
	FromCurrency    string `json:"fromCurrency" db:"from_currency"`
	ToCurrency      string `json:"toCurrency" db:"to_currency"`
	ConvertedAmount string `json:"convertedAmount" db:"converted_amount"`
	Timestamp       string `json:"timestamp" db:"timestamp"`
}

// ConversionOutcome classifies how a conversion request was interpreted.
// The converted amount is always present; the outcome lets callers decide
// whether to surface a degraded input or accept the default.
type ConversionOutcome string

const (
	// ConversionOK means the amount parsed and the pair had a known rate.
	ConversionOK ConversionOutcome = "ok"
	// ConversionInvalidAmount means the amount text did not parse and was
	// treated as zero.
	ConversionInvalidAmount ConversionOutcome = "invalid_amount"
	// ConversionUnsupportedPair means no rate is known for the pair and
	// parity (1.0) was applied.
	ConversionUnsupportedPair ConversionOutcome = "unsupported_pair"
)

// ConversionResult is what the converter returns to its caller. The ledger
// append happens asynchronously and is not represented here.
type ConversionResult struct {
	ConvertedAmount string            `json:"convertedAmount"`
	Advisory        string            `json:"advisory"`
	Outcome         ConversionOutcome `json:"outcome"`
	Rate            decimal.Decimal   `json:"rate"`
}
