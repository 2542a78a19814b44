package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/models"
	"github.com/wekesamabwi/theboat_backend/internal/rates"
)

// Advisory thresholds and messages. First match wins: a high rate outranks
// a large profit.
var (
	highRateThreshold = decimal.RequireFromString("1.2")
	profitThreshold   = decimal.NewFromInt(1000)
)

const (
	advisoryHighRate     = "High rate detected! Consider trading now!"
	advisoryProfitPrefix = "You made a good profit: "
	advisoryDefault      = "Exchange done successfully."
)

// ConverterService computes currency conversions from the fixed rate table
// and appends an audit record to the ledger on every invocation.
type ConverterService struct {
	ledgerRepo ports.ConversionRepository
	logger     *slog.Logger
}

// NewConverterService creates a new ConverterService. The logger receives
// ledger-append failures, which are never propagated to the caller.
func NewConverterService(ledgerRepo ports.ConversionRepository, logger *slog.Logger) *ConverterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConverterService{ledgerRepo: ledgerRepo, logger: logger}
}

// Ensure ConverterService implements ports.ConverterService
var _ ports.ConverterService = (*ConverterService)(nil)

// Convert computes amountText * rate(from, to), rendered with exactly two
// fractional digits (round half away from zero). Malformed input degrades
// to a zero amount and an unknown pair to parity; the outcome reports which
// so callers can surface it or keep the default.
//
// Returning is synchronous; persisting the audit record is a detached task.
func (s *ConverterService) Convert(ctx context.Context, amountText, fromCurrency, toCurrency string) (*models.ConversionResult, error) {
	outcome := models.ConversionOK

	amount, err := decimal.NewFromString(strings.TrimSpace(amountText))
	if err != nil {
		amount = decimal.Zero
		outcome = models.ConversionInvalidAmount
	}

	rate, err := rates.Lookup(fromCurrency, toCurrency)
	if err != nil {
		rate = decimal.NewFromInt(1)
		if outcome == models.ConversionOK {
			outcome = models.ConversionUnsupportedPair
		}
	}

	result := amount.Mul(rate)
	converted := result.StringFixed(2)

	advisory := advisoryDefault
	switch {
	case rate.GreaterThan(highRateThreshold):
		advisory = advisoryHighRate
	case result.GreaterThan(profitThreshold):
		advisory = advisoryProfitPrefix + converted
	}

	record := models.ConversionRecord{
		Amount:          amountText,
		FromCurrency:    fromCurrency,
		ToCurrency:      toCurrency,
		ConvertedAmount: converted,
		Timestamp:       time.Now().Format(models.ConversionTimestampLayout),
	}
	go s.appendRecord(context.WithoutCancel(ctx), record)

	return &models.ConversionResult{
		ConvertedAmount: converted,
		Advisory:        advisory,
		Outcome:         outcome,
		Rate:            rate,
	}, nil
}

// appendRecord writes the audit record. It runs detached from the request;
// failure is logged, never surfaced to the conversion caller.
func (s *ConverterService) appendRecord(ctx context.Context, record models.ConversionRecord) {
	if err := s.ledgerRepo.SaveConversion(ctx, &record); err != nil {
		s.logger.Error("failed to append conversion record",
			slog.String("from", record.FromCurrency),
			slog.String("to", record.ToCurrency),
			slog.String("error", err.Error()),
		)
	}
}
