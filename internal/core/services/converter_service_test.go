package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wekesamabwi/theboat_backend/internal/core/services"
	"github.com/wekesamabwi/theboat_backend/internal/models"
)

// MockConversionRepository records appended ledger entries and signals each
// append on a channel so tests can wait for the detached write.
type MockConversionRepository struct {
	mock.Mock
	appended chan models.ConversionRecord
}

func newMockConversionRepository() *MockConversionRepository {
	return &MockConversionRepository{appended: make(chan models.ConversionRecord, 16)}
}

func (m *MockConversionRepository) SaveConversion(ctx context.Context, record *models.ConversionRecord) error {
	args := m.Called(ctx, record)
	if m.appended != nil {
		m.appended <- *record
	}
	return args.Error(0)
}

func (m *MockConversionRepository) FindConversions(ctx context.Context, limit int, beforeID int64) ([]models.ConversionRecord, error) {
	args := m.Called(ctx, limit, beforeID)
	var records []models.ConversionRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]models.ConversionRecord)
	}
	return records, args.Error(1)
}

func (m *MockConversionRepository) waitForAppend(t *testing.T) models.ConversionRecord {
	t.Helper()
	select {
	case rec := <-m.appended:
		return rec
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ledger append")
		return models.ConversionRecord{}
	}
}

func newConverter(repo *MockConversionRepository) *services.ConverterService {
	return services.NewConverterService(repo, nil)
}

func TestConvert_KnownPair(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil)
	svc := newConverter(repo)

	result, err := svc.Convert(context.Background(), "100", "USD", "EUR")
	require.NoError(t, err)

	assert.Equal(t, "93.00", result.ConvertedAmount)
	assert.Equal(t, models.ConversionOK, result.Outcome)
	assert.Equal(t, "Exchange done successfully.", result.Advisory)
}

func TestConvert_SameCurrencyIsIdentity(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil)
	svc := newConverter(repo)

	result, err := svc.Convert(context.Background(), "100", "USD", "USD")
	require.NoError(t, err)

	assert.Equal(t, "100.00", result.ConvertedAmount)
	assert.Equal(t, models.ConversionOK, result.Outcome)
}

func TestConvert_NonNumericAmountIsZero(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil)
	svc := newConverter(repo)

	result, err := svc.Convert(context.Background(), "abc", "USD", "EUR")
	require.NoError(t, err)

	assert.Equal(t, "0.00", result.ConvertedAmount)
	assert.Equal(t, models.ConversionInvalidAmount, result.Outcome)
	assert.Equal(t, "Exchange done successfully.", result.Advisory)
}

func TestConvert_EmptyAmountIsZero(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil)
	svc := newConverter(repo)

	result, err := svc.Convert(context.Background(), "", "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "0.00", result.ConvertedAmount)
	assert.Equal(t, models.ConversionInvalidAmount, result.Outcome)
}

func TestConvert_HighRateOutranksProfit(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil)
	svc := newConverter(repo)

	// 100 USD -> 140000 NGN: the profit check would also fire, but a rate
	// above 1.2 wins.
	result, err := svc.Convert(context.Background(), "100", "USD", "NGN")
	require.NoError(t, err)

	assert.Equal(t, "140000.00", result.ConvertedAmount)
	assert.Equal(t, "High rate detected! Consider trading now!", result.Advisory)
}

func TestConvert_ProfitAdvisory(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil)
	svc := newConverter(repo)

	// Rate 0.93 is below the high-rate threshold, result above 1000.
	result, err := svc.Convert(context.Background(), "2000", "USD", "EUR")
	require.NoError(t, err)

	assert.Equal(t, "1860.00", result.ConvertedAmount)
	assert.Equal(t, "You made a good profit: 1860.00", result.Advisory)
}

func TestConvert_UnsupportedPairFallsBackToParity(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil)
	svc := newConverter(repo)

	// EUR->KES has no table entry.
	result, err := svc.Convert(context.Background(), "100", "EUR", "KES")
	require.NoError(t, err)

	assert.Equal(t, "100.00", result.ConvertedAmount)
	assert.Equal(t, models.ConversionUnsupportedPair, result.Outcome)
}

func TestConvert_AppendsLedgerRecord(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("SaveConversion", mock.Anything, mock.Anything).Return(nil)
	svc := newConverter(repo)

	_, err := svc.Convert(context.Background(), "100", "USD", "EUR")
	require.NoError(t, err)

	rec := repo.waitForAppend(t)
	assert.Equal(t, "100", rec.Amount, "record keeps the raw input text")
	assert.Equal(t, "USD", rec.FromCurrency)
	assert.Equal(t, "EUR", rec.ToCurrency)
	assert.Equal(t, "93.00", rec.ConvertedAmount)

	_, err = time.Parse(models.ConversionTimestampLayout, rec.Timestamp)
	assert.NoError(t, err, "timestamp must use the ledger layout")
}

func TestConvert_AppendFailureDoesNotAffectResult(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("SaveConversion", mock.Anything, mock.Anything).Return(assert.AnError)
	svc := newConverter(repo)

	result, err := svc.Convert(context.Background(), "100", "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "93.00", result.ConvertedAmount)

	// The append still happened (and failed); conversion was unaffected.
	repo.waitForAppend(t)
}

func TestConvert_AppendSurvivesCancelledRequest(t *testing.T) {
	repo := newMockConversionRepository()
	var appendCtx context.Context
	repo.On("SaveConversion", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		appendCtx = args.Get(0).(context.Context)
	}).Return(nil)
	svc := newConverter(repo)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := svc.Convert(ctx, "100", "USD", "EUR")
	require.NoError(t, err)
	cancel()

	repo.waitForAppend(t)
	assert.NoError(t, appendCtx.Err(), "append context must be detached from the request context")
}
