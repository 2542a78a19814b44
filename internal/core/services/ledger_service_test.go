package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wekesamabwi/theboat_backend/internal/apperrors"
	"github.com/wekesamabwi/theboat_backend/internal/core/services"
	"github.com/wekesamabwi/theboat_backend/internal/models"
	"github.com/wekesamabwi/theboat_backend/internal/utils/pagination"
)

func ledgerRecords(ids ...int64) []models.ConversionRecord {
	records := make([]models.ConversionRecord, len(ids))
	for i, id := range ids {
		records[i] = models.ConversionRecord{
			ID:              id,
			Amount:          fmt.Sprintf("%d", id),
			FromCurrency:    "USD",
			ToCurrency:      "EUR",
			ConvertedAmount: "93.00",
			Timestamp:       "2025-04-15 10:00:00",
		}
	}
	return records
}

func TestListConversions_FullLog(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("FindConversions", mock.Anything, 0, int64(0)).Return(ledgerRecords(3, 2, 1), nil)
	svc := services.NewLedgerService(repo)

	resp, err := svc.ListConversions(context.Background(), 0, "")
	require.NoError(t, err)

	require.Len(t, resp.Conversions, 3)
	assert.Empty(t, resp.NextToken)
	repo.AssertExpectations(t)
}

func TestListConversions_PagedWithToken(t *testing.T) {
	repo := newMockConversionRepository()
	// One extra row is fetched to detect a following page.
	repo.On("FindConversions", mock.Anything, 3, int64(0)).Return(ledgerRecords(5, 4, 3), nil)
	svc := services.NewLedgerService(repo)

	resp, err := svc.ListConversions(context.Background(), 2, "")
	require.NoError(t, err)

	require.Len(t, resp.Conversions, 2)
	assert.Equal(t, int64(5), resp.Conversions[0].ID)
	require.NotEmpty(t, resp.NextToken)

	id, err := pagination.DecodeIDToken(resp.NextToken)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id, "token points at the last returned record")
}

func TestListConversions_LastPageHasNoToken(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("FindConversions", mock.Anything, 3, int64(4)).Return(ledgerRecords(3, 2, 1), nil)
	svc := services.NewLedgerService(repo)

	resp, err := svc.ListConversions(context.Background(), 2, pagination.EncodeIDToken(4))
	require.NoError(t, err)

	// Exactly limit+1 rows came back, so this is not the last page; with
	// fewer, the token stays empty.
	assert.NotEmpty(t, resp.NextToken)

	repo2 := newMockConversionRepository()
	repo2.On("FindConversions", mock.Anything, 3, int64(2)).Return(ledgerRecords(1), nil)
	resp2, err := services.NewLedgerService(repo2).ListConversions(context.Background(), 2, pagination.EncodeIDToken(2))
	require.NoError(t, err)
	assert.Empty(t, resp2.NextToken)
	assert.Len(t, resp2.Conversions, 1)
}

func TestListConversions_BadToken(t *testing.T) {
	svc := services.NewLedgerService(newMockConversionRepository())

	_, err := svc.ListConversions(context.Background(), 10, "not-a-token")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestListConversions_RepoError(t *testing.T) {
	repo := newMockConversionRepository()
	repo.On("FindConversions", mock.Anything, 0, int64(0)).Return(nil, assert.AnError)
	svc := services.NewLedgerService(repo)

	_, err := svc.ListConversions(context.Background(), 0, "")
	assert.Error(t, err)
}
