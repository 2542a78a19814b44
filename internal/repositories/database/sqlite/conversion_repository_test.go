package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekesamabwi/theboat_backend/internal/models"
	"github.com/wekesamabwi/theboat_backend/internal/repositories/database/sqlite"
)

func appendConversions(t *testing.T, repo *sqlite.SQLiteConversionRepository, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		rec := &models.ConversionRecord{
			Amount:          fmt.Sprintf("%d", (i+1)*100),
			FromCurrency:    "USD",
			ToCurrency:      "EUR",
			ConvertedAmount: "93.00",
			Timestamp:       time.Now().Format(models.ConversionTimestampLayout),
		}
		require.NoError(t, repo.SaveConversion(ctx, rec))
		assert.Greater(t, rec.ID, int64(0))
	}
}

func TestConversionRepository_ListIsNewestFirst(t *testing.T) {
	repo := sqlite.NewConversionRepository(newTestDB(t))
	appendConversions(t, repo, 5)

	records, err := repo.FindConversions(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 5)

	for i := 1; i < len(records); i++ {
		assert.Greater(t, records[i-1].ID, records[i].ID, "ids must strictly decrease")
	}
	// Oldest amount was "100", so the newest page starts with "500".
	assert.Equal(t, "500", records[0].Amount)
}

func TestConversionRepository_ListIsIdempotent(t *testing.T) {
	repo := sqlite.NewConversionRepository(newTestDB(t))
	appendConversions(t, repo, 3)

	first, err := repo.FindConversions(context.Background(), 0, 0)
	require.NoError(t, err)
	second, err := repo.FindConversions(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConversionRepository_KeysetPaging(t *testing.T) {
	repo := sqlite.NewConversionRepository(newTestDB(t))
	appendConversions(t, repo, 7)
	ctx := context.Background()

	page1, err := repo.FindConversions(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, page1, 3)

	page2, err := repo.FindConversions(ctx, 3, page1[len(page1)-1].ID)
	require.NoError(t, err)
	require.Len(t, page2, 3)
	assert.Less(t, page2[0].ID, page1[2].ID)

	page3, err := repo.FindConversions(ctx, 3, page2[len(page2)-1].ID)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestConversionRepository_EmptyLedger(t *testing.T) {
	repo := sqlite.NewConversionRepository(newTestDB(t))

	records, err := repo.FindConversions(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
