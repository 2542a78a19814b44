package services

import (
	"context"
	"fmt"

	"github.com/wekesamabwi/theboat_backend/internal/apperrors"
	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/dto"
	"github.com/wekesamabwi/theboat_backend/internal/utils/pagination"
)

// LedgerService queries the append-only conversion ledger.
type LedgerService struct {
	ledgerRepo ports.ConversionRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo ports.ConversionRepository) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

// Ensure LedgerService implements ports.LedgerService
var _ ports.LedgerService = (*LedgerService)(nil)

// ListConversions returns ledger records most recent first. With limit <= 0
// the complete log is returned in one sequence; with a positive limit a
// keyset token links to the next page.
func (s *LedgerService) ListConversions(ctx context.Context, limit int, nextToken string) (*dto.ListConversionsResponse, error) {
	var beforeID int64
	if nextToken != "" {
		id, err := pagination.DecodeIDToken(nextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		beforeID = id
	}

	fetch := limit
	if limit > 0 {
		// Fetch one extra row to learn whether another page exists.
		fetch = limit + 1
	}

	records, err := s.ledgerRepo.FindConversions(ctx, fetch, beforeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	resp := &dto.ListConversionsResponse{Conversions: records}
	if limit > 0 && len(records) > limit {
		resp.Conversions = records[:limit]
		resp.NextToken = pagination.EncodeIDToken(records[limit-1].ID)
	}

	return resp, nil
}
