package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wekesamabwi/theboat_backend/internal/apperrors"
	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
)

// BalanceService reads and replaces the trader's singleton balance.
type BalanceService struct {
	balanceRepo ports.BalanceRepository
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(balanceRepo ports.BalanceRepository) *BalanceService {
	return &BalanceService{balanceRepo: balanceRepo}
}

// Ensure BalanceService implements ports.BalanceService
var _ ports.BalanceService = (*BalanceService)(nil)

// GetBalance returns the stored amount, or 0.0 if nothing was ever written.
func (s *BalanceService) GetBalance(ctx context.Context) (float64, error) {
	record, err := s.balanceRepo.FindBalance(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0.0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return record.Amount, nil
}

// SetBalance upserts the singleton amount, last-write-wins.
func (s *BalanceService) SetBalance(ctx context.Context, amount float64) error {
	if err := s.balanceRepo.UpsertBalance(ctx, amount); err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}
	return nil
}
