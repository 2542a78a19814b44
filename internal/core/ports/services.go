package ports

import (
	"context"

	"github.com/wekesamabwi/theboat_backend/internal/dto"
	"github.com/wekesamabwi/theboat_backend/internal/models"
)

// AuthService orchestrates registration and credential checks over the
// credential store.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	// Authenticate returns the matching user or apperrors.ErrUnauthorized
	// for an unknown email or wrong password.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	// GetUserByID resolves an authenticated user ID back to its user.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// ConverterService computes conversions and, as a side effect, appends an
// audit record to the ledger asynchronously.
type ConverterService interface {
	Convert(ctx context.Context, amountText, fromCurrency, toCurrency string) (*models.ConversionResult, error)
}

// LedgerService queries the conversion ledger.
type LedgerService interface {
	// ListConversions returns records most recent first. limit <= 0 returns
	// the complete log; otherwise a page plus a token for the next page.
	ListConversions(ctx context.Context, limit int, nextToken string) (*dto.ListConversionsResponse, error)
}

// BalanceService reads and replaces the singleton balance.
type BalanceService interface {
	GetBalance(ctx context.Context) (float64, error)
	SetBalance(ctx context.Context, amount float64) error
}
