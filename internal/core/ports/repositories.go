package ports

import (
	"context"

	"github.com/wekesamabwi/theboat_backend/internal/models"
)

// UserRepository is the credential store: durable user rows, looked up by
// exact email match at login time.
type UserRepository interface {
	// SaveUser inserts a new user row and fills in the assigned ID.
	SaveUser(ctx context.Context, user *models.User) error
	// FindUserByEmail returns the oldest user with that email, or
	// apperrors.ErrNotFound. Email uniqueness is not enforced.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
}

// ConversionRepository is the append-only conversion ledger.
type ConversionRepository interface {
	// SaveConversion appends a record and fills in the assigned ID.
	// Records are immutable thereafter.
	SaveConversion(ctx context.Context, record *models.ConversionRecord) error
	// FindConversions returns up to limit records with id < beforeID in
	// strictly descending id order. beforeID <= 0 starts from the newest
	// record; limit <= 0 returns everything remaining.
	FindConversions(ctx context.Context, limit int, beforeID int64) ([]models.ConversionRecord, error)
}

// BalanceRepository persists the singleton balance row.
type BalanceRepository interface {
	// FindBalance returns the singleton row or apperrors.ErrNotFound if it
	// was never written.
	FindBalance(ctx context.Context) (*models.BalanceRecord, error)
	// UpsertBalance writes the singleton row, last-write-wins.
	UpsertBalance(ctx context.Context, amount float64) error
}
