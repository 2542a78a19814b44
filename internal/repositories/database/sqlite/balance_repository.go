package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wekesamabwi/theboat_backend/internal/apperrors"
	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/models"
)

// SQLiteBalanceRepository persists the singleton balance row (fixed id 0)
// in the shared SQLite database.
type SQLiteBalanceRepository struct {
	db *sql.DB
}

// NewBalanceRepository creates a balance repository over the given database
// handle.
func NewBalanceRepository(db *sql.DB) *SQLiteBalanceRepository {
	return &SQLiteBalanceRepository{db: db}
}

// Ensure SQLiteBalanceRepository implements ports.BalanceRepository
var _ ports.BalanceRepository = (*SQLiteBalanceRepository)(nil)

func (r *SQLiteBalanceRepository) FindBalance(ctx context.Context) (*models.BalanceRecord, error) {
	query := `
        SELECT id, amount
        FROM balance_table
        WHERE id = ?;
    `
	var record models.BalanceRecord
	err := r.db.QueryRowContext(ctx, query, models.BalanceRecordID).Scan(&record.ID, &record.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}
	return &record, nil
}

func (r *SQLiteBalanceRepository) UpsertBalance(ctx context.Context, amount float64) error {
	query := `
        INSERT INTO balance_table (id, amount)
        VALUES (?, ?)
        ON CONFLICT (id) DO UPDATE SET
            amount = excluded.amount;
    `
	_, err := r.db.ExecContext(ctx, query, models.BalanceRecordID, amount)
	if err != nil {
		return fmt.Errorf("failed to upsert balance: %w", err)
	}
	return nil
}
