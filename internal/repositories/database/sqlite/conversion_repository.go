package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/models"
)

// SQLiteConversionRepository is the append-only conversion ledger backed by
// the shared SQLite database. Rows are never updated or deleted.
type SQLiteConversionRepository struct {
	db *sql.DB
}

// NewConversionRepository creates a ledger repository over the given
// database handle.
func NewConversionRepository(db *sql.DB) *SQLiteConversionRepository {
	return &SQLiteConversionRepository{db: db}
}

// Ensure SQLiteConversionRepository implements ports.ConversionRepository
var _ ports.ConversionRepository = (*SQLiteConversionRepository)(nil)

func (r *SQLiteConversionRepository) SaveConversion(ctx context.Context, record *models.ConversionRecord) error {
	query := `
        INSERT INTO conversion_log (amount, from_currency, to_currency, converted_amount, timestamp)
        VALUES (?, ?, ?, ?, ?);
    `
	res, err := r.db.ExecContext(ctx, query,
		record.Amount,
		record.FromCurrency,
		record.ToCurrency,
		record.ConvertedAmount,
		record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append conversion record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read assigned conversion id: %w", err)
	}
	record.ID = id
	return nil
}

func (r *SQLiteConversionRepository) FindConversions(ctx context.Context, limit int, beforeID int64) ([]models.ConversionRecord, error) {
	// AUTOINCREMENT guarantees ids grow with insertion order, so descending
	// id is reverse-chronological.
	query := `
        SELECT id, amount, from_currency, to_currency, converted_amount, timestamp
        FROM conversion_log
        WHERE (?1 <= 0 OR id < ?1)
        ORDER BY id DESC
        LIMIT ?2;
    `
	sqlLimit := int64(limit)
	if limit <= 0 {
		sqlLimit = -1 // SQLite: negative LIMIT means no limit
	}

	rows, err := r.db.QueryContext(ctx, query, beforeID, sqlLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion log: %w", err)
	}
	defer rows.Close()

	records := []models.ConversionRecord{}
	for rows.Next() {
		var rec models.ConversionRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Amount,
			&rec.FromCurrency,
			&rec.ToCurrency,
			&rec.ConvertedAmount,
			&rec.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		records = append(records, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating conversion rows: %w", rows.Err())
	}

	return records, nil
}
