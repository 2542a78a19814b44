package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wekesamabwi/theboat_backend/internal/apperrors"
	"github.com/wekesamabwi/theboat_backend/internal/core/ports"
	"github.com/wekesamabwi/theboat_backend/internal/models"
)

// SQLiteUserRepository is the credential store backed by the shared SQLite
// database.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a user repository over the given database handle.
func NewUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Ensure SQLiteUserRepository implements ports.UserRepository
var _ ports.UserRepository = (*SQLiteUserRepository)(nil)

func (r *SQLiteUserRepository) SaveUser(ctx context.Context, user *models.User) error {
	query := `
        INSERT INTO users (username, email, role, password_hash, created_at)
        VALUES (?, ?, ?, ?, ?);
    `
	res, err := r.db.ExecContext(ctx, query,
		user.Username,
		user.Email,
		string(user.Role),
		user.PasswordHash,
		user.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read assigned user id: %w", err)
	}
	user.ID = id
	return nil
}

func (r *SQLiteUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	// Email uniqueness is not enforced; the lowest id wins so repeated
	// logins resolve to the same account.
	query := `
        SELECT id, username, email, role, password_hash, created_at
        FROM users
        WHERE email = ?
        ORDER BY id ASC
        LIMIT 1;
    `
	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *SQLiteUserRepository) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
        SELECT id, username, email, role, password_hash, created_at
        FROM users
        WHERE id = ?;
    `
	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", id, err)
	}
	return user, nil
}

func (r *SQLiteUserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var role string
	var createdAt string
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&role,
		&user.PasswordHash,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = models.UserRole(role)
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user created_at: %w", err)
	}
	user.CreatedAt = parsed

	return &user, nil
}
