package models

import "time"

// UserRole distinguishes the two account types the app offers at sign-up.
type UserRole string

const (
	RoleGuest  UserRole = "Guest"
	RoleTrader UserRole = "Trader"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == RoleGuest || r == RoleTrader
}

// User represents a registered user of the application.
// The password is stored only as a bcrypt hash, never verbatim.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	Role         UserRole  `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
