package models

import (
	"database/sql"
	"time"
)

// User is the row shape of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	IsActive     bool   `db:"is_active"`
	AuditFields
	LastLoginAt sql.NullTime `db:"last_login_at"`
	DeletedAt   *time.Time   `db:"deleted_at"`

	// Password reset fields; only the token hash is stored.
	ResetTokenHash   sql.NullString `db:"reset_token_hash"`
	ResetTokenExpiry sql.NullTime   `db:"reset_token_expiry"`
}
