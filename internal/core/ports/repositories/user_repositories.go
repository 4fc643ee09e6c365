package repositories

import (
	"context"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username. Soft-deleted users are excluded.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. Soft-deleted users are excluded.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByResetTokenHash retrieves the user holding the given reset token hash.
	FindUserByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// CountUsers returns the number of non-deleted users.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's mutable details.
	UpdateUser(ctx context.Context, user domain.User) error

	// SetUserActive toggles the active flag.
	SetUserActive(ctx context.Context, userID string, active bool, updaterUserID string, now time.Time) error

	// UpdateLastLogin stamps the last successful login time.
	UpdateLastLogin(ctx context.Context, userID string, now time.Time) error

	// SetResetToken stores the reset token hash and its expiry on the user row.
	SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error

	// ClearResetToken removes any stored reset token from the user row.
	ClearResetToken(ctx context.Context, userID string) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error

	// MarkUserDeleted soft-deletes a user and writes an audit entry in the same scope.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
