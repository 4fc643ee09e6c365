package services

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// CountUsers returns the number of registered (non-deleted) users.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user with a securely hashed password.
	// Fails with ErrDuplicate when the username or email already exists.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest, creatorUserID string) (*domain.User, error)

	// UpdateUser updates an existing user's email or role.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// ChangeRole sets a user's role; the requesting user must be an admin.
	ChangeRole(ctx context.Context, userID string, role domain.UserRole, requestingUserID string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeactivateUser disables logins for the user without deleting it.
	DeactivateUser(ctx context.Context, userID string, requestingUserID string) error

	// ReactivateUser re-enables a previously deactivated user.
	ReactivateUser(ctx context.Context, userID string, requestingUserID string) error

	// DeleteUser marks a user as deleted (soft delete) and audit-logs it.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
