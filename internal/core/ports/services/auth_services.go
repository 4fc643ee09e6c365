package services

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
)

// AuthSvcFacade defines authentication and credential-recovery operations.
type AuthSvcFacade interface {
	// Authenticate verifies a username/password pair. Deactivated accounts
	// are rejected. On success the user's last-login timestamp is stamped.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// IssueResetToken generates a password reset token for the user owning
	// the given email and stores only its hash plus an expiry. The clear
	// token is returned exactly once for delivery.
	IssueResetToken(ctx context.Context, email string) (string, error)

	// RedeemResetToken sets a new password in exchange for a valid token.
	// Fails with ErrExpiredToken past the window, ErrInvalidToken when the
	// token is unknown or already redeemed. Tokens are single-use.
	RedeemResetToken(ctx context.Context, token, newPassword string) error
}
