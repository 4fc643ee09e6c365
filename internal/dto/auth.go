package dto

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RequestPasswordResetRequest asks for a reset token for the given email.
type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RedeemPasswordResetRequest exchanges a reset token for a new password.
type RedeemPasswordResetRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
