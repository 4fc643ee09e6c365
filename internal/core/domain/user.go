package domain

import "time"

// UserRole defines the access level of a user account.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// roleRank orders roles for permission checks; higher wins.
var roleRank = map[UserRole]int{
	RoleStaff:   1,
	RoleManager: 2,
	RoleAdmin:   3,
}

// AtLeast reports whether the role meets or exceeds the required role.
func (r UserRole) AtLeast(required UserRole) bool {
	return roleRank[r] >= roleRank[required]
}

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// User represents an account holder in the domain.
// The password is never stored or carried in clear form.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"` // Used for soft delete

	// Password reset fields; only the token hash is persisted.
	ResetTokenHash   *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
}
