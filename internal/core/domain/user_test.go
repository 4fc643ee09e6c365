package domain_test

import (
	"testing"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.UserRole
		required domain.UserRole
		want     bool
	}{
		{
			name:     "admin meets admin",
			role:     domain.RoleAdmin,
			required: domain.RoleAdmin,
			want:     true,
		},
		{
			name:     "admin exceeds manager",
			role:     domain.RoleAdmin,
			required: domain.RoleManager,
			want:     true,
		},
		{
			name:     "manager meets manager",
			role:     domain.RoleManager,
			required: domain.RoleManager,
			want:     true,
		},
		{
			name:     "manager below admin",
			role:     domain.RoleManager,
			required: domain.RoleAdmin,
			want:     false,
		},
		{
			name:     "staff below manager",
			role:     domain.RoleStaff,
			required: domain.RoleManager,
			want:     false,
		},
		{
			name:     "unknown role below everything",
			role:     domain.UserRole("owner"),
			required: domain.RoleStaff,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.role.AtLeast(tt.required)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserRole_IsValid(t *testing.T) {
	tests := []struct {
		name string
		role domain.UserRole
		want bool
	}{
		{name: "admin", role: domain.RoleAdmin, want: true},
		{name: "manager", role: domain.RoleManager, want: true},
		{name: "staff", role: domain.RoleStaff, want: true},
		{name: "empty", role: domain.UserRole(""), want: false},
		{name: "unknown", role: domain.UserRole("owner"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsValid())
		})
	}
}
