package mapping

import (
	"database/sql"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
	if d.LastLoginAt != nil {
		m.LastLoginAt = sql.NullTime{Time: *d.LastLoginAt, Valid: true}
	}
	if d.ResetTokenHash != nil {
		m.ResetTokenHash = sql.NullString{String: *d.ResetTokenHash, Valid: true}
	}
	if d.ResetTokenExpiry != nil {
		m.ResetTokenExpiry = sql.NullTime{Time: *d.ResetTokenExpiry, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
	if m.LastLoginAt.Valid {
		t := m.LastLoginAt.Time
		d.LastLoginAt = &t
	}
	if m.ResetTokenHash.Valid {
		s := m.ResetTokenHash.String
		d.ResetTokenHash = &s
	}
	if m.ResetTokenExpiry.Valid {
		t := m.ResetTokenExpiry.Time
		d.ResetTokenExpiry = &t
	}
	return d
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
