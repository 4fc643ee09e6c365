package mapping

import (
	"database/sql"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/models"
)

// ToModelAuditLog converts a domain AuditLog to a model AuditLog
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	m := models.AuditLog{
		AuditID:    d.AuditID,
		Action:     string(d.Action),
		TableName:  d.TableName,
		RecordID:   d.RecordID,
		Details:    d.Details,
		OccurredAt: d.OccurredAt,
	}
	if d.UserID != nil {
		m.UserID = sql.NullString{String: *d.UserID, Valid: true}
	}
	return m
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLog
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	d := domain.AuditLog{
		AuditID:    m.AuditID,
		Action:     domain.AuditAction(m.Action),
		TableName:  m.TableName,
		RecordID:   m.RecordID,
		Details:    m.Details,
		OccurredAt: m.OccurredAt,
	}
	if m.UserID.Valid {
		s := m.UserID.String
		d.UserID = &s
	}
	return d
}

// ToDomainAuditLogSlice converts model AuditLogs to domain AuditLogs
func ToDomainAuditLogSlice(ms []models.AuditLog) []domain.AuditLog {
	ds := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLog(m)
	}
	return ds
}
