package models

import (
	"database/sql"
	"time"
)

// AuditLog is the row shape of the audit_logs table. Append-only.
type AuditLog struct {
	AuditID    string         `db:"audit_id"`
	UserID     sql.NullString `db:"user_id"`
	Action     string         `db:"action"`
	TableName  string         `db:"table_name"`
	RecordID   string         `db:"record_id"`
	Details    string         `db:"details"`
	OccurredAt time.Time      `db:"occurred_at"`
}
