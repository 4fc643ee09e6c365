package domain

import "time"

// AuditAction names the kind of change an audit entry records.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
	AuditVoid   AuditAction = "VOID"
)

// AuditLog is one entry in the append-only system log. Entries are never
// updated or deleted. UserID is nil for system-initiated changes.
type AuditLog struct {
	AuditID    string      `json:"auditID"` // Primary Key (UUID)
	UserID     *string     `json:"userID,omitempty"`
	Action     AuditAction `json:"action"`
	TableName  string      `json:"tableName"`
	RecordID   string      `json:"recordID"`
	Details    string      `json:"details"`
	OccurredAt time.Time   `json:"occurredAt"`
}
