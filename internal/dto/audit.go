package dto

import (
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
)

// ListAuditLogsParams defines query parameters for the audit trail.
type ListAuditLogsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// AuditLogResponse defines one entry of the audit trail.
type AuditLogResponse struct {
	AuditID    string    `json:"auditID"`
	UserID     *string   `json:"userID,omitempty"`
	Action     string    `json:"action"`
	TableName  string    `json:"tableName"`
	RecordID   string    `json:"recordID"`
	Details    string    `json:"details,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ToAuditLogResponse converts a domain.AuditLog to its DTO
func ToAuditLogResponse(a *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditID:    a.AuditID,
		UserID:     a.UserID,
		Action:     string(a.Action),
		TableName:  a.TableName,
		RecordID:   a.RecordID,
		Details:    a.Details,
		OccurredAt: a.OccurredAt,
	}
}

// ListAuditLogsResponse wraps the audit trail listing.
type ListAuditLogsResponse struct {
	Logs []AuditLogResponse `json:"logs"`
}

// ToListAuditLogsResponse converts domain audit entries to the list DTO
func ToListAuditLogsResponse(as []domain.AuditLog) ListAuditLogsResponse {
	out := make([]AuditLogResponse, len(as))
	for i := range as {
		out[i] = ToAuditLogResponse(&as[i])
	}
	return ListAuditLogsResponse{Logs: out}
}
