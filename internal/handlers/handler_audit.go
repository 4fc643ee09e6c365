package handlers

import (
	"net/http"

	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// auditHandler handles HTTP requests for the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{
		auditService: as,
	}
}

// registerAuditRoutes registers the audit trail routes.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	rg.GET("/audit-logs", h.listAuditLogs) // Admin only
}

// listAuditLogs godoc
// @Summary List audit log entries
// @Description Returns the audit trail, most recent first. Admin only.
// @Tags audit
// @Produce  json
// @Param   limit query int false "Max entries to return" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.auditService.ListAuditLogs(c.Request.Context(), params.Limit, params.Offset, requestingUserID)
	if err != nil {
		respondWithError(c, err, "Failed to list audit logs")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAuditLogsResponse(entries))
}
