package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suiteops/suitepilot/ent"
)

// AuditEventResponse is the external view of one audit event.
type AuditEventResponse struct {
	ID            string         `json:"audit_id"`
	CorrelationID string         `json:"correlation_id"`
	ActorID       string         `json:"actor_id"`
	Category      string         `json:"category"`
	Action        string         `json:"action"`
	ResourceType  string         `json:"resource_type,omitempty"`
	ResourceID    string         `json:"resource_id,omitempty"`
	Status        string         `json:"status"`
	Payload       map[string]any `json:"payload,omitempty"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func auditEventResponse(ev *ent.AuditEvent) *AuditEventResponse {
	return &AuditEventResponse{
		ID:            ev.ID,
		CorrelationID: ev.CorrelationID,
		ActorID:       ev.ActorID,
		Category:      ev.Category,
		Action:        ev.Action,
		ResourceType:  ev.ResourceType,
		ResourceID:    ev.ResourceID,
		Status:        string(ev.Status),
		Payload:       ev.Payload,
		ErrorMessage:  ev.ErrorMessage,
		CreatedAt:     ev.CreatedAt,
	}
}

// listAuditHandler handles GET /api/v1/audit. With correlation_id it
// returns the events of one turn in insertion order; otherwise the
// tenant's recent events, optionally bounded by since (RFC 3339).
func (s *Server) listAuditHandler(c *gin.Context) {
	identity := requestIdentity(c)
	ctx := c.Request.Context()

	var (
		rows []*ent.AuditEvent
		err  error
	)
	if correlationID := c.Query("correlation_id"); correlationID != "" {
		rows, err = s.audit.ListByCorrelation(ctx, identity, correlationID)
	} else {
		since := time.Time{}
		if raw := c.Query("since"); raw != "" {
			since, err = time.Parse(time.RFC3339, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "since must be RFC 3339"})
				return
			}
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
		rows, err = s.audit.ListByTenant(ctx, identity, since, limit)
	}
	if err != nil {
		serviceError(c, err)
		return
	}

	out := make([]*AuditEventResponse, 0, len(rows))
	for _, ev := range rows {
		out = append(out, auditEventResponse(ev))
	}
	c.JSON(http.StatusOK, gin.H{"events": out, "count": len(out)})
}
