package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/pkg/services"
)

// ChangesetResponse is the external view of a changeset.
type ChangesetResponse struct {
	ID              string     `json:"changeset_id"`
	WorkspaceID     string     `json:"workspace_id"`
	Title           string     `json:"title"`
	Rationale       string     `json:"rationale,omitempty"`
	Status          string     `json:"status"`
	ProposedBy      string     `json:"proposed_by"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	AppliedBy       *string    `json:"applied_by,omitempty"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	AppliedAt       *time.Time `json:"applied_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func changesetResponse(cs *ent.Changeset) *ChangesetResponse {
	return &ChangesetResponse{
		ID:              cs.ID,
		WorkspaceID:     cs.WorkspaceID,
		Title:           cs.Title,
		Rationale:       cs.Rationale,
		Status:          string(cs.Status),
		ProposedBy:      cs.ProposedBy,
		ReviewedBy:      cs.ReviewedBy,
		AppliedBy:       cs.AppliedBy,
		SubmittedAt:     cs.SubmittedAt,
		ReviewedAt:      cs.ReviewedAt,
		AppliedAt:       cs.AppliedAt,
		RejectionReason: cs.RejectionReason,
		CreatedAt:       cs.CreatedAt,
	}
}

// getChangesetHandler handles GET /api/v1/changesets/:id.
func (s *Server) getChangesetHandler(c *gin.Context) {
	cs, err := s.changesets.Get(c.Request.Context(), requestIdentity(c), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, changesetResponse(cs))
}

// listChangesetsHandler handles GET /api/v1/workspaces/:id/changesets.
func (s *Server) listChangesetsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := s.changesets.ListByWorkspace(c.Request.Context(), requestIdentity(c), c.Param("id"), limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	out := make([]*ChangesetResponse, 0, len(rows))
	for _, cs := range rows {
		out = append(out, changesetResponse(cs))
	}
	c.JSON(http.StatusOK, gin.H{"changesets": out, "count": len(out)})
}

// TransitionRequest is the POST /api/v1/changesets/:id/transition body.
type TransitionRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// transitionChangesetHandler handles the review state machine edges:
// submit, approve, reject, revert, revoke, discard.
func (s *Server) transitionChangesetHandler(c *gin.Context) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action is required"})
		return
	}

	cs, err := s.changesets.Transition(c.Request.Context(), requestIdentity(c), c.Param("id"),
		services.TransitionAction(req.Action), req.Reason)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, changesetResponse(cs))
}

// applyChangesetHandler handles POST /api/v1/changesets/:id/apply.
func (s *Server) applyChangesetHandler(c *gin.Context) {
	cs, err := s.changesets.Apply(c.Request.Context(), requestIdentity(c), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, changesetResponse(cs))
}
