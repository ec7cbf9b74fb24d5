package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/redact"
)

// AuditService appends immutable audit events. Events are never updated
// or deleted; payloads are scrubbed of sensitive keys before persistence.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// AuditEntry describes one event to append.
type AuditEntry struct {
	Category     string
	Action       string
	ResourceType string
	ResourceID   string
	Status       auditevent.Status
	Payload      map[string]any
	ErrorMessage string
}

// maxErrorLen keeps unexpected handler panics from ballooning rows.
const maxErrorLen = 1024

// Append writes one audit event under the caller's tenant and correlation
// context. The payload is scrubbed before persistence.
func (s *AuditService) Append(ctx context.Context, identity models.Identity, entry AuditEntry) (*ent.AuditEvent, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if entry.Action == "" {
		return nil, NewValidationError("action", "required")
	}
	if entry.Category == "" {
		return nil, NewValidationError("category", "required")
	}

	errMsg := entry.ErrorMessage
	if len(errMsg) > maxErrorLen {
		errMsg = errMsg[:maxErrorLen]
	}

	builder := s.client.AuditEvent.Create().
		SetID(uuid.New().String()).
		SetTenantID(identity.TenantID).
		SetActorID(identity.ActorID).
		SetCategory(entry.Category).
		SetAction(entry.Action).
		SetCorrelationID(identity.CorrelationID).
		SetStatus(entry.Status)

	if entry.ResourceType != "" {
		builder.SetResourceType(entry.ResourceType)
	}
	if entry.ResourceID != "" {
		builder.SetResourceID(entry.ResourceID)
	}
	if entry.Payload != nil {
		builder.SetPayload(redact.Map(entry.Payload))
	}
	if errMsg != "" {
		builder.SetErrorMessage(errMsg)
	}

	ev, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append audit event: %w", err)
	}
	return ev, nil
}

// ListByCorrelation returns all events for one user interaction, in
// append order, scoped to the caller's tenant.
func (s *AuditService) ListByCorrelation(ctx context.Context, identity models.Identity, correlationID string) ([]*ent.AuditEvent, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	return s.client.AuditEvent.Query().
		Where(
			auditevent.TenantIDEQ(identity.TenantID),
			auditevent.CorrelationIDEQ(correlationID),
		).
		Order(ent.Asc(auditevent.FieldCreatedAt)).
		All(ctx)
}

// ListByTenant returns recent events for a tenant, newest first.
func (s *AuditService) ListByTenant(ctx context.Context, identity models.Identity, since time.Time, limit int) ([]*ent.AuditEvent, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.client.AuditEvent.Query().
		Where(
			auditevent.TenantIDEQ(identity.TenantID),
			auditevent.CreatedAtGTE(since),
		).
		Order(ent.Desc(auditevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// ListAllTenants is the administrative cross-tenant listing. It is gated
// by the explicit Admin capability on the identity.
func (s *AuditService) ListAllTenants(ctx context.Context, identity models.Identity, since time.Time, limit int) ([]*ent.AuditEvent, error) {
	if !identity.Admin {
		return nil, ErrNotPermitted
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.client.AuditEvent.Query().
		Where(auditevent.CreatedAtGTE(since)).
		Order(ent.Desc(auditevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
