package services

import (
	"context"
	"fmt"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/tenant"
	"github.com/suiteops/suitepilot/pkg/models"
)

// TenantService manages tenant records.
type TenantService struct {
	client *ent.Client
}

// NewTenantService creates a new TenantService.
func NewTenantService(client *ent.Client) *TenantService {
	return &TenantService{client: client}
}

// Create registers a tenant. Tenant creation is an administrative action.
func (s *TenantService) Create(ctx context.Context, identity models.Identity, tenantID, name string) (*ent.Tenant, error) {
	if !identity.Admin {
		return nil, ErrNotPermitted
	}
	if tenantID == "" || name == "" {
		return nil, NewValidationError("tenant", "id and name are required")
	}
	t, err := s.client.Tenant.Create().
		SetID(tenantID).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return t, nil
}

// Get loads the caller's own tenant.
func (s *TenantService) Get(ctx context.Context, identity models.Identity) (*ent.Tenant, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	t, err := s.client.Tenant.Get(ctx, identity.TenantID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	return t, nil
}

// ListAll is the administrative cross-tenant listing, gated by the
// explicit Admin capability.
func (s *TenantService) ListAll(ctx context.Context, identity models.Identity) ([]*ent.Tenant, error) {
	if !identity.Admin {
		return nil, ErrNotPermitted
	}
	return s.client.Tenant.Query().
		Order(ent.Asc(tenant.FieldCreatedAt)).
		All(ctx)
}
