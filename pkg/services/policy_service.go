package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/policyprofile"
	"github.com/suiteops/suitepilot/pkg/models"
)

// PolicyService manages per-tenant policy profiles. At most one profile
// is active per tenant; locked profiles reject mutations until unlocked
// by an administrative action.
type PolicyService struct {
	client *ent.Client
}

// NewPolicyService creates a new PolicyService.
func NewPolicyService(client *ent.Client) *PolicyService {
	return &PolicyService{client: client}
}

// PolicyUpdate carries the mutable fields of a policy profile. Nil
// pointers leave the stored value unchanged.
type PolicyUpdate struct {
	Name               *string
	ReadOnlyMode       *bool
	MaxRowsPerQuery    *int
	RequireRowLimit    *bool
	BlockedFields      []string
	AllowedRecordTypes []string
	ToolAllowlist      []string
}

// GetActive returns the tenant's active policy profile, or ErrNotFound
// when none is configured.
func (s *PolicyService) GetActive(ctx context.Context, identity models.Identity) (*ent.PolicyProfile, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	profile, err := s.client.PolicyProfile.Query().
		Where(
			policyprofile.TenantIDEQ(identity.TenantID),
			policyprofile.Active(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load active policy: %w", err)
	}
	return profile, nil
}

// Create creates a policy profile for the tenant. When active is true any
// previously active profile is deactivated in the same transaction.
func (s *PolicyService) Create(ctx context.Context, identity models.Identity, name string, active bool, update PolicyUpdate) (*ent.PolicyProfile, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if active {
		if _, err := tx.PolicyProfile.Update().
			Where(
				policyprofile.TenantIDEQ(identity.TenantID),
				policyprofile.Active(true),
			).
			SetActive(false).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to deactivate previous policy: %w", err)
		}
	}

	builder := tx.PolicyProfile.Create().
		SetID(uuid.New().String()).
		SetTenantID(identity.TenantID).
		SetName(name).
		SetActive(active)

	if update.ReadOnlyMode != nil {
		builder.SetReadOnlyMode(*update.ReadOnlyMode)
	}
	if update.MaxRowsPerQuery != nil {
		builder.SetMaxRowsPerQuery(*update.MaxRowsPerQuery)
	}
	if update.RequireRowLimit != nil {
		builder.SetRequireRowLimit(*update.RequireRowLimit)
	}
	if update.BlockedFields != nil {
		builder.SetBlockedFields(update.BlockedFields)
	}
	if update.AllowedRecordTypes != nil {
		builder.SetAllowedRecordTypes(update.AllowedRecordTypes)
	}
	if update.ToolAllowlist != nil {
		builder.SetToolAllowlist(update.ToolAllowlist)
	}

	profile, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit policy create: %w", err)
	}
	return profile, nil
}

// Update mutates a policy profile. Locked profiles reject mutations
// unless the identity carries the administrative capability.
func (s *PolicyService) Update(ctx context.Context, identity models.Identity, policyID string, update PolicyUpdate) (*ent.PolicyProfile, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	profile, err := s.get(ctx, identity, policyID)
	if err != nil {
		return nil, err
	}
	if profile.Locked && !identity.Admin {
		return nil, ErrPolicyLocked
	}

	builder := profile.Update()
	if update.Name != nil {
		builder.SetName(*update.Name)
	}
	if update.ReadOnlyMode != nil {
		builder.SetReadOnlyMode(*update.ReadOnlyMode)
	}
	if update.MaxRowsPerQuery != nil {
		builder.SetMaxRowsPerQuery(*update.MaxRowsPerQuery)
	}
	if update.RequireRowLimit != nil {
		builder.SetRequireRowLimit(*update.RequireRowLimit)
	}
	if update.BlockedFields != nil {
		builder.SetBlockedFields(update.BlockedFields)
	}
	if update.AllowedRecordTypes != nil {
		builder.SetAllowedRecordTypes(update.AllowedRecordTypes)
	}
	if update.ToolAllowlist != nil {
		builder.SetToolAllowlist(update.ToolAllowlist)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}
	return updated, nil
}

// SetLocked locks or unlocks a profile. Unlocking requires the
// administrative capability; locking happens when onboarding finalizes.
func (s *PolicyService) SetLocked(ctx context.Context, identity models.Identity, policyID string, locked bool) (*ent.PolicyProfile, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if !locked && !identity.Admin {
		return nil, ErrNotPermitted
	}
	profile, err := s.get(ctx, identity, policyID)
	if err != nil {
		return nil, err
	}
	updated, err := profile.Update().SetLocked(locked).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set policy lock: %w", err)
	}
	return updated, nil
}

// List returns all profiles for the tenant.
func (s *PolicyService) List(ctx context.Context, identity models.Identity) ([]*ent.PolicyProfile, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	return s.client.PolicyProfile.Query().
		Where(policyprofile.TenantIDEQ(identity.TenantID)).
		Order(ent.Asc(policyprofile.FieldCreatedAt)).
		All(ctx)
}

func (s *PolicyService) get(ctx context.Context, identity models.Identity, policyID string) (*ent.PolicyProfile, error) {
	profile, err := s.client.PolicyProfile.Query().
		Where(
			policyprofile.IDEQ(policyID),
			policyprofile.TenantIDEQ(identity.TenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	return profile, nil
}
