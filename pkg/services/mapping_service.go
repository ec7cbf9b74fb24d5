package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/entitymapping"
	"github.com/suiteops/suitepilot/pkg/models"
)

// MappingService manages entity mappings discovered from NetSuite
// metadata. Mappings are upserted on (tenant, entity_type, script_id).
type MappingService struct {
	client *ent.Client
}

// NewMappingService creates a new MappingService.
func NewMappingService(client *ent.Client) *MappingService {
	return &MappingService{client: client}
}

// MappingUpsert is one discovered entity.
type MappingUpsert struct {
	EntityType  string
	ScriptID    string
	NaturalName string
	Description string
}

// UpsertBatch inserts or refreshes a batch of mappings.
func (s *MappingService) UpsertBatch(ctx context.Context, identity models.Identity, batch []MappingUpsert) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	for _, m := range batch {
		if m.EntityType == "" || m.ScriptID == "" || m.NaturalName == "" {
			return NewValidationError("mapping", "entity_type, script_id and natural_name are required")
		}
		err := s.client.EntityMapping.Create().
			SetID(uuid.New().String()).
			SetTenantID(identity.TenantID).
			SetEntityType(m.EntityType).
			SetScriptID(m.ScriptID).
			SetNaturalName(m.NaturalName).
			SetDescription(m.Description).
			OnConflictColumns(
				entitymapping.FieldTenantID,
				entitymapping.FieldEntityType,
				entitymapping.FieldScriptID,
			).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert mapping %s/%s: %w", m.EntityType, m.ScriptID, err)
		}
	}
	return nil
}

// ListByTenant returns all mappings for the tenant. The resolver builds
// its in-process trigram index from this set.
func (s *MappingService) ListByTenant(ctx context.Context, identity models.Identity) ([]*ent.EntityMapping, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	return s.client.EntityMapping.Query().
		Where(entitymapping.TenantIDEQ(identity.TenantID)).
		Order(ent.Asc(entitymapping.FieldNaturalName)).
		All(ctx)
}
