package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping_UpsertBatchRefreshesExisting(t *testing.T) {
	client := setupClient(t)
	svc := NewMappingService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")

	err := svc.UpsertBatch(ctx, identity, []MappingUpsert{
		{EntityType: "custom_field", ScriptID: "custbody_rebate", NaturalName: "rebate amount"},
		{EntityType: "saved_search", ScriptID: "customsearch_open", NaturalName: "open orders"},
	})
	require.NoError(t, err)

	// Re-upserting the same key refreshes the row instead of duplicating it.
	err = svc.UpsertBatch(ctx, identity, []MappingUpsert{
		{EntityType: "custom_field", ScriptID: "custbody_rebate", NaturalName: "rebate total", Description: "renamed"},
	})
	require.NoError(t, err)

	rows, err := svc.ListByTenant(ctx, identity)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byScript := map[string]string{}
	for _, r := range rows {
		byScript[r.ScriptID] = r.NaturalName
	}
	assert.Equal(t, "rebate total", byScript["custbody_rebate"])
}

func TestMapping_ValidatesRequiredFields(t *testing.T) {
	client := setupClient(t)
	svc := NewMappingService(client)
	ctx := context.Background()
	seedTenant(t, client, "tenant-a")

	err := svc.UpsertBatch(ctx, newIdentity("tenant-a", "user-1"), []MappingUpsert{
		{EntityType: "custom_field", ScriptID: "", NaturalName: "x"},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestMapping_TenantIsolation(t *testing.T) {
	client := setupClient(t)
	svc := NewMappingService(client)
	ctx := context.Background()
	seedTenant(t, client, "tenant-a")
	seedTenant(t, client, "tenant-b")

	err := svc.UpsertBatch(ctx, newIdentity("tenant-a", "user-1"), []MappingUpsert{
		{EntityType: "custom_field", ScriptID: "custbody_rebate", NaturalName: "rebate amount"},
	})
	require.NoError(t, err)

	rows, err := svc.ListByTenant(ctx, newIdentity("tenant-b", "user-9"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
