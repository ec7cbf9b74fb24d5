package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/pkg/models"
	testutil "github.com/suiteops/suitepilot/test/util"
)

func setupClient(t *testing.T) *ent.Client {
	t.Helper()
	client, _ := testutil.SetupTestDatabase(t)
	return client
}

func newIdentity(tenantID, actorID string) models.Identity {
	return models.Identity{
		TenantID:      tenantID,
		ActorID:       actorID,
		CorrelationID: uuid.New().String(),
	}
}

func seedTenant(t *testing.T, client *ent.Client, tenantID string) {
	t.Helper()
	_, err := client.Tenant.Create().
		SetID(tenantID).
		SetName(tenantID).
		Save(context.Background())
	require.NoError(t, err)
}

func seedWorkspace(t *testing.T, client *ent.Client, tenantID string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := client.Workspace.Create().
		SetID(id).
		SetTenantID(tenantID).
		SetName("sdf-project").
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func seedFile(t *testing.T, client *ent.Client, tenantID, workspaceID, path, content string) *ent.WorkspaceFile {
	t.Helper()
	f, err := client.WorkspaceFile.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(workspaceID).
		SetTenantID(tenantID).
		SetPath(path).
		SetContent(content).
		SetSha256(ContentSHA256(content)).
		SetSizeBytes(len(content)).
		Save(context.Background())
	require.NoError(t, err)
	return f
}

func strptr(s string) *string { return &s }
