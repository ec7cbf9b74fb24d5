package assertions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/services"
)

func recordRun(t *testing.T, fx *assertionFixture, identity models.Identity, runType run.RunType, status run.Status) {
	t.Helper()
	ctx := context.Background()
	rec, err := fx.runs.Create(ctx, identity, services.CreateRunRequest{
		WorkspaceID: fx.wsID,
		ChangesetID: fx.csID,
		RunType:     runType,
	})
	require.NoError(t, err)
	_, err = fx.runs.MarkRunning(ctx, identity, rec.ID)
	require.NoError(t, err)
	_, err = fx.runs.Complete(ctx, identity, rec.ID, services.RunOutcome{Status: status})
	require.NoError(t, err)
}

func TestGate_BlocksUntilEachPrerequisitePasses(t *testing.T) {
	fx := setupAssertionFixture(t)
	identity := assertIdentity()
	gate := NewGate(fx.runs, fx.audit)
	ctx := context.Background()

	verdict, allowed, err := gate.Evaluate(ctx, identity, fx.csID, "", true)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "no passing sdf_validate run for this changeset", verdict["blocked_reason"])

	recordRun(t, fx, identity, run.RunTypeSdfValidate, run.StatusPassed)
	verdict, allowed, err = gate.Evaluate(ctx, identity, fx.csID, "", true)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "no passing jest_unit_test run for this changeset", verdict["blocked_reason"])

	recordRun(t, fx, identity, run.RunTypeJestUnitTest, run.StatusPassed)
	verdict, allowed, err = gate.Evaluate(ctx, identity, fx.csID, "", true)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "no passing suiteql_assertions run for this changeset", verdict["blocked_reason"])

	recordRun(t, fx, identity, run.RunTypeSuiteqlAssertions, run.StatusPassed)
	verdict, allowed, err = gate.Evaluate(ctx, identity, fx.csID, "", true)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, true, verdict["allowed"])
	assert.Equal(t, false, verdict["override"].(map[string]any)["applied"])
}

func TestGate_FailedRunDoesNotCount(t *testing.T) {
	fx := setupAssertionFixture(t)
	identity := assertIdentity()
	gate := NewGate(fx.runs, fx.audit)

	recordRun(t, fx, identity, run.RunTypeSdfValidate, run.StatusFailed)
	verdict, allowed, err := gate.Evaluate(context.Background(), identity, fx.csID, "", false)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "no passing sdf_validate run for this changeset", verdict["blocked_reason"])
}

func TestGate_AssertionsOptionalWhenNotRequired(t *testing.T) {
	fx := setupAssertionFixture(t)
	identity := assertIdentity()
	gate := NewGate(fx.runs, fx.audit)

	recordRun(t, fx, identity, run.RunTypeSdfValidate, run.StatusPassed)
	recordRun(t, fx, identity, run.RunTypeJestUnitTest, run.StatusPassed)

	_, allowed, err := gate.Evaluate(context.Background(), identity, fx.csID, "", false)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestGate_OverrideWaivesAssertionsWithAudit(t *testing.T) {
	fx := setupAssertionFixture(t)
	identity := assertIdentity()
	gate := NewGate(fx.runs, fx.audit)
	ctx := context.Background()

	recordRun(t, fx, identity, run.RunTypeSdfValidate, run.StatusPassed)
	recordRun(t, fx, identity, run.RunTypeJestUnitTest, run.StatusPassed)

	verdict, allowed, err := gate.Evaluate(ctx, identity, fx.csID, "finance signed off on the data checks", true)
	require.NoError(t, err)
	assert.True(t, allowed)
	override := verdict["override"].(map[string]any)
	assert.Equal(t, true, override["applied"])
	assert.Equal(t, "finance signed off on the data checks", override["reason"])

	events, err := fx.audit.ListByCorrelation(ctx, identity, identity.CorrelationID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "deploy.gate_override", events[0].Action)
	assert.Equal(t, "finance signed off on the data checks", events[0].Payload["reason"])
}

func TestGate_OverrideNeverWaivesValidateOrTests(t *testing.T) {
	fx := setupAssertionFixture(t)
	identity := assertIdentity()
	gate := NewGate(fx.runs, fx.audit)
	ctx := context.Background()

	verdict, allowed, err := gate.Evaluate(ctx, identity, fx.csID, "please just deploy", true)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "no passing sdf_validate run for this changeset", verdict["blocked_reason"])

	// No override audit is written for a blocked verdict.
	events, err := fx.audit.ListByCorrelation(ctx, identity, identity.CorrelationID)
	require.NoError(t, err)
	assert.Empty(t, events)
}
