package sandbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/pkg/governance"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/services"
	testutil "github.com/suiteops/suitepilot/test/util"
)

// fakeProc records the invocation and returns a scripted result. onRun,
// when set, runs with the scratch directory before returning.
type fakeProc struct {
	exitCode int
	stdout   []byte
	stderr   []byte
	err      error
	onRun    func(dir string)

	argv    []string
	dir     string
	env     []string
	timeout time.Duration
}

func (f *fakeProc) Run(_ context.Context, argv []string, dir string, env []string, timeout time.Duration) (int, []byte, []byte, error) {
	f.argv = argv
	f.dir = dir
	f.env = env
	f.timeout = timeout
	if f.onRun != nil {
		f.onRun(dir)
	}
	return f.exitCode, f.stdout, f.stderr, f.err
}

type runnerFixture struct {
	client *ent.Client
	runner *Runner
	runs   *services.RunService
	proc   *fakeProc
	wsID   string
}

func setupRunner(t *testing.T, proc *fakeProc) *runnerFixture {
	t.Helper()
	client, _ := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	_, err := client.Tenant.Create().SetID("tenant-a").SetName("tenant-a").Save(ctx)
	require.NoError(t, err)
	wsID := uuid.New().String()
	_, err = client.Workspace.Create().SetID(wsID).SetTenantID("tenant-a").SetName("sdf-project").Save(ctx)
	require.NoError(t, err)
	_, err = client.WorkspaceFile.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(wsID).
		SetTenantID("tenant-a").
		SetPath("src/hook.js").
		SetContent("// v1").
		SetSha256(services.ContentSHA256("// v1")).
		SetSizeBytes(5).
		Save(ctx)
	require.NoError(t, err)

	runs := services.NewRunService(client)
	audit := services.NewAuditService(client)
	metrics := governance.NewMetrics(prometheus.NewRegistry())
	return &runnerFixture{
		client: client,
		runner: NewRunner(client, runs, audit, metrics, proc),
		runs:   runs,
		proc:   proc,
		wsID:   wsID,
	}
}

func runnerIdentity() models.Identity {
	return models.Identity{TenantID: "tenant-a", ActorID: "user-1", CorrelationID: uuid.New().String()}
}

func artifactTypes(t *testing.T, fx *runnerFixture, identity models.Identity, runID string) map[artifact.ArtifactType][]byte {
	t.Helper()
	arts, err := fx.runs.ListArtifacts(context.Background(), identity, runID)
	require.NoError(t, err)
	byType := make(map[artifact.ArtifactType][]byte, len(arts))
	for _, a := range arts {
		byType[a.ArtifactType] = a.Content
	}
	return byType
}

func TestRunner_ValidatePasses(t *testing.T) {
	var seenFile string
	proc := &fakeProc{stdout: []byte("Validation complete."), onRun: func(dir string) {
		data, err := os.ReadFile(filepath.Join(dir, "src", "hook.js"))
		if err == nil {
			seenFile = string(data)
		}
	}}
	fx := setupRunner(t, proc)
	identity := runnerIdentity()

	result, err := fx.runner.RunValidate(context.Background(), identity, fx.wsID, "")
	require.NoError(t, err)
	assert.Equal(t, "passed", result["status"])
	assert.Equal(t, 0, result["exit_code"])
	assert.Equal(t, 1, result["materialized_file_count"])

	// The subprocess saw the materialized snapshot, the allowlisted argv,
	// and a minimal environment rooted in the scratch directory.
	assert.Equal(t, "// v1", seenFile)
	assert.Equal(t, []string{"suitecloud", "project:validate"}, proc.argv)
	assert.Contains(t, proc.env, "HOME="+proc.dir)
	assert.Contains(t, proc.env, "TMPDIR="+proc.dir)
	assert.Len(t, proc.env, 3, "PATH, HOME, TMPDIR and nothing else")

	// The scratch directory never outlives the run.
	_, statErr := os.Stat(proc.dir)
	assert.True(t, os.IsNotExist(statErr))

	rec, err := fx.runs.Get(context.Background(), identity, result["run_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, run.StatusPassed, rec.Status)

	byType := artifactTypes(t, fx, identity, rec.ID)
	assert.Equal(t, "Validation complete.", string(byType[artifact.ArtifactTypeStdout]))
	assert.Contains(t, byType, artifact.ArtifactTypeStderr)
	assert.Contains(t, string(byType[artifact.ArtifactTypeResultJSON]), `"status":"passed"`)
}

func TestRunner_NonZeroExitFails(t *testing.T) {
	proc := &fakeProc{exitCode: 1, stderr: []byte("1 object failed validation")}
	fx := setupRunner(t, proc)
	identity := runnerIdentity()

	result, err := fx.runner.RunValidate(context.Background(), identity, fx.wsID, "")
	require.NoError(t, err)
	assert.Equal(t, "failed", result["status"])
	assert.Equal(t, 1, result["exit_code"])

	rec, err := fx.runs.Get(context.Background(), identity, result["run_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, rec.Status)
}

func TestRunner_Timeout(t *testing.T) {
	proc := &fakeProc{err: fmt.Errorf("suitecloud: %w", ErrTimedOut)}
	fx := setupRunner(t, proc)
	identity := runnerIdentity()

	result, err := fx.runner.RunValidate(context.Background(), identity, fx.wsID, "")
	require.NoError(t, err)
	assert.Equal(t, "error", result["status"])
	assert.Equal(t, "TIMEOUT", result["error_category"])
	assert.NotContains(t, result, "exit_code")

	rec, err := fx.runs.Get(context.Background(), identity, result["run_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, run.StatusError, rec.Status)
	require.NotNil(t, rec.ErrorCategory)
	assert.Equal(t, "TIMEOUT", *rec.ErrorCategory)

	byType := artifactTypes(t, fx, identity, rec.ID)
	assert.Contains(t, string(byType[artifact.ArtifactTypeStderr]), "timed out after")
	assert.Contains(t, string(byType[artifact.ArtifactTypeResultJSON]), `"error_category":"TIMEOUT"`)

	_, statErr := os.Stat(proc.dir)
	assert.True(t, os.IsNotExist(statErr), "scratch removed even on timeout")
}

func TestRunner_JestReportsStored(t *testing.T) {
	proc := &fakeProc{
		stdout: []byte(`{"numTotalTests": 3, "numPassedTests": 3, "success": true}`),
		onRun: func(dir string) {
			covDir := filepath.Join(dir, "coverage")
			_ = os.MkdirAll(covDir, 0o755)
			_ = os.WriteFile(filepath.Join(covDir, "coverage-summary.json"),
				[]byte(`{"total":{"lines":{"pct":87.5}}}`), 0o644)
		},
	}
	fx := setupRunner(t, proc)
	identity := runnerIdentity()

	result, err := fx.runner.RunUnitTests(context.Background(), identity, fx.wsID, "")
	require.NoError(t, err)
	assert.Equal(t, "passed", result["status"])
	assert.Equal(t, []string{"jest", "--json", "--coverage"}, proc.argv)

	byType := artifactTypes(t, fx, identity, result["run_id"].(string))
	assert.Contains(t, string(byType[artifact.ArtifactTypeReportJSON]), `"numTotalTests"`)
	assert.Contains(t, string(byType[artifact.ArtifactTypeCoverageJSON]), `"pct"`)
}

func TestRunner_OverlayRequiresApprovedChangeset(t *testing.T) {
	proc := &fakeProc{}
	fx := setupRunner(t, proc)
	identity := runnerIdentity()

	changesets := services.NewChangesetService(fx.client)
	content := "// v2"
	cs, err := changesets.ProposePatch(context.Background(), identity, services.ProposePatchRequest{
		WorkspaceID: fx.wsID,
		FilePath:    "src/hook.js",
		NewContent:  &content,
	})
	require.NoError(t, err)

	// Draft overlay never reaches the subprocess.
	result, err := fx.runner.RunValidate(context.Background(), identity, fx.wsID, cs.ID)
	require.NoError(t, err)
	assert.Equal(t, "error", result["status"])
	assert.Equal(t, "MATERIALIZATION", result["error_category"])
	assert.Nil(t, proc.argv)

	// Once approved the overlaid content is what gets validated.
	_, err = changesets.Transition(context.Background(), identity, cs.ID, services.ActionSubmit, "")
	require.NoError(t, err)
	_, err = changesets.Transition(context.Background(), identity, cs.ID, services.ActionApprove, "")
	require.NoError(t, err)

	var seenFile string
	proc.onRun = func(dir string) {
		data, rerr := os.ReadFile(filepath.Join(dir, "src", "hook.js"))
		if rerr == nil {
			seenFile = string(data)
		}
	}
	result, err = fx.runner.RunValidate(context.Background(), identity, fx.wsID, cs.ID)
	require.NoError(t, err)
	assert.Equal(t, "passed", result["status"])
	assert.Equal(t, "// v2", seenFile)
}

func TestRunner_OverlayMaterializesCreatedFiles(t *testing.T) {
	proc := &fakeProc{}
	fx := setupRunner(t, proc)
	identity := runnerIdentity()

	changesets := services.NewChangesetService(fx.client)
	content := "define([], function() { return {}; });"
	cs, err := changesets.ProposePatch(context.Background(), identity, services.ProposePatchRequest{
		WorkspaceID: fx.wsID,
		FilePath:    "src/lib/new_module.js",
		NewContent:  &content,
	})
	require.NoError(t, err)
	_, err = changesets.Transition(context.Background(), identity, cs.ID, services.ActionSubmit, "")
	require.NoError(t, err)
	_, err = changesets.Transition(context.Background(), identity, cs.ID, services.ActionApprove, "")
	require.NoError(t, err)

	var created string
	proc.onRun = func(dir string) {
		data, rerr := os.ReadFile(filepath.Join(dir, "src", "lib", "new_module.js"))
		if rerr == nil {
			created = string(data)
		}
	}
	result, err := fx.runner.RunValidate(context.Background(), identity, fx.wsID, cs.ID)
	require.NoError(t, err)
	assert.Equal(t, "passed", result["status"])
	assert.Equal(t, content, created, "created file appears in the snapshot")
	assert.Equal(t, 2, result["materialized_file_count"], "existing file plus the created one")
}

func TestRunner_RejectsUnlistedRunType(t *testing.T) {
	fx := setupRunner(t, &fakeProc{})
	identity := runnerIdentity()

	_, err := fx.runner.Execute(context.Background(), identity, fx.wsID, "", run.RunTypeSuiteqlAssertions)
	require.ErrorIs(t, err, ErrCommandNotAllowed)

	// Nothing was recorded: the allowlist check precedes run creation.
	runs, err := fx.runs.ListByChangeset(context.Background(), identity, "")
	require.NoError(t, err)
	assert.Empty(t, runs)
}
