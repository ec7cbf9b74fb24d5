package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/services"
)

// QueryExecutor runs reads against the tenant's ERP account. The stub
// variant serves deterministic data for demos and tests.
type QueryExecutor interface {
	ExecuteSuiteQL(ctx context.Context, identity models.Identity, query string, limit int) (map[string]any, error)
	CheckConnectivity(ctx context.Context, identity models.Identity) (map[string]any, error)
	SampleTable(ctx context.Context, identity models.Identity, tableName string, limit int) (map[string]any, error)
}

// ReconRunner reconciles payouts over a date range.
type ReconRunner interface {
	RunReconciliation(ctx context.Context, identity models.Identity, dateFrom, dateTo string, payoutIDs []string) (map[string]any, error)
}

// ReportExporter renders a report in the requested format.
type ReportExporter interface {
	Export(ctx context.Context, identity models.Identity, reportType, format string, filters map[string]any) (map[string]any, error)
}

// Scheduler manages scheduled jobs on the external scheduling service.
type Scheduler interface {
	CreateSchedule(ctx context.Context, identity models.Identity, name, scheduleType, cron string, params map[string]any) (map[string]any, error)
	ListSchedules(ctx context.Context, identity models.Identity) (map[string]any, error)
	RunSchedule(ctx context.Context, identity models.Identity, scheduleID string) (map[string]any, error)
}

// RunLauncher executes sandbox runs inline and reports their outcome.
type RunLauncher interface {
	RunValidate(ctx context.Context, identity models.Identity, workspaceID, changesetID string) (map[string]any, error)
	RunUnitTests(ctx context.Context, identity models.Identity, workspaceID, changesetID string) (map[string]any, error)
	RunDeploy(ctx context.Context, identity models.Identity, changesetID string) (map[string]any, error)
}

// AssertionRunner validates and executes a batch of data assertions
// against an approved changeset.
type AssertionRunner interface {
	RunAssertionBatch(ctx context.Context, identity models.Identity, changesetID string, assertions []any) (map[string]any, error)
}

// DeployGate evaluates deploy prerequisites for a changeset. The returned
// map is the gate verdict payload; allowed mirrors its "allowed" field.
type DeployGate interface {
	Evaluate(ctx context.Context, identity models.Identity, changesetID, overrideReason string, requireAssertions bool) (verdict map[string]any, allowed bool, err error)
}

// Catalog wires local tool handlers to their backing capabilities.
type Catalog struct {
	Workspaces *services.WorkspaceService
	Changesets *services.ChangesetService
	Queries    QueryExecutor
	QueryStub  QueryExecutor
	Recon      ReconRunner
	Reports    ReportExporter
	Scheduler  Scheduler
	Runs       RunLauncher
	Assertions AssertionRunner
	Gate       DeployGate
}

// Descriptors returns the full local tool catalog.
func (c *Catalog) Descriptors() []*Descriptor {
	return []*Descriptor{
		{
			Name:          "health",
			Description:   "Liveness check for the assistant runtime.",
			RatePerMinute: 60,
			InputSchema:   objectSchema(nil, nil),
			Handler:       c.health,
		},
		{
			Name:          "netsuite.suiteql",
			Description:   "Execute a read-only SuiteQL query against the tenant account.",
			Params:        []string{"query", "limit"},
			Timeout:       30 * time.Second,
			RatePerMinute: 30,
			DefaultLimit:  100,
			MaxLimit:      1000,
			InputSchema: objectSchema(map[string]any{
				"query": stringProp("SuiteQL SELECT statement with a row-limit clause"),
				"limit": intProp("Maximum rows to return"),
			}, []string{"query"}),
			Handler: c.suiteQL(func() QueryExecutor { return c.Queries }),
		},
		{
			Name:          "netsuite.suiteql_stub",
			Description:   "Execute a SuiteQL query against deterministic sample data.",
			Params:        []string{"query", "limit"},
			Timeout:       30 * time.Second,
			RatePerMinute: 30,
			DefaultLimit:  100,
			MaxLimit:      1000,
			InputSchema: objectSchema(map[string]any{
				"query": stringProp("SuiteQL SELECT statement"),
				"limit": intProp("Maximum rows to return"),
			}, []string{"query"}),
			Handler: c.suiteQL(func() QueryExecutor { return c.QueryStub }),
		},
		{
			Name:          "netsuite.connectivity",
			Description:   "Verify connectivity and credentials for the tenant account.",
			Timeout:       15 * time.Second,
			RatePerMinute: 10,
			InputSchema:   objectSchema(nil, nil),
			Handler: func(ctx context.Context, identity models.Identity, _ map[string]any) (map[string]any, error) {
				return c.Queries.CheckConnectivity(ctx, identity)
			},
		},
		{
			Name:          "data.sample_table_read",
			Description:   "Read a sample of rows from a table to inspect its shape.",
			Params:        []string{"table_name", "limit"},
			Timeout:       10 * time.Second,
			RatePerMinute: 30,
			DefaultLimit:  100,
			MaxLimit:      1000,
			InputSchema: objectSchema(map[string]any{
				"table_name": stringProp("Table to sample"),
				"limit":      intProp("Maximum rows to return"),
			}, []string{"table_name"}),
			Handler: c.sampleTableRead,
		},
		{
			Name:          "recon.run",
			Description:   "Reconcile payouts against ledger entries for a date range.",
			Params:        []string{"date_from", "date_to", "payout_ids"},
			Timeout:       120 * time.Second,
			RatePerMinute: 10,
			InputSchema: objectSchema(map[string]any{
				"date_from":  stringProp("Start date (inclusive, YYYY-MM-DD)"),
				"date_to":    stringProp("End date (inclusive, YYYY-MM-DD)"),
				"payout_ids": arrayProp("Restrict to these payout IDs", stringProp("")),
			}, []string{"date_from", "date_to"}),
			Handler: c.reconRun,
		},
		{
			Name:          "report.export",
			Description:   "Export a standard report in the requested format.",
			Params:        []string{"report_type", "format", "filters"},
			Timeout:       60 * time.Second,
			RatePerMinute: 20,
			InputSchema: objectSchema(map[string]any{
				"report_type": stringProp("Report identifier"),
				"format":      stringProp("Output format, e.g. csv or json"),
				"filters":     objectSchema(nil, nil),
			}, []string{"report_type"}),
			Handler: c.reportExport,
		},
		{
			Name:          "schedule.create",
			Description:   "Create a scheduled job on the scheduling service.",
			Params:        []string{"name", "schedule_type", "cron", "params"},
			Timeout:       10 * time.Second,
			RatePerMinute: 10,
			InputSchema: objectSchema(map[string]any{
				"name":          stringProp("Human-readable schedule name"),
				"schedule_type": stringProp("Job type to schedule"),
				"cron":          stringProp("Cron expression"),
				"params":        objectSchema(nil, nil),
			}, []string{"name", "schedule_type", "cron"}),
			Handler: c.scheduleCreate,
		},
		{
			Name:          "schedule.list",
			Description:   "List the tenant's scheduled jobs.",
			Timeout:       10 * time.Second,
			RatePerMinute: 30,
			InputSchema:   objectSchema(nil, nil),
			Handler: func(ctx context.Context, identity models.Identity, _ map[string]any) (map[string]any, error) {
				return c.Scheduler.ListSchedules(ctx, identity)
			},
		},
		{
			Name:          "schedule.run",
			Description:   "Trigger a scheduled job immediately.",
			Params:        []string{"schedule_id"},
			Timeout:       30 * time.Second,
			RatePerMinute: 10,
			InputSchema: objectSchema(map[string]any{
				"schedule_id": stringProp("Schedule to trigger"),
			}, []string{"schedule_id"}),
			Handler: c.scheduleRun,
		},
		{
			Name:           "workspace.list_files",
			Description:    "List files in a workspace, optionally under a directory.",
			Params:         []string{"workspace_id", "directory", "recursive", "limit"},
			Timeout:        10 * time.Second,
			RatePerMinute:  60,
			DefaultLimit:   100,
			MaxLimit:       1000,
			NeedsWorkspace: true,
			InputSchema: objectSchema(map[string]any{
				"workspace_id": stringProp("Workspace UUID"),
				"directory":    stringProp("Directory prefix to list under"),
				"recursive":    boolProp("Include nested entries"),
				"limit":        intProp("Maximum entries to return"),
			}, []string{"workspace_id"}),
			Handler: c.listFiles,
		},
		{
			Name:           "workspace.read_file",
			Description:    "Read a file's content, optionally a line range.",
			Params:         []string{"workspace_id", "file_id", "line_start", "line_end"},
			Timeout:        10 * time.Second,
			RatePerMinute:  120,
			NeedsWorkspace: true,
			InputSchema: objectSchema(map[string]any{
				"workspace_id": stringProp("Workspace UUID"),
				"file_id":      stringProp("File ID from workspace.list_files"),
				"line_start":   intProp("First line to include (1-based)"),
				"line_end":     intProp("Last line to include (inclusive)"),
			}, []string{"workspace_id", "file_id"}),
			Handler: c.readFile,
		},
		{
			Name:           "workspace.search",
			Description:    "Search workspace files by path or content substring.",
			Params:         []string{"workspace_id", "query", "search_type", "limit"},
			Timeout:        15 * time.Second,
			RatePerMinute:  30,
			DefaultLimit:   100,
			MaxLimit:       1000,
			NeedsWorkspace: true,
			InputSchema: objectSchema(map[string]any{
				"workspace_id": stringProp("Workspace UUID"),
				"query":        stringProp("Substring to search for"),
				"search_type":  stringProp("Either 'path' or 'content'"),
				"limit":        intProp("Maximum matches to return"),
			}, []string{"workspace_id", "query"}),
			Handler: c.searchFiles,
		},
		{
			Name:           "workspace.propose_patch",
			Description:    "Propose a reviewed file change as a draft changeset.",
			Params:         []string{"workspace_id", "file_path", "unified_diff", "title", "rationale"},
			Timeout:        10 * time.Second,
			RatePerMinute:  10,
			NeedsWorkspace: true,
			InputSchema: objectSchema(map[string]any{
				"workspace_id": stringProp("Workspace UUID"),
				"file_path":    stringProp("Relative file path"),
				"unified_diff": stringProp("Unified diff against the current content"),
				"title":        stringProp("Short changeset title"),
				"rationale":    stringProp("Why this change is needed"),
			}, []string{"workspace_id", "file_path", "unified_diff"}),
			Handler: c.proposePatch,
		},
		{
			Name:          "workspace.apply_patch",
			Description:   "Apply an approved changeset to the workspace.",
			Params:        []string{"changeset_id"},
			Timeout:       30 * time.Second,
			RatePerMinute: 5,
			InputSchema: objectSchema(map[string]any{
				"changeset_id": stringProp("Approved changeset to apply"),
			}, []string{"changeset_id"}),
			Handler: c.applyPatch,
		},
		{
			Name:           "workspace.run_validate",
			Description:    "Run project validation against the workspace snapshot.",
			Params:         []string{"workspace_id", "changeset_id"},
			Timeout:        60 * time.Second,
			RatePerMinute:  5,
			NeedsWorkspace: true,
			InputSchema: objectSchema(map[string]any{
				"workspace_id": stringProp("Workspace UUID"),
				"changeset_id": stringProp("Approved changeset to overlay"),
			}, []string{"workspace_id"}),
			Handler: c.runValidate,
		},
		{
			Name:           "workspace.run_unit_tests",
			Description:    "Run unit tests against the workspace snapshot.",
			Params:         []string{"workspace_id", "changeset_id"},
			Timeout:        120 * time.Second,
			RatePerMinute:  5,
			NeedsWorkspace: true,
			InputSchema: objectSchema(map[string]any{
				"workspace_id": stringProp("Workspace UUID"),
				"changeset_id": stringProp("Approved changeset to overlay"),
			}, []string{"workspace_id"}),
			Handler: c.runUnitTests,
		},
		{
			Name:          "workspace.run_suiteql_assertions",
			Description:   "Validate and execute data assertions for a changeset.",
			Params:        []string{"changeset_id", "assertions"},
			Timeout:       300 * time.Second,
			RatePerMinute: 5,
			InputSchema: objectSchema(map[string]any{
				"changeset_id": stringProp("Changeset under test"),
				"assertions":   arrayProp("Assertion batch", objectSchema(nil, nil)),
			}, []string{"changeset_id", "assertions"}),
			Handler: c.runAssertions,
		},
		{
			Name:          "workspace.deploy_sandbox",
			Description:   "Deploy an approved changeset to the sandbox account after gate checks.",
			Params:        []string{"changeset_id", "override_reason", "require_assertions"},
			Timeout:       600 * time.Second,
			RatePerMinute: 2,
			InputSchema: objectSchema(map[string]any{
				"changeset_id":       stringProp("Approved changeset to deploy"),
				"override_reason":    stringProp("Reason for waiving the assertion prerequisite"),
				"require_assertions": boolProp("Whether passing assertions are required"),
			}, []string{"changeset_id"}),
			Handler: c.deploySandbox,
		},
	}
}

func (c *Catalog) health(_ context.Context, _ models.Identity, _ map[string]any) (map[string]any, error) {
	return map[string]any{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)}, nil
}

func (c *Catalog) suiteQL(executor func() QueryExecutor) Handler {
	return func(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
		query, err := requireString(params, "query")
		if err != nil {
			return nil, err
		}
		return executor().ExecuteSuiteQL(ctx, identity, query, intParam(params, "limit"))
	}
}

func (c *Catalog) sampleTableRead(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	table, err := requireString(params, "table_name")
	if err != nil {
		return nil, err
	}
	return c.Queries.SampleTable(ctx, identity, table, intParam(params, "limit"))
}

func (c *Catalog) reconRun(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	from, err := requireString(params, "date_from")
	if err != nil {
		return nil, err
	}
	to, err := requireString(params, "date_to")
	if err != nil {
		return nil, err
	}
	var payoutIDs []string
	if raw, ok := params["payout_ids"].([]any); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok {
				payoutIDs = append(payoutIDs, s)
			}
		}
	}
	return c.Recon.RunReconciliation(ctx, identity, from, to, payoutIDs)
}

func (c *Catalog) reportExport(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	reportType, err := requireString(params, "report_type")
	if err != nil {
		return nil, err
	}
	filters, _ := params["filters"].(map[string]any)
	return c.Reports.Export(ctx, identity, reportType, stringParam(params, "format"), filters)
}

func (c *Catalog) scheduleCreate(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	name, err := requireString(params, "name")
	if err != nil {
		return nil, err
	}
	scheduleType, err := requireString(params, "schedule_type")
	if err != nil {
		return nil, err
	}
	cron, err := requireString(params, "cron")
	if err != nil {
		return nil, err
	}
	jobParams, _ := params["params"].(map[string]any)
	return c.Scheduler.CreateSchedule(ctx, identity, name, scheduleType, cron, jobParams)
}

func (c *Catalog) scheduleRun(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	scheduleID, err := requireString(params, "schedule_id")
	if err != nil {
		return nil, err
	}
	return c.Scheduler.RunSchedule(ctx, identity, scheduleID)
}

func (c *Catalog) listFiles(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	workspaceID, err := requireString(params, "workspace_id")
	if err != nil {
		return nil, err
	}
	files, err := c.Workspaces.ListFiles(ctx, identity, workspaceID,
		stringParam(params, "directory"), boolParam(params, "recursive"), intParam(params, "limit"))
	if err != nil {
		return nil, err
	}
	entries := make([]map[string]any, 0, len(files))
	for _, f := range files {
		entries = append(entries, map[string]any{
			"file_id":      f.ID,
			"path":         f.Path,
			"size_bytes":   f.SizeBytes,
			"is_directory": f.IsDirectory,
		})
	}
	return map[string]any{"files": entries, "count": len(entries)}, nil
}

func (c *Catalog) readFile(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	fileID, err := requireString(params, "file_id")
	if err != nil {
		return nil, err
	}
	f, err := c.Workspaces.GetFileByID(ctx, identity, fileID)
	if err != nil {
		return nil, err
	}
	content := f.Content
	lineStart := intParam(params, "line_start")
	lineEnd := intParam(params, "line_end")
	if lineStart > 0 || lineEnd > 0 {
		lines := strings.Split(content, "\n")
		start := lineStart
		if start < 1 {
			start = 1
		}
		end := lineEnd
		if end < start || end > len(lines) {
			end = len(lines)
		}
		if start > len(lines) {
			content = ""
		} else {
			content = strings.Join(lines[start-1:end], "\n")
		}
	}
	return map[string]any{
		"file_id": f.ID,
		"path":    f.Path,
		"content": content,
		"sha256":  f.Sha256,
	}, nil
}

func (c *Catalog) searchFiles(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	workspaceID, err := requireString(params, "workspace_id")
	if err != nil {
		return nil, err
	}
	query, err := requireString(params, "query")
	if err != nil {
		return nil, err
	}
	files, err := c.Workspaces.SearchFiles(ctx, identity, workspaceID, query,
		stringParam(params, "search_type"), intParam(params, "limit"))
	if err != nil {
		return nil, err
	}
	matches := make([]map[string]any, 0, len(files))
	for _, f := range files {
		matches = append(matches, map[string]any{"file_id": f.ID, "path": f.Path})
	}
	return map[string]any{"matches": matches, "count": len(matches)}, nil
}

func (c *Catalog) proposePatch(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	workspaceID, err := requireString(params, "workspace_id")
	if err != nil {
		return nil, err
	}
	filePath, err := requireString(params, "file_path")
	if err != nil {
		return nil, err
	}
	diff, err := requireString(params, "unified_diff")
	if err != nil {
		return nil, err
	}
	cs, err := c.Changesets.ProposePatch(ctx, identity, services.ProposePatchRequest{
		WorkspaceID: workspaceID,
		FilePath:    filePath,
		UnifiedDiff: diff,
		Title:       stringParam(params, "title"),
		Rationale:   stringParam(params, "rationale"),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"changeset_id": cs.ID,
		"status":       string(cs.Status),
		"file_path":    filePath,
	}, nil
}

func (c *Catalog) applyPatch(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	changesetID, err := requireString(params, "changeset_id")
	if err != nil {
		return nil, err
	}
	cs, err := c.Changesets.Apply(ctx, identity, changesetID)
	if err != nil {
		return nil, err
	}
	return map[string]any{"changeset_id": cs.ID, "status": string(cs.Status)}, nil
}

func (c *Catalog) runValidate(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	workspaceID, err := requireString(params, "workspace_id")
	if err != nil {
		return nil, err
	}
	return c.Runs.RunValidate(ctx, identity, workspaceID, stringParam(params, "changeset_id"))
}

func (c *Catalog) runUnitTests(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	workspaceID, err := requireString(params, "workspace_id")
	if err != nil {
		return nil, err
	}
	return c.Runs.RunUnitTests(ctx, identity, workspaceID, stringParam(params, "changeset_id"))
}

func (c *Catalog) runAssertions(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	changesetID, err := requireString(params, "changeset_id")
	if err != nil {
		return nil, err
	}
	assertions, ok := params["assertions"].([]any)
	if !ok || len(assertions) == 0 {
		return nil, fmt.Errorf("parameter %q is required", "assertions")
	}
	return c.Assertions.RunAssertionBatch(ctx, identity, changesetID, assertions)
}

func (c *Catalog) deploySandbox(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error) {
	changesetID, err := requireString(params, "changeset_id")
	if err != nil {
		return nil, err
	}
	verdict, allowed, err := c.Gate.Evaluate(ctx, identity, changesetID,
		stringParam(params, "override_reason"), boolParam(params, "require_assertions"))
	if err != nil {
		return nil, err
	}
	if !allowed {
		return verdict, nil
	}
	result, err := c.Runs.RunDeploy(ctx, identity, changesetID)
	if err != nil {
		return nil, err
	}
	result["gate"] = verdict
	return result, nil
}
