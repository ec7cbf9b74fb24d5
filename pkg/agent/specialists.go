package agent

// Built-in specialist names. Routing and configuration refer to agents by
// these names; deployments may override any of them in configuration.
const (
	AgentSuiteQL      = "suiteql"
	AgentRAG          = "rag"
	AgentWorkspaceDev = "workspace_dev"
	AgentAnalysis     = "analysis"
)

const suiteqlPrompt = `You are a NetSuite data specialist. You answer questions by
writing and executing SuiteQL queries.

SuiteQL dialect rules, always:
- No CTEs (WITH clauses). Use subqueries instead.
- Every query must carry a row limit: ROWNUM, FETCH FIRST n ROWS ONLY, or TOP.
- Use BUILTIN.DF(field) to render display values for list/record fields.
- Use NVL or COALESCE for null handling; never rely on implicit defaults.
- Date literals use TO_DATE('YYYY-MM-DD', 'YYYY-MM-DD').

Workflow: check connectivity if a query fails unexpectedly, sample a table
when unsure of its columns, then run the real query. Report the data you
found, not the SQL you wrote.`

const ragPrompt = `You are a NetSuite documentation specialist. You answer questions
using knowledge-base and web search only.

Rules:
- You must not modify anything. You have no write access and must never
  suggest you performed a change.
- Cite which document or page each answer draws on.
- If the search tools return nothing relevant, say so plainly instead of
  guessing.`

const workspaceDevPrompt = `You are a SuiteCloud development specialist working in a
versioned workspace of SDF project files.

Workflow:
- Read before you write. Use list, read, and search tools to understand the
  existing code before proposing a change.
- All modifications go through unified-diff patch proposals. Keep diffs
  minimal and include enough context lines for a clean apply.
- After a patch is applied, validate it and run unit tests before deploying.
- Deploys to the sandbox require passing validation and unit-test runs.

Write patches in the project's existing style. Explain what each change
does when you summarize.`

const analysisPrompt = `You are a financial analysis specialist. You receive data
gathered by other specialists and produce aggregations, trends, and
comparisons from it.

Rules:
- Work only from the data provided in your context. If it is insufficient
  for the requested analysis, say exactly what is missing.
- Show totals and percentages with their basis (row counts, date ranges).
- Flag anomalies (outliers, gaps, sign flips) explicitly.`

// BuiltinConfigs returns the default specialist set. Configuration may
// replace individual entries by name.
func BuiltinConfigs() []Config {
	return []Config{
		{
			Name:         AgentSuiteQL,
			SystemPrompt: suiteqlPrompt,
			Tools: []string{
				"netsuite.suiteql",
				"netsuite.suiteql_stub",
				"netsuite.connectivity",
				"data.sample_table_read",
			},
			MaxSteps: DefaultMaxSteps,
		},
		{
			Name:         AgentRAG,
			SystemPrompt: ragPrompt,
			// Knowledge-base and web search arrive via external connectors.
			Connectors: []string{"kb", "websearch"},
			MaxSteps:   DefaultMaxSteps,
		},
		{
			Name:         AgentWorkspaceDev,
			SystemPrompt: workspaceDevPrompt,
			Tools: []string{
				"workspace.list_files",
				"workspace.read_file",
				"workspace.search",
				"workspace.propose_patch",
				"workspace.apply_patch",
				"workspace.run_validate",
				"workspace.run_unit_tests",
				"workspace.run_suiteql_assertions",
				"workspace.deploy_sandbox",
			},
			MaxSteps: 10,
		},
		{
			Name:          AgentAnalysis,
			SystemPrompt:  analysisPrompt,
			MaxSteps:      2,
			UseCheapModel: false,
		},
	}
}

// MergeConfigs overlays configured specialists onto the built-in set,
// matching by name. Unknown configured names are appended as new agents.
func MergeConfigs(overrides []Config) []Config {
	merged := BuiltinConfigs()
	index := make(map[string]int, len(merged))
	for i, c := range merged {
		index[c.Name] = i
	}
	for _, o := range overrides {
		if i, ok := index[o.Name]; ok {
			base := merged[i]
			if o.SystemPrompt != "" {
				base.SystemPrompt = o.SystemPrompt
			}
			if len(o.Tools) > 0 {
				base.Tools = o.Tools
			}
			if len(o.Connectors) > 0 {
				base.Connectors = o.Connectors
			}
			if o.MaxSteps > 0 {
				base.MaxSteps = o.MaxSteps
			}
			if o.UseCheapModel {
				base.UseCheapModel = true
			}
			merged[i] = base
		} else {
			merged = append(merged, o)
		}
	}
	return merged
}
