// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "artifact_type", Type: field.TypeEnum, Enums: []string{"stdout", "stderr", "report_json", "coverage_json", "result_json"}},
		{Name: "content", Type: field.TypeBytes},
		{Name: "sha256", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt},
		{Name: "truncated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_runs_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[7]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_run_id_artifact_type",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[7], ArtifactsColumns[1]},
			},
		},
	}
	// AuditEventsColumns holds the columns for the "audit_events" table.
	AuditEventsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "denied", "error", "pending"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEventsTable holds the schema information for the "audit_events" table.
	AuditEventsTable = &schema.Table{
		Name:       "audit_events",
		Columns:    AuditEventsColumns,
		PrimaryKey: []*schema.Column{AuditEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditevent_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[1], AuditEventsColumns[11]},
			},
			{
				Name:    "auditevent_correlation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[7], AuditEventsColumns[11]},
			},
			{
				Name:    "auditevent_tenant_id_action",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[1], AuditEventsColumns[4]},
			},
		},
	}
	// ChangesetsColumns holds the columns for the "changesets" table.
	ChangesetsColumns = []*schema.Column{
		{Name: "changeset_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "pending_review", "approved", "applied", "rejected"}, Default: "draft"},
		{Name: "proposed_by", Type: field.TypeString},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true},
		{Name: "applied_by", Type: field.TypeString, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "applied_at", Type: field.TypeTime, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// ChangesetsTable holds the schema information for the "changesets" table.
	ChangesetsTable = &schema.Table{
		Name:       "changesets",
		Columns:    ChangesetsColumns,
		PrimaryKey: []*schema.Column{ChangesetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "changesets_workspaces_changesets",
				Columns:    []*schema.Column{ChangesetsColumns[14]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "changeset_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{ChangesetsColumns[1], ChangesetsColumns[4]},
			},
			{
				Name:    "changeset_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{ChangesetsColumns[14], ChangesetsColumns[4]},
			},
		},
	}
	// EntityMappingsColumns holds the columns for the "entity_mappings" table.
	EntityMappingsColumns = []*schema.Column{
		{Name: "mapping_id", Type: field.TypeString, Unique: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "script_id", Type: field.TypeString},
		{Name: "natural_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// EntityMappingsTable holds the schema information for the "entity_mappings" table.
	EntityMappingsTable = &schema.Table{
		Name:       "entity_mappings",
		Columns:    EntityMappingsColumns,
		PrimaryKey: []*schema.Column{EntityMappingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_mappings_tenants_entity_mappings",
				Columns:    []*schema.Column{EntityMappingsColumns[6]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entitymapping_tenant_id_entity_type_script_id",
				Unique:  true,
				Columns: []*schema.Column{EntityMappingsColumns[6], EntityMappingsColumns[1], EntityMappingsColumns[2]},
			},
			{
				Name:    "entitymapping_tenant_id_natural_name",
				Unique:  false,
				Columns: []*schema.Column{EntityMappingsColumns[6], EntityMappingsColumns[3]},
			},
		},
	}
	// PatchesColumns holds the columns for the "patches" table.
	PatchesColumns = []*schema.Column{
		{Name: "patch_id", Type: field.TypeString, Unique: true},
		{Name: "operation", Type: field.TypeEnum, Enums: []string{"create", "modify", "delete"}},
		{Name: "file_path", Type: field.TypeString, Size: 512},
		{Name: "baseline_sha256", Type: field.TypeString, Default: ""},
		{Name: "unified_diff", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "new_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "apply_order", Type: field.TypeInt, Default: 0},
		{Name: "changeset_id", Type: field.TypeString},
	}
	// PatchesTable holds the schema information for the "patches" table.
	PatchesTable = &schema.Table{
		Name:       "patches",
		Columns:    PatchesColumns,
		PrimaryKey: []*schema.Column{PatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patches_changesets_patches",
				Columns:    []*schema.Column{PatchesColumns[7]},
				RefColumns: []*schema.Column{ChangesetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patch_changeset_id_apply_order",
				Unique:  true,
				Columns: []*schema.Column{PatchesColumns[7], PatchesColumns[6]},
			},
		},
	}
	// PolicyProfilesColumns holds the columns for the "policy_profiles" table.
	PolicyProfilesColumns = []*schema.Column{
		{Name: "policy_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "read_only_mode", Type: field.TypeBool, Default: false},
		{Name: "max_rows_per_query", Type: field.TypeInt, Default: 1000},
		{Name: "require_row_limit", Type: field.TypeBool, Default: false},
		{Name: "blocked_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "allowed_record_types", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_allowlist", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "locked", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// PolicyProfilesTable holds the schema information for the "policy_profiles" table.
	PolicyProfilesTable = &schema.Table{
		Name:       "policy_profiles",
		Columns:    PolicyProfilesColumns,
		PrimaryKey: []*schema.Column{PolicyProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "policy_profiles_tenants_policy_profiles",
				Columns:    []*schema.Column{PolicyProfilesColumns[12]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "policyprofile_tenant_id_active",
				Unique:  false,
				Columns: []*schema.Column{PolicyProfilesColumns[12], PolicyProfilesColumns[8]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "changeset_id", Type: field.TypeString, Nullable: true},
		{Name: "run_type", Type: field.TypeEnum, Enums: []string{"sdf_validate", "jest_unit_test", "suiteql_assertions", "deploy_sandbox"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "passed", "failed", "error"}, Default: "queued"},
		{Name: "exit_code", Type: field.TypeInt, Nullable: true},
		{Name: "error_category", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "materialized_file_count", Type: field.TypeInt, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "triggered_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "runs_workspaces_runs",
				Columns:    []*schema.Column{RunsColumns[15]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "run_tenant_id_run_type_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1], RunsColumns[3], RunsColumns[4]},
			},
			{
				Name:    "run_changeset_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2]},
			},
			{
				Name:    "run_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[9]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "suspended"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "workspace_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workspaces_tenants_workspaces",
				Columns:    []*schema.Column{WorkspacesColumns[4]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workspace_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[4]},
			},
			{
				Name:    "workspace_tenant_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[4], WorkspacesColumns[3]},
			},
		},
	}
	// WorkspaceFilesColumns holds the columns for the "workspace_files" table.
	WorkspaceFilesColumns = []*schema.Column{
		{Name: "file_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "path", Type: field.TypeString, Size: 512},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "sha256", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt, Default: 0},
		{Name: "mime_type", Type: field.TypeString, Default: "text/plain"},
		{Name: "is_directory", Type: field.TypeBool, Default: false},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeString},
	}
	// WorkspaceFilesTable holds the schema information for the "workspace_files" table.
	WorkspaceFilesTable = &schema.Table{
		Name:       "workspace_files",
		Columns:    WorkspaceFilesColumns,
		PrimaryKey: []*schema.Column{WorkspaceFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workspace_files_workspaces_files",
				Columns:    []*schema.Column{WorkspaceFilesColumns[12]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workspacefile_workspace_id_path",
				Unique:  true,
				Columns: []*schema.Column{WorkspaceFilesColumns[12], WorkspaceFilesColumns[2]},
			},
			{
				Name:    "workspacefile_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{WorkspaceFilesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		AuditEventsTable,
		ChangesetsTable,
		EntityMappingsTable,
		PatchesTable,
		PolicyProfilesTable,
		RunsTable,
		TenantsTable,
		WorkspacesTable,
		WorkspaceFilesTable,
	}
)

func init() {
	ArtifactsTable.ForeignKeys[0].RefTable = RunsTable
	ChangesetsTable.ForeignKeys[0].RefTable = WorkspacesTable
	EntityMappingsTable.ForeignKeys[0].RefTable = TenantsTable
	PatchesTable.ForeignKeys[0].RefTable = ChangesetsTable
	PolicyProfilesTable.ForeignKeys[0].RefTable = TenantsTable
	RunsTable.ForeignKeys[0].RefTable = WorkspacesTable
	WorkspacesTable.ForeignKeys[0].RefTable = TenantsTable
	WorkspaceFilesTable.ForeignKeys[0].RefTable = WorkspacesTable
}
