// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/entitymapping"
	"github.com/suiteops/suitepilot/ent/patch"
	"github.com/suiteops/suitepilot/ent/policyprofile"
	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/ent/schema"
	"github.com/suiteops/suitepilot/ent/tenant"
	"github.com/suiteops/suitepilot/ent/workspace"
	"github.com/suiteops/suitepilot/ent/workspacefile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescTruncated is the schema descriptor for truncated field.
	artifactDescTruncated := artifactFields[6].Descriptor()
	// artifact.DefaultTruncated holds the default value on creation for the truncated field.
	artifact.DefaultTruncated = artifactDescTruncated.Default.(bool)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[7].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	auditeventFields := schema.AuditEvent{}.Fields()
	_ = auditeventFields
	// auditeventDescCreatedAt is the schema descriptor for created_at field.
	auditeventDescCreatedAt := auditeventFields[11].Descriptor()
	// auditevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditevent.DefaultCreatedAt = auditeventDescCreatedAt.Default.(func() time.Time)
	changesetFields := schema.Changeset{}.Fields()
	_ = changesetFields
	// changesetDescCreatedAt is the schema descriptor for created_at field.
	changesetDescCreatedAt := changesetFields[13].Descriptor()
	// changeset.DefaultCreatedAt holds the default value on creation for the created_at field.
	changeset.DefaultCreatedAt = changesetDescCreatedAt.Default.(func() time.Time)
	// changesetDescUpdatedAt is the schema descriptor for updated_at field.
	changesetDescUpdatedAt := changesetFields[14].Descriptor()
	// changeset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	changeset.DefaultUpdatedAt = changesetDescUpdatedAt.Default.(func() time.Time)
	// changeset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	changeset.UpdateDefaultUpdatedAt = changesetDescUpdatedAt.UpdateDefault.(func() time.Time)
	entitymappingFields := schema.EntityMapping{}.Fields()
	_ = entitymappingFields
	// entitymappingDescUpdatedAt is the schema descriptor for updated_at field.
	entitymappingDescUpdatedAt := entitymappingFields[6].Descriptor()
	// entitymapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entitymapping.DefaultUpdatedAt = entitymappingDescUpdatedAt.Default.(func() time.Time)
	// entitymapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entitymapping.UpdateDefaultUpdatedAt = entitymappingDescUpdatedAt.UpdateDefault.(func() time.Time)
	patchFields := schema.Patch{}.Fields()
	_ = patchFields
	// patchDescFilePath is the schema descriptor for file_path field.
	patchDescFilePath := patchFields[3].Descriptor()
	// patch.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	patch.FilePathValidator = patchDescFilePath.Validators[0].(func(string) error)
	// patchDescBaselineSha256 is the schema descriptor for baseline_sha256 field.
	patchDescBaselineSha256 := patchFields[4].Descriptor()
	// patch.DefaultBaselineSha256 holds the default value on creation for the baseline_sha256 field.
	patch.DefaultBaselineSha256 = patchDescBaselineSha256.Default.(string)
	// patchDescApplyOrder is the schema descriptor for apply_order field.
	patchDescApplyOrder := patchFields[7].Descriptor()
	// patch.DefaultApplyOrder holds the default value on creation for the apply_order field.
	patch.DefaultApplyOrder = patchDescApplyOrder.Default.(int)
	policyprofileFields := schema.PolicyProfile{}.Fields()
	_ = policyprofileFields
	// policyprofileDescReadOnlyMode is the schema descriptor for read_only_mode field.
	policyprofileDescReadOnlyMode := policyprofileFields[3].Descriptor()
	// policyprofile.DefaultReadOnlyMode holds the default value on creation for the read_only_mode field.
	policyprofile.DefaultReadOnlyMode = policyprofileDescReadOnlyMode.Default.(bool)
	// policyprofileDescMaxRowsPerQuery is the schema descriptor for max_rows_per_query field.
	policyprofileDescMaxRowsPerQuery := policyprofileFields[4].Descriptor()
	// policyprofile.DefaultMaxRowsPerQuery holds the default value on creation for the max_rows_per_query field.
	policyprofile.DefaultMaxRowsPerQuery = policyprofileDescMaxRowsPerQuery.Default.(int)
	// policyprofileDescRequireRowLimit is the schema descriptor for require_row_limit field.
	policyprofileDescRequireRowLimit := policyprofileFields[5].Descriptor()
	// policyprofile.DefaultRequireRowLimit holds the default value on creation for the require_row_limit field.
	policyprofile.DefaultRequireRowLimit = policyprofileDescRequireRowLimit.Default.(bool)
	// policyprofileDescActive is the schema descriptor for active field.
	policyprofileDescActive := policyprofileFields[9].Descriptor()
	// policyprofile.DefaultActive holds the default value on creation for the active field.
	policyprofile.DefaultActive = policyprofileDescActive.Default.(bool)
	// policyprofileDescLocked is the schema descriptor for locked field.
	policyprofileDescLocked := policyprofileFields[10].Descriptor()
	// policyprofile.DefaultLocked holds the default value on creation for the locked field.
	policyprofile.DefaultLocked = policyprofileDescLocked.Default.(bool)
	// policyprofileDescCreatedAt is the schema descriptor for created_at field.
	policyprofileDescCreatedAt := policyprofileFields[11].Descriptor()
	// policyprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	policyprofile.DefaultCreatedAt = policyprofileDescCreatedAt.Default.(func() time.Time)
	// policyprofileDescUpdatedAt is the schema descriptor for updated_at field.
	policyprofileDescUpdatedAt := policyprofileFields[12].Descriptor()
	// policyprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	policyprofile.DefaultUpdatedAt = policyprofileDescUpdatedAt.Default.(func() time.Time)
	// policyprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	policyprofile.UpdateDefaultUpdatedAt = policyprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[12].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[3].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[3].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
	// workspaceDescUpdatedAt is the schema descriptor for updated_at field.
	workspaceDescUpdatedAt := workspaceFields[4].Descriptor()
	// workspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspace.DefaultUpdatedAt = workspaceDescUpdatedAt.Default.(func() time.Time)
	// workspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspace.UpdateDefaultUpdatedAt = workspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
	workspacefileFields := schema.WorkspaceFile{}.Fields()
	_ = workspacefileFields
	// workspacefileDescPath is the schema descriptor for path field.
	workspacefileDescPath := workspacefileFields[3].Descriptor()
	// workspacefile.PathValidator is a validator for the "path" field. It is called by the builders before save.
	workspacefile.PathValidator = workspacefileDescPath.Validators[0].(func(string) error)
	// workspacefileDescContent is the schema descriptor for content field.
	workspacefileDescContent := workspacefileFields[4].Descriptor()
	// workspacefile.DefaultContent holds the default value on creation for the content field.
	workspacefile.DefaultContent = workspacefileDescContent.Default.(string)
	// workspacefileDescSizeBytes is the schema descriptor for size_bytes field.
	workspacefileDescSizeBytes := workspacefileFields[6].Descriptor()
	// workspacefile.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	workspacefile.DefaultSizeBytes = workspacefileDescSizeBytes.Default.(int)
	// workspacefileDescMimeType is the schema descriptor for mime_type field.
	workspacefileDescMimeType := workspacefileFields[7].Descriptor()
	// workspacefile.DefaultMimeType holds the default value on creation for the mime_type field.
	workspacefile.DefaultMimeType = workspacefileDescMimeType.Default.(string)
	// workspacefileDescIsDirectory is the schema descriptor for is_directory field.
	workspacefileDescIsDirectory := workspacefileFields[8].Descriptor()
	// workspacefile.DefaultIsDirectory holds the default value on creation for the is_directory field.
	workspacefile.DefaultIsDirectory = workspacefileDescIsDirectory.Default.(bool)
	// workspacefileDescCreatedAt is the schema descriptor for created_at field.
	workspacefileDescCreatedAt := workspacefileFields[11].Descriptor()
	// workspacefile.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspacefile.DefaultCreatedAt = workspacefileDescCreatedAt.Default.(func() time.Time)
	// workspacefileDescUpdatedAt is the schema descriptor for updated_at field.
	workspacefileDescUpdatedAt := workspacefileFields[12].Descriptor()
	// workspacefile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspacefile.DefaultUpdatedAt = workspacefileDescUpdatedAt.Default.(func() time.Time)
	// workspacefile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspacefile.UpdateDefaultUpdatedAt = workspacefileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
