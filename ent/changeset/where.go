// Code generated by ent, DO NOT EDIT.

package changeset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/suiteops/suitepilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldTenantID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldWorkspaceID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldTitle, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldRationale, v))
}

// ProposedBy applies equality check predicate on the "proposed_by" field. It's identical to ProposedByEQ.
func ProposedBy(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldProposedBy, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldReviewedBy, v))
}

// AppliedBy applies equality check predicate on the "applied_by" field. It's identical to AppliedByEQ.
func AppliedBy(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldAppliedBy, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldSubmittedAt, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldReviewedAt, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldAppliedAt, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldRejectionReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContainsFold(FieldTenantID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContainsFold(FieldTitle, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContainsFold(FieldRationale, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldStatus, vs...))
}

// ProposedByEQ applies the EQ predicate on the "proposed_by" field.
func ProposedByEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldProposedBy, v))
}

// ProposedByNEQ applies the NEQ predicate on the "proposed_by" field.
func ProposedByNEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldProposedBy, v))
}

// ProposedByIn applies the In predicate on the "proposed_by" field.
func ProposedByIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldProposedBy, vs...))
}

// ProposedByNotIn applies the NotIn predicate on the "proposed_by" field.
func ProposedByNotIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldProposedBy, vs...))
}

// ProposedByGT applies the GT predicate on the "proposed_by" field.
func ProposedByGT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldProposedBy, v))
}

// ProposedByGTE applies the GTE predicate on the "proposed_by" field.
func ProposedByGTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldProposedBy, v))
}

// ProposedByLT applies the LT predicate on the "proposed_by" field.
func ProposedByLT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldProposedBy, v))
}

// ProposedByLTE applies the LTE predicate on the "proposed_by" field.
func ProposedByLTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldProposedBy, v))
}

// ProposedByContains applies the Contains predicate on the "proposed_by" field.
func ProposedByContains(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContains(FieldProposedBy, v))
}

// ProposedByHasPrefix applies the HasPrefix predicate on the "proposed_by" field.
func ProposedByHasPrefix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasPrefix(FieldProposedBy, v))
}

// ProposedByHasSuffix applies the HasSuffix predicate on the "proposed_by" field.
func ProposedByHasSuffix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasSuffix(FieldProposedBy, v))
}

// ProposedByEqualFold applies the EqualFold predicate on the "proposed_by" field.
func ProposedByEqualFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEqualFold(FieldProposedBy, v))
}

// ProposedByContainsFold applies the ContainsFold predicate on the "proposed_by" field.
func ProposedByContainsFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContainsFold(FieldProposedBy, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContainsFold(FieldReviewedBy, v))
}

// AppliedByEQ applies the EQ predicate on the "applied_by" field.
func AppliedByEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldAppliedBy, v))
}

// AppliedByNEQ applies the NEQ predicate on the "applied_by" field.
func AppliedByNEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldAppliedBy, v))
}

// AppliedByIn applies the In predicate on the "applied_by" field.
func AppliedByIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldAppliedBy, vs...))
}

// AppliedByNotIn applies the NotIn predicate on the "applied_by" field.
func AppliedByNotIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldAppliedBy, vs...))
}

// AppliedByGT applies the GT predicate on the "applied_by" field.
func AppliedByGT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldAppliedBy, v))
}

// AppliedByGTE applies the GTE predicate on the "applied_by" field.
func AppliedByGTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldAppliedBy, v))
}

// AppliedByLT applies the LT predicate on the "applied_by" field.
func AppliedByLT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldAppliedBy, v))
}

// AppliedByLTE applies the LTE predicate on the "applied_by" field.
func AppliedByLTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldAppliedBy, v))
}

// AppliedByContains applies the Contains predicate on the "applied_by" field.
func AppliedByContains(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContains(FieldAppliedBy, v))
}

// AppliedByHasPrefix applies the HasPrefix predicate on the "applied_by" field.
func AppliedByHasPrefix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasPrefix(FieldAppliedBy, v))
}

// AppliedByHasSuffix applies the HasSuffix predicate on the "applied_by" field.
func AppliedByHasSuffix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasSuffix(FieldAppliedBy, v))
}

// AppliedByIsNil applies the IsNil predicate on the "applied_by" field.
func AppliedByIsNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldIsNull(FieldAppliedBy))
}

// AppliedByNotNil applies the NotNil predicate on the "applied_by" field.
func AppliedByNotNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldNotNull(FieldAppliedBy))
}

// AppliedByEqualFold applies the EqualFold predicate on the "applied_by" field.
func AppliedByEqualFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEqualFold(FieldAppliedBy, v))
}

// AppliedByContainsFold applies the ContainsFold predicate on the "applied_by" field.
func AppliedByContainsFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContainsFold(FieldAppliedBy, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldNotNull(FieldSubmittedAt))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldNotNull(FieldReviewedAt))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldAppliedAt, v))
}

// AppliedAtIsNil applies the IsNil predicate on the "applied_at" field.
func AppliedAtIsNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldIsNull(FieldAppliedAt))
}

// AppliedAtNotNil applies the NotNil predicate on the "applied_at" field.
func AppliedAtNotNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldNotNull(FieldAppliedAt))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.Changeset {
	return predicate.Changeset(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.Changeset {
	return predicate.Changeset(sql.FieldContainsFold(FieldRejectionReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Changeset {
	return predicate.Changeset(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.Changeset {
	return predicate.Changeset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.Changeset {
	return predicate.Changeset(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPatches applies the HasEdge predicate on the "patches" edge.
func HasPatches() predicate.Changeset {
	return predicate.Changeset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PatchesTable, PatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatchesWith applies the HasEdge predicate on the "patches" edge with a given conditions (other predicates).
func HasPatchesWith(preds ...predicate.Patch) predicate.Changeset {
	return predicate.Changeset(func(s *sql.Selector) {
		step := newPatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Changeset) predicate.Changeset {
	return predicate.Changeset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Changeset) predicate.Changeset {
	return predicate.Changeset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Changeset) predicate.Changeset {
	return predicate.Changeset(sql.NotPredicates(p))
}
