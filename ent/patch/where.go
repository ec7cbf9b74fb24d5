// Code generated by ent, DO NOT EDIT.

package patch

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/suiteops/suitepilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldID, id))
}

// ChangesetID applies equality check predicate on the "changeset_id" field. It's identical to ChangesetIDEQ.
func ChangesetID(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldChangesetID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldFilePath, v))
}

// BaselineSha256 applies equality check predicate on the "baseline_sha256" field. It's identical to BaselineSha256EQ.
func BaselineSha256(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldBaselineSha256, v))
}

// UnifiedDiff applies equality check predicate on the "unified_diff" field. It's identical to UnifiedDiffEQ.
func UnifiedDiff(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldUnifiedDiff, v))
}

// NewContent applies equality check predicate on the "new_content" field. It's identical to NewContentEQ.
func NewContent(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldNewContent, v))
}

// ApplyOrder applies equality check predicate on the "apply_order" field. It's identical to ApplyOrderEQ.
func ApplyOrder(v int) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldApplyOrder, v))
}

// ChangesetIDEQ applies the EQ predicate on the "changeset_id" field.
func ChangesetIDEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldChangesetID, v))
}

// ChangesetIDNEQ applies the NEQ predicate on the "changeset_id" field.
func ChangesetIDNEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldChangesetID, v))
}

// ChangesetIDIn applies the In predicate on the "changeset_id" field.
func ChangesetIDIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldChangesetID, vs...))
}

// ChangesetIDNotIn applies the NotIn predicate on the "changeset_id" field.
func ChangesetIDNotIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldChangesetID, vs...))
}

// ChangesetIDGT applies the GT predicate on the "changeset_id" field.
func ChangesetIDGT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldChangesetID, v))
}

// ChangesetIDGTE applies the GTE predicate on the "changeset_id" field.
func ChangesetIDGTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldChangesetID, v))
}

// ChangesetIDLT applies the LT predicate on the "changeset_id" field.
func ChangesetIDLT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldChangesetID, v))
}

// ChangesetIDLTE applies the LTE predicate on the "changeset_id" field.
func ChangesetIDLTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldChangesetID, v))
}

// ChangesetIDContains applies the Contains predicate on the "changeset_id" field.
func ChangesetIDContains(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContains(FieldChangesetID, v))
}

// ChangesetIDHasPrefix applies the HasPrefix predicate on the "changeset_id" field.
func ChangesetIDHasPrefix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasPrefix(FieldChangesetID, v))
}

// ChangesetIDHasSuffix applies the HasSuffix predicate on the "changeset_id" field.
func ChangesetIDHasSuffix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasSuffix(FieldChangesetID, v))
}

// ChangesetIDEqualFold applies the EqualFold predicate on the "changeset_id" field.
func ChangesetIDEqualFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldChangesetID, v))
}

// ChangesetIDContainsFold applies the ContainsFold predicate on the "changeset_id" field.
func ChangesetIDContainsFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldChangesetID, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v Operation) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v Operation) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...Operation) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...Operation) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldOperation, vs...))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldFilePath, v))
}

// BaselineSha256EQ applies the EQ predicate on the "baseline_sha256" field.
func BaselineSha256EQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldBaselineSha256, v))
}

// BaselineSha256NEQ applies the NEQ predicate on the "baseline_sha256" field.
func BaselineSha256NEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldBaselineSha256, v))
}

// BaselineSha256In applies the In predicate on the "baseline_sha256" field.
func BaselineSha256In(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldBaselineSha256, vs...))
}

// BaselineSha256NotIn applies the NotIn predicate on the "baseline_sha256" field.
func BaselineSha256NotIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldBaselineSha256, vs...))
}

// BaselineSha256GT applies the GT predicate on the "baseline_sha256" field.
func BaselineSha256GT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldBaselineSha256, v))
}

// BaselineSha256GTE applies the GTE predicate on the "baseline_sha256" field.
func BaselineSha256GTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldBaselineSha256, v))
}

// BaselineSha256LT applies the LT predicate on the "baseline_sha256" field.
func BaselineSha256LT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldBaselineSha256, v))
}

// BaselineSha256LTE applies the LTE predicate on the "baseline_sha256" field.
func BaselineSha256LTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldBaselineSha256, v))
}

// BaselineSha256Contains applies the Contains predicate on the "baseline_sha256" field.
func BaselineSha256Contains(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContains(FieldBaselineSha256, v))
}

// BaselineSha256HasPrefix applies the HasPrefix predicate on the "baseline_sha256" field.
func BaselineSha256HasPrefix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasPrefix(FieldBaselineSha256, v))
}

// BaselineSha256HasSuffix applies the HasSuffix predicate on the "baseline_sha256" field.
func BaselineSha256HasSuffix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasSuffix(FieldBaselineSha256, v))
}

// BaselineSha256EqualFold applies the EqualFold predicate on the "baseline_sha256" field.
func BaselineSha256EqualFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldBaselineSha256, v))
}

// BaselineSha256ContainsFold applies the ContainsFold predicate on the "baseline_sha256" field.
func BaselineSha256ContainsFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldBaselineSha256, v))
}

// UnifiedDiffEQ applies the EQ predicate on the "unified_diff" field.
func UnifiedDiffEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldUnifiedDiff, v))
}

// UnifiedDiffNEQ applies the NEQ predicate on the "unified_diff" field.
func UnifiedDiffNEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldUnifiedDiff, v))
}

// UnifiedDiffIn applies the In predicate on the "unified_diff" field.
func UnifiedDiffIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldUnifiedDiff, vs...))
}

// UnifiedDiffNotIn applies the NotIn predicate on the "unified_diff" field.
func UnifiedDiffNotIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldUnifiedDiff, vs...))
}

// UnifiedDiffGT applies the GT predicate on the "unified_diff" field.
func UnifiedDiffGT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldUnifiedDiff, v))
}

// UnifiedDiffGTE applies the GTE predicate on the "unified_diff" field.
func UnifiedDiffGTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldUnifiedDiff, v))
}

// UnifiedDiffLT applies the LT predicate on the "unified_diff" field.
func UnifiedDiffLT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldUnifiedDiff, v))
}

// UnifiedDiffLTE applies the LTE predicate on the "unified_diff" field.
func UnifiedDiffLTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldUnifiedDiff, v))
}

// UnifiedDiffContains applies the Contains predicate on the "unified_diff" field.
func UnifiedDiffContains(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContains(FieldUnifiedDiff, v))
}

// UnifiedDiffHasPrefix applies the HasPrefix predicate on the "unified_diff" field.
func UnifiedDiffHasPrefix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasPrefix(FieldUnifiedDiff, v))
}

// UnifiedDiffHasSuffix applies the HasSuffix predicate on the "unified_diff" field.
func UnifiedDiffHasSuffix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasSuffix(FieldUnifiedDiff, v))
}

// UnifiedDiffIsNil applies the IsNil predicate on the "unified_diff" field.
func UnifiedDiffIsNil() predicate.Patch {
	return predicate.Patch(sql.FieldIsNull(FieldUnifiedDiff))
}

// UnifiedDiffNotNil applies the NotNil predicate on the "unified_diff" field.
func UnifiedDiffNotNil() predicate.Patch {
	return predicate.Patch(sql.FieldNotNull(FieldUnifiedDiff))
}

// UnifiedDiffEqualFold applies the EqualFold predicate on the "unified_diff" field.
func UnifiedDiffEqualFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldUnifiedDiff, v))
}

// UnifiedDiffContainsFold applies the ContainsFold predicate on the "unified_diff" field.
func UnifiedDiffContainsFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldUnifiedDiff, v))
}

// NewContentEQ applies the EQ predicate on the "new_content" field.
func NewContentEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldNewContent, v))
}

// NewContentNEQ applies the NEQ predicate on the "new_content" field.
func NewContentNEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldNewContent, v))
}

// NewContentIn applies the In predicate on the "new_content" field.
func NewContentIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldNewContent, vs...))
}

// NewContentNotIn applies the NotIn predicate on the "new_content" field.
func NewContentNotIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldNewContent, vs...))
}

// NewContentGT applies the GT predicate on the "new_content" field.
func NewContentGT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldNewContent, v))
}

// NewContentGTE applies the GTE predicate on the "new_content" field.
func NewContentGTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldNewContent, v))
}

// NewContentLT applies the LT predicate on the "new_content" field.
func NewContentLT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldNewContent, v))
}

// NewContentLTE applies the LTE predicate on the "new_content" field.
func NewContentLTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldNewContent, v))
}

// NewContentContains applies the Contains predicate on the "new_content" field.
func NewContentContains(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContains(FieldNewContent, v))
}

// NewContentHasPrefix applies the HasPrefix predicate on the "new_content" field.
func NewContentHasPrefix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasPrefix(FieldNewContent, v))
}

// NewContentHasSuffix applies the HasSuffix predicate on the "new_content" field.
func NewContentHasSuffix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasSuffix(FieldNewContent, v))
}

// NewContentIsNil applies the IsNil predicate on the "new_content" field.
func NewContentIsNil() predicate.Patch {
	return predicate.Patch(sql.FieldIsNull(FieldNewContent))
}

// NewContentNotNil applies the NotNil predicate on the "new_content" field.
func NewContentNotNil() predicate.Patch {
	return predicate.Patch(sql.FieldNotNull(FieldNewContent))
}

// NewContentEqualFold applies the EqualFold predicate on the "new_content" field.
func NewContentEqualFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldNewContent, v))
}

// NewContentContainsFold applies the ContainsFold predicate on the "new_content" field.
func NewContentContainsFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldNewContent, v))
}

// ApplyOrderEQ applies the EQ predicate on the "apply_order" field.
func ApplyOrderEQ(v int) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldApplyOrder, v))
}

// ApplyOrderNEQ applies the NEQ predicate on the "apply_order" field.
func ApplyOrderNEQ(v int) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldApplyOrder, v))
}

// ApplyOrderIn applies the In predicate on the "apply_order" field.
func ApplyOrderIn(vs ...int) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldApplyOrder, vs...))
}

// ApplyOrderNotIn applies the NotIn predicate on the "apply_order" field.
func ApplyOrderNotIn(vs ...int) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldApplyOrder, vs...))
}

// ApplyOrderGT applies the GT predicate on the "apply_order" field.
func ApplyOrderGT(v int) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldApplyOrder, v))
}

// ApplyOrderGTE applies the GTE predicate on the "apply_order" field.
func ApplyOrderGTE(v int) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldApplyOrder, v))
}

// ApplyOrderLT applies the LT predicate on the "apply_order" field.
func ApplyOrderLT(v int) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldApplyOrder, v))
}

// ApplyOrderLTE applies the LTE predicate on the "apply_order" field.
func ApplyOrderLTE(v int) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldApplyOrder, v))
}

// HasChangeset applies the HasEdge predicate on the "changeset" edge.
func HasChangeset() predicate.Patch {
	return predicate.Patch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChangesetTable, ChangesetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChangesetWith applies the HasEdge predicate on the "changeset" edge with a given conditions (other predicates).
func HasChangesetWith(preds ...predicate.Changeset) predicate.Patch {
	return predicate.Patch(func(s *sql.Selector) {
		step := newChangesetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patch) predicate.Patch {
	return predicate.Patch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patch) predicate.Patch {
	return predicate.Patch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patch) predicate.Patch {
	return predicate.Patch(sql.NotPredicates(p))
}
